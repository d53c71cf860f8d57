package notification_cleanup

import (
	"context"
	"time"

	"delivery/pkg/logger"
)

type Service interface {
	CleanupRead(ctx context.Context, retentionDays int64) (int64, error)
}

// NotificationCleanup периодически удаляет прочитанные уведомления
// старше retentionDays.
type NotificationCleanup struct {
	log           logger.Logger
	service       Service
	interval      time.Duration
	retentionDays int64
}

func NewNotificationCleanup(log logger.Logger, service Service, interval time.Duration, retentionDays int64) *NotificationCleanup {
	return &NotificationCleanup{
		log:           log,
		service:       service,
		interval:      interval,
		retentionDays: retentionDays,
	}
}

func (n *NotificationCleanup) TTL() time.Duration {
	return n.interval
}

func (n *NotificationCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, n.interval)
	defer cancel()

	rowsAffected, err := n.service.CleanupRead(ctxWithTimeout, n.retentionDays)

	if rowsAffected > 0 {
		n.log.With(
			logger.NewField("deleted_notifications", rowsAffected),
		).Info("notification cleanup")
	}

	return err
}

func (n *NotificationCleanup) Info() string {
	return "notification cleanup"
}
