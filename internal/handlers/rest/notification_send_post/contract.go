//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_send_post_test
package notification_send_post

import (
	"context"

	"delivery/internal/entities"
	"delivery/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Send(ctx context.Context, userID int64, title, message string, ntype entities.NotificationType, payload map[string]string) (*entities.NotificationDelivery, error)
	BroadcastToAdmins(ctx context.Context, title, message string, ntype entities.NotificationType, payload map[string]string) (int64, error)
}
