package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"delivery/internal/entities"
	authservice "delivery/internal/service/auth"
	"delivery/pkg/logger"
)

const (
	// Причины недоставки, видимые вызывающему коду.
	ReasonUserNotFound      = "user not found"
	ReasonNoToken           = "no push token"
	ReasonInvalidTokenReset = "invalid token, reset"
)

type Notification struct {
	repository  Repository
	userService UserService
	push        PushGateway
	log         logger.Logger
}

func New(
	repository Repository,
	userService UserService,
	push PushGateway,
	log logger.Logger,
) *Notification {
	return &Notification{
		repository:  repository,
		userService: userService,
		push:        push,
		log:         log.With(logger.NewField("service", "notification")),
	}
}

// Send доставляет push одному пользователю. Запись в коллекции уведомлений
// появляется только после успешной отправки, поэтому коллекция это журнал
// доставленных, а не попыток. Недоставка - бизнес-исход, не ошибка.
func (s *Notification) Send(ctx context.Context, userID int64, title, message string, ntype entities.NotificationType, payload map[string]string) (*entities.NotificationDelivery, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}
	if !isValidTitle(title) {
		return nil, ErrInvalidTitle
	}
	if !isValidMessage(message) {
		return nil, ErrInvalidMessage
	}
	if !isValidType(ntype.String()) {
		return nil, ErrInvalidType
	}

	user, err := s.userService.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, authservice.ErrUserNotFound) {
			return &entities.NotificationDelivery{Delivered: false, Reason: ReasonUserNotFound}, nil
		}
		return nil, fmt.Errorf("load target user: %w", err)
	}

	if user.PushToken == "" {
		return &entities.NotificationDelivery{Delivered: false, Reason: ReasonNoToken}, nil
	}

	result, err := s.push.Send(ctx, user.PushToken, title, message, payload)
	if err != nil {
		return &entities.NotificationDelivery{Delivered: false, Reason: err.Error()}, nil
	}

	switch result.Status {
	case entities.PushOK:
		// дальше

	case entities.PushInvalidToken:
		if err := s.userService.ClearPushToken(ctx, user.ID); err != nil {
			s.log.Error("failed to clear stale push token",
				logger.NewField("user", user.ID),
				logger.NewField("error", err),
			)
		}
		return &entities.NotificationDelivery{Delivered: false, Reason: ReasonInvalidTokenReset}, nil

	default:
		return &entities.NotificationDelivery{Delivered: false, Reason: result.Message}, nil
	}

	_, err = s.repository.Create(ctx, entities.Notification{
		UserID:  user.ID,
		Title:   title,
		Message: message,
		Type:    ntype,
		Payload: payload,
	})
	if err != nil {
		return nil, fmt.Errorf("persist notification: %w", err)
	}

	return &entities.NotificationDelivery{Delivered: true}, nil
}

// BroadcastToAdmins отправляет уведомление каждому админу параллельно и
// возвращает число успешных доставок. Ноль админов - отдельная ошибка.
func (s *Notification) BroadcastToAdmins(ctx context.Context, title, message string, ntype entities.NotificationType, payload map[string]string) (int64, error) {
	admins, err := s.userService.ListAdmins(ctx)
	if err != nil {
		return 0, fmt.Errorf("list admins: %w", err)
	}
	if len(admins) == 0 {
		return 0, ErrNoAdmins
	}

	var delivered atomic.Int64
	var g errgroup.Group

	for _, admin := range admins {
		g.Go(func() error {
			result, err := s.Send(ctx, admin.ID, title, message, ntype, payload)
			if err != nil {
				s.log.Warn("admin notification failed",
					logger.NewField("admin", admin.ID),
					logger.NewField("error", err),
				)
				return nil
			}
			if result.Delivered {
				delivered.Add(1)
			} else {
				s.log.Warn("admin notification not delivered",
					logger.NewField("admin", admin.ID),
					logger.NewField("reason", result.Reason),
				)
			}
			return nil
		})
	}

	_ = g.Wait()

	return delivered.Load(), nil
}

func (s *Notification) RegisterToken(ctx context.Context, userID int64, token string) error {
	if userID <= 0 {
		return ErrInvalidUserID
	}
	if strings.TrimSpace(token) == "" {
		return ErrInvalidPushToken
	}

	err := s.userService.SetPushToken(ctx, userID, token)
	if err != nil {
		return fmt.Errorf("store push token: %w", err)
	}
	return nil
}

func (s *Notification) ListUserNotifications(ctx context.Context, userID int64) ([]entities.Notification, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}

	notifications, err := s.repository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead помечает прочитанными только уведомления владельца.
func (s *Notification) MarkRead(ctx context.Context, userID int64, ids []int64) (int64, error) {
	if userID <= 0 {
		return 0, ErrInvalidUserID
	}
	if len(ids) == 0 {
		return 0, ErrEmptyIDList
	}

	updated, err := s.repository.MarkRead(ctx, userID, ids)
	if err != nil {
		return 0, fmt.Errorf("mark notifications read: %w", err)
	}
	return updated, nil
}

// CleanupRead удаляет прочитанные уведомления старше retentionDays.
func (s *Notification) CleanupRead(ctx context.Context, retentionDays int64) (int64, error) {
	removed, err := s.repository.DeleteReadOlderThan(ctx, retentionDays)
	if err != nil {
		return 0, fmt.Errorf("cleanup notifications: %w", err)
	}
	return removed, nil
}
