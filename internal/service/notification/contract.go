//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"delivery/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, notificationEntity entities.Notification) (*entities.Notification, error)
	ListByUser(ctx context.Context, userID int64) ([]entities.Notification, error)
	MarkRead(ctx context.Context, userID int64, ids []int64) (int64, error)
	DeleteReadOlderThan(ctx context.Context, days int64) (int64, error)
}

type UserService interface {
	GetUser(ctx context.Context, id int64) (*entities.User, error)
	ListAdmins(ctx context.Context) ([]entities.User, error)
	SetPushToken(ctx context.Context, userID int64, token string) error
	ClearPushToken(ctx context.Context, userID int64) error
}

type PushGateway interface {
	Send(ctx context.Context, token, title, message string, payload map[string]string) (*entities.PushResult, error)
}
