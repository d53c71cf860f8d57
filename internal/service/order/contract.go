//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"delivery/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatusType) (*entities.Order, error)
	Delete(ctx context.Context, id string) error
	ListByClient(ctx context.Context, clientID int64) ([]entities.Order, error)
	List(ctx context.Context, page, limit int64) (*entities.OrderPage, error)
}

type CourierService interface {
	GetActiveCourier(ctx context.Context, id int64) (*entities.Courier, error)
	IncrementDeliveryCount(ctx context.Context, id int64) error
}

type Notifier interface {
	Send(ctx context.Context, userID int64, title, message string, ntype entities.NotificationType, payload map[string]string) (*entities.NotificationDelivery, error)
	BroadcastToAdmins(ctx context.Context, title, message string, ntype entities.NotificationType, payload map[string]string) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
