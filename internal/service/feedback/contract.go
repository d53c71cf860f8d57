//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=feedback_test
package feedback

import (
	"context"

	"delivery/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, feedbackEntity entities.FeedbackDraft) (*entities.Feedback, error)
	ExistsForOrderAndClient(ctx context.Context, orderID string, clientID int64) (bool, error)
	ListByCourier(ctx context.Context, courierID int64) ([]entities.Feedback, error)
}

type OrderService interface {
	GetOrder(ctx context.Context, orderID string) (*entities.Order, error)
}

type CourierService interface {
	GetActiveCourier(ctx context.Context, id int64) (*entities.Courier, error)
	AddRating(ctx context.Context, id int64, rating int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
