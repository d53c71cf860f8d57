//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_user_get_test
package orders_user_get

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
	ListClientOrders(ctx context.Context, clientID int64) ([]entities.Order, error)
}
