//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=couriers_available_get_test
package couriers_available_get

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
	ListAvailable(ctx context.Context) ([]entities.CourierPublic, error)
}
