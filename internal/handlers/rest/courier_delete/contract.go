//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_delete_test
package courier_delete

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
	DeleteCourier(ctx context.Context, collection entities.CourierCollection, id int64) error
}
