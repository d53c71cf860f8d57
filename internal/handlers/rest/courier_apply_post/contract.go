//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_apply_post_test
package courier_apply_post

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
	SubmitApplication(ctx context.Context, courierModify entities.CourierModify, files entities.ApplicationFiles) (int64, error)
}
