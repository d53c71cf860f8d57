//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=email_verified_get_test
package email_verified_get

import (
	"context"

	"delivery/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CheckEmailVerified(ctx context.Context, userID int64) (bool, error)
}
