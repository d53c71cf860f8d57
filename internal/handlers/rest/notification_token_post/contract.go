//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_token_post_test
package notification_token_post

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
	RegisterToken(ctx context.Context, userID int64, token string) error
}
