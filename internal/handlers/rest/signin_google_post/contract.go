//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=signin_google_post_test
package signin_google_post

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
	SignInGoogle(ctx context.Context, idToken string) (*entities.User, string, error)
}
