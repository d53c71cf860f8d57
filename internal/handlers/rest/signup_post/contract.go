//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=signup_post_test
package signup_post

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
	SignUp(ctx context.Context, email, phone, fullName, password string) (*entities.User, string, error)
}
