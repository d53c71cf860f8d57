//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=newsletter_post_test
package newsletter_post

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
	Subscribe(ctx context.Context, email string) (*entities.NewsletterSubscription, error)
}
