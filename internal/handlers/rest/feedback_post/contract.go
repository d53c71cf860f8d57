//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=feedback_post_test
package feedback_post

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
	Submit(ctx context.Context, draft entities.FeedbackDraft) (*entities.Feedback, error)
}
