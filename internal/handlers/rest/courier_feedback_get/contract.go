//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_feedback_get_test
package courier_feedback_get

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
	ListCourierFeedback(ctx context.Context, courierID int64) ([]entities.Feedback, error)
}
