package order_status_changed

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
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatusType) (*entities.Order, error)
}
