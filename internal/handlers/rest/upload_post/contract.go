//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=upload_post_test
package upload_post

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
	UploadFile(ctx context.Context, file entities.FileUpload) (*entities.FileRef, error)
}
