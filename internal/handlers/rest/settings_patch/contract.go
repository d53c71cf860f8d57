//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settings_patch_test
package settings_patch

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
	Update(ctx context.Context, settingsModify entities.SettingsModify) (*entities.Settings, error)
}
