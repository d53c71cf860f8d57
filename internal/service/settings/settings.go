package settings

import (
	"context"
	"errors"
	"fmt"

	"delivery/internal/entities"
)

var (
	ErrNegativePrice = errors.New("prices and multipliers must not be negative")
	ErrNothingToSet  = errors.New("no fields to update")
)

type Settings struct {
	repository Repository
}

func New(repository Repository) *Settings {
	return &Settings{
		repository: repository,
	}
}

func (s *Settings) Get(ctx context.Context) (*entities.Settings, error) {
	current, err := s.repository.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return current, nil
}

func (s *Settings) Update(ctx context.Context, settingsModify entities.SettingsModify) (*entities.Settings, error) {
	if settingsModify == (entities.SettingsModify{}) {
		return nil, ErrNothingToSet
	}

	for _, v := range []*float64{
		settingsModify.BasePrice,
		settingsModify.PricePerKm,
		settingsModify.ExpressMultiplier,
		settingsModify.UrgentMultiplier,
		settingsModify.LargePackageSurcharge,
	} {
		if v != nil && *v < 0 {
			return nil, ErrNegativePrice
		}
	}

	updated, err := s.repository.Update(ctx, settingsModify)
	if err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}
	return updated, nil
}
