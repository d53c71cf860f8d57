package settings

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"delivery/internal/entities"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const settingsColumns = `base_price, price_per_km, express_multiplier, urgent_multiplier,
	large_package_surcharge, delivery_zones, vehicle_types,
	company_name, company_email, company_phone, company_address, updated_at`

// Repository хранит ровно одну строку настроек, id всегда равен 1.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Get(ctx context.Context) (*entities.Settings, error) {
	query := `SELECT ` + settingsColumns + ` FROM settings WHERE id = 1`

	settingsEntity, err := scanSettings(r.querier.QueryRow(ctx, query))
	if err != nil {
		return nil, fmt.Errorf("unexpected settings repository get error: %w", err)
	}

	return settingsEntity, nil
}

func (r *Repository) Update(ctx context.Context, settingsModify entities.SettingsModify) (*entities.Settings, error) {
	builder := qb.Update("settings")

	// опциональные поля
	if settingsModify.BasePrice != nil {
		builder = builder.Set("base_price", settingsModify.BasePrice)
	}
	if settingsModify.PricePerKm != nil {
		builder = builder.Set("price_per_km", settingsModify.PricePerKm)
	}
	if settingsModify.ExpressMultiplier != nil {
		builder = builder.Set("express_multiplier", settingsModify.ExpressMultiplier)
	}
	if settingsModify.UrgentMultiplier != nil {
		builder = builder.Set("urgent_multiplier", settingsModify.UrgentMultiplier)
	}
	if settingsModify.LargePackageSurcharge != nil {
		builder = builder.Set("large_package_surcharge", settingsModify.LargePackageSurcharge)
	}
	if settingsModify.DeliveryZones != nil {
		builder = builder.Set("delivery_zones", *settingsModify.DeliveryZones)
	}
	if settingsModify.VehicleTypes != nil {
		builder = builder.Set("vehicle_types", *settingsModify.VehicleTypes)
	}
	if settingsModify.CompanyName != nil {
		builder = builder.Set("company_name", settingsModify.CompanyName)
	}
	if settingsModify.CompanyEmail != nil {
		builder = builder.Set("company_email", settingsModify.CompanyEmail)
	}
	if settingsModify.CompanyPhone != nil {
		builder = builder.Set("company_phone", settingsModify.CompanyPhone)
	}
	if settingsModify.CompanyAddress != nil {
		builder = builder.Set("company_address", settingsModify.CompanyAddress)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": 1}).
		Suffix("RETURNING " + settingsColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected settings repository update error: %w", err)
	}

	settingsEntity, err := scanSettings(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("unexpected settings repository update error: %w", err)
	}

	return settingsEntity, nil
}

func scanSettings(row pgx.Row) (*entities.Settings, error) {
	var s entities.Settings
	err := row.Scan(
		&s.BasePrice,
		&s.PricePerKm,
		&s.ExpressMultiplier,
		&s.UrgentMultiplier,
		&s.LargePackageSurcharge,
		&s.DeliveryZones,
		&s.VehicleTypes,
		&s.CompanyName,
		&s.CompanyEmail,
		&s.CompanyPhone,
		&s.CompanyAddress,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
