package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"delivery/internal/entities"
	"delivery/internal/repository"
	"delivery/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, client_id,
	pickup_address, pickup_lat, pickup_lng,
	dropoff_address, dropoff_lat, dropoff_lng,
	package_size, weight, urgency, scheduled_date,
	special_instructions, insurance, amount, distance, estimated_time,
	courier_id, status, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	query := `INSERT INTO orders (id, client_id,
			pickup_address, pickup_lat, pickup_lng,
			dropoff_address, dropoff_lat, dropoff_lng,
			package_size, weight, urgency, scheduled_date,
			special_instructions, insurance, amount, distance, estimated_time,
			courier_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING ` + orderColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		orderEntity.ID,
		orderEntity.ClientID,
		orderEntity.Pickup.Text,
		orderEntity.Pickup.Lat,
		orderEntity.Pickup.Lng,
		orderEntity.Dropoff.Text,
		orderEntity.Dropoff.Lat,
		orderEntity.Dropoff.Lng,
		orderEntity.PackageSize.String(),
		orderEntity.Weight,
		orderEntity.Urgency.String(),
		orderEntity.ScheduledDate,
		orderEntity.SpecialInstructions,
		orderEntity.Insurance,
		orderEntity.Amount,
		orderEntity.Distance,
		orderEntity.EstimatedTime,
		orderEntity.CourierID,
		orderEntity.Status.String(),
	)

	orderDB, err := scanOrder(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fmt.Errorf("duplicate order id %s: %w", orderEntity.ID, err)
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatusType) (*entities.Order, error) {
	query := `UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + orderColumns

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, id, status.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM orders WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected order repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}
	return nil
}

func (r *Repository) ListByClient(ctx context.Context, clientID int64) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE client_id = $1
		ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository listbyclient error: %w", err)
	}
	defer rows.Close()

	ordersDB, err := collectOrders(rows)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository listbyclient error: %w", err)
	}

	return ToDomainList(ordersDB), nil
}

func (r *Repository) List(ctx context.Context, page, limit int64) (*entities.OrderPage, error) {
	var total int64
	err := r.querier.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&total)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository count error: %w", err)
	}

	builder := qb.
		Select(orderColumns).
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64((page - 1) * limit))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	ordersDB, err := collectOrders(rows)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return &entities.OrderPage{
		Orders: ToDomainList(ordersDB),
		Total:  total,
		Page:   page,
		Limit:  limit,
	}, nil
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var o OrderDB
	err := row.Scan(
		&o.ID,
		&o.ClientID,
		&o.PickupAddress,
		&o.PickupLat,
		&o.PickupLng,
		&o.DropoffAddress,
		&o.DropoffLat,
		&o.DropoffLng,
		&o.PackageSize,
		&o.Weight,
		&o.Urgency,
		&o.ScheduledDate,
		&o.SpecialInstructions,
		&o.Insurance,
		&o.Amount,
		&o.Distance,
		&o.EstimatedTime,
		&o.CourierID,
		&o.Status,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func collectOrders(rows pgx.Rows) ([]OrderDB, error) {
	ordersDB := make([]OrderDB, 0, 8)
	for rows.Next() {
		orderDB, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		ordersDB = append(ordersDB, *orderDB)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ordersDB, nil
}
