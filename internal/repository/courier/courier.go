package courier

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"delivery/internal/entities"
	"delivery/internal/repository"
	"delivery/internal/service/courier"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const courierColumns = `id, user_id, full_name, email, phone, address, experience,
	transport, available, motivation,
	id_document_url, id_document_storage_id,
	driving_license_url, driving_license_storage_id,
	profile_picture_url, profile_picture_storage_id,
	status, delivery_count, rating_sum, rating_count, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// tableFor сопоставляет коллекцию API таблице БД. Вызывающий код обязан
// провалидировать коллекцию заранее.
func tableFor(collection entities.CourierCollection) string {
	if collection == entities.CollectionActive {
		return "couriers"
	}
	return "courier_applicants"
}

func (r *Repository) Create(ctx context.Context, collection entities.CourierCollection, courierEntity entities.Courier) (int64, error) {
	query := fmt.Sprintf(`INSERT INTO %s (user_id, full_name, email, phone, address, experience,
			transport, available, motivation,
			id_document_url, id_document_storage_id,
			driving_license_url, driving_license_storage_id,
			profile_picture_url, profile_picture_storage_id,
			status, delivery_count, rating_sum, rating_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id`, tableFor(collection))

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		courierEntity.UserID,
		courierEntity.FullName,
		courierEntity.Email,
		courierEntity.Phone,
		courierEntity.Address,
		courierEntity.Experience,
		courierEntity.Transport.String(),
		courierEntity.Available,
		courierEntity.Motivation,
		courierEntity.IDDocument.URL,
		courierEntity.IDDocument.StorageID,
		courierEntity.DrivingLicense.URL,
		courierEntity.DrivingLicense.StorageID,
		courierEntity.ProfilePicture.URL,
		courierEntity.ProfilePicture.StorageID,
		courierEntity.Status.String(),
		courierEntity.DeliveryCount,
		courierEntity.RatingSum,
		courierEntity.RatingCount,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, courier.ErrConflict
		}
		return 0, fmt.Errorf("unexpected courier repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, collection entities.CourierCollection, id int64) (*entities.Courier, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, courierColumns, tableFor(collection))

	courierDB, err := scanCourier(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository getbyid error: %w", err)
	}

	return ToDomain(courierDB), nil
}

func (r *Repository) GetAll(ctx context.Context, collection entities.CourierCollection) ([]entities.Courier, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY id`, courierColumns, tableFor(collection))

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}
	defer rows.Close()

	couriersDB := make([]CourierDB, 0, 8)
	for rows.Next() {
		courierDB, err := scanCourier(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
		}
		couriersDB = append(couriersDB, *courierDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}

	return ToDomainList(couriersDB), nil
}

func (r *Repository) Update(ctx context.Context, collection entities.CourierCollection, courierModify entities.CourierModify) (*entities.Courier, error) {
	builder := qb.Update(tableFor(collection))

	// опциональные поля
	if courierModify.UserID != nil {
		builder = builder.Set("user_id", courierModify.UserID)
	}
	if courierModify.FullName != nil {
		builder = builder.Set("full_name", courierModify.FullName)
	}
	if courierModify.Email != nil {
		builder = builder.Set("email", courierModify.Email)
	}
	if courierModify.Phone != nil {
		builder = builder.Set("phone", courierModify.Phone)
	}
	if courierModify.Address != nil {
		builder = builder.Set("address", courierModify.Address)
	}
	if courierModify.Experience != nil {
		builder = builder.Set("experience", courierModify.Experience)
	}
	if courierModify.Transport != nil {
		builder = builder.Set("transport", courierModify.Transport.String())
	}
	if courierModify.Available != nil {
		builder = builder.Set("available", courierModify.Available)
	}
	if courierModify.Motivation != nil {
		builder = builder.Set("motivation", courierModify.Motivation)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": courierModify.ID}).
		Suffix("RETURNING " + courierColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	courierDB, err := scanCourier(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, courier.ErrConflict
		}
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	return ToDomain(courierDB), nil
}

func (r *Repository) Delete(ctx context.Context, collection entities.CourierCollection, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, tableFor(collection))

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected courier repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return courier.ErrCourierNotFound
	}
	return nil
}

func (r *Repository) ListAvailable(ctx context.Context) ([]entities.CourierPublic, error) {
	query := `SELECT id, full_name, profile_picture_url, transport, delivery_count, rating_sum, rating_count
		FROM couriers
		WHERE available = TRUE AND status = 'ACTIVE'
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository listavailable error: %w", err)
	}
	defer rows.Close()

	result := make([]entities.CourierPublic, 0, 8)
	for rows.Next() {
		var (
			public      entities.CourierPublic
			transport   string
			ratingSum   float64
			ratingCount int64
		)
		err := rows.Scan(
			&public.ID,
			&public.FullName,
			&public.ProfilePicture,
			&transport,
			&public.DeliveryCount,
			&ratingSum,
			&ratingCount,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository listavailable error: %w", err)
		}

		public.Transport = entities.CourierTransportType(transport)
		public.Rating = entities.DefaultCourierRating
		if ratingCount > 0 {
			public.Rating = ratingSum / float64(ratingCount)
		}
		result = append(result, public)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected courier repository listavailable error: %w", err)
	}

	return result, nil
}

func (r *Repository) IncrementDeliveryCount(ctx context.Context, id int64) error {
	query := `UPDATE couriers
		SET delivery_count = delivery_count + 1, updated_at = NOW()
		WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected courier repository increment error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return courier.ErrCourierNotFound
	}
	return nil
}

// AddRating инкрементирует оба счетчика одним стейтментом, среднее
// восстанавливается как rating_sum / rating_count.
func (r *Repository) AddRating(ctx context.Context, id int64, rating int64) error {
	query := `UPDATE couriers
		SET rating_sum = rating_sum + $2,
			rating_count = rating_count + 1,
			updated_at = NOW()
		WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id, rating)
	if err != nil {
		return fmt.Errorf("unexpected courier repository addrating error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return courier.ErrCourierNotFound
	}
	return nil
}

func scanCourier(row pgx.Row) (*CourierDB, error) {
	var c CourierDB
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.FullName,
		&c.Email,
		&c.Phone,
		&c.Address,
		&c.Experience,
		&c.Transport,
		&c.Available,
		&c.Motivation,
		&c.IDDocumentURL,
		&c.IDDocumentStorageID,
		&c.DrivingLicenseURL,
		&c.DrivingLicenseStorageID,
		&c.ProfilePictureURL,
		&c.ProfilePictureStorageID,
		&c.Status,
		&c.DeliveryCount,
		&c.RatingSum,
		&c.RatingCount,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
