package user

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"delivery/internal/entities"
	"delivery/internal/repository"
	"delivery/internal/service/auth"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const userColumns = `id, email, phone, full_name, password_hash, role,
	push_token, email_verified, google_id, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, userEntity entities.User) (*entities.User, error) {
	query := `INSERT INTO users (email, phone, full_name, password_hash, role,
			push_token, email_verified, google_id)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, NULLIF($8, ''))
		RETURNING ` + userColumns

	userDB, err := scanUser(r.querier.QueryRow(
		ctx,
		query,
		userEntity.Email,
		userEntity.Phone,
		userEntity.FullName,
		userEntity.PasswordHash,
		userEntity.Role.String(),
		userEntity.PushToken,
		userEntity.EmailVerified,
		userEntity.GoogleID,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, auth.ErrEmailTaken
		}
		return nil, fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return ToDomain(userDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, email)
}

func (r *Repository) GetByGoogleID(ctx context.Context, googleID string) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE google_id = $1`
	return r.getOne(ctx, query, googleID)
}

func (r *Repository) Update(ctx context.Context, userModify entities.UserModify) (*entities.User, error) {
	builder := qb.Update("users")

	// опциональные поля
	if userModify.Email != nil {
		builder = builder.Set("email", userModify.Email)
	}
	if userModify.Phone != nil {
		builder = builder.Set("phone", userModify.Phone)
	}
	if userModify.FullName != nil {
		builder = builder.Set("full_name", userModify.FullName)
	}
	if userModify.PasswordHash != nil {
		builder = builder.Set("password_hash", userModify.PasswordHash)
	}
	if userModify.Role != nil {
		builder = builder.Set("role", userModify.Role.String())
	}
	if userModify.PushToken != nil {
		// пустая строка означает сброс токена
		builder = builder.Set("push_token", sq.Expr("NULLIF(?, '')", *userModify.PushToken))
	}
	if userModify.EmailVerified != nil {
		builder = builder.Set("email_verified", userModify.EmailVerified)
	}
	if userModify.GoogleID != nil {
		builder = builder.Set("google_id", sq.Expr("NULLIF(?, '')", *userModify.GoogleID))
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": userModify.ID}).
		Suffix("RETURNING " + userColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	userDB, err := scanUser(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, auth.ErrEmailTaken
		}
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	return ToDomain(userDB), nil
}

func (r *Repository) ListByRole(ctx context.Context, role entities.UserRoleType) ([]entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY id`

	rows, err := r.querier.Query(ctx, query, role.String())
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository list error: %w", err)
	}
	defer rows.Close()

	usersDB := make([]UserDB, 0, 8)
	for rows.Next() {
		userDB, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected user repository list error: %w", err)
		}
		usersDB = append(usersDB, *userDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected user repository list error: %w", err)
	}

	return ToDomainList(usersDB), nil
}

func (r *Repository) getOne(ctx context.Context, query string, arg interface{}) (*entities.User, error) {
	userDB, err := scanUser(r.querier.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository get error: %w", err)
	}

	return ToDomain(userDB), nil
}

func scanUser(row pgx.Row) (*UserDB, error) {
	var u UserDB
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Phone,
		&u.FullName,
		&u.PasswordHash,
		&u.Role,
		&u.PushToken,
		&u.EmailVerified,
		&u.GoogleID,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
