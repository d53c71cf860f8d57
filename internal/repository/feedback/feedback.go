package feedback

import (
	"context"
	"fmt"

	"delivery/internal/entities"
	"delivery/internal/repository"
	"delivery/internal/service/feedback"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, draft entities.FeedbackDraft) (*entities.Feedback, error) {
	query := `INSERT INTO feedback (order_id, courier_id, client_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	result := entities.Feedback{
		OrderID:   draft.OrderID,
		CourierID: draft.CourierID,
		ClientID:  draft.ClientID,
		Rating:    draft.Rating,
		Comment:   draft.Comment,
	}

	err := r.querier.QueryRow(
		ctx,
		query,
		draft.OrderID,
		draft.CourierID,
		draft.ClientID,
		draft.Rating,
		draft.Comment,
	).Scan(&result.ID, &result.CreatedAt)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, feedback.ErrDuplicateFeedback
		}
		return nil, fmt.Errorf("unexpected feedback repository create error: %w", err)
	}

	return &result, nil
}

func (r *Repository) ExistsForOrderAndClient(ctx context.Context, orderID string, clientID int64) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM feedback WHERE order_id = $1 AND client_id = $2
	)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, orderID, clientID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected feedback repository exists error: %w", err)
	}

	return exists, nil
}

func (r *Repository) ListByCourier(ctx context.Context, courierID int64) ([]entities.Feedback, error) {
	query := `SELECT id, order_id, courier_id, client_id, rating, comment, created_at
		FROM feedback
		WHERE courier_id = $1
		ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query, courierID)
	if err != nil {
		return nil, fmt.Errorf("unexpected feedback repository list error: %w", err)
	}
	defer rows.Close()

	result := make([]entities.Feedback, 0, 8)
	for rows.Next() {
		var f entities.Feedback
		err := rows.Scan(&f.ID, &f.OrderID, &f.CourierID, &f.ClientID, &f.Rating, &f.Comment, &f.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("unexpected feedback repository list error: %w", err)
		}
		result = append(result, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected feedback repository list error: %w", err)
	}

	return result, nil
}
