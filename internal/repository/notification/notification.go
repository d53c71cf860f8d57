package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"delivery/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, notificationEntity entities.Notification) (*entities.Notification, error) {
	query := `INSERT INTO notifications (user_id, title, message, type, payload, read)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	payload, err := marshalPayload(notificationEntity.Payload)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	result := notificationEntity
	err = r.querier.QueryRow(
		ctx,
		query,
		notificationEntity.UserID,
		notificationEntity.Title,
		notificationEntity.Message,
		notificationEntity.Type.String(),
		payload,
		notificationEntity.Read,
	).Scan(&result.ID, &result.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	return &result, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]entities.Notification, error) {
	query := `SELECT id, user_id, title, message, type, payload, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}
	defer rows.Close()

	result := make([]entities.Notification, 0, 16)
	for rows.Next() {
		var (
			n       entities.Notification
			ntype   string
			payload []byte
		)
		err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &ntype, &payload, &n.Read, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
		}

		n.Type = entities.NotificationType(ntype)
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &n.Payload); err != nil {
				return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
			}
		}
		result = append(result, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}

	return result, nil
}

// MarkRead помечает только уведомления владельца, чужие id игнорируются.
func (r *Repository) MarkRead(ctx context.Context, userID int64, ids []int64) (int64, error) {
	query := `UPDATE notifications
		SET read = TRUE
		WHERE user_id = $1 AND id = ANY($2) AND read = FALSE`

	result, err := r.querier.Exec(ctx, query, userID, ids)
	if err != nil {
		return 0, fmt.Errorf("unexpected notification repository markread error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) DeleteReadOlderThan(ctx context.Context, days int64) (int64, error) {
	query := `DELETE FROM notifications
		WHERE read = TRUE AND created_at < NOW() - make_interval(days => $1)`

	result, err := r.querier.Exec(ctx, query, days)
	if err != nil {
		return 0, fmt.Errorf("unexpected notification repository cleanup error: %w", err)
	}

	return result.RowsAffected(), nil
}

func marshalPayload(payload map[string]string) ([]byte, error) {
	if len(payload) == 0 {
		return []byte("{}"), nil
	}
	return json.Marshal(payload)
}
