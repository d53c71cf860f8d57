package marketing

import (
	"context"
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

// Subscribe идемпотентен, повторная подписка возвращает существующую запись.
func (r *Repository) Subscribe(ctx context.Context, email string) (*entities.NewsletterSubscription, error) {
	query := `INSERT INTO newsletter_subscriptions (email)
		VALUES ($1)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id, email, created_at`

	var result entities.NewsletterSubscription
	err := r.querier.QueryRow(ctx, query, email).Scan(&result.ID, &result.Email, &result.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("unexpected marketing repository subscribe error: %w", err)
	}

	return &result, nil
}

func (r *Repository) CreateContactMessage(ctx context.Context, message entities.ContactMessage) (*entities.ContactMessage, error) {
	query := `INSERT INTO contact_messages (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	result := message
	err := r.querier.QueryRow(
		ctx,
		query,
		message.Name,
		message.Email,
		message.Subject,
		message.Message,
	).Scan(&result.ID, &result.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("unexpected marketing repository contact error: %w", err)
	}

	return &result, nil
}
