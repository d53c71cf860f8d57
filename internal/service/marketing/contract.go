//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=marketing_test
package marketing

import (
	"context"

	"delivery/internal/entities"
)

type Repository interface {
	Subscribe(ctx context.Context, email string) (*entities.NewsletterSubscription, error)
	CreateContactMessage(ctx context.Context, message entities.ContactMessage) (*entities.ContactMessage, error)
}

type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}
