//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"

	"delivery/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, userEntity entities.User) (*entities.User, error)
	GetByID(ctx context.Context, id int64) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*entities.User, error)
	Update(ctx context.Context, userModify entities.UserModify) (*entities.User, error)
	ListByRole(ctx context.Context, role entities.UserRoleType) ([]entities.User, error)
}

type TokenIssuer interface {
	GenerateToken(userID int64, role string) (string, error)
}

type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (*entities.GoogleProfile, error)
}

type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}
