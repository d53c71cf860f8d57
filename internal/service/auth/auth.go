package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"delivery/internal/entities"
	"delivery/pkg/logger"
)

type Auth struct {
	repository Repository
	tokens     TokenIssuer
	google     GoogleVerifier
	mailer     Mailer
	log        logger.Logger
}

func New(
	repository Repository,
	tokens TokenIssuer,
	google GoogleVerifier,
	mailer Mailer,
	log logger.Logger,
) *Auth {
	return &Auth{
		repository: repository,
		tokens:     tokens,
		google:     google,
		mailer:     mailer,
		log:        log.With(logger.NewField("service", "auth")),
	}
}

// SignUp создает аккаунт клиента. Письмо подтверждения отправляется
// best-effort: его сбой не отменяет регистрацию.
func (s *Auth) SignUp(ctx context.Context, email, phone, fullName, password string) (*entities.User, string, error) {
	if !isValidEmail(email) {
		return nil, "", ErrInvalidEmail
	}
	if !isValidPhone(phone) {
		return nil, "", ErrInvalidPhone
	}
	if !isValidName(fullName) {
		return nil, "", ErrInvalidName
	}
	if !isValidPassword(password) {
		return nil, "", ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repository.Create(ctx, entities.User{
		Email:        email,
		Phone:        phone,
		FullName:     fullName,
		PasswordHash: string(hash),
		Role:         entities.RoleClient,
	})
	if err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	if err := s.mailer.Send(ctx, user.Email,
		"Confirm your email",
		fmt.Sprintf("<p>Welcome %s, please confirm your email address.</p>", user.FullName),
	); err != nil {
		s.log.Warn("verification email failed",
			logger.NewField("user", user.ID),
			logger.NewField("error", err),
		)
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Role.String())
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

func (s *Auth) SignIn(ctx context.Context, email, password string) (*entities.User, string, error) {
	if !isValidEmail(email) {
		return nil, "", ErrInvalidCredentials
	}

	user, err := s.repository.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Role.String())
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

// SignInGoogle проверяет ID-токен у Google и находит либо создает аккаунт.
func (s *Auth) SignInGoogle(ctx context.Context, idToken string) (*entities.User, string, error) {
	profile, err := s.google.Verify(ctx, idToken)
	if err != nil {
		return nil, "", ErrInvalidGoogleToken
	}

	user, err := s.repository.GetByGoogleID(ctx, profile.Subject)
	if err != nil {
		user, err = s.linkOrCreateGoogleUser(ctx, profile)
		if err != nil {
			return nil, "", err
		}
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Role.String())
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

func (s *Auth) linkOrCreateGoogleUser(ctx context.Context, profile *entities.GoogleProfile) (*entities.User, error) {
	existing, err := s.repository.GetByEmail(ctx, profile.Email)
	if err == nil {
		updated, err := s.repository.Update(ctx, entities.UserModify{
			ID:            &existing.ID,
			GoogleID:      &profile.Subject,
			EmailVerified: &profile.EmailVerified,
		})
		if err != nil {
			return nil, fmt.Errorf("link google account: %w", err)
		}
		return updated, nil
	}

	created, err := s.repository.Create(ctx, entities.User{
		Email:         profile.Email,
		FullName:      profile.FullName,
		Role:          entities.RoleClient,
		EmailVerified: profile.EmailVerified,
		GoogleID:      profile.Subject,
	})
	if err != nil {
		return nil, fmt.Errorf("create google user: %w", err)
	}
	return created, nil
}

func (s *Auth) CheckEmailVerified(ctx context.Context, userID int64) (bool, error) {
	if userID <= 0 {
		return false, ErrInvalidUserID
	}

	user, err := s.repository.GetByID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("get user: %w", err)
	}
	return user.EmailVerified, nil
}

func (s *Auth) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	if id <= 0 {
		return nil, ErrInvalidUserID
	}

	user, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *Auth) ListAdmins(ctx context.Context) ([]entities.User, error) {
	admins, err := s.repository.ListByRole(ctx, entities.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return admins, nil
}

func (s *Auth) ListClients(ctx context.Context) ([]entities.User, error) {
	clients, err := s.repository.ListByRole(ctx, entities.RoleClient)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (s *Auth) SetPushToken(ctx context.Context, userID int64, token string) error {
	if userID <= 0 {
		return ErrInvalidUserID
	}

	_, err := s.repository.Update(ctx, entities.UserModify{
		ID:        &userID,
		PushToken: &token,
	})
	if err != nil {
		return fmt.Errorf("set push token: %w", err)
	}
	return nil
}

func (s *Auth) ClearPushToken(ctx context.Context, userID int64) error {
	empty := ""
	_, err := s.repository.Update(ctx, entities.UserModify{
		ID:        &userID,
		PushToken: &empty,
	})
	if err != nil {
		return fmt.Errorf("clear push token: %w", err)
	}
	return nil
}
