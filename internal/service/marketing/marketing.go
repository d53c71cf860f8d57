package marketing

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"delivery/internal/entities"
	"delivery/pkg/logger"
)

const (
	maxNameLen    = 100
	maxSubjectLen = 200
	maxMessageLen = 2000
)

var (
	ErrInvalidEmail   = errors.New("invalid email")
	ErrInvalidName    = errors.New("invalid name")
	ErrInvalidSubject = errors.New("invalid subject")
	ErrInvalidMessage = errors.New("invalid message")
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Marketing struct {
	repository   Repository
	mailer       Mailer
	companyInbox string
	log          logger.Logger
}

func New(repository Repository, mailer Mailer, companyInbox string, log logger.Logger) *Marketing {
	return &Marketing{
		repository:   repository,
		mailer:       mailer,
		companyInbox: companyInbox,
		log:          log.With(logger.NewField("service", "marketing")),
	}
}

// Subscribe повторную подписку на тот же email не считает ошибкой.
func (s *Marketing) Subscribe(ctx context.Context, email string) (*entities.NewsletterSubscription, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRe.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	subscription, err := s.repository.Subscribe(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("subscribe: %w", err)
	}
	return subscription, nil
}

// SubmitContact сохраняет обращение и пересылает его на почту компании.
// Сбой пересылки не отменяет сохранение.
func (s *Marketing) SubmitContact(ctx context.Context, message entities.ContactMessage) (*entities.ContactMessage, error) {
	if !emailRe.MatchString(strings.TrimSpace(message.Email)) {
		return nil, ErrInvalidEmail
	}
	if name := strings.TrimSpace(message.Name); name == "" || utf8.RuneCountInString(name) > maxNameLen {
		return nil, ErrInvalidName
	}
	if utf8.RuneCountInString(message.Subject) > maxSubjectLen {
		return nil, ErrInvalidSubject
	}
	if body := strings.TrimSpace(message.Message); body == "" || utf8.RuneCountInString(body) > maxMessageLen {
		return nil, ErrInvalidMessage
	}

	created, err := s.repository.CreateContactMessage(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("save contact message: %w", err)
	}

	if s.companyInbox != "" {
		err := s.mailer.Send(ctx, s.companyInbox,
			fmt.Sprintf("Contact form: %s", created.Subject),
			fmt.Sprintf("<p>From %s (%s)</p><p>%s</p>", created.Name, created.Email, created.Message),
		)
		if err != nil {
			s.log.Warn("contact forward failed",
				logger.NewField("error", err),
			)
		}
	}

	return created, nil
}
