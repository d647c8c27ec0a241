package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/cafehub/internal/domain/entity"
	repo "github.com/oksasatya/cafehub/internal/domain/repository"
	"github.com/oksasatya/cafehub/pkg/helpers"
	"github.com/oksasatya/cafehub/pkg/mailer"
)

// Publisher is the async side-channel for fire-and-forget email jobs.
// *helpers.RabbitPublisher satisfies it.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// UserService is the credential store: it owns registration and
// credential verification. Passwords are bcrypt-hashed per user and never
// compared in plain text.
type UserService struct {
	Repo        repo.UserRepository
	Pub         Publisher
	MailEnabled bool
	Logger      *logrus.Logger
}

func NewUserService(repo repo.UserRepository, pub Publisher, mailEnabled bool, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Pub: pub, MailEnabled: mailEnabled, Logger: logger}
}

// NormalizeEmail lowercases and trims an email so uniqueness is
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account. The pre-insert existence check and the
// schema unique constraint both map to ErrEmailTaken; the constraint is
// the backstop for two concurrent registrations passing the check.
func (s *UserService) Register(ctx context.Context, email, password, name string) (*entity.User, error) {
	email = NormalizeEmail(email)

	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(name),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.enqueueWelcome(ctx, u)
	return u, nil
}

// Authenticate verifies email/password and returns the user. Callers get
// distinct errors for unknown email and bad password, but the login
// handler collapses both into one message for the client.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrBadCredentials
	}
	return u, nil
}

// GetUser resolves a user by id.
func (s *UserService) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) enqueueWelcome(ctx context.Context, u *entity.User) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: mailer.TemplateWelcome,
		Data:     map[string]any{"Name": u.Name},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("email", u.Email).Warn("failed to enqueue welcome email")
	}
}
