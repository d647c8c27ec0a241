package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/cafehub/internal/application"
	"github.com/oksasatya/cafehub/internal/domain/entity"
	repo "github.com/oksasatya/cafehub/internal/domain/repository"
	"github.com/oksasatya/cafehub/internal/domain/repository/mocks"
	"github.com/oksasatya/cafehub/pkg/helpers"
)

func TestRegister_HashesPassword(t *testing.T) {
	users := new(mocks.UserRepository)
	users.On("GetByEmail", mock.Anything, "a@example.com").Return(nil, repo.ErrNotFound)
	users.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			u := args.Get(1).(*entity.User)
			u.ID = 1
		}).
		Return(nil)

	svc := application.NewUserService(users, nil, false, nil)
	u, err := svc.Register(context.Background(), "a@example.com", "correct horse", "Alice")
	require.NoError(t, err)

	assert.Equal(t, int64(1), u.ID)
	assert.NotEqual(t, "correct horse", u.PasswordHash)
	assert.True(t, helpers.CompareHashAndPassword(u.PasswordHash, "correct horse"))
	users.AssertExpectations(t)
}

func TestRegister_NormalizesEmail(t *testing.T) {
	users := new(mocks.UserRepository)
	users.On("GetByEmail", mock.Anything, "bob@example.com").Return(nil, repo.ErrNotFound)
	users.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)

	svc := application.NewUserService(users, nil, false, nil)
	u, err := svc.Register(context.Background(), "  Bob@Example.COM ", "password123", "Bob")
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", u.Email)
}

func TestRegister_EmailTaken(t *testing.T) {
	users := new(mocks.UserRepository)
	users.On("GetByEmail", mock.Anything, "a@example.com").
		Return(&entity.User{ID: 7, Email: "a@example.com"}, nil)

	svc := application.NewUserService(users, nil, false, nil)
	_, err := svc.Register(context.Background(), "a@example.com", "whatever123", "Eve")
	assert.ErrorIs(t, err, application.ErrEmailTaken)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_EmailTakenViaConstraint(t *testing.T) {
	// Two registrations racing past the existence check: the second one
	// hits the unique constraint instead.
	users := new(mocks.UserRepository)
	users.On("GetByEmail", mock.Anything, "a@example.com").Return(nil, repo.ErrNotFound)
	users.On("Create", mock.Anything, mock.Anything).Return(repo.ErrDuplicate)

	svc := application.NewUserService(users, nil, false, nil)
	_, err := svc.Register(context.Background(), "a@example.com", "whatever123", "Eve")
	assert.ErrorIs(t, err, application.ErrEmailTaken)
}

func TestAuthenticate(t *testing.T) {
	hash, err := helpers.HashPassword("secret-pw")
	require.NoError(t, err)
	stored := &entity.User{ID: 3, Email: "a@example.com", PasswordHash: hash, Name: "Alice"}

	users := new(mocks.UserRepository)
	users.On("GetByEmail", mock.Anything, "a@example.com").Return(stored, nil)
	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, repo.ErrNotFound)

	svc := application.NewUserService(users, nil, false, nil)

	u, err := svc.Authenticate(context.Background(), "a@example.com", "secret-pw")
	require.NoError(t, err)
	assert.Equal(t, int64(3), u.ID)

	_, err = svc.Authenticate(context.Background(), "a@example.com", "wrong-pw")
	assert.ErrorIs(t, err, application.ErrBadCredentials)

	_, err = svc.Authenticate(context.Background(), "ghost@example.com", "secret-pw")
	assert.ErrorIs(t, err, application.ErrUserNotFound)
}

type stubPublisher struct {
	jobs []any
	err  error
}

func (p *stubPublisher) PublishJSON(_ context.Context, body any) error {
	if p.err != nil {
		return p.err
	}
	p.jobs = append(p.jobs, body)
	return nil
}

func TestRegister_EnqueuesWelcomeEmail(t *testing.T) {
	users := new(mocks.UserRepository)
	users.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, repo.ErrNotFound)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	pub := &stubPublisher{}
	svc := application.NewUserService(users, pub, true, nil)
	_, err := svc.Register(context.Background(), "a@example.com", "password123", "Alice")
	require.NoError(t, err)
	require.Len(t, pub.jobs, 1)
}

func TestRegister_PublishFailureDoesNotFailRegistration(t *testing.T) {
	users := new(mocks.UserRepository)
	users.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, repo.ErrNotFound)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	pub := &stubPublisher{err: errors.New("broker down")}
	svc := application.NewUserService(users, pub, true, nil)
	_, err := svc.Register(context.Background(), "a@example.com", "password123", "Alice")
	assert.NoError(t, err)
}
