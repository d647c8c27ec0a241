// Package mocks provides testify mocks of the repository interfaces for
// service and handler tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/oksasatya/cafehub/internal/domain/entity"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, u *entity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	var u *entity.User
	if v := args.Get(0); v != nil {
		u = v.(*entity.User)
	}
	return u, args.Error(1)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	var u *entity.User
	if v := args.Get(0); v != nil {
		u = v.(*entity.User)
	}
	return u, args.Error(1)
}

type CafeRepository struct {
	mock.Mock
}

func (m *CafeRepository) Create(ctx context.Context, c *entity.Cafe) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CafeRepository) GetByID(ctx context.Context, id int64) (*entity.Cafe, error) {
	args := m.Called(ctx, id)
	var c *entity.Cafe
	if v := args.Get(0); v != nil {
		c = v.(*entity.Cafe)
	}
	return c, args.Error(1)
}

func (m *CafeRepository) List(ctx context.Context, limit int) ([]entity.Cafe, error) {
	args := m.Called(ctx, limit)
	var cafes []entity.Cafe
	if v := args.Get(0); v != nil {
		cafes = v.([]entity.Cafe)
	}
	return cafes, args.Error(1)
}

func (m *CafeRepository) ListByOwner(ctx context.Context, ownerID int64) ([]entity.Cafe, error) {
	args := m.Called(ctx, ownerID)
	var cafes []entity.Cafe
	if v := args.Get(0); v != nil {
		cafes = v.([]entity.Cafe)
	}
	return cafes, args.Error(1)
}

func (m *CafeRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) Create(ctx context.Context, c *entity.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CommentRepository) ListByCafe(ctx context.Context, cafeID int64) ([]entity.Comment, error) {
	args := m.Called(ctx, cafeID)
	var comments []entity.Comment
	if v := args.Get(0); v != nil {
		comments = v.([]entity.Comment)
	}
	return comments, args.Error(1)
}
