package repository

import (
	"context"

	"github.com/oksasatya/cafehub/internal/domain/entity"
)

// CafeRepository defines the interface for cafe-related database operations.
// Listing is ordered by id ascending; limit <= 0 means no truncation.
type CafeRepository interface {
	Create(ctx context.Context, c *entity.Cafe) error
	GetByID(ctx context.Context, id int64) (*entity.Cafe, error)
	List(ctx context.Context, limit int) ([]entity.Cafe, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]entity.Cafe, error)
	Delete(ctx context.Context, id int64) error
}

// CommentRepository defines the interface for comment persistence.
// ListByCafe returns comments in insertion order.
type CommentRepository interface {
	Create(ctx context.Context, c *entity.Comment) error
	ListByCafe(ctx context.Context, cafeID int64) ([]entity.Comment, error)
}
