package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/cafehub/internal/domain/entity"
	"github.com/oksasatya/cafehub/internal/domain/repository"
)

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) Create(ctx context.Context, c *entity.Comment) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO comments (body, owner_id, cafe_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, c.Body, c.OwnerID, c.CafeID)

	return mapError(row.Scan(&c.ID, &c.CreatedAt))
}

func (r *CommentRepository) ListByCafe(ctx context.Context, cafeID int64) ([]entity.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, body, owner_id, cafe_id, created_at
		FROM comments
		WHERE cafe_id = $1
		ORDER BY id ASC
	`, cafeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []entity.Comment{}
	for rows.Next() {
		var c entity.Comment
		if err := rows.Scan(&c.ID, &c.Body, &c.OwnerID, &c.CafeID, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
