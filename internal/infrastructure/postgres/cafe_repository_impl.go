package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/cafehub/internal/domain/entity"
	"github.com/oksasatya/cafehub/internal/domain/repository"
)

type CafeRepository struct {
	pool *pgxpool.Pool
}

func NewCafeRepository(pool *pgxpool.Pool) *CafeRepository {
	return &CafeRepository{pool: pool}
}

const cafeColumns = `id, name, city, address, has_sockets, has_toilet, has_wifi,
	can_take_calls, seats, coffee_price, description, image_url, owner_id, created_at`

func scanCafe(row pgx.Row, c *entity.Cafe) error {
	return row.Scan(&c.ID, &c.Name, &c.City, &c.Address, &c.HasSockets, &c.HasToilet,
		&c.HasWiFi, &c.CanTakeCalls, &c.Seats, &c.CoffeePrice, &c.Description,
		&c.ImageURL, &c.OwnerID, &c.CreatedAt)
}

func (r *CafeRepository) Create(ctx context.Context, c *entity.Cafe) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO cafes (name, city, address, has_sockets, has_toilet, has_wifi,
			can_take_calls, seats, coffee_price, description, image_url, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`, c.Name, c.City, c.Address, c.HasSockets, c.HasToilet, c.HasWiFi,
		c.CanTakeCalls, c.Seats, c.CoffeePrice, c.Description, c.ImageURL, c.OwnerID)

	return mapError(row.Scan(&c.ID, &c.CreatedAt))
}

func (r *CafeRepository) GetByID(ctx context.Context, id int64) (*entity.Cafe, error) {
	c := &entity.Cafe{}
	row := r.pool.QueryRow(ctx, `SELECT `+cafeColumns+` FROM cafes WHERE id = $1`, id)
	if err := scanCafe(row, c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *CafeRepository) List(ctx context.Context, limit int) ([]entity.Cafe, error) {
	q := `SELECT ` + cafeColumns + ` FROM cafes ORDER BY id ASC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCafes(rows)
}

func (r *CafeRepository) ListByOwner(ctx context.Context, ownerID int64) ([]entity.Cafe, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+cafeColumns+` FROM cafes WHERE owner_id = $1 ORDER BY id ASC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCafes(rows)
}

func collectCafes(rows pgx.Rows) ([]entity.Cafe, error) {
	cafes := []entity.Cafe{}
	for rows.Next() {
		var c entity.Cafe
		if err := scanCafe(rows, &c); err != nil {
			return nil, err
		}
		cafes = append(cafes, c)
	}
	return cafes, rows.Err()
}

// Delete removes a cafe row; dependent comments go with it via the
// ON DELETE CASCADE constraint.
func (r *CafeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM cafes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.CafeRepository = (*CafeRepository)(nil)
