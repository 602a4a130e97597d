package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khanhngo/campus-hub/internal/domain/college"
	"github.com/khanhngo/campus-hub/pkg/apperror"
)

type postgresCollegeRepo struct {
	db *pgxpool.Pool
}

func NewPostgresCollegeRepo(db *pgxpool.Pool) college.Repository {
	return &postgresCollegeRepo{db: db}
}

func (r *postgresCollegeRepo) Save(ctx context.Context, c *college.College) error {
	query := `
		INSERT INTO colleges (id, name, code, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, c.ID, c.Name, c.Code, c.Address, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperror.NewConflict("college", "code", c.Code)
		}
		return apperror.NewInternal("failed to insert college", err)
	}
	return nil
}

func (r *postgresCollegeRepo) FindByID(ctx context.Context, id uuid.UUID) (*college.College, error) {
	query := `SELECT id, name, code, address, created_at, updated_at FROM colleges WHERE id = $1`
	c := &college.College{}
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Code, &c.Address, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, college.ErrCollegeNotFound
		}
		return nil, apperror.NewInternal("failed to query college", err)
	}
	return c, nil
}

func (r *postgresCollegeRepo) List(ctx context.Context, limit, offset int) ([]*college.College, error) {
	query := `
		SELECT id, name, code, address, created_at, updated_at
		FROM colleges
		ORDER BY name
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperror.NewInternal("failed to list colleges", err)
	}
	defer rows.Close()

	colleges := make([]*college.College, 0)
	for rows.Next() {
		c := &college.College{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.Address, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, apperror.NewInternal("failed to scan college row", err)
		}
		colleges = append(colleges, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating college rows", err)
	}
	return colleges, nil
}

func (r *postgresCollegeRepo) Update(ctx context.Context, c *college.College) error {
	query := `
		UPDATE colleges
		SET name = $2, code = $3, address = $4, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, c.ID, c.Name, c.Code, c.Address)
	if err != nil {
		return apperror.NewInternal("failed to update college", err)
	}
	if tag.RowsAffected() == 0 {
		return college.ErrCollegeNotFound
	}
	return nil
}

func (r *postgresCollegeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM colleges WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete college", err)
	}
	if tag.RowsAffected() == 0 {
		return college.ErrCollegeNotFound
	}
	return nil
}
