package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khanhngo/campus-hub/internal/domain/department"
	"github.com/khanhngo/campus-hub/pkg/apperror"
)

type postgresDepartmentRepo struct {
	db *pgxpool.Pool
}

func NewPostgresDepartmentRepo(db *pgxpool.Pool) department.Repository {
	return &postgresDepartmentRepo{db: db}
}

func (r *postgresDepartmentRepo) Save(ctx context.Context, d *department.Department) error {
	query := `
		INSERT INTO departments (id, college_id, name, code, hod_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, d.ID, d.CollegeID, d.Name, d.Code, d.HODID, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperror.NewConflict("department", "code", d.Code)
		}
		return apperror.NewInternal("failed to insert department", err)
	}
	return nil
}

func (r *postgresDepartmentRepo) FindByID(ctx context.Context, id uuid.UUID) (*department.Department, error) {
	query := `
		SELECT id, college_id, name, code, hod_id, created_at, updated_at
		FROM departments WHERE id = $1
	`
	d := &department.Department{}
	err := r.db.QueryRow(ctx, query, id).Scan(&d.ID, &d.CollegeID, &d.Name, &d.Code, &d.HODID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, department.ErrDepartmentNotFound
		}
		return nil, apperror.NewInternal("failed to query department", err)
	}
	return d, nil
}

func (r *postgresDepartmentRepo) ListByCollege(ctx context.Context, collegeID uuid.UUID, limit, offset int) ([]*department.Department, error) {
	query := `
		SELECT id, college_id, name, code, hod_id, created_at, updated_at
		FROM departments
		WHERE college_id = $1
		ORDER BY name
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, collegeID, limit, offset)
	if err != nil {
		return nil, apperror.NewInternal("failed to list departments", err)
	}
	defer rows.Close()

	departments := make([]*department.Department, 0)
	for rows.Next() {
		d := &department.Department{}
		if err := rows.Scan(&d.ID, &d.CollegeID, &d.Name, &d.Code, &d.HODID, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, apperror.NewInternal("failed to scan department row", err)
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating department rows", err)
	}
	return departments, nil
}

func (r *postgresDepartmentRepo) Update(ctx context.Context, d *department.Department) error {
	query := `
		UPDATE departments
		SET name = $2, code = $3, hod_id = $4, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, d.ID, d.Name, d.Code, d.HODID)
	if err != nil {
		return apperror.NewInternal("failed to update department", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}
	return nil
}

func (r *postgresDepartmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete department", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}
	return nil
}
