package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khanhngo/campus-hub/internal/domain/section"
	"github.com/khanhngo/campus-hub/pkg/apperror"
)

type postgresSectionRepo struct {
	db *pgxpool.Pool
}

func NewPostgresSectionRepo(db *pgxpool.Pool) section.Repository {
	return &postgresSectionRepo{db: db}
}

func (r *postgresSectionRepo) Save(ctx context.Context, s *section.Section) error {
	query := `
		INSERT INTO sections (id, department_id, name, year, capacity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, s.ID, s.DepartmentID, s.Name, s.Year, s.Capacity, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return apperror.NewInternal("failed to insert section", err)
	}
	return nil
}

func (r *postgresSectionRepo) FindByID(ctx context.Context, id uuid.UUID) (*section.Section, error) {
	query := `
		SELECT id, department_id, name, year, capacity, created_at, updated_at
		FROM sections WHERE id = $1
	`
	s := &section.Section{}
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.DepartmentID, &s.Name, &s.Year, &s.Capacity, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, section.ErrSectionNotFound
		}
		return nil, apperror.NewInternal("failed to query section", err)
	}
	return s, nil
}

func (r *postgresSectionRepo) ListByDepartment(ctx context.Context, departmentID uuid.UUID, limit, offset int) ([]*section.Section, error) {
	query := `
		SELECT id, department_id, name, year, capacity, created_at, updated_at
		FROM sections
		WHERE department_id = $1
		ORDER BY year, name
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, departmentID, limit, offset)
	if err != nil {
		return nil, apperror.NewInternal("failed to list sections", err)
	}
	defer rows.Close()

	sections := make([]*section.Section, 0)
	for rows.Next() {
		s := &section.Section{}
		if err := rows.Scan(&s.ID, &s.DepartmentID, &s.Name, &s.Year, &s.Capacity, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, apperror.NewInternal("failed to scan section row", err)
		}
		sections = append(sections, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating section rows", err)
	}
	return sections, nil
}

func (r *postgresSectionRepo) Update(ctx context.Context, s *section.Section) error {
	query := `
		UPDATE sections
		SET name = $2, year = $3, capacity = $4, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, s.ID, s.Name, s.Year, s.Capacity)
	if err != nil {
		return apperror.NewInternal("failed to update section", err)
	}
	if tag.RowsAffected() == 0 {
		return section.ErrSectionNotFound
	}
	return nil
}

func (r *postgresSectionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM sections WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete section", err)
	}
	if tag.RowsAffected() == 0 {
		return section.ErrSectionNotFound
	}
	return nil
}
