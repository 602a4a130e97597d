package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khanhngo/campus-hub/internal/domain/semester"
	"github.com/khanhngo/campus-hub/pkg/apperror"
)

type postgresSemesterRepo struct {
	db *pgxpool.Pool
}

func NewPostgresSemesterRepo(db *pgxpool.Pool) semester.Repository {
	return &postgresSemesterRepo{db: db}
}

func (r *postgresSemesterRepo) Save(ctx context.Context, s *semester.Semester) error {
	query := `
		INSERT INTO semesters (id, college_id, number, starts_on, ends_on, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, s.ID, s.CollegeID, s.Number, s.StartsOn, s.EndsOn, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return apperror.NewInternal("failed to insert semester", err)
	}
	return nil
}

func (r *postgresSemesterRepo) FindByID(ctx context.Context, id uuid.UUID) (*semester.Semester, error) {
	query := `
		SELECT id, college_id, number, starts_on, ends_on, created_at, updated_at
		FROM semesters WHERE id = $1
	`
	s := &semester.Semester{}
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.CollegeID, &s.Number, &s.StartsOn, &s.EndsOn, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, semester.ErrSemesterNotFound
		}
		return nil, apperror.NewInternal("failed to query semester", err)
	}
	return s, nil
}

func (r *postgresSemesterRepo) ListByCollege(ctx context.Context, collegeID uuid.UUID, limit, offset int) ([]*semester.Semester, error) {
	query := `
		SELECT id, college_id, number, starts_on, ends_on, created_at, updated_at
		FROM semesters
		WHERE college_id = $1
		ORDER BY number
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, collegeID, limit, offset)
	if err != nil {
		return nil, apperror.NewInternal("failed to list semesters", err)
	}
	defer rows.Close()

	semesters := make([]*semester.Semester, 0)
	for rows.Next() {
		s := &semester.Semester{}
		if err := rows.Scan(&s.ID, &s.CollegeID, &s.Number, &s.StartsOn, &s.EndsOn, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, apperror.NewInternal("failed to scan semester row", err)
		}
		semesters = append(semesters, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating semester rows", err)
	}
	return semesters, nil
}

func (r *postgresSemesterRepo) Update(ctx context.Context, s *semester.Semester) error {
	query := `
		UPDATE semesters
		SET number = $2, starts_on = $3, ends_on = $4, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, s.ID, s.Number, s.StartsOn, s.EndsOn)
	if err != nil {
		return apperror.NewInternal("failed to update semester", err)
	}
	if tag.RowsAffected() == 0 {
		return semester.ErrSemesterNotFound
	}
	return nil
}

func (r *postgresSemesterRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM semesters WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete semester", err)
	}
	if tag.RowsAffected() == 0 {
		return semester.ErrSemesterNotFound
	}
	return nil
}
