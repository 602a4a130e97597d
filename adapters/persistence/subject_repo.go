package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khanhngo/campus-hub/internal/domain/subject"
	"github.com/khanhngo/campus-hub/pkg/apperror"
)

type postgresSubjectRepo struct {
	db *pgxpool.Pool
}

func NewPostgresSubjectRepo(db *pgxpool.Pool) subject.Repository {
	return &postgresSubjectRepo{db: db}
}

func (r *postgresSubjectRepo) Save(ctx context.Context, s *subject.Subject) error {
	query := `
		INSERT INTO subjects (id, department_id, semester_id, name, code, credits, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query, s.ID, s.DepartmentID, s.SemesterID, s.Name, s.Code, s.Credits, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperror.NewConflict("subject", "code", s.Code)
		}
		return apperror.NewInternal("failed to insert subject", err)
	}
	return nil
}

func (r *postgresSubjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*subject.Subject, error) {
	query := `
		SELECT id, department_id, semester_id, name, code, credits, created_at, updated_at
		FROM subjects WHERE id = $1
	`
	s := &subject.Subject{}
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.DepartmentID, &s.SemesterID, &s.Name, &s.Code, &s.Credits, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, subject.ErrSubjectNotFound
		}
		return nil, apperror.NewInternal("failed to query subject", err)
	}
	return s, nil
}

func (r *postgresSubjectRepo) ListByDepartment(ctx context.Context, departmentID uuid.UUID, semesterID *uuid.UUID, limit, offset int) ([]*subject.Subject, error) {
	builder := psql.
		Select("id, department_id, semester_id, name, code, credits, created_at, updated_at").
		From("subjects").
		Where(sq.Eq{"department_id": departmentID}).
		OrderBy("code")
	if semesterID != nil {
		builder = builder.Where(sq.Eq{"semester_id": *semesterID})
	}
	if limit > 0 {
		builder = builder.Limit(uint64(limit)).Offset(uint64(offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build subject list query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to list subjects", err)
	}
	defer rows.Close()

	subjects := make([]*subject.Subject, 0)
	for rows.Next() {
		s := &subject.Subject{}
		if err := rows.Scan(&s.ID, &s.DepartmentID, &s.SemesterID, &s.Name, &s.Code, &s.Credits, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, apperror.NewInternal("failed to scan subject row", err)
		}
		subjects = append(subjects, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating subject rows", err)
	}
	return subjects, nil
}

func (r *postgresSubjectRepo) Update(ctx context.Context, s *subject.Subject) error {
	query := `
		UPDATE subjects
		SET semester_id = $2, name = $3, code = $4, credits = $5, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, s.ID, s.SemesterID, s.Name, s.Code, s.Credits)
	if err != nil {
		return apperror.NewInternal("failed to update subject", err)
	}
	if tag.RowsAffected() == 0 {
		return subject.ErrSubjectNotFound
	}
	return nil
}

func (r *postgresSubjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete subject", err)
	}
	if tag.RowsAffected() == 0 {
		return subject.ErrSubjectNotFound
	}
	return nil
}
