package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khanhngo/campus-hub/internal/domain/interview"
	"github.com/khanhngo/campus-hub/pkg/apperror"
)

type postgresInterviewRepo struct {
	db *pgxpool.Pool
}

func NewPostgresInterviewRepo(db *pgxpool.Pool) interview.Repository {
	return &postgresInterviewRepo{db: db}
}

const interviewColumns = `id, college_id, student_id, interviewer_id, target_role, scheduled_at, duration_min, status, feedback, created_at, updated_at`

func scanInterview(row pgx.Row) (*interview.Interview, error) {
	i := &interview.Interview{}
	err := row.Scan(
		&i.ID, &i.CollegeID, &i.StudentID, &i.InterviewerID,
		&i.TargetRole, &i.ScheduledAt, &i.DurationMin,
		&i.Status, &i.Feedback, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, interview.ErrInterviewNotFound
		}
		return nil, fmt.Errorf("failed to scan interview row: %w", err)
	}
	return i, nil
}

func (r *postgresInterviewRepo) Save(ctx context.Context, i *interview.Interview) error {
	query := `
		INSERT INTO interviews (` + interviewColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query,
		i.ID, i.CollegeID, i.StudentID, i.InterviewerID,
		i.TargetRole, i.ScheduledAt, i.DurationMin,
		i.Status, i.Feedback, i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to insert interview", err)
	}
	return nil
}

func (r *postgresInterviewRepo) FindByID(ctx context.Context, id uuid.UUID) (*interview.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE id = $1`
	return scanInterview(r.db.QueryRow(ctx, query, id))
}

func (r *postgresInterviewRepo) listBy(ctx context.Context, column string, id uuid.UUID, limit, offset int) ([]*interview.Interview, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM interviews
		WHERE %s = $1
		ORDER BY scheduled_at DESC
		LIMIT $2 OFFSET $3
	`, interviewColumns, column)

	rows, err := r.db.Query(ctx, query, id, limit, offset)
	if err != nil {
		return nil, apperror.NewInternal("failed to list interviews", err)
	}
	defer rows.Close()

	interviews := make([]*interview.Interview, 0)
	for rows.Next() {
		i := &interview.Interview{}
		if err := rows.Scan(
			&i.ID, &i.CollegeID, &i.StudentID, &i.InterviewerID,
			&i.TargetRole, &i.ScheduledAt, &i.DurationMin,
			&i.Status, &i.Feedback, &i.CreatedAt, &i.UpdatedAt,
		); err != nil {
			return nil, apperror.NewInternal("failed to scan interview row", err)
		}
		interviews = append(interviews, i)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating interview rows", err)
	}
	return interviews, nil
}

func (r *postgresInterviewRepo) ListByStudent(ctx context.Context, studentID uuid.UUID, limit, offset int) ([]*interview.Interview, error) {
	return r.listBy(ctx, "student_id", studentID, limit, offset)
}

func (r *postgresInterviewRepo) ListByInterviewer(ctx context.Context, interviewerID uuid.UUID, limit, offset int) ([]*interview.Interview, error) {
	return r.listBy(ctx, "interviewer_id", interviewerID, limit, offset)
}

func (r *postgresInterviewRepo) Update(ctx context.Context, i *interview.Interview) error {
	query := `
		UPDATE interviews
		SET target_role = $2, scheduled_at = $3, duration_min = $4,
		    status = $5, feedback = $6, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, i.ID, i.TargetRole, i.ScheduledAt, i.DurationMin, i.Status, i.Feedback)
	if err != nil {
		return apperror.NewInternal("failed to update interview", err)
	}
	if tag.RowsAffected() == 0 {
		return interview.ErrInterviewNotFound
	}
	return nil
}

func (r *postgresInterviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM interviews WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete interview", err)
	}
	if tag.RowsAffected() == 0 {
		return interview.ErrInterviewNotFound
	}
	return nil
}
