package interview

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

var ErrInterviewNotFound = errors.New("interview not found")

// Interview is one mock interview slot between a student and an interviewer
// (faculty or external).
type Interview struct {
	ID            uuid.UUID `json:"id"`
	CollegeID     uuid.UUID `json:"college_id"`
	StudentID     uuid.UUID `json:"student_id"`
	InterviewerID uuid.UUID `json:"interviewer_id"`
	TargetRole    string    `json:"target_role"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	DurationMin   int       `json:"duration_min"`
	Status        string    `json:"status"`
	Feedback      string    `json:"feedback"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (i *Interview) Validate() error {
	if i.StudentID == uuid.Nil || i.InterviewerID == uuid.Nil {
		return errors.New("interview requires a student and an interviewer")
	}
	if i.StudentID == i.InterviewerID {
		return errors.New("student cannot interview themselves")
	}
	if strings.TrimSpace(i.TargetRole) == "" {
		return errors.New("target role is required")
	}
	if i.ScheduledAt.IsZero() {
		return errors.New("scheduled time is required")
	}
	if i.DurationMin <= 0 {
		return errors.New("duration must be positive")
	}
	switch i.Status {
	case StatusScheduled, StatusCompleted, StatusCancelled:
	default:
		return errors.New("invalid interview status")
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, i *Interview) error
	FindByID(ctx context.Context, id uuid.UUID) (*Interview, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID, limit, offset int) ([]*Interview, error)
	ListByInterviewer(ctx context.Context, interviewerID uuid.UUID, limit, offset int) ([]*Interview, error)
	Update(ctx context.Context, i *Interview) error
	Delete(ctx context.Context, id uuid.UUID) error
}
