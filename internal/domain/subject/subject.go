package subject

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrSubjectNotFound = errors.New("subject not found")

type Subject struct {
	ID           uuid.UUID `json:"id"`
	DepartmentID uuid.UUID `json:"department_id"`
	SemesterID   uuid.UUID `json:"semester_id"`
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	Credits      int       `json:"credits"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (s *Subject) Validate() error {
	if s.DepartmentID == uuid.Nil {
		return errors.New("subject requires a department")
	}
	if s.SemesterID == uuid.Nil {
		return errors.New("subject requires a semester")
	}
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("subject name is required")
	}
	if strings.TrimSpace(s.Code) == "" {
		return errors.New("subject code is required")
	}
	if s.Credits < 0 {
		return errors.New("subject credits cannot be negative")
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, s *Subject) error
	FindByID(ctx context.Context, id uuid.UUID) (*Subject, error)
	ListByDepartment(ctx context.Context, departmentID uuid.UUID, semesterID *uuid.UUID, limit, offset int) ([]*Subject, error)
	Update(ctx context.Context, s *Subject) error
	Delete(ctx context.Context, id uuid.UUID) error
}
