package section

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrSectionNotFound = errors.New("section not found")

type Section struct {
	ID           uuid.UUID `json:"id"`
	DepartmentID uuid.UUID `json:"department_id"`
	Name         string    `json:"name"`
	Year         int       `json:"year"`
	Capacity     int       `json:"capacity"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (s *Section) Validate() error {
	if s.DepartmentID == uuid.Nil {
		return errors.New("section requires a department")
	}
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("section name is required")
	}
	if s.Year < 1 || s.Year > 5 {
		return errors.New("section year must be between 1 and 5")
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, s *Section) error
	FindByID(ctx context.Context, id uuid.UUID) (*Section, error)
	ListByDepartment(ctx context.Context, departmentID uuid.UUID, limit, offset int) ([]*Section, error)
	Update(ctx context.Context, s *Section) error
	Delete(ctx context.Context, id uuid.UUID) error
}
