package department

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrDepartmentNotFound = errors.New("department not found")

type Department struct {
	ID        uuid.UUID  `json:"id"`
	CollegeID uuid.UUID  `json:"college_id"`
	Name      string     `json:"name"`
	Code      string     `json:"code"`
	HODID     *uuid.UUID `json:"hod_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (d *Department) Validate() error {
	if d.CollegeID == uuid.Nil {
		return errors.New("department requires a college")
	}
	if strings.TrimSpace(d.Name) == "" {
		return errors.New("department name is required")
	}
	if strings.TrimSpace(d.Code) == "" {
		return errors.New("department code is required")
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, d *Department) error
	FindByID(ctx context.Context, id uuid.UUID) (*Department, error)
	ListByCollege(ctx context.Context, collegeID uuid.UUID, limit, offset int) ([]*Department, error)
	Update(ctx context.Context, d *Department) error
	Delete(ctx context.Context, id uuid.UUID) error
}
