package semester

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrSemesterNotFound = errors.New("semester not found")

type Semester struct {
	ID        uuid.UUID `json:"id"`
	CollegeID uuid.UUID `json:"college_id"`
	Number    int       `json:"number"`
	StartsOn  time.Time `json:"starts_on"`
	EndsOn    time.Time `json:"ends_on"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Semester) Validate() error {
	if s.CollegeID == uuid.Nil {
		return errors.New("semester requires a college")
	}
	if s.Number < 1 || s.Number > 10 {
		return errors.New("semester number must be between 1 and 10")
	}
	if !s.EndsOn.After(s.StartsOn) {
		return errors.New("semester must end after it starts")
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, s *Semester) error
	FindByID(ctx context.Context, id uuid.UUID) (*Semester, error)
	ListByCollege(ctx context.Context, collegeID uuid.UUID, limit, offset int) ([]*Semester, error)
	Update(ctx context.Context, s *Semester) error
	Delete(ctx context.Context, id uuid.UUID) error
}
