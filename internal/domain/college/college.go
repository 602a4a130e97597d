package college

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrCollegeNotFound = errors.New("college not found")

type College struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *College) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("college name is required")
	}
	if strings.TrimSpace(c.Code) == "" {
		return errors.New("college code is required")
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, c *College) error
	FindByID(ctx context.Context, id uuid.UUID) (*College, error)
	List(ctx context.Context, limit, offset int) ([]*College, error)
	Update(ctx context.Context, c *College) error
	Delete(ctx context.Context, id uuid.UUID) error
}
