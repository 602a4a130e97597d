package certificate

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

var (
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrAlreadyReviewed     = errors.New("certificate already reviewed")
)

type Certificate struct {
	ID            uuid.UUID  `json:"id"`
	OwnerID       uuid.UUID  `json:"owner_id"`
	Title         string     `json:"title"`
	Issuer        string     `json:"issuer"`
	FileURL       string     `json:"file_url"`
	StoragePubID  string     `json:"-"`
	Status        string     `json:"status"`
	ReviewComment string     `json:"review_comment"`
	ReviewedBy    *uuid.UUID `json:"reviewed_by"`
	ReviewedAt    *time.Time `json:"reviewed_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (c *Certificate) Validate() error {
	if c.OwnerID == uuid.Nil {
		return errors.New("certificate requires an owner")
	}
	if strings.TrimSpace(c.Title) == "" {
		return errors.New("certificate title is required")
	}
	if strings.TrimSpace(c.FileURL) == "" {
		return errors.New("certificate file is required")
	}
	return nil
}

// Review transitions a pending certificate. Rejections must carry a comment
// so the student knows what to fix.
func (c *Certificate) Review(reviewer uuid.UUID, approve bool, comment string) error {
	if c.Status != StatusPending {
		return ErrAlreadyReviewed
	}
	if !approve && strings.TrimSpace(comment) == "" {
		return errors.New("rejection requires a comment")
	}
	now := time.Now().UTC()
	if approve {
		c.Status = StatusApproved
	} else {
		c.Status = StatusRejected
	}
	c.ReviewComment = comment
	c.ReviewedBy = &reviewer
	c.ReviewedAt = &now
	c.UpdatedAt = now
	return nil
}

type Repository interface {
	Save(ctx context.Context, c *Certificate) error
	FindByID(ctx context.Context, id uuid.UUID) (*Certificate, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*Certificate, error)
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]*Certificate, error)
	Update(ctx context.Context, c *Certificate) error
	Delete(ctx context.Context, id uuid.UUID) error
}
