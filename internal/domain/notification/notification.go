package notification

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Target is the audience filter for one notification. Nil fields are
// ignored; ExplicitUserIDs bypasses the structural filters entirely.
type Target struct {
	CollegeID       *uuid.UUID  `json:"college_id,omitempty"`
	DepartmentID    *uuid.UUID  `json:"department_id,omitempty"`
	SectionID       *uuid.UUID  `json:"section_id,omitempty"`
	Year            *int        `json:"year,omitempty"`
	ExplicitUserIDs []uuid.UUID `json:"explicit_user_ids,omitempty"`
}

// Empty reports whether no filter was given at all. An empty target is
// rejected rather than interpreted as "everyone".
func (t Target) Empty() bool {
	return t.CollegeID == nil && t.DepartmentID == nil && t.SectionID == nil &&
		t.Year == nil && len(t.ExplicitUserIDs) == 0
}

type Notification struct {
	ID        uuid.UUID `json:"id"`
	SenderID  uuid.UUID `json:"sender_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Target    Target    `json:"target"`
	CreatedAt time.Time `json:"created_at"`
}

func (n *Notification) Validate() error {
	if strings.TrimSpace(n.Title) == "" {
		return errors.New("notification title is required")
	}
	if strings.TrimSpace(n.Body) == "" {
		return errors.New("notification body is required")
	}
	if n.Target.Empty() {
		return errors.New("notification requires at least one target filter")
	}
	return nil
}

// Delivery is one materialized per-recipient row, written by the worker.
type Delivery struct {
	NotificationID uuid.UUID  `json:"notification_id"`
	UserID         uuid.UUID  `json:"user_id"`
	ReadAt         *time.Time `json:"read_at"`
}

// Inbox pairs a notification with its per-recipient read state.
type Inbox struct {
	Notification Notification `json:"notification"`
	ReadAt       *time.Time   `json:"read_at"`
}

type Repository interface {
	Save(ctx context.Context, n *Notification) error
	FindByID(ctx context.Context, id uuid.UUID) (*Notification, error)
	// ResolveRecipients expands a target into concrete user ids.
	ResolveRecipients(ctx context.Context, target Target) ([]uuid.UUID, error)
	// FanOut writes one delivery row per recipient; already-delivered pairs
	// are skipped so replayed events stay idempotent.
	FanOut(ctx context.Context, notificationID uuid.UUID, userIDs []uuid.UUID) error
	ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Inbox, error)
	MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error
}
