package resume

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrProfileNotFound = errors.New("resume profile not found")
	ErrSectionNotFound = errors.New("resume section not found")
)

// Profile holds the contact and biographical fields of one user's resume.
// One per user, created on first save.
type Profile struct {
	OwnerID   uuid.UUID         `json:"owner_id"`
	FullName  string            `json:"full_name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	Headline  string            `json:"headline"`
	Summary   string            `json:"summary"`
	Address   string            `json:"address"`
	Links     map[string]string `json:"links"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// SectionKind enumerates the seven resume section collections.
type SectionKind string

const (
	KindEducation       SectionKind = "education"
	KindProjects        SectionKind = "projects"
	KindSkills          SectionKind = "skills"
	KindCertifications  SectionKind = "certifications"
	KindAchievements    SectionKind = "achievements"
	KindExtracurricular SectionKind = "extracurricular"
	KindHobbies         SectionKind = "hobbies"
)

// Kinds lists every section kind in display order.
var Kinds = []SectionKind{
	KindEducation,
	KindProjects,
	KindSkills,
	KindCertifications,
	KindAchievements,
	KindExtracurricular,
	KindHobbies,
}

func ValidKind(k SectionKind) bool {
	for _, kind := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Section is one entry in a resume collection. The common columns cover the
// structured parts; Fields carries the kind-specific free-form values
// (e.g. a skill group's category and items).
type Section struct {
	ID           uuid.UUID      `json:"id"`
	OwnerID      uuid.UUID      `json:"owner_id"`
	Kind         SectionKind    `json:"kind"`
	Title        string         `json:"title"`
	Organization string         `json:"organization"`
	Description  string         `json:"description"`
	StartDate    *time.Time     `json:"start_date"`
	EndDate      *time.Time     `json:"end_date"`
	Fields       map[string]any `json:"fields"`
	Position     int            `json:"position"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (s *Section) Validate() error {
	if s.OwnerID == uuid.Nil {
		return errors.New("section requires an owner")
	}
	if !ValidKind(s.Kind) {
		return fmt.Errorf("invalid section kind %q", s.Kind)
	}
	if strings.TrimSpace(s.Title) == "" {
		return errors.New("section title is required")
	}
	return nil
}

type ProfileRepository interface {
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*Profile, error)
	Upsert(ctx context.Context, p *Profile) error
}

type SectionRepository interface {
	Save(ctx context.Context, s *Section) error
	FindByID(ctx context.Context, id, ownerID uuid.UUID) (*Section, error)
	ListByOwnerAndKind(ctx context.Context, ownerID uuid.UUID, kind SectionKind) ([]*Section, error)
	// CountByKind returns the number of entries per kind for one owner in a
	// single query; kinds with no entries are absent from the map.
	CountByKind(ctx context.Context, ownerID uuid.UUID) (map[SectionKind]int, error)
	Update(ctx context.Context, s *Section) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}
