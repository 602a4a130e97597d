package resume

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/khanhngo/campus-hub/internal/domain/resume"
	"github.com/khanhngo/campus-hub/pkg/apperror"
	"github.com/khanhngo/campus-hub/pkg/completeness"
)

// GetProfile never 404s: a user who has saved nothing yet sees an empty
// profile, the same shape the editor starts from.
func (uc *ResumeUseCase) GetProfile(ctx context.Context, ownerID uuid.UUID) (*resume.Profile, error) {
	p, err := uc.profiles.GetByOwner(ctx, ownerID)
	if err != nil {
		if err == resume.ErrProfileNotFound {
			return &resume.Profile{OwnerID: ownerID, Links: map[string]string{}}, nil
		}
		return nil, err
	}
	return p, nil
}

type SaveProfileInput struct {
	OwnerID  uuid.UUID
	FullName string
	Email    string
	Phone    string
	Headline string
	Summary  string
	Address  string
	Links    map[string]string
}

func (uc *ResumeUseCase) SaveProfile(ctx context.Context, in SaveProfileInput) (*resume.Profile, error) {
	if in.OwnerID == uuid.Nil {
		return nil, apperror.NewInvalidInput("profile requires an owner", nil)
	}
	p := &resume.Profile{
		OwnerID:   in.OwnerID,
		FullName:  in.FullName,
		Email:     in.Email,
		Phone:     in.Phone,
		Headline:  in.Headline,
		Summary:   in.Summary,
		Address:   in.Address,
		Links:     in.Links,
		UpdatedAt: time.Now().UTC(),
	}
	if err := uc.profiles.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

type CompletenessOutput struct {
	Score  int                        `json:"score"`
	Counts map[resume.SectionKind]int `json:"counts"`
}

// Completeness scores the resume from the profile's contact fields plus the
// per-kind section counts.
func (uc *ResumeUseCase) Completeness(ctx context.Context, ownerID uuid.UUID) (*CompletenessOutput, error) {
	profile, err := uc.GetProfile(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	counts, err := uc.sections.CountByKind(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	score := completeness.Score(completeness.Input{
		Name:            profile.FullName,
		Email:           profile.Email,
		Phone:           profile.Phone,
		Education:       counts[resume.KindEducation],
		Projects:        counts[resume.KindProjects],
		Skills:          counts[resume.KindSkills],
		Certifications:  counts[resume.KindCertifications],
		Achievements:    counts[resume.KindAchievements],
		Extracurricular: counts[resume.KindExtracurricular],
	})
	return &CompletenessOutput{Score: score, Counts: counts}, nil
}
