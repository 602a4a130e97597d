package resume

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/khanhngo/campus-hub/internal/domain/resume"
	"github.com/khanhngo/campus-hub/pkg/apperror"
)

type SectionInput struct {
	OwnerID      uuid.UUID
	Kind         resume.SectionKind
	Title        string
	Organization string
	Description  string
	StartDate    *time.Time
	EndDate      *time.Time
	Fields       map[string]any
	Position     int
}

func (uc *ResumeUseCase) AddSection(ctx context.Context, in SectionInput) (*resume.Section, error) {
	now := time.Now().UTC()
	s := &resume.Section{
		ID:           uuid.New(),
		OwnerID:      in.OwnerID,
		Kind:         in.Kind,
		Title:        in.Title,
		Organization: in.Organization,
		Description:  in.Description,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Fields:       in.Fields,
		Position:     in.Position,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("section validation failed", err)
	}
	if err := uc.sections.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *ResumeUseCase) GetSection(ctx context.Context, id, ownerID uuid.UUID) (*resume.Section, error) {
	s, err := uc.sections.FindByID(ctx, id, ownerID)
	if err != nil {
		if err == resume.ErrSectionNotFound {
			return nil, apperror.NewNotFound("resume section", id.String())
		}
		return nil, err
	}
	return s, nil
}

func (uc *ResumeUseCase) ListSections(ctx context.Context, ownerID uuid.UUID, kind resume.SectionKind) ([]*resume.Section, error) {
	if !resume.ValidKind(kind) {
		return nil, apperror.NewInvalidInput("invalid section kind", nil)
	}
	return uc.sections.ListByOwnerAndKind(ctx, ownerID, kind)
}

type UpdateSectionInput struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Title        string
	Organization string
	Description  string
	StartDate    *time.Time
	EndDate      *time.Time
	Fields       map[string]any
	Position     int
}

func (uc *ResumeUseCase) UpdateSection(ctx context.Context, in UpdateSectionInput) (*resume.Section, error) {
	s, err := uc.GetSection(ctx, in.ID, in.OwnerID)
	if err != nil {
		return nil, err
	}

	s.Title = in.Title
	s.Organization = in.Organization
	s.Description = in.Description
	s.StartDate = in.StartDate
	s.EndDate = in.EndDate
	s.Fields = in.Fields
	s.Position = in.Position
	s.UpdatedAt = time.Now().UTC()

	if err := s.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("section validation failed", err)
	}
	if err := uc.sections.Update(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *ResumeUseCase) DeleteSection(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := uc.sections.Delete(ctx, id, ownerID); err != nil {
		if err == resume.ErrSectionNotFound {
			return apperror.NewNotFound("resume section", id.String())
		}
		return err
	}
	return nil
}
