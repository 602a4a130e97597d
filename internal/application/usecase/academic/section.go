package academic

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/khanhngo/campus-hub/internal/domain/section"
	"github.com/khanhngo/campus-hub/pkg/apperror"
	"github.com/khanhngo/campus-hub/pkg/logger"
)

type SectionUseCase struct {
	repo   section.Repository
	logger logger.Logger
}

func NewSectionUseCase(repo section.Repository, log logger.Logger) *SectionUseCase {
	return &SectionUseCase{repo: repo, logger: log}
}

type SectionInput struct {
	DepartmentID uuid.UUID
	Name         string
	Year         int
	Capacity     int
}

func (uc *SectionUseCase) Create(ctx context.Context, in SectionInput) (*section.Section, error) {
	now := time.Now().UTC()
	s := &section.Section{
		ID:           uuid.New(),
		DepartmentID: in.DepartmentID,
		Name:         in.Name,
		Year:         in.Year,
		Capacity:     in.Capacity,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("section validation failed", err)
	}
	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *SectionUseCase) Get(ctx context.Context, id uuid.UUID) (*section.Section, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if err == section.ErrSectionNotFound {
			return nil, apperror.NewNotFound("section", id.String())
		}
		return nil, err
	}
	return s, nil
}

func (uc *SectionUseCase) ListByDepartment(ctx context.Context, departmentID uuid.UUID, page, limit int) ([]*section.Section, error) {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	return uc.repo.ListByDepartment(ctx, departmentID, limit, (page-1)*limit)
}

func (uc *SectionUseCase) Update(ctx context.Context, id uuid.UUID, in SectionInput) (*section.Section, error) {
	s, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Name = in.Name
	s.Year = in.Year
	s.Capacity = in.Capacity
	if err := s.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("section validation failed", err)
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *SectionUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	err := uc.repo.Delete(ctx, id)
	if err == section.ErrSectionNotFound {
		return apperror.NewNotFound("section", id.String())
	}
	return err
}
