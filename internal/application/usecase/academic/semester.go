package academic

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/khanhngo/campus-hub/internal/domain/semester"
	"github.com/khanhngo/campus-hub/pkg/apperror"
	"github.com/khanhngo/campus-hub/pkg/logger"
)

type SemesterUseCase struct {
	repo   semester.Repository
	logger logger.Logger
}

func NewSemesterUseCase(repo semester.Repository, log logger.Logger) *SemesterUseCase {
	return &SemesterUseCase{repo: repo, logger: log}
}

type SemesterInput struct {
	CollegeID uuid.UUID
	Number    int
	StartsOn  time.Time
	EndsOn    time.Time
}

func (uc *SemesterUseCase) Create(ctx context.Context, in SemesterInput) (*semester.Semester, error) {
	now := time.Now().UTC()
	s := &semester.Semester{
		ID:        uuid.New(),
		CollegeID: in.CollegeID,
		Number:    in.Number,
		StartsOn:  in.StartsOn,
		EndsOn:    in.EndsOn,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("semester validation failed", err)
	}
	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *SemesterUseCase) Get(ctx context.Context, id uuid.UUID) (*semester.Semester, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if err == semester.ErrSemesterNotFound {
			return nil, apperror.NewNotFound("semester", id.String())
		}
		return nil, err
	}
	return s, nil
}

func (uc *SemesterUseCase) ListByCollege(ctx context.Context, collegeID uuid.UUID, page, limit int) ([]*semester.Semester, error) {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	return uc.repo.ListByCollege(ctx, collegeID, limit, (page-1)*limit)
}

func (uc *SemesterUseCase) Update(ctx context.Context, id uuid.UUID, in SemesterInput) (*semester.Semester, error) {
	s, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Number = in.Number
	s.StartsOn = in.StartsOn
	s.EndsOn = in.EndsOn
	if err := s.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("semester validation failed", err)
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *SemesterUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	err := uc.repo.Delete(ctx, id)
	if err == semester.ErrSemesterNotFound {
		return apperror.NewNotFound("semester", id.String())
	}
	return err
}
