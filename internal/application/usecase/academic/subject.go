package academic

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/khanhngo/campus-hub/internal/domain/subject"
	"github.com/khanhngo/campus-hub/pkg/apperror"
	"github.com/khanhngo/campus-hub/pkg/logger"
)

type SubjectUseCase struct {
	repo   subject.Repository
	logger logger.Logger
}

func NewSubjectUseCase(repo subject.Repository, log logger.Logger) *SubjectUseCase {
	return &SubjectUseCase{repo: repo, logger: log}
}

type SubjectInput struct {
	DepartmentID uuid.UUID
	SemesterID   uuid.UUID
	Name         string
	Code         string
	Credits      int
}

func (uc *SubjectUseCase) Create(ctx context.Context, in SubjectInput) (*subject.Subject, error) {
	now := time.Now().UTC()
	s := &subject.Subject{
		ID:           uuid.New(),
		DepartmentID: in.DepartmentID,
		SemesterID:   in.SemesterID,
		Name:         in.Name,
		Code:         in.Code,
		Credits:      in.Credits,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("subject validation failed", err)
	}
	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *SubjectUseCase) Get(ctx context.Context, id uuid.UUID) (*subject.Subject, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if err == subject.ErrSubjectNotFound {
			return nil, apperror.NewNotFound("subject", id.String())
		}
		return nil, err
	}
	return s, nil
}

func (uc *SubjectUseCase) ListByDepartment(ctx context.Context, departmentID uuid.UUID, semesterID *uuid.UUID, page, limit int) ([]*subject.Subject, error) {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	return uc.repo.ListByDepartment(ctx, departmentID, semesterID, limit, (page-1)*limit)
}

func (uc *SubjectUseCase) Update(ctx context.Context, id uuid.UUID, in SubjectInput) (*subject.Subject, error) {
	s, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.SemesterID = in.SemesterID
	s.Name = in.Name
	s.Code = in.Code
	s.Credits = in.Credits
	if err := s.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("subject validation failed", err)
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *SubjectUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	err := uc.repo.Delete(ctx, id)
	if err == subject.ErrSubjectNotFound {
		return apperror.NewNotFound("subject", id.String())
	}
	return err
}
