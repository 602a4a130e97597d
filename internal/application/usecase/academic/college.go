// Package academic holds the CRUD use cases for the academic structure:
// colleges, their departments and sections, semesters, and subjects.
package academic

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/khanhngo/campus-hub/internal/domain/college"
	"github.com/khanhngo/campus-hub/pkg/apperror"
	"github.com/khanhngo/campus-hub/pkg/logger"
)

type CollegeUseCase struct {
	repo   college.Repository
	logger logger.Logger
}

func NewCollegeUseCase(repo college.Repository, log logger.Logger) *CollegeUseCase {
	return &CollegeUseCase{repo: repo, logger: log}
}

type CollegeInput struct {
	Name    string
	Code    string
	Address string
}

func (uc *CollegeUseCase) Create(ctx context.Context, in CollegeInput) (*college.College, error) {
	now := time.Now().UTC()
	c := &college.College{
		ID:        uuid.New(),
		Name:      in.Name,
		Code:      in.Code,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := c.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("college validation failed", err)
	}
	if err := uc.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *CollegeUseCase) Get(ctx context.Context, id uuid.UUID) (*college.College, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if err == college.ErrCollegeNotFound {
			return nil, apperror.NewNotFound("college", id.String())
		}
		return nil, err
	}
	return c, nil
}

func (uc *CollegeUseCase) List(ctx context.Context, page, limit int) ([]*college.College, error) {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	return uc.repo.List(ctx, limit, (page-1)*limit)
}

func (uc *CollegeUseCase) Update(ctx context.Context, id uuid.UUID, in CollegeInput) (*college.College, error) {
	c, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = in.Name
	c.Code = in.Code
	c.Address = in.Address
	if err := c.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("college validation failed", err)
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *CollegeUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	err := uc.repo.Delete(ctx, id)
	if err == college.ErrCollegeNotFound {
		return apperror.NewNotFound("college", id.String())
	}
	return err
}
