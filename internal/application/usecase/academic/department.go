package academic

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/khanhngo/campus-hub/internal/domain/department"
	"github.com/khanhngo/campus-hub/internal/domain/user"
	"github.com/khanhngo/campus-hub/pkg/apperror"
	"github.com/khanhngo/campus-hub/pkg/logger"
)

type DepartmentUseCase struct {
	repo     department.Repository
	userRepo user.Repository
	logger   logger.Logger
}

func NewDepartmentUseCase(repo department.Repository, userRepo user.Repository, log logger.Logger) *DepartmentUseCase {
	return &DepartmentUseCase{repo: repo, userRepo: userRepo, logger: log}
}

type DepartmentInput struct {
	CollegeID uuid.UUID
	Name      string
	Code      string
	HODID     *uuid.UUID
}

func (uc *DepartmentUseCase) validateHOD(ctx context.Context, hodID *uuid.UUID) error {
	if hodID == nil {
		return nil
	}
	hod, err := uc.userRepo.FindByID(ctx, *hodID)
	if err != nil {
		return apperror.NewInvalidInput("hod user not found", err)
	}
	if hod.Role != user.RoleHOD {
		return apperror.NewInvalidInput("assigned user does not have the hod role", nil)
	}
	return nil
}

func (uc *DepartmentUseCase) Create(ctx context.Context, in DepartmentInput) (*department.Department, error) {
	if err := uc.validateHOD(ctx, in.HODID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	d := &department.Department{
		ID:        uuid.New(),
		CollegeID: in.CollegeID,
		Name:      in.Name,
		Code:      in.Code,
		HODID:     in.HODID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := d.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("department validation failed", err)
	}
	if err := uc.repo.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (uc *DepartmentUseCase) Get(ctx context.Context, id uuid.UUID) (*department.Department, error) {
	d, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if err == department.ErrDepartmentNotFound {
			return nil, apperror.NewNotFound("department", id.String())
		}
		return nil, err
	}
	return d, nil
}

func (uc *DepartmentUseCase) ListByCollege(ctx context.Context, collegeID uuid.UUID, page, limit int) ([]*department.Department, error) {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	return uc.repo.ListByCollege(ctx, collegeID, limit, (page-1)*limit)
}

func (uc *DepartmentUseCase) Update(ctx context.Context, id uuid.UUID, in DepartmentInput) (*department.Department, error) {
	d, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.validateHOD(ctx, in.HODID); err != nil {
		return nil, err
	}

	d.Name = in.Name
	d.Code = in.Code
	d.HODID = in.HODID
	if err := d.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("department validation failed", err)
	}
	if err := uc.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (uc *DepartmentUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	err := uc.repo.Delete(ctx, id)
	if err == department.ErrDepartmentNotFound {
		return apperror.NewNotFound("department", id.String())
	}
	return err
}
