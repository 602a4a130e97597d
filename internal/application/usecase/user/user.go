package user

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/khanhngo/campus-hub/internal/domain/user"
	"github.com/khanhngo/campus-hub/pkg/apperror"
	"github.com/khanhngo/campus-hub/pkg/auth"
	"github.com/khanhngo/campus-hub/pkg/logger"
)

type UserUseCase struct {
	repo   user.Repository
	logger logger.Logger
}

func NewUserUseCase(repo user.Repository, log logger.Logger) *UserUseCase {
	return &UserUseCase{repo: repo, logger: log}
}

type CreateUserInput struct {
	CollegeID    *uuid.UUID
	DepartmentID *uuid.UUID
	SectionID    *uuid.UUID
	Name         string
	Email        string
	Phone        string
	Role         string
	Year         *int
	Password     string
}

func (uc *UserUseCase) Create(ctx context.Context, in CreateUserInput) (*user.User, error) {
	if len(in.Password) < 8 {
		return nil, apperror.NewInvalidInput("password must be at least 8 characters", nil)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	now := time.Now().UTC()
	u := &user.User{
		ID:           uuid.New(),
		CollegeID:    in.CollegeID,
		DepartmentID: in.DepartmentID,
		SectionID:    in.SectionID,
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Role:         in.Role,
		Year:         in.Year,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("user validation failed", err)
	}
	if err := uc.repo.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (uc *UserUseCase) Get(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if err == user.ErrUserNotFound {
			return nil, apperror.NewNotFound("user", id.String())
		}
		return nil, err
	}
	return u, nil
}

func (uc *UserUseCase) List(ctx context.Context, filter user.ListFilter) ([]*user.User, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	return uc.repo.List(ctx, filter)
}

type UpdateUserInput struct {
	ID           uuid.UUID
	CollegeID    *uuid.UUID
	DepartmentID *uuid.UUID
	SectionID    *uuid.UUID
	Name         string
	Email        string
	Phone        string
	Role         string
	Year         *int
}

func (uc *UserUseCase) Update(ctx context.Context, in UpdateUserInput) (*user.User, error) {
	u, err := uc.repo.FindByID(ctx, in.ID)
	if err != nil {
		if err == user.ErrUserNotFound {
			return nil, apperror.NewNotFound("user", in.ID.String())
		}
		return nil, err
	}

	u.CollegeID = in.CollegeID
	u.DepartmentID = in.DepartmentID
	u.SectionID = in.SectionID
	u.Name = in.Name
	u.Email = in.Email
	u.Phone = in.Phone
	u.Role = in.Role
	u.Year = in.Year

	if err := u.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("user validation failed", err)
	}
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (uc *UserUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	err := uc.repo.Delete(ctx, id)
	if err == user.ErrUserNotFound {
		return apperror.NewNotFound("user", id.String())
	}
	return err
}
