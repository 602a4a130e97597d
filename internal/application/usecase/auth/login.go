package auth

import (
	"context"

	"go.uber.org/zap"

	"github.com/khanhngo/campus-hub/internal/domain/user"
	"github.com/khanhngo/campus-hub/pkg/apperror"
	"github.com/khanhngo/campus-hub/pkg/auth"
	"github.com/khanhngo/campus-hub/pkg/logger"
)

type LoginUseCase struct {
	userRepo user.Repository
	jwtSvc   *auth.JWTService
	logger   logger.Logger
}

func NewLoginUseCase(repo user.Repository, jwtSvc *auth.JWTService, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		userRepo: repo,
		jwtSvc:   jwtSvc,
		logger:   log,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string
	User        *user.User
}

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	u, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		// Do not reveal whether the email exists.
		return nil, apperror.NewUnauthorized("email or password incorrect", err)
	}

	if !auth.CheckPassword(u.PasswordHash, input.Password) {
		return nil, apperror.NewUnauthorized("email or password incorrect", nil)
	}

	token, err := uc.jwtSvc.GenerateToken(u.ID, u.Role)
	if err != nil {
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	uc.logger.Info("User logged in", zap.String("user_id", u.ID.String()), zap.String("role", u.Role))
	return &LoginOutput{AccessToken: token, User: u}, nil
}
