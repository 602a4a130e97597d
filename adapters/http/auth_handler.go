package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "github.com/khanhngo/campus-hub/internal/application/usecase/auth"
	"github.com/khanhngo/campus-hub/pkg/apperror"
	"github.com/khanhngo/campus-hub/pkg/logger"
)

type AuthHandler struct {
	loginUC *authUC.LoginUseCase
	logger  logger.Logger
}

func NewAuthHandler(loginUC *authUC.LoginUseCase, log logger.Logger) *AuthHandler {
	return &AuthHandler{loginUC: loginUC, logger: log}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body", err))
		return
	}

	output, err := h.loginUC.Execute(c.Request.Context(), authUC.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: output.AccessToken,
		User:        ToUserDTO(output.User),
	})
}
