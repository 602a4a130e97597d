package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	notificationUC "github.com/khanhngo/campus-hub/internal/application/usecase/notification"
	"github.com/khanhngo/campus-hub/pkg/apperror"
	"github.com/khanhngo/campus-hub/pkg/logger"
)

type NotificationHandler struct {
	useCase *notificationUC.NotificationUseCase
	logger  logger.Logger
}

func NewNotificationHandler(uc *notificationUC.NotificationUseCase, log logger.Logger) *NotificationHandler {
	return &NotificationHandler{useCase: uc, logger: log}
}

func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	senderID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("user information not found"))
		return
	}

	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	output, err := h.useCase.Create(c.Request.Context(), notificationUC.CreateInput{
		SenderID: senderID,
		Title:    req.Title,
		Body:     req.Body,
		Target:   req.ToDomainTarget(),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, output)
}

func (h *NotificationHandler) GetNotification(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	n, err := h.useCase.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *NotificationHandler) GetInbox(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("user information not found"))
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	inbox, err := h.useCase.Inbox(c.Request.Context(), userID, page, limit)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": inbox})
}

func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("user information not found"))
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.useCase.MarkRead(c.Request.Context(), id, userID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
