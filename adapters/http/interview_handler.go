package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	interviewUC "github.com/khanhngo/campus-hub/internal/application/usecase/interview"
	"github.com/khanhngo/campus-hub/pkg/apperror"
	"github.com/khanhngo/campus-hub/pkg/logger"
)

type InterviewHandler struct {
	useCase *interviewUC.InterviewUseCase
	logger  logger.Logger
}

func NewInterviewHandler(uc *interviewUC.InterviewUseCase, log logger.Logger) *InterviewHandler {
	return &InterviewHandler{useCase: uc, logger: log}
}

func (h *InterviewHandler) ScheduleInterview(c *gin.Context) {
	var req ScheduleInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	i, err := h.useCase.Schedule(c.Request.Context(), interviewUC.ScheduleInput{
		StudentID:     req.StudentID,
		InterviewerID: req.InterviewerID,
		TargetRole:    req.TargetRole,
		ScheduledAt:   req.ScheduledAt,
		DurationMin:   req.DurationMin,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, i)
}

func (h *InterviewHandler) GetInterview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	i, err := h.useCase.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, i)
}

// ListMyInterviews lists interviews where the caller is the student or the
// interviewer depending on the 'as' query param.
func (h *InterviewHandler) ListMyInterviews(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("user information not found"))
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	var err error
	var interviews any
	if c.DefaultQuery("as", "student") == "interviewer" {
		interviews, err = h.useCase.ListByInterviewer(c.Request.Context(), userID, page, limit)
	} else {
		interviews, err = h.useCase.ListByStudent(c.Request.Context(), userID, page, limit)
	}
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"interviews": interviews})
}

func (h *InterviewHandler) RescheduleInterview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req RescheduleInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	i, err := h.useCase.Reschedule(c.Request.Context(), interviewUC.RescheduleInput{
		ID:          id,
		ScheduledAt: req.ScheduledAt,
		DurationMin: req.DurationMin,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, i)
}

func (h *InterviewHandler) CompleteInterview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req CompleteInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	i, err := h.useCase.Complete(c.Request.Context(), id, req.Feedback)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, i)
}

func (h *InterviewHandler) CancelInterview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	i, err := h.useCase.Cancel(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, i)
}
