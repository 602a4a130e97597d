package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	userUC "github.com/khanhngo/campus-hub/internal/application/usecase/user"
	"github.com/khanhngo/campus-hub/internal/domain/user"
	"github.com/khanhngo/campus-hub/pkg/apperror"
	"github.com/khanhngo/campus-hub/pkg/logger"
)

type UserHandler struct {
	useCase *userUC.UserUseCase
	logger  logger.Logger
}

func NewUserHandler(uc *userUC.UserUseCase, log logger.Logger) *UserHandler {
	return &UserHandler{useCase: uc, logger: log}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	u, err := h.useCase.Create(c.Request.Context(), userUC.CreateUserInput{
		CollegeID:    req.CollegeID,
		DepartmentID: req.DepartmentID,
		SectionID:    req.SectionID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         req.Role,
		Year:         req.Year,
		Password:     req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToUserDTO(u))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid user ID", err))
		return
	}

	u, err := h.useCase.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToUserDTO(u))
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	filter := user.ListFilter{Search: c.Query("search")}

	if v := c.Query("college_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.Error(apperror.NewInvalidInput("invalid college_id", err))
			return
		}
		filter.CollegeID = &id
	}
	if v := c.Query("department_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.Error(apperror.NewInvalidInput("invalid department_id", err))
			return
		}
		filter.DepartmentID = &id
	}
	if v := c.Query("section_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.Error(apperror.NewInvalidInput("invalid section_id", err))
			return
		}
		filter.SectionID = &id
	}
	if v := c.Query("role"); v != "" {
		if !user.ValidRole(v) {
			c.Error(apperror.NewInvalidInput("invalid role", nil))
			return
		}
		filter.Role = &v
	}
	if v := c.Query("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			c.Error(apperror.NewInvalidInput("invalid year", err))
			return
		}
		filter.Year = &year
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	filter.Limit = limit
	filter.Offset = (page - 1) * limit

	users, err := h.useCase.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]UserDTO, len(users))
	for i, u := range users {
		dtos[i] = ToUserDTO(u)
	}
	c.JSON(http.StatusOK, gin.H{"users": dtos})
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid user ID", err))
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	u, err := h.useCase.Update(c.Request.Context(), userUC.UpdateUserInput{
		ID:           id,
		CollegeID:    req.CollegeID,
		DepartmentID: req.DepartmentID,
		SectionID:    req.SectionID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         req.Role,
		Year:         req.Year,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToUserDTO(u))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid user ID", err))
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// BulkImportUsers accepts a multipart form with a 'file' CSV and structural
// placement in the 'college_id', 'department_id', 'section_id' form fields.
func (h *UserHandler) BulkImportUsers(c *gin.Context) {
	collegeID, err := uuid.Parse(c.PostForm("college_id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("'college_id' form field is required", err))
		return
	}

	input := userUC.BulkImportInput{CollegeID: collegeID}
	if v := c.PostForm("department_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.Error(apperror.NewInvalidInput("invalid department_id", err))
			return
		}
		input.DepartmentID = &id
	}
	if v := c.PostForm("section_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.Error(apperror.NewInvalidInput("invalid section_id", err))
			return
		}
		input.SectionID = &id
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("'file' is required", err))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open file", err))
		return
	}
	defer file.Close()
	input.CSV = file

	output, err := h.useCase.BulkImport(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output)
}
