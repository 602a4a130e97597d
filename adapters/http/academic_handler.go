package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	academicUC "github.com/khanhngo/campus-hub/internal/application/usecase/academic"
	"github.com/khanhngo/campus-hub/pkg/apperror"
	"github.com/khanhngo/campus-hub/pkg/logger"
)

// AcademicHandler serves the org-structure CRUD: colleges, departments,
// sections, subjects and semesters.
type AcademicHandler struct {
	colleges    *academicUC.CollegeUseCase
	departments *academicUC.DepartmentUseCase
	sections    *academicUC.SectionUseCase
	subjects    *academicUC.SubjectUseCase
	semesters   *academicUC.SemesterUseCase
	logger      logger.Logger
}

func NewAcademicHandler(
	colleges *academicUC.CollegeUseCase,
	departments *academicUC.DepartmentUseCase,
	sections *academicUC.SectionUseCase,
	subjects *academicUC.SubjectUseCase,
	semesters *academicUC.SemesterUseCase,
	log logger.Logger,
) *AcademicHandler {
	return &AcademicHandler{
		colleges:    colleges,
		departments: departments,
		sections:    sections,
		subjects:    subjects,
		semesters:   semesters,
		logger:      log,
	}
}

func pagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	return page, limit
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid ID in path", err))
		return uuid.Nil, false
	}
	return id, true
}

// Colleges

func (h *AcademicHandler) CreateCollege(c *gin.Context) {
	var req CollegeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	college, err := h.colleges.Create(c.Request.Context(), academicUC.CollegeInput{
		Name: req.Name, Code: req.Code, Address: req.Address,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, college)
}

func (h *AcademicHandler) GetCollege(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	college, err := h.colleges.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, college)
}

func (h *AcademicHandler) ListColleges(c *gin.Context) {
	page, limit := pagination(c)
	colleges, err := h.colleges.List(c.Request.Context(), page, limit)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"colleges": colleges})
}

func (h *AcademicHandler) UpdateCollege(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req CollegeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	college, err := h.colleges.Update(c.Request.Context(), id, academicUC.CollegeInput{
		Name: req.Name, Code: req.Code, Address: req.Address,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, college)
}

func (h *AcademicHandler) DeleteCollege(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.colleges.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Departments

func (h *AcademicHandler) CreateDepartment(c *gin.Context) {
	var req DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	dept, err := h.departments.Create(c.Request.Context(), academicUC.DepartmentInput{
		CollegeID: req.CollegeID, Name: req.Name, Code: req.Code, HODID: req.HODID,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dept)
}

func (h *AcademicHandler) GetDepartment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	dept, err := h.departments.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dept)
}

func (h *AcademicHandler) ListDepartments(c *gin.Context) {
	collegeID, err := uuid.Parse(c.Query("college_id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("'college_id' query param is required", err))
		return
	}
	page, limit := pagination(c)
	depts, err := h.departments.ListByCollege(c.Request.Context(), collegeID, page, limit)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"departments": depts})
}

func (h *AcademicHandler) UpdateDepartment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	dept, err := h.departments.Update(c.Request.Context(), id, academicUC.DepartmentInput{
		CollegeID: req.CollegeID, Name: req.Name, Code: req.Code, HODID: req.HODID,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dept)
}

func (h *AcademicHandler) DeleteDepartment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.departments.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Sections

func (h *AcademicHandler) CreateSection(c *gin.Context) {
	var req SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	section, err := h.sections.Create(c.Request.Context(), academicUC.SectionInput{
		DepartmentID: req.DepartmentID, Name: req.Name, Year: req.Year, Capacity: req.Capacity,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, section)
}

func (h *AcademicHandler) ListSections(c *gin.Context) {
	departmentID, err := uuid.Parse(c.Query("department_id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("'department_id' query param is required", err))
		return
	}
	page, limit := pagination(c)
	sections, err := h.sections.ListByDepartment(c.Request.Context(), departmentID, page, limit)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

func (h *AcademicHandler) UpdateSection(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	section, err := h.sections.Update(c.Request.Context(), id, academicUC.SectionInput{
		DepartmentID: req.DepartmentID, Name: req.Name, Year: req.Year, Capacity: req.Capacity,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, section)
}

func (h *AcademicHandler) DeleteSection(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.sections.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Subjects

func (h *AcademicHandler) CreateSubject(c *gin.Context) {
	var req SubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	subject, err := h.subjects.Create(c.Request.Context(), academicUC.SubjectInput{
		DepartmentID: req.DepartmentID,
		SemesterID:   req.SemesterID,
		Name:         req.Name,
		Code:         req.Code,
		Credits:      req.Credits,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, subject)
}

func (h *AcademicHandler) ListSubjects(c *gin.Context) {
	departmentID, err := uuid.Parse(c.Query("department_id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("'department_id' query param is required", err))
		return
	}
	var semesterID *uuid.UUID
	if v := c.Query("semester_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.Error(apperror.NewInvalidInput("invalid semester_id", err))
			return
		}
		semesterID = &id
	}
	page, limit := pagination(c)
	subjects, err := h.subjects.ListByDepartment(c.Request.Context(), departmentID, semesterID, page, limit)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subjects": subjects})
}

func (h *AcademicHandler) UpdateSubject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req SubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	subject, err := h.subjects.Update(c.Request.Context(), id, academicUC.SubjectInput{
		DepartmentID: req.DepartmentID,
		SemesterID:   req.SemesterID,
		Name:         req.Name,
		Code:         req.Code,
		Credits:      req.Credits,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, subject)
}

func (h *AcademicHandler) DeleteSubject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.subjects.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Semesters

func (h *AcademicHandler) CreateSemester(c *gin.Context) {
	var req SemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	semester, err := h.semesters.Create(c.Request.Context(), academicUC.SemesterInput{
		CollegeID: req.CollegeID, Number: req.Number, StartsOn: req.StartsOn, EndsOn: req.EndsOn,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, semester)
}

func (h *AcademicHandler) ListSemesters(c *gin.Context) {
	collegeID, err := uuid.Parse(c.Query("college_id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("'college_id' query param is required", err))
		return
	}
	page, limit := pagination(c)
	semesters, err := h.semesters.ListByCollege(c.Request.Context(), collegeID, page, limit)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"semesters": semesters})
}

func (h *AcademicHandler) UpdateSemester(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req SemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}
	semester, err := h.semesters.Update(c.Request.Context(), id, academicUC.SemesterInput{
		CollegeID: req.CollegeID, Number: req.Number, StartsOn: req.StartsOn, EndsOn: req.EndsOn,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, semester)
}

func (h *AcademicHandler) DeleteSemester(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.semesters.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
