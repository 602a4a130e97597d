package http

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	draftUC "github.com/khanhngo/campus-hub/internal/application/usecase/draft"
	resumeUC "github.com/khanhngo/campus-hub/internal/application/usecase/resume"
	"github.com/khanhngo/campus-hub/internal/domain/resume"
	"github.com/khanhngo/campus-hub/pkg/apperror"
	"github.com/khanhngo/campus-hub/pkg/logger"
	"github.com/khanhngo/campus-hub/pkg/skills"
)

type ResumeHandler struct {
	useCase *resumeUC.ResumeUseCase
	drafts  *draftUC.DraftUseCase
	catalog *skills.Catalog
	logger  logger.Logger
}

func NewResumeHandler(uc *resumeUC.ResumeUseCase, drafts *draftUC.DraftUseCase, catalog *skills.Catalog, log logger.Logger) *ResumeHandler {
	return &ResumeHandler{useCase: uc, drafts: drafts, catalog: catalog, logger: log}
}

// Profile

func (h *ResumeHandler) GetProfile(c *gin.Context) {
	ownerID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("user information not found"))
		return
	}
	profile, err := h.useCase.GetProfile(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ResumeHandler) SaveProfile(c *gin.Context) {
	ownerID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("user information not found"))
		return
	}
	var req SaveResumeProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	profile, err := h.useCase.SaveProfile(c.Request.Context(), resumeUC.SaveProfileInput{
		OwnerID:  ownerID,
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Headline: req.Headline,
		Summary:  req.Summary,
		Address:  req.Address,
		Links:    req.Links,
	})
	if err != nil {
		c.Error(err)
		return
	}

	// A successful save supersedes any stashed draft of the same form.
	h.drafts.Clear(c.Request.Context(), ownerID, "resume.profile")
	c.JSON(http.StatusOK, profile)
}

// Sections

func (h *ResumeHandler) AddSection(c *gin.Context) {
	ownerID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("user information not found"))
		return
	}
	kind := resume.SectionKind(c.Param("kind"))
	var req ResumeSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	section, err := h.useCase.AddSection(c.Request.Context(), resumeUC.SectionInput{
		OwnerID:      ownerID,
		Kind:         kind,
		Title:        req.Title,
		Organization: req.Organization,
		Description:  req.Description,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Fields:       req.Fields,
		Position:     req.Position,
	})
	if err != nil {
		c.Error(err)
		return
	}

	h.drafts.Clear(c.Request.Context(), ownerID, "resume."+string(kind))
	c.JSON(http.StatusCreated, section)
}

func (h *ResumeHandler) ListSections(c *gin.Context) {
	ownerID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("user information not found"))
		return
	}
	kind := resume.SectionKind(c.Param("kind"))

	sections, err := h.useCase.ListSections(c.Request.Context(), ownerID, kind)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

func (h *ResumeHandler) UpdateSection(c *gin.Context) {
	ownerID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("user information not found"))
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req ResumeSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	section, err := h.useCase.UpdateSection(c.Request.Context(), resumeUC.UpdateSectionInput{
		ID:           id,
		OwnerID:      ownerID,
		Title:        req.Title,
		Organization: req.Organization,
		Description:  req.Description,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Fields:       req.Fields,
		Position:     req.Position,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, section)
}

func (h *ResumeHandler) DeleteSection(c *gin.Context) {
	ownerID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("user information not found"))
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.useCase.DeleteSection(c.Request.Context(), id, ownerID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Completeness

func (h *ResumeHandler) GetCompleteness(c *gin.Context) {
	ownerID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("user information not found"))
		return
	}
	output, err := h.useCase.Completeness(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output)
}

// Skill suggestions

// SuggestSkills filters the static candidate catalog against the token being
// typed. 'q' is the raw comma-delimited input buffer; only the segment after
// the last comma drives the match.
func (h *ResumeHandler) SuggestSkills(c *gin.Context) {
	category := skills.Category(c.DefaultQuery("category", string(skills.CategoryTechnical)))
	suggestions := h.catalog.Suggest(c.Query("q"), category)
	if suggestions == nil {
		suggestions = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// Drafts

func (h *ResumeHandler) SaveDraft(c *gin.Context) {
	ownerID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("user information not found"))
		return
	}
	var raw json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body", err))
		return
	}

	if err := h.drafts.Save(c.Request.Context(), ownerID, c.Param("slot"), raw); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AutosaveDraft queues a debounced write; the store is only hit once the
// slot has been quiet for the configured delay. Responds 202, not 204: the
// draft is not persisted yet when the response goes out.
func (h *ResumeHandler) AutosaveDraft(c *gin.Context) {
	ownerID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("user information not found"))
		return
	}
	var raw json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body", err))
		return
	}

	if err := h.drafts.Autosave(ownerID, c.Param("slot"), raw); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusAccepted)
}

func (h *ResumeHandler) GetDraft(c *gin.Context) {
	ownerID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("user information not found"))
		return
	}
	raw, found, err := h.drafts.Load(c.Request.Context(), ownerID, c.Param("slot"))
	if err != nil {
		c.Error(err)
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": true, "draft": raw})
}

func (h *ResumeHandler) ClearDraft(c *gin.Context) {
	ownerID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("user information not found"))
		return
	}
	if err := h.drafts.Clear(c.Request.Context(), ownerID, c.Param("slot")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AI generation

func (h *ResumeHandler) GenerateResume(c *gin.Context) {
	ownerID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("user information not found"))
		return
	}
	var req GenerateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	generated, err := h.useCase.Generate(c.Request.Context(), resumeUC.GenerateInput{
		OwnerID:    ownerID,
		TargetRole: req.TargetRole,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, generated)
}
