package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	certificateUC "github.com/khanhngo/campus-hub/internal/application/usecase/certificate"
	"github.com/khanhngo/campus-hub/pkg/apperror"
	"github.com/khanhngo/campus-hub/pkg/logger"
)

type CertificateHandler struct {
	useCase *certificateUC.CertificateUseCase
	logger  logger.Logger
}

func NewCertificateHandler(uc *certificateUC.CertificateUseCase, log logger.Logger) *CertificateHandler {
	return &CertificateHandler{useCase: uc, logger: log}
}

func (h *CertificateHandler) UploadCertificate(c *gin.Context) {
	ownerID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("user information not found"))
		return
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

	title := c.PostForm("title")
	if title == "" {
		title = fileHeader.Filename
	}

	cert, err := h.useCase.Upload(c.Request.Context(), certificateUC.UploadInput{
		OwnerID: ownerID,
		Title:   title,
		Issuer:  c.PostForm("issuer"),
		File:    file,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, cert)
}

func (h *CertificateHandler) ListMyCertificates(c *gin.Context) {
	ownerID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("user information not found"))
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	certs, err := h.useCase.ListByOwner(c.Request.Context(), ownerID, page, limit)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"certificates": certs})
}

func (h *CertificateHandler) ListPendingCertificates(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	certs, err := h.useCase.ListPending(c.Request.Context(), page, limit)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"certificates": certs})
}

func (h *CertificateHandler) ReviewCertificate(c *gin.Context) {
	reviewerID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("user information not found"))
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req ReviewCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	cert, err := h.useCase.Review(c.Request.Context(), certificateUC.ReviewInput{
		CertificateID: id,
		ReviewerID:    reviewerID,
		Approve:       req.Approve,
		Comment:       req.Comment,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, cert)
}

func (h *CertificateHandler) DeleteCertificate(c *gin.Context) {
	ownerID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("user information not found"))
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id, ownerID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
