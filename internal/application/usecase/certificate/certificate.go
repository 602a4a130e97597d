package certificate

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khanhngo/campus-hub/internal/application/service"
	"github.com/khanhngo/campus-hub/internal/domain/certificate"
	"github.com/khanhngo/campus-hub/pkg/apperror"
	"github.com/khanhngo/campus-hub/pkg/logger"
)

type CertificateUseCase struct {
	repo     certificate.Repository
	uploader service.Uploader
	logger   logger.Logger
}

func NewCertificateUseCase(repo certificate.Repository, uploader service.Uploader, log logger.Logger) *CertificateUseCase {
	return &CertificateUseCase{repo: repo, uploader: uploader, logger: log}
}

type UploadInput struct {
	OwnerID uuid.UUID
	Title   string
	Issuer  string
	File    io.Reader
}

// Upload stores the document and records a pending certificate waiting for
// faculty review.
func (uc *CertificateUseCase) Upload(ctx context.Context, in UploadInput) (*certificate.Certificate, error) {
	id := uuid.New()
	publicID := fmt.Sprintf("certificates/%s/%s", in.OwnerID, id)

	fileURL, err := uc.uploader.Upload(ctx, in.File, "certificates", publicID)
	if err != nil {
		return nil, apperror.NewUpstream("media storage", "failed to upload certificate file", err)
	}

	now := time.Now().UTC()
	c := &certificate.Certificate{
		ID:           id,
		OwnerID:      in.OwnerID,
		Title:        in.Title,
		Issuer:       in.Issuer,
		FileURL:      fileURL,
		StoragePubID: publicID,
		Status:       certificate.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := c.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("certificate validation failed", err)
	}
	if err := uc.repo.Save(ctx, c); err != nil {
		return nil, err
	}

	uc.logger.Info("Certificate uploaded",
		zap.String("certificate_id", c.ID.String()),
		zap.String("owner_id", c.OwnerID.String()),
	)
	return c, nil
}

func (uc *CertificateUseCase) Get(ctx context.Context, id uuid.UUID) (*certificate.Certificate, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if err == certificate.ErrCertificateNotFound {
			return nil, apperror.NewNotFound("certificate", id.String())
		}
		return nil, err
	}
	return c, nil
}

func (uc *CertificateUseCase) ListByOwner(ctx context.Context, ownerID uuid.UUID, page, limit int) ([]*certificate.Certificate, error) {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	return uc.repo.ListByOwner(ctx, ownerID, limit, (page-1)*limit)
}

// ListPending is the reviewer queue.
func (uc *CertificateUseCase) ListPending(ctx context.Context, page, limit int) ([]*certificate.Certificate, error) {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	return uc.repo.ListByStatus(ctx, certificate.StatusPending, limit, (page-1)*limit)
}

type ReviewInput struct {
	CertificateID uuid.UUID
	ReviewerID    uuid.UUID
	Approve       bool
	Comment       string
}

func (uc *CertificateUseCase) Review(ctx context.Context, in ReviewInput) (*certificate.Certificate, error) {
	c, err := uc.Get(ctx, in.CertificateID)
	if err != nil {
		return nil, err
	}

	if err := c.Review(in.ReviewerID, in.Approve, in.Comment); err != nil {
		if err == certificate.ErrAlreadyReviewed {
			return nil, apperror.NewConflict("certificate", "status", c.Status)
		}
		return nil, apperror.NewInvalidInput("certificate review failed", err)
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	uc.logger.Info("Certificate reviewed",
		zap.String("certificate_id", c.ID.String()),
		zap.String("status", c.Status),
	)
	return c, nil
}

// Delete removes the record and best-effort deletes the stored file. A
// storage delete failure only orphans a blob, so it is logged and ignored.
func (uc *CertificateUseCase) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	c, err := uc.Get(ctx, id)
	if err != nil {
		return err
	}
	if c.OwnerID != ownerID {
		return apperror.NewPermissionDenied("certificate belongs to another user")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		if err == certificate.ErrCertificateNotFound {
			return apperror.NewNotFound("certificate", id.String())
		}
		return err
	}
	if c.StoragePubID != "" {
		if err := uc.uploader.Delete(ctx, c.StoragePubID); err != nil {
			uc.logger.Warn("Failed to delete certificate file from storage",
				zap.String("public_id", c.StoragePubID),
				zap.Error(err),
			)
		}
	}
	return nil
}
