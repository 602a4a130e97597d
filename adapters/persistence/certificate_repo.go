package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khanhngo/campus-hub/internal/domain/certificate"
	"github.com/khanhngo/campus-hub/pkg/apperror"
)

type postgresCertificateRepo struct {
	db *pgxpool.Pool
}

func NewPostgresCertificateRepo(db *pgxpool.Pool) certificate.Repository {
	return &postgresCertificateRepo{db: db}
}

const certificateColumns = `id, owner_id, title, issuer, file_url, storage_public_id, status, review_comment, reviewed_by, reviewed_at, created_at, updated_at`

func scanCertificate(row pgx.Row) (*certificate.Certificate, error) {
	c := &certificate.Certificate{}
	err := row.Scan(
		&c.ID, &c.OwnerID, &c.Title, &c.Issuer, &c.FileURL, &c.StoragePubID,
		&c.Status, &c.ReviewComment, &c.ReviewedBy, &c.ReviewedAt,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, certificate.ErrCertificateNotFound
		}
		return nil, fmt.Errorf("failed to scan certificate row: %w", err)
	}
	return c, nil
}

func (r *postgresCertificateRepo) Save(ctx context.Context, c *certificate.Certificate) error {
	query := `
		INSERT INTO certificates (` + certificateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.OwnerID, c.Title, c.Issuer, c.FileURL, c.StoragePubID,
		c.Status, c.ReviewComment, c.ReviewedBy, c.ReviewedAt,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to insert certificate", err)
	}
	return nil
}

func (r *postgresCertificateRepo) FindByID(ctx context.Context, id uuid.UUID) (*certificate.Certificate, error) {
	query := `SELECT ` + certificateColumns + ` FROM certificates WHERE id = $1`
	return scanCertificate(r.db.QueryRow(ctx, query, id))
}

func (r *postgresCertificateRepo) list(ctx context.Context, where string, arg any, limit, offset int) ([]*certificate.Certificate, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM certificates
		WHERE %s = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, certificateColumns, where)

	rows, err := r.db.Query(ctx, query, arg, limit, offset)
	if err != nil {
		return nil, apperror.NewInternal("failed to list certificates", err)
	}
	defer rows.Close()

	certificates := make([]*certificate.Certificate, 0)
	for rows.Next() {
		c := &certificate.Certificate{}
		if err := rows.Scan(
			&c.ID, &c.OwnerID, &c.Title, &c.Issuer, &c.FileURL, &c.StoragePubID,
			&c.Status, &c.ReviewComment, &c.ReviewedBy, &c.ReviewedAt,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, apperror.NewInternal("failed to scan certificate row", err)
		}
		certificates = append(certificates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating certificate rows", err)
	}
	return certificates, nil
}

func (r *postgresCertificateRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*certificate.Certificate, error) {
	return r.list(ctx, "owner_id", ownerID, limit, offset)
}

func (r *postgresCertificateRepo) ListByStatus(ctx context.Context, status string, limit, offset int) ([]*certificate.Certificate, error) {
	return r.list(ctx, "status", status, limit, offset)
}

func (r *postgresCertificateRepo) Update(ctx context.Context, c *certificate.Certificate) error {
	query := `
		UPDATE certificates
		SET title = $2, issuer = $3, status = $4, review_comment = $5,
		    reviewed_by = $6, reviewed_at = $7, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, c.ID, c.Title, c.Issuer, c.Status, c.ReviewComment, c.ReviewedBy, c.ReviewedAt)
	if err != nil {
		return apperror.NewInternal("failed to update certificate", err)
	}
	if tag.RowsAffected() == 0 {
		return certificate.ErrCertificateNotFound
	}
	return nil
}

func (r *postgresCertificateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM certificates WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete certificate", err)
	}
	if tag.RowsAffected() == 0 {
		return certificate.ErrCertificateNotFound
	}
	return nil
}
