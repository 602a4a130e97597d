package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khanhngo/campus-hub/internal/domain/resume"
	"github.com/khanhngo/campus-hub/pkg/apperror"
	"github.com/khanhngo/campus-hub/pkg/logger"
)

type postgresResumeRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

// NewPostgresResumeRepo serves both the profile and the section collections;
// they live in one repository because every resume read touches both.
func NewPostgresResumeRepo(db *pgxpool.Pool, logger logger.Logger) (resume.ProfileRepository, resume.SectionRepository) {
	r := &postgresResumeRepo{db: db, logger: logger}
	return r, r
}

func (r *postgresResumeRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*resume.Profile, error) {
	query := `
		SELECT owner_id, full_name, email, phone, headline, summary, address, links, updated_at
		FROM resume_profiles
		WHERE owner_id = $1
	`
	p := &resume.Profile{}
	var linksBytes []byte

	err := r.db.QueryRow(ctx, query, ownerID).Scan(
		&p.OwnerID, &p.FullName, &p.Email, &p.Phone,
		&p.Headline, &p.Summary, &p.Address, &linksBytes, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Missing profile reads as an empty one; it is created on first save.
			return &resume.Profile{OwnerID: ownerID, Links: map[string]string{}}, nil
		}
		return nil, apperror.NewInternal("failed to query resume profile", err)
	}

	if err := json.Unmarshal(linksBytes, &p.Links); err != nil {
		r.logger.Warn("Failed to unmarshal resume links", zap.String("owner_id", ownerID.String()), zap.Error(err))
		p.Links = map[string]string{}
	}
	return p, nil
}

func (r *postgresResumeRepo) Upsert(ctx context.Context, p *resume.Profile) error {
	linksBytes, err := json.Marshal(p.Links)
	if err != nil {
		return apperror.NewInternal("failed to marshal resume links", err)
	}

	query := `
		INSERT INTO resume_profiles (owner_id, full_name, email, phone, headline, summary, address, links, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (owner_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			headline = EXCLUDED.headline,
			summary = EXCLUDED.summary,
			address = EXCLUDED.address,
			links = EXCLUDED.links,
			updated_at = NOW()
	`
	_, err = r.db.Exec(ctx, query,
		p.OwnerID, p.FullName, p.Email, p.Phone,
		p.Headline, p.Summary, p.Address, linksBytes, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to upsert resume profile", err)
	}
	return nil
}

const sectionColumns = `id, owner_id, kind, title, organization, description, start_date, end_date, fields, position, created_at, updated_at`

func (r *postgresResumeRepo) scanSection(row pgx.Row) (*resume.Section, error) {
	s := &resume.Section{}
	var fieldsBytes []byte

	err := row.Scan(
		&s.ID, &s.OwnerID, &s.Kind, &s.Title, &s.Organization, &s.Description,
		&s.StartDate, &s.EndDate, &fieldsBytes, &s.Position, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, resume.ErrSectionNotFound
		}
		return nil, fmt.Errorf("failed to scan resume section row: %w", err)
	}

	if err := json.Unmarshal(fieldsBytes, &s.Fields); err != nil {
		r.logger.Warn("Failed to unmarshal section fields", zap.String("id", s.ID.String()), zap.Error(err))
		s.Fields = map[string]any{}
	}
	return s, nil
}

func (r *postgresResumeRepo) Save(ctx context.Context, s *resume.Section) error {
	fieldsBytes, err := json.Marshal(s.Fields)
	if err != nil {
		return apperror.NewInternal("failed to marshal section fields", err)
	}

	query := `
		INSERT INTO resume_sections (` + sectionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err = r.db.Exec(ctx, query,
		s.ID, s.OwnerID, s.Kind, s.Title, s.Organization, s.Description,
		s.StartDate, s.EndDate, fieldsBytes, s.Position, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to insert resume section", err)
	}
	return nil
}

func (r *postgresResumeRepo) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*resume.Section, error) {
	query := `SELECT ` + sectionColumns + ` FROM resume_sections WHERE id = $1 AND owner_id = $2`
	return r.scanSection(r.db.QueryRow(ctx, query, id, ownerID))
}

func (r *postgresResumeRepo) ListByOwnerAndKind(ctx context.Context, ownerID uuid.UUID, kind resume.SectionKind) ([]*resume.Section, error) {
	query := `
		SELECT ` + sectionColumns + `
		FROM resume_sections
		WHERE owner_id = $1 AND kind = $2
		ORDER BY position, created_at
	`
	rows, err := r.db.Query(ctx, query, ownerID, kind)
	if err != nil {
		return nil, apperror.NewInternal("failed to list resume sections", err)
	}
	defer rows.Close()

	sections := make([]*resume.Section, 0)
	for rows.Next() {
		s := &resume.Section{}
		var fieldsBytes []byte
		if err := rows.Scan(
			&s.ID, &s.OwnerID, &s.Kind, &s.Title, &s.Organization, &s.Description,
			&s.StartDate, &s.EndDate, &fieldsBytes, &s.Position, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, apperror.NewInternal("failed to scan resume section row", err)
		}
		if err := json.Unmarshal(fieldsBytes, &s.Fields); err != nil {
			s.Fields = map[string]any{}
		}
		sections = append(sections, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating resume section rows", err)
	}
	return sections, nil
}

func (r *postgresResumeRepo) CountByKind(ctx context.Context, ownerID uuid.UUID) (map[resume.SectionKind]int, error) {
	query := `
		SELECT kind, COUNT(*)
		FROM resume_sections
		WHERE owner_id = $1
		GROUP BY kind
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, apperror.NewInternal("failed to count resume sections", err)
	}
	defer rows.Close()

	counts := make(map[resume.SectionKind]int)
	for rows.Next() {
		var kind resume.SectionKind
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, apperror.NewInternal("failed to scan section count", err)
		}
		counts[kind] = n
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating section counts", err)
	}
	return counts, nil
}

func (r *postgresResumeRepo) Update(ctx context.Context, s *resume.Section) error {
	fieldsBytes, err := json.Marshal(s.Fields)
	if err != nil {
		return apperror.NewInternal("failed to marshal section fields", err)
	}

	query := `
		UPDATE resume_sections
		SET title = $3, organization = $4, description = $5,
		    start_date = $6, end_date = $7, fields = $8, position = $9, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
	`
	tag, err := r.db.Exec(ctx, query,
		s.ID, s.OwnerID, s.Title, s.Organization, s.Description,
		s.StartDate, s.EndDate, fieldsBytes, s.Position,
	)
	if err != nil {
		return apperror.NewInternal("failed to update resume section", err)
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrSectionNotFound
	}
	return nil
}

func (r *postgresResumeRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM resume_sections WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete resume section", err)
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrSectionNotFound
	}
	return nil
}
