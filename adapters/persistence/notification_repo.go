package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khanhngo/campus-hub/internal/domain/notification"
	"github.com/khanhngo/campus-hub/internal/domain/user"
	"github.com/khanhngo/campus-hub/pkg/apperror"
	"github.com/khanhngo/campus-hub/pkg/logger"
)

type postgresNotificationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresNotificationRepo(db *pgxpool.Pool, logger logger.Logger) notification.Repository {
	return &postgresNotificationRepo{db: db, logger: logger}
}

func (r *postgresNotificationRepo) Save(ctx context.Context, n *notification.Notification) error {
	targetBytes, err := json.Marshal(n.Target)
	if err != nil {
		return apperror.NewInternal("failed to marshal notification target", err)
	}

	query := `
		INSERT INTO notifications (id, sender_id, title, body, target, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = r.db.Exec(ctx, query, n.ID, n.SenderID, n.Title, n.Body, targetBytes, n.CreatedAt)
	if err != nil {
		return apperror.NewInternal("failed to insert notification", err)
	}
	return nil
}

func (r *postgresNotificationRepo) FindByID(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	query := `
		SELECT id, sender_id, title, body, target, created_at
		FROM notifications WHERE id = $1
	`
	n := &notification.Notification{}
	var targetBytes []byte

	err := r.db.QueryRow(ctx, query, id).Scan(&n.ID, &n.SenderID, &n.Title, &n.Body, &targetBytes, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notification.ErrNotificationNotFound
		}
		return nil, apperror.NewInternal("failed to query notification", err)
	}

	if err := json.Unmarshal(targetBytes, &n.Target); err != nil {
		r.logger.Warn("Failed to unmarshal notification target", zap.String("id", id.String()), zap.Error(err))
	}
	return n, nil
}

// ResolveRecipients expands a target into user ids with one dynamically
// built query. Explicit ids short-circuit the structural filters.
func (r *postgresNotificationRepo) ResolveRecipients(ctx context.Context, target notification.Target) ([]uuid.UUID, error) {
	builder := psql.Select("id").From("users")

	if len(target.ExplicitUserIDs) > 0 {
		builder = builder.Where(sq.Eq{"id": target.ExplicitUserIDs})
	} else {
		// Structural filters only reach students and staff, never other
		// admins, unless they were targeted explicitly.
		builder = builder.Where(sq.NotEq{"role": []string{user.RoleSuperAdmin, user.RoleAdmin}})
		if target.CollegeID != nil {
			builder = builder.Where(sq.Eq{"college_id": *target.CollegeID})
		}
		if target.DepartmentID != nil {
			builder = builder.Where(sq.Eq{"department_id": *target.DepartmentID})
		}
		if target.SectionID != nil {
			builder = builder.Where(sq.Eq{"section_id": *target.SectionID})
		}
		if target.Year != nil {
			builder = builder.Where(sq.Eq{"year": *target.Year})
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build recipient query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to resolve recipients", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, apperror.NewInternal("failed to scan recipient id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating recipient rows", err)
	}
	return ids, nil
}

func (r *postgresNotificationRepo) FanOut(ctx context.Context, notificationID uuid.UUID, userIDs []uuid.UUID) error {
	if len(userIDs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO notification_deliveries (notification_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (notification_id, user_id) DO NOTHING
	`
	for _, userID := range userIDs {
		batch.Queue(query, notificationID, userID)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range userIDs {
		if _, err := results.Exec(); err != nil {
			return apperror.NewInternal("failed to write notification delivery", err)
		}
	}
	return nil
}

func (r *postgresNotificationRepo) ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*notification.Inbox, error) {
	query := `
		SELECT n.id, n.sender_id, n.title, n.body, n.target, n.created_at, d.read_at
		FROM notification_deliveries d
		JOIN notifications n ON n.id = d.notification_id
		WHERE d.user_id = $1
		ORDER BY n.created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, apperror.NewInternal("failed to list notifications", err)
	}
	defer rows.Close()

	inbox := make([]*notification.Inbox, 0)
	for rows.Next() {
		entry := &notification.Inbox{}
		var targetBytes []byte
		if err := rows.Scan(
			&entry.Notification.ID, &entry.Notification.SenderID,
			&entry.Notification.Title, &entry.Notification.Body,
			&targetBytes, &entry.Notification.CreatedAt, &entry.ReadAt,
		); err != nil {
			return nil, apperror.NewInternal("failed to scan inbox row", err)
		}
		if err := json.Unmarshal(targetBytes, &entry.Notification.Target); err != nil {
			r.logger.Warn("Failed to unmarshal notification target", zap.Error(err))
		}
		inbox = append(inbox, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating inbox rows", err)
	}
	return inbox, nil
}

func (r *postgresNotificationRepo) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	query := `
		UPDATE notification_deliveries
		SET read_at = NOW()
		WHERE notification_id = $1 AND user_id = $2 AND read_at IS NULL
	`
	tag, err := r.db.Exec(ctx, query, notificationID, userID)
	if err != nil {
		return apperror.NewInternal("failed to mark notification read", err)
	}
	if tag.RowsAffected() == 0 {
		// Either unknown pair or already read; both are fine for the caller.
		r.logger.Info("MarkRead affected no rows", zap.String("notification_id", notificationID.String()))
	}
	return nil
}
