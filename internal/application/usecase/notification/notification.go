package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khanhngo/campus-hub/adapters/event"
	"github.com/khanhngo/campus-hub/internal/domain/notification"
	"github.com/khanhngo/campus-hub/pkg/apperror"
	"github.com/khanhngo/campus-hub/pkg/logger"
)

// EventPublisher is the async fan-out channel. The notification row is saved
// first; a publish failure is logged and the user still gets a 201, the
// deliveries just arrive once the event is retried or replayed.
type EventPublisher interface {
	PublishNotification(ctx context.Context, payload event.NotificationEventPayload) error
}

type NotificationUseCase struct {
	repo      notification.Repository
	publisher EventPublisher
	logger    logger.Logger
}

func NewNotificationUseCase(repo notification.Repository, publisher EventPublisher, log logger.Logger) *NotificationUseCase {
	return &NotificationUseCase{repo: repo, publisher: publisher, logger: log}
}

type CreateInput struct {
	SenderID uuid.UUID
	Title    string
	Body     string
	Target   notification.Target
}

type CreateOutput struct {
	Notification *notification.Notification `json:"notification"`
	// RecipientCount is the audience size at send time.
	RecipientCount int `json:"recipient_count"`
}

func (uc *NotificationUseCase) Create(ctx context.Context, in CreateInput) (*CreateOutput, error) {
	n := &notification.Notification{
		ID:        uuid.New(),
		SenderID:  in.SenderID,
		Title:     in.Title,
		Body:      in.Body,
		Target:    in.Target,
		CreatedAt: time.Now().UTC(),
	}
	if err := n.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("notification validation failed", err)
	}

	recipients, err := uc.repo.ResolveRecipients(ctx, n.Target)
	if err != nil {
		return nil, err
	}
	if len(recipients) == 0 {
		return nil, apperror.NewInvalidInput("notification target matches no users", nil)
	}

	if err := uc.repo.Save(ctx, n); err != nil {
		return nil, err
	}

	payload := event.NotificationEventPayload{
		NotificationID: n.ID,
		RecipientIDs:   recipients,
	}
	if err := uc.publisher.PublishNotification(ctx, payload); err != nil {
		uc.logger.Error("Failed to publish notification event", err,
			zap.String("notification_id", n.ID.String()),
		)
	} else {
		uc.logger.Info("Notification queued for fan-out",
			zap.String("notification_id", n.ID.String()),
			zap.Int("recipients", len(recipients)),
		)
	}

	return &CreateOutput{Notification: n, RecipientCount: len(recipients)}, nil
}

func (uc *NotificationUseCase) Get(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	n, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if err == notification.ErrNotificationNotFound {
			return nil, apperror.NewNotFound("notification", id.String())
		}
		return nil, err
	}
	return n, nil
}

func (uc *NotificationUseCase) Inbox(ctx context.Context, userID uuid.UUID, page, limit int) ([]*notification.Inbox, error) {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	return uc.repo.ListForUser(ctx, userID, limit, (page-1)*limit)
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	if err := uc.repo.MarkRead(ctx, notificationID, userID); err != nil {
		if err == notification.ErrNotificationNotFound {
			return apperror.NewNotFound("notification", notificationID.String())
		}
		return err
	}
	return nil
}
