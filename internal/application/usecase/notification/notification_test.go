package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanhngo/campus-hub/adapters/event"
	"github.com/khanhngo/campus-hub/internal/domain/notification"
	"github.com/khanhngo/campus-hub/pkg/apperror"
	"github.com/khanhngo/campus-hub/pkg/logger"
)

type fakeRepo struct {
	recipients []uuid.UUID
	resolveErr error
	saved      []*notification.Notification
}

func (f *fakeRepo) Save(ctx context.Context, n *notification.Notification) error {
	f.saved = append(f.saved, n)
	return nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	for _, n := range f.saved {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, notification.ErrNotificationNotFound
}

func (f *fakeRepo) ResolveRecipients(ctx context.Context, target notification.Target) ([]uuid.UUID, error) {
	return f.recipients, f.resolveErr
}

func (f *fakeRepo) FanOut(ctx context.Context, notificationID uuid.UUID, userIDs []uuid.UUID) error {
	return nil
}

func (f *fakeRepo) ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*notification.Inbox, error) {
	return nil, nil
}

func (f *fakeRepo) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	return nil
}

type fakePublisher struct {
	published []event.NotificationEventPayload
	err       error
}

func (f *fakePublisher) PublishNotification(ctx context.Context, payload event.NotificationEventPayload) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, payload)
	return nil
}

func sectionTarget() notification.Target {
	sectionID := uuid.New()
	return notification.Target{SectionID: &sectionID}
}

func TestNotificationCreate_PublishesResolvedRecipients(t *testing.T) {
	recipients := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	repo := &fakeRepo{recipients: recipients}
	pub := &fakePublisher{}
	uc := NewNotificationUseCase(repo, pub, logger.NewNop())

	out, err := uc.Create(context.Background(), CreateInput{
		SenderID: uuid.New(),
		Title:    "Exam schedule",
		Body:     "Finals start Monday.",
		Target:   sectionTarget(),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, out.RecipientCount)

	require.Len(t, repo.saved, 1)
	require.Len(t, pub.published, 1)
	assert.Equal(t, repo.saved[0].ID, pub.published[0].NotificationID)
	assert.Equal(t, recipients, pub.published[0].RecipientIDs)
}

func TestNotificationCreate_RejectsEmptyTarget(t *testing.T) {
	repo := &fakeRepo{recipients: []uuid.UUID{uuid.New()}}
	uc := NewNotificationUseCase(repo, &fakePublisher{}, logger.NewNop())

	_, err := uc.Create(context.Background(), CreateInput{
		SenderID: uuid.New(),
		Title:    "Hello",
		Body:     "World",
		Target:   notification.Target{},
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.ErrorIs(t, appErr.BaseError, apperror.ErrInvalidInput)
	assert.Empty(t, repo.saved)
}

func TestNotificationCreate_RejectsWhenNoRecipientsMatch(t *testing.T) {
	repo := &fakeRepo{recipients: nil}
	uc := NewNotificationUseCase(repo, &fakePublisher{}, logger.NewNop())

	_, err := uc.Create(context.Background(), CreateInput{
		SenderID: uuid.New(),
		Title:    "Hello",
		Body:     "World",
		Target:   sectionTarget(),
	})
	require.Error(t, err)
	assert.Empty(t, repo.saved)
}

func TestNotificationCreate_SurvivesPublishFailure(t *testing.T) {
	repo := &fakeRepo{recipients: []uuid.UUID{uuid.New()}}
	pub := &fakePublisher{err: errors.New("broker down")}
	uc := NewNotificationUseCase(repo, pub, logger.NewNop())

	out, err := uc.Create(context.Background(), CreateInput{
		SenderID: uuid.New(),
		Title:    "Hello",
		Body:     "World",
		Target:   sectionTarget(),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.RecipientCount)
	assert.Len(t, repo.saved, 1)
}
