package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/khanhngo/campus-hub/internal/domain/draft"
	"github.com/khanhngo/campus-hub/pkg/logger"
)

type redisDraftStore struct {
	client *redis.Client
	logger logger.Logger
}

// NewRedisDraftStore backs the draft facade with Redis. Losing a draft is
// non-fatal, so every failure path logs and degrades to "no draft" instead
// of returning an error.
func NewRedisDraftStore(client *redis.Client, logger logger.Logger) draft.Store {
	return &redisDraftStore{client: client, logger: logger}
}

func draftKey(ownerID uuid.UUID, slot string) string {
	return fmt.Sprintf("draft:%s:%s", ownerID, slot)
}

func (s *redisDraftStore) Save(ctx context.Context, ownerID uuid.UUID, slot string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("Draft save skipped, value not serializable", zap.String("slot", slot), zap.Error(err))
		return
	}
	// Drafts carry no TTL; they live until submit or cancel clears them.
	if err := s.client.Set(ctx, draftKey(ownerID, slot), payload, 0).Err(); err != nil {
		s.logger.Warn("Draft save failed", zap.String("slot", slot), zap.Error(err))
	}
}

func (s *redisDraftStore) Load(ctx context.Context, ownerID uuid.UUID, slot string, dest any) bool {
	payload, err := s.client.Get(ctx, draftKey(ownerID, slot)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("Draft load failed, treating as absent", zap.String("slot", slot), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		// Corrupt drafts read as absent and are dropped so they cannot
		// poison the next load.
		s.logger.Warn("Draft payload corrupt, discarding", zap.String("slot", slot), zap.Error(err))
		s.Clear(ctx, ownerID, slot)
		return false
	}
	return true
}

func (s *redisDraftStore) Clear(ctx context.Context, ownerID uuid.UUID, slot string) {
	if err := s.client.Del(ctx, draftKey(ownerID, slot)).Err(); err != nil {
		s.logger.Warn("Draft clear failed", zap.String("slot", slot), zap.Error(err))
	}
}
