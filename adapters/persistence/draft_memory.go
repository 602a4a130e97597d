package persistence

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"github.com/khanhngo/campus-hub/internal/domain/draft"
)

type memoryDraftStore struct {
	mu     sync.RWMutex
	drafts map[string][]byte
}

// NewMemoryDraftStore is the process-local draft store, used in tests and
// when no Redis is configured. Values are kept serialized so Load returns an
// independent copy, matching the Redis-backed behavior.
func NewMemoryDraftStore() draft.Store {
	return &memoryDraftStore{drafts: make(map[string][]byte)}
}

func (s *memoryDraftStore) Save(_ context.Context, ownerID uuid.UUID, slot string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.drafts[draftKey(ownerID, slot)] = payload
	s.mu.Unlock()
}

func (s *memoryDraftStore) Load(_ context.Context, ownerID uuid.UUID, slot string, dest any) bool {
	s.mu.RLock()
	payload, ok := s.drafts[draftKey(ownerID, slot)]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	return json.Unmarshal(payload, dest) == nil
}

func (s *memoryDraftStore) Clear(_ context.Context, ownerID uuid.UUID, slot string) {
	s.mu.Lock()
	delete(s.drafts, draftKey(ownerID, slot))
	s.mu.Unlock()
}
