package draft

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/khanhngo/campus-hub/internal/domain/draft"
	"github.com/khanhngo/campus-hub/pkg/apperror"
)

// Slots the resume editor is allowed to stash drafts into. Anything else is
// rejected so the store cannot be used as arbitrary per-user storage.
var allowedSlots = map[string]bool{
	"resume.profile":         true,
	"resume.education":       true,
	"resume.projects":        true,
	"resume.skills":          true,
	"resume.certifications":  true,
	"resume.achievements":    true,
	"resume.extracurricular": true,
	"resume.hobbies":         true,
}

func ValidSlot(slot string) bool {
	return allowedSlots[slot]
}

type DraftUseCase struct {
	store     draft.Store
	autosaver *Autosaver
}

func NewDraftUseCase(store draft.Store, quiet time.Duration) *DraftUseCase {
	return &DraftUseCase{store: store, autosaver: NewAutosaver(store, quiet)}
}

// Save accepts any JSON object; the store is opaque to the payload shape.
// A direct save supersedes any debounced one still in flight.
func (uc *DraftUseCase) Save(ctx context.Context, ownerID uuid.UUID, slot string, value json.RawMessage) error {
	if !ValidSlot(slot) {
		return apperror.NewInvalidInput("unknown draft slot", nil)
	}
	uc.autosaver.Cancel(ownerID, slot)
	uc.store.Save(ctx, ownerID, slot, value)
	return nil
}

// Autosave queues a debounced write. The store is only hit once the slot has
// been quiet for the configured delay, so rapid edits collapse to one save.
func (uc *DraftUseCase) Autosave(ownerID uuid.UUID, slot string, value json.RawMessage) error {
	if !ValidSlot(slot) {
		return apperror.NewInvalidInput("unknown draft slot", nil)
	}
	uc.autosaver.Touch(ownerID, slot, value)
	return nil
}

// Load returns the raw draft and whether one existed. Absence is not an
// error; the client falls back to live data.
func (uc *DraftUseCase) Load(ctx context.Context, ownerID uuid.UUID, slot string) (json.RawMessage, bool, error) {
	if !ValidSlot(slot) {
		return nil, false, apperror.NewInvalidInput("unknown draft slot", nil)
	}
	var raw json.RawMessage
	if !uc.store.Load(ctx, ownerID, slot, &raw) {
		return nil, false, nil
	}
	return raw, true, nil
}

// Clear drops the stored draft and any debounced write still pending, so a
// submitted form cannot be resurrected by a late autosave.
func (uc *DraftUseCase) Clear(ctx context.Context, ownerID uuid.UUID, slot string) error {
	if !ValidSlot(slot) {
		return apperror.NewInvalidInput("unknown draft slot", nil)
	}
	uc.autosaver.Cancel(ownerID, slot)
	uc.store.Clear(ctx, ownerID, slot)
	return nil
}

// Close stops the background autosaver. Pending values are discarded.
func (uc *DraftUseCase) Close() {
	uc.autosaver.Close()
}
