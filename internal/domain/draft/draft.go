package draft

import (
	"context"

	"github.com/google/uuid"
)

// Store is the keyed draft persistence facade. Drafts are a side channel,
// never the system of record: every operation is best-effort and none of
// them surface storage errors to the caller. A failed Save loses a draft, a
// failed or corrupt Load reports absence, and that is the whole failure
// model.
//
// At most one value exists per (owner, slot) pair; Save is last-write-wins.
type Store interface {
	// Save serializes value and stores it under the owner's slot.
	Save(ctx context.Context, ownerID uuid.UUID, slot string, value any)
	// Load deserializes the draft into dest and reports whether a usable
	// draft existed. Corrupt payloads count as absent.
	Load(ctx context.Context, ownerID uuid.UUID, slot string, dest any) bool
	// Clear removes the draft; no-op when absent.
	Clear(ctx context.Context, ownerID uuid.UUID, slot string)
}
