package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/medmate/medmate/internal/client/models"
)

// SnapshotKey is the metadata key holding the active identity.
const SnapshotKey = "medmate_user"

var ErrCorruptSnapshot = errors.New("corrupt session snapshot")

func encodeSnapshot(id models.Identity) ([]byte, error) {
	return json.Marshal(id)
}

// decodeSnapshot parses and validates a stored identity. Any failure is
// reported as ErrCorruptSnapshot.
func decodeSnapshot(raw []byte) (models.Identity, error) {
	var id models.Identity
	if err := json.Unmarshal(raw, &id); err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	if err := id.Validate(); err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	return id, nil
}
