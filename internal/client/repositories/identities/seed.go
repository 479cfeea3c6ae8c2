package identities

import (
	"time"

	"github.com/medmate/medmate/internal/client/models"
	"github.com/medmate/medmate/internal/cryptox"
	"github.com/medmate/medmate/internal/optional"
)

// DemoPassword is the password of the seeded demo accounts.
const DemoPassword = "password123"

// Hasher issues credentials for seeded identities.
type Hasher interface {
	Hash(password []byte) cryptox.Credential
}

// DemoIdentities are the two verified accounts every fresh directory starts
// with.
func DemoIdentities() []models.Identity {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []models.Identity{
		{
			ID:        "1",
			Email:     "donor@example.com",
			Name:      "John Donor",
			Role:      models.RoleDonor,
			Phone:     optional.Some("+1234567890"),
			Address:   optional.Some("123 Main St, City"),
			Verified:  true,
			CreatedAt: created,
		},
		{
			ID:        "2",
			Email:     "ngo@example.com",
			Name:      "Hope Foundation",
			Role:      models.RoleNGO,
			Phone:     optional.Some("+0987654321"),
			Address:   optional.Some("456 NGO Street, City"),
			Verified:  true,
			CreatedAt: created,
		},
	}
}

// NewSeededRepository returns a MemoryRepository holding the demo identities,
// each with its own salted credential for DemoPassword.
func NewSeededRepository(h Hasher) *MemoryRepository {
	demo := DemoIdentities()
	seed := make([]Record, len(demo))
	for i, id := range demo {
		seed[i] = Record{Identity: id, Credential: h.Hash([]byte(DemoPassword))}
	}
	return NewMemoryRepository(seed...)
}
