// Package identities is the client's directory of registered donors and
// NGOs together with their password credentials.
package identities

import (
	"context"

	"github.com/medmate/medmate/internal/client/models"
	"github.com/medmate/medmate/internal/cryptox"
)

// Record is an identity and the credential that authenticates it.
type Record struct {
	Identity   models.Identity
	Credential cryptox.Credential
}

// Repository finds and stores identity records. Emails are unique across
// all roles and compared exactly as stored.
//
// Lookups that find nothing return common.ErrorNotFound; Add of a taken
// email returns common.ErrorAlreadyExists.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (Record, error)
	FindByEmailAndRole(ctx context.Context, email string, role models.Role) (Record, error)
	Add(ctx context.Context, rec Record) error
	Update(ctx context.Context, id models.Identity) error
	List(ctx context.Context) ([]models.Identity, error)
}
