// Package models defines the identity records the session layer works with:
// donors and NGOs, the signup form, and partial profile updates.
package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/medmate/medmate/internal/optional"
	"github.com/medmate/medmate/internal/timex"
)

// Role classifies an identity. It is fixed at signup.
type Role string

const (
	RoleDonor Role = "donor"
	RoleNGO   Role = "ngo"
)

var (
	ErrUnknownRole     = errors.New("unknown role")
	ErrInvalidIdentity = errors.New("invalid identity")
)

func (r Role) Valid() bool {
	return r == RoleDonor || r == RoleNGO
}

// Title is the display form used in badges and prompts.
func (r Role) Title() string {
	switch r {
	case RoleDonor:
		return "Donor"
	case RoleNGO:
		return "NGO"
	default:
		return string(r)
	}
}

// ParseRole accepts "donor" or "ngo" in any case.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return r, nil
}

// Identity is a registered donor or NGO. Its JSON form is the persisted
// session snapshot.
type Identity struct {
	ID           string                 `json:"id"`
	Email        string                 `json:"email"`
	Name         string                 `json:"name"`
	Role         Role                   `json:"role"`
	Phone        optional.Value[string] `json:"phone,omitzero"`
	Address      optional.Value[string] `json:"address,omitzero"`
	ProfileImage optional.Value[string] `json:"profileImage,omitzero"`
	Verified     bool                   `json:"verified"`
	CreatedAt    time.Time              `json:"createdAt"`
}

// identityAlias drops Identity's methods so the JSON hooks below can reuse
// the default encoding for every field but createdAt.
type identityAlias Identity

func (i Identity) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		identityAlias
		CreatedAt string `json:"createdAt"`
	}{
		identityAlias: identityAlias(i),
		CreatedAt:     timex.FormatTimestamp(i.CreatedAt),
	})
}

func (i *Identity) UnmarshalJSON(data []byte) error {
	aux := struct {
		*identityAlias
		CreatedAt string `json:"createdAt"`
	}{identityAlias: (*identityAlias)(i)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.CreatedAt == "" {
		i.CreatedAt = time.Time{}
		return nil
	}
	ts, err := timex.ParseTimestamp(aux.CreatedAt)
	if err != nil {
		return err
	}
	i.CreatedAt = ts
	return nil
}

// Validate checks the fields a session cannot do without.
func (i Identity) Validate() error {
	switch {
	case i.ID == "":
		return fmt.Errorf("%w: empty id", ErrInvalidIdentity)
	case i.Email == "":
		return fmt.Errorf("%w: empty email", ErrInvalidIdentity)
	case !i.Role.Valid():
		return fmt.Errorf("%w: role %q", ErrInvalidIdentity, i.Role)
	}
	return nil
}
