package models

import (
	"errors"
	"strings"

	"github.com/medmate/medmate/internal/optional"
)

var ErrEmptyName = errors.New("name must not be empty")

// ProfileUpdate is a partial update of the mutable identity fields. It has
// no id, email, role, createdAt or verified field, so those cannot be
// changed through it. A zero ProfileUpdate changes nothing.
type ProfileUpdate struct {
	Name         optional.Patch[string]
	Phone        optional.Patch[string]
	Address      optional.Patch[string]
	ProfileImage optional.Patch[string]
}

// IsEmpty reports whether every field is Keep.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Name.Op() == optional.OpKeep &&
		u.Phone.Op() == optional.OpKeep &&
		u.Address.Op() == optional.OpKeep &&
		u.ProfileImage.Op() == optional.OpKeep
}

// ApplyTo returns id with u merged in. Name is required, so clearing it or
// setting it blank fails with ErrEmptyName.
func (u ProfileUpdate) ApplyTo(id Identity) (Identity, error) {
	switch u.Name.Op() {
	case optional.OpClear:
		return id, ErrEmptyName
	case optional.OpSet:
		name, _ := u.Name.Value()
		if strings.TrimSpace(name) == "" {
			return id, ErrEmptyName
		}
		id.Name = name
	}

	id.Phone = u.Phone.Apply(id.Phone)
	id.Address = u.Address.Apply(id.Address)
	id.ProfileImage = u.ProfileImage.Apply(id.ProfileImage)
	return id, nil
}
