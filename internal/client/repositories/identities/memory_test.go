package identities

import (
	"context"
	"testing"

	"github.com/medmate/medmate/internal/client/models"
	"github.com/medmate/medmate/internal/common"
	"github.com/medmate/medmate/internal/cryptox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHasher struct{ calls int }

func (h *stubHasher) Hash(password []byte) cryptox.Credential {
	h.calls++
	return cryptox.Credential{Salt: []byte{byte(h.calls)}, Verifier: append([]byte(nil), password...)}
}

func TestSeededRepository_HasDemoAccounts(t *testing.T) {
	h := &stubHasher{}
	r := NewSeededRepository(h)
	ctx := context.Background()

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 2, h.calls, "one credential per identity")

	donor, err := r.FindByEmailAndRole(ctx, "donor@example.com", models.RoleDonor)
	require.NoError(t, err)
	assert.Equal(t, "John Donor", donor.Identity.Name)
	assert.True(t, donor.Identity.Verified)

	ngo, err := r.FindByEmail(ctx, "ngo@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleNGO, ngo.Identity.Role)
	assert.NotEqual(t, donor.Credential.Salt, ngo.Credential.Salt)
}

func TestFindByEmailAndRole_RoleMustMatch(t *testing.T) {
	r := NewSeededRepository(&stubHasher{})
	_, err := r.FindByEmailAndRole(context.Background(), "donor@example.com", models.RoleNGO)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFindByEmail_IsCaseSensitive(t *testing.T) {
	r := NewSeededRepository(&stubHasher{})
	_, err := r.FindByEmail(context.Background(), "Donor@Example.com")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestAdd_DuplicateEmailAcrossRoles(t *testing.T) {
	r := NewSeededRepository(&stubHasher{})
	ctx := context.Background()

	err := r.Add(ctx, Record{Identity: models.Identity{ID: "x", Email: "donor@example.com", Role: models.RoleNGO}})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	list, _ := r.List(ctx)
	assert.Len(t, list, 2)
}

func TestAdd_ThenFind(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	rec := Record{Identity: models.Identity{ID: "abc", Email: "a@x.com", Role: models.RoleDonor}}
	require.NoError(t, r.Add(ctx, rec))

	got, err := r.FindByEmailAndRole(ctx, "a@x.com", models.RoleDonor)
	require.NoError(t, err)
	assert.Equal(t, "abc", got.Identity.ID)
}

func TestUpdate_KeepsCredential(t *testing.T) {
	r := NewSeededRepository(&stubHasher{})
	ctx := context.Background()

	before, err := r.FindByEmail(ctx, "ngo@example.com")
	require.NoError(t, err)

	changed := before.Identity
	changed.Name = "Hope Foundation Intl"
	require.NoError(t, r.Update(ctx, changed))

	after, err := r.FindByEmail(ctx, "ngo@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Hope Foundation Intl", after.Identity.Name)
	assert.Equal(t, before.Credential, after.Credential)
}

func TestUpdate_UnknownID(t *testing.T) {
	r := NewMemoryRepository()
	err := r.Update(context.Background(), models.Identity{ID: "ghost"})
	require.ErrorIs(t, err, common.ErrorNotFound)
}
