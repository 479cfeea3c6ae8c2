package cryptox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cheap keeps argon2 fast in tests; the derivation logic is the same.
var cheap = Params{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32}

func TestDeriveKey_Deterministic(t *testing.T) {
	password := []byte("password123")
	salt := []byte("fixed-salt")

	k1 := DeriveKey(password, salt, cheap)
	k2 := DeriveKey(password, salt, cheap)
	require.Len(t, k1, 32)
	if !bytes.Equal(k1, k2) {
		t.Errorf("expected same key for same inputs")
	}

	if bytes.Equal(k1, DeriveKey(password, []byte("other-salt"), cheap)) {
		t.Errorf("expected different keys for different salts")
	}
}

func TestMakeVerifier(t *testing.T) {
	v := MakeVerifier([]byte("key"))
	assert.Len(t, v, 32)
	assert.Equal(t, v, MakeVerifier([]byte("key")))
	assert.NotEqual(t, v, MakeVerifier([]byte("key2")))
}

func TestArgon2Hasher_HashAndVerify(t *testing.T) {
	h := &Argon2Hasher{Params: cheap}

	c := h.Hash([]byte("password123"))
	require.Len(t, c.Salt, SaltSize)
	require.Len(t, c.Verifier, 32)

	assert.True(t, h.Verify(c, []byte("password123")))
	assert.False(t, h.Verify(c, []byte("password124")))
	assert.False(t, h.Verify(c, nil))
}

func TestArgon2Hasher_SaltsAreUnique(t *testing.T) {
	h := &Argon2Hasher{Params: cheap}

	a := h.Hash([]byte("same"))
	b := h.Hash([]byte("same"))

	assert.NotEqual(t, a.Salt, b.Salt)
	assert.NotEqual(t, a.Verifier, b.Verifier)
}

func TestArgon2Hasher_EmptyCredentialNeverVerifies(t *testing.T) {
	h := &Argon2Hasher{Params: cheap}
	assert.False(t, h.Verify(Credential{}, []byte("")))
}

func TestNewArgon2Hasher_Defaults(t *testing.T) {
	assert.Equal(t, DefaultParams, NewArgon2Hasher().Params)
}
