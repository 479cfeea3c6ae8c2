// Package services contains application services for the MedMate client.
// This file defines the authentication service: credential checks against
// the identity directory, registration and profile merges. It reports
// failures as sentinel errors; reducing them to a yes/no answer is left to
// the session layer.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/medmate/medmate/internal/client/models"
	"github.com/medmate/medmate/internal/client/repositories/identities"
	"github.com/medmate/medmate/internal/common"
	"github.com/medmate/medmate/internal/cryptox"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidSignup      = errors.New("invalid signup data")
	ErrInvalidProfile     = errors.New("invalid profile update")
)

// Hasher issues and checks password credentials.
type Hasher interface {
	Hash(password []byte) cryptox.Credential
	Verify(c cryptox.Credential, password []byte) bool
}

// AuthService defines the identity operations behind the session store.
//
// Contract:
//   - Authenticate: find the identity by email and role and verify the
//     password. Unknown email, wrong role and wrong password all return
//     ErrInvalidCredentials.
//   - Register: validate the form, reject a taken email with
//     ErrDuplicateEmail, store and return the new identity.
//   - UpdateProfile: merge a partial update into current and store it in
//     the directory when the identity is listed there.
type AuthService interface {
	Authenticate(ctx context.Context, email string, password []byte, role models.Role) (models.Identity, error)
	Register(ctx context.Context, data models.SignupData) (models.Identity, error)
	UpdateProfile(ctx context.Context, current models.Identity, update models.ProfileUpdate) (models.Identity, error)
}

type Option func(*authService)

// WithClock overrides the time source used for createdAt.
func WithClock(now func() time.Time) Option {
	return func(a *authService) { a.now = now }
}

// WithIDGenerator overrides how new identity IDs are minted.
func WithIDGenerator(newID func() string) Option {
	return func(a *authService) { a.newID = newID }
}

type authService struct {
	identities identities.Repository
	hasher     Hasher
	validate   *validator.Validate
	now        func() time.Time
	newID      func() string

	// decoy is verified when no identity matches, so a miss costs the same
	// key derivation as a wrong password.
	decoy cryptox.Credential
}

// NewAuthService constructs an AuthService over the given directory.
func NewAuthService(repo identities.Repository, hasher Hasher, opts ...Option) AuthService {
	a := &authService{
		identities: repo,
		hasher:     hasher,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.decoy = hasher.Hash(common.GenerateRandByteArray(16))
	return a
}

func (a *authService) Authenticate(ctx context.Context, email string, password []byte, role models.Role) (models.Identity, error) {
	if email == "" || !role.Valid() {
		return models.Identity{}, ErrInvalidCredentials
	}

	rec, err := a.identities.FindByEmailAndRole(ctx, email, role)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			a.hasher.Verify(a.decoy, password)
			return models.Identity{}, ErrInvalidCredentials
		}
		return models.Identity{}, fmt.Errorf("find identity: %w", err)
	}

	if !a.hasher.Verify(rec.Credential, password) {
		return models.Identity{}, ErrInvalidCredentials
	}
	return rec.Identity, nil
}

func (a *authService) Register(ctx context.Context, data models.SignupData) (models.Identity, error) {
	if err := a.validate.StructCtx(ctx, data); err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidSignup, err)
	}

	if _, err := a.identities.FindByEmail(ctx, data.Email); err == nil {
		return models.Identity{}, ErrDuplicateEmail
	} else if !errors.Is(err, common.ErrorNotFound) {
		return models.Identity{}, fmt.Errorf("find identity: %w", err)
	}

	id := models.Identity{
		ID:      a.newID(),
		Email:   data.Email,
		Name:    data.Name,
		Role:    data.Role,
		Phone:   data.Phone,
		Address: data.Address,
		// Snapshots carry millisecond timestamps; truncating here keeps the
		// in-memory identity equal to its restored form.
		CreatedAt: a.now().UTC().Truncate(time.Millisecond),
	}

	password := []byte(data.Password)
	cred := a.hasher.Hash(password)
	common.WipeByteArray(password)

	if err := a.identities.Add(ctx, identities.Record{Identity: id, Credential: cred}); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return models.Identity{}, ErrDuplicateEmail
		}
		return models.Identity{}, fmt.Errorf("add identity: %w", err)
	}
	return id, nil
}

func (a *authService) UpdateProfile(ctx context.Context, current models.Identity, update models.ProfileUpdate) (models.Identity, error) {
	updated, err := update.ApplyTo(current)
	if err != nil {
		return current, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	// An identity restored from a snapshot may have been registered by an
	// earlier process and be missing from this directory; the session copy
	// is still updated.
	if err := a.identities.Update(ctx, updated); err != nil && !errors.Is(err, common.ErrorNotFound) {
		return current, fmt.Errorf("update identity: %w", err)
	}
	return updated, nil
}
