// Package session holds the client's single authenticated identity.
//
// A Store is built once at startup and handed to whoever needs the current
// user. It owns the identity directory (through an AuthService) and the
// persisted snapshot of the active identity, and it is the only thing that
// changes either. Operations report plain success or failure: the reason for
// a failure is logged, never returned, and login failures never say whether
// the email, the role or the password was wrong.
//
// Lifecycle:
//
//	NewStore            -> authenticating
//	Restore             -> authenticated | unauthenticated
//	Login / Signup      -> authenticating -> authenticated | previous state
//	UpdateProfile       -> authenticating -> authenticated (merged | unchanged)
//	Logout, Reset       -> unauthenticated
//
// Operations are serialised; a second call waits for the first to resolve.
// State and Current may be read at any time, including mid-operation.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/medmate/medmate/internal/client/models"
	"github.com/medmate/medmate/internal/client/repositories/metadata"
	"github.com/medmate/medmate/internal/client/services"
	"github.com/medmate/medmate/internal/logging"
)

// LoginFailureHint is the one message shown for every failed login.
const LoginFailureHint = "Invalid credentials. Try donor@example.com or ngo@example.com with password: password123"

var (
	ErrNoActiveSession = errors.New("no active session")
	ErrForbiddenRole   = errors.New("role not permitted")
)

type Option func(*Store)

// WithLatency sets the latency policy applied before login, signup and
// profile updates resolve.
func WithLatency(l Latency) Option {
	return func(s *Store) { s.latency = l }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

type Store struct {
	auth      services.AuthService
	snapshots metadata.Repository
	latency   Latency
	log       logging.Logger

	// op serialises operations; mu guards the fields below it.
	op      sync.Mutex
	mu      sync.RWMutex
	state   State
	current models.Identity
}

// NewStore returns a store in StateAuthenticating. Call Restore to settle it.
func NewStore(auth services.AuthService, snapshots metadata.Repository, opts ...Option) *Store {
	s := &Store{
		auth:      auth,
		snapshots: snapshots,
		latency:   NoLatency,
		log:       logging.Discard(),
		state:     StateAuthenticating,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "session")
	return s
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Current returns a copy of the active identity, if any.
func (s *Store) Current() (models.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateAuthenticated {
		return models.Identity{}, false
	}
	return s.current, true
}

// RequireRole returns the active identity when it has the given role.
func (s *Store) RequireRole(role models.Role) (models.Identity, error) {
	id, ok := s.Current()
	if !ok {
		return models.Identity{}, ErrNoActiveSession
	}
	if id.Role != role {
		return models.Identity{}, ErrForbiddenRole
	}
	return id, nil
}

// Restore rehydrates the session from the persisted snapshot. A missing
// snapshot leaves the store unauthenticated; a malformed one is deleted.
func (s *Store) Restore(ctx context.Context) {
	s.op.Lock()
	defer s.op.Unlock()

	s.set(StateAuthenticating, s.current)

	raw, err := s.snapshots.Get(ctx, SnapshotKey)
	if err != nil {
		s.log.Error(ctx, "read session snapshot", "error", err)
		s.set(StateUnauthenticated, models.Identity{})
		return
	}
	if raw == nil {
		s.log.Debug(ctx, "no session snapshot")
		s.set(StateUnauthenticated, models.Identity{})
		return
	}

	id, err := decodeSnapshot(raw)
	if err != nil {
		s.log.Warn(ctx, "discarding session snapshot", "error", err)
		if err := s.snapshots.Delete(ctx, SnapshotKey); err != nil {
			s.log.Error(ctx, "delete session snapshot", "error", err)
		}
		s.set(StateUnauthenticated, models.Identity{})
		return
	}

	s.set(StateAuthenticated, id)
	s.log.Info(ctx, "session restored", "id", id.ID, "role", id.Role)
}

// Login authenticates email and password for role. On failure the store
// keeps its previous state; callers show LoginFailureHint.
func (s *Store) Login(ctx context.Context, email, password string, role models.Role) bool {
	s.op.Lock()
	defer s.op.Unlock()

	prevState, prev := s.begin()
	if err := s.latency(ctx); err != nil {
		s.log.Warn(ctx, "login aborted", "error", err)
		s.set(prevState, prev)
		return false
	}

	id, err := s.auth.Authenticate(ctx, email, []byte(password), role)
	if err != nil {
		s.logRejection(ctx, "login rejected", err, "role", role)
		s.set(prevState, prev)
		return false
	}

	s.set(StateAuthenticated, id)
	s.persist(ctx, id)
	s.log.Info(ctx, "logged in", "id", id.ID, "role", id.Role)
	return true
}

// Signup registers a new identity and makes it the active session. It fails
// on an invalid form or an email that is already registered.
func (s *Store) Signup(ctx context.Context, data models.SignupData) bool {
	s.op.Lock()
	defer s.op.Unlock()

	prevState, prev := s.begin()
	if err := s.latency(ctx); err != nil {
		s.log.Warn(ctx, "signup aborted", "error", err)
		s.set(prevState, prev)
		return false
	}

	id, err := s.auth.Register(ctx, data)
	if err != nil {
		s.logRejection(ctx, "signup rejected", err, "role", data.Role)
		s.set(prevState, prev)
		return false
	}

	s.set(StateAuthenticated, id)
	s.persist(ctx, id)
	s.log.Info(ctx, "signed up", "id", id.ID, "role", id.Role)
	return true
}

// Logout ends the session and removes the snapshot. It cannot fail.
func (s *Store) Logout(ctx context.Context) {
	s.op.Lock()
	defer s.op.Unlock()

	s.set(StateUnauthenticated, models.Identity{})
	if err := s.snapshots.Delete(ctx, SnapshotKey); err != nil {
		s.log.Error(ctx, "delete session snapshot", "error", err)
	}
	s.log.Info(ctx, "logged out")
}

// Reset ends the session and wipes every locally stored value, not just the
// snapshot. It fails only if the storage cannot be cleared; the session is
// ended either way.
func (s *Store) Reset(ctx context.Context) error {
	s.op.Lock()
	defer s.op.Unlock()

	s.set(StateUnauthenticated, models.Identity{})
	if err := s.snapshots.Clear(ctx); err != nil {
		s.log.Error(ctx, "clear local storage", "error", err)
		return fmt.Errorf("clear local storage: %w", err)
	}
	s.log.Info(ctx, "local storage cleared")
	return nil
}

// UpdateProfile merges update into the active identity and re-persists it.
// Without an active session it returns false at once and touches nothing.
func (s *Store) UpdateProfile(ctx context.Context, update models.ProfileUpdate) bool {
	s.op.Lock()
	defer s.op.Unlock()

	if s.State() != StateAuthenticated {
		s.log.Warn(ctx, "profile update rejected", "error", ErrNoActiveSession)
		return false
	}

	prevState, prev := s.begin()
	if err := s.latency(ctx); err != nil {
		s.log.Warn(ctx, "profile update aborted", "error", err)
		s.set(prevState, prev)
		return false
	}

	updated, err := s.auth.UpdateProfile(ctx, prev, update)
	if err != nil {
		s.logRejection(ctx, "profile update rejected", err, "id", prev.ID)
		s.set(prevState, prev)
		return false
	}

	s.set(StateAuthenticated, updated)
	s.persist(ctx, updated)
	s.log.Info(ctx, "profile updated", "id", updated.ID)
	return true
}

// begin records the current state and moves to StateAuthenticating.
func (s *Store) begin() (State, models.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prevState, prev := s.state, s.current
	s.state = StateAuthenticating
	return prevState, prev
}

func (s *Store) set(state State, id models.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.current = id
}

// persist writes the snapshot. The in-memory session stays authoritative if
// the write fails.
func (s *Store) persist(ctx context.Context, id models.Identity) {
	raw, err := encodeSnapshot(id)
	if err != nil {
		s.log.Error(ctx, "encode session snapshot", "error", err)
		return
	}
	if err := s.snapshots.Set(ctx, SnapshotKey, raw); err != nil {
		s.log.Error(ctx, "write session snapshot", "error", err)
	}
}

// logRejection logs domain rejections at warn and anything else at error.
func (s *Store) logRejection(ctx context.Context, msg string, err error, args ...any) {
	args = append(args, "error", err)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrDuplicateEmail),
		errors.Is(err, services.ErrInvalidSignup),
		errors.Is(err, services.ErrInvalidProfile):
		s.log.Warn(ctx, msg, args...)
	default:
		s.log.Error(ctx, msg, args...)
	}
}
