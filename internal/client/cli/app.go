package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/medmate/medmate/internal/client/config"
	"github.com/medmate/medmate/internal/client/repositories/identities"
	"github.com/medmate/medmate/internal/client/services"
	"github.com/medmate/medmate/internal/client/session"
	"github.com/medmate/medmate/internal/client/storage"
	"github.com/medmate/medmate/internal/cryptox"
	"github.com/medmate/medmate/internal/logging"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Store
	closers []func() error
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp builds the application from cfg: logger, snapshot storage,
// seeded identity directory and session store. Logs go to stderr so they do
// not interleave with prompts.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log, err := logging.New(logging.Options{
		Backend: c.LogBackend,
		Level:   c.LogLevel,
		Output:  os.Stderr,
	})
	if err != nil {
		return nil, err
	}

	st, err := storage.Open(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", c.StorageBackend, err)
	}

	hasher := cryptox.NewArgon2Hasher()
	auth := services.NewAuthService(identities.NewSeededRepository(hasher), hasher)
	store := session.NewStore(auth, st.Metadata,
		session.WithLatency(session.Simulated(c.SimulatedLatency)),
		session.WithLogger(log),
	)

	a := newApp(c, log, store, os.Stdin, os.Stdout)
	a.closers = append(a.closers, st.Close)
	if z, ok := log.(interface{ Sync() error }); ok {
		a.closers = append(a.closers, z.Sync)
	}
	return a, nil
}

func newApp(c *config.Config, log logging.Logger, s *session.Store, in io.Reader, out io.Writer) *App {
	return &App{
		config:  c,
		log:     log,
		session: s,
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

// Run restores the previous session and serves commands until exit.
func (a *App) Run(ctx context.Context) {
	defer a.close(ctx)

	fmt.Fprintln(a.out, "Welcome to MedMate CLI (type 'help' for commands)")
	await(ctx, a.out, a.session.State, func(ctx context.Context) bool {
		a.session.Restore(ctx)
		return true
	})
	if id, ok := a.session.Current(); ok {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", id.Name)
	}

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) close(ctx context.Context) {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.log.Debug(ctx, "close", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == session.StateAuthenticated
}

// status is shown in the prompt: the signed-in email and role, if any.
func (a *App) status() string {
	id, ok := a.session.Current()
	if !ok {
		return "guest"
	}
	return fmt.Sprintf("%s %s", id.Email, id.Role)
}
