package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/medmate/medmate/internal/client/session"
)

var (
	spinnerFrames   = []rune{'|', '/', '-', '\\'}
	spinnerInterval = 100 * time.Millisecond
)

// await runs op on its own goroutine and draws a spinner on w for as long as
// state reports StateAuthenticating. It returns op's result once op is done;
// cancelling ctx is up to op to honour.
func await(ctx context.Context, w io.Writer, state func() session.State, op func(context.Context) bool) bool {
	done := make(chan bool, 1)
	go func() { done <- op(ctx) }()

	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	frame, drawn := 0, false
	for {
		select {
		case ok := <-done:
			if drawn {
				fmt.Fprint(w, "\r  \r")
			}
			return ok
		case <-ticker.C:
			if state() != session.StateAuthenticating {
				continue
			}
			fmt.Fprintf(w, "\r%c ", spinnerFrames[frame%len(spinnerFrames)])
			frame++
			drawn = true
		}
	}
}
