package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/medmate/medmate/internal/client/models"
	"github.com/medmate/medmate/internal/client/session"
)

// Dashboard greets the active identity. With an argument it acts as a role
// gate: "dashboard ngo" only opens for NGO accounts.
func (a *App) Dashboard(_ context.Context, args []string) error {
	id, ok := a.session.Current()
	if !ok {
		fmt.Fprintln(a.out, "Please log in first.")
		return nil
	}

	role := id.Role
	if len(args) > 0 {
		r, err := models.ParseRole(args[0])
		if err != nil {
			return err
		}
		role = r
	}

	id, err := a.session.RequireRole(role)
	switch {
	case errors.Is(err, session.ErrNoActiveSession):
		fmt.Fprintln(a.out, "Please log in first.")
		return nil
	case errors.Is(err, session.ErrForbiddenRole):
		fmt.Fprintf(a.out, "The %s dashboard is only available to %s accounts.\n", role.Title(), role.Title())
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", id.Name)
	switch id.Role {
	case models.RoleDonor:
		fmt.Fprintln(a.out, "Manage your donations and help those in need.")
	case models.RoleNGO:
		fmt.Fprintln(a.out, "Browse available donations and make requests.")
	}
	if !id.Verified {
		fmt.Fprintln(a.out, "Your account is pending verification.")
	}
	return nil
}
