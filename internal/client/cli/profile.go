package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/medmate/medmate/internal/client/models"
	"github.com/medmate/medmate/internal/optional"
	"github.com/medmate/medmate/internal/timex"
)

// clearMarker entered at a profile prompt removes the field.
const clearMarker = "-"

func printIdentity(w io.Writer, id models.Identity) {
	status := "pending verification"
	if id.Verified {
		status = "verified"
	}
	fmt.Fprintf(w, "ID:            %s\n", id.ID)
	fmt.Fprintf(w, "Name:          %s\n", id.Name)
	fmt.Fprintf(w, "Email:         %s\n", id.Email)
	fmt.Fprintf(w, "Account type:  %s (%s)\n", id.Role.Title(), status)
	fmt.Fprintf(w, "Phone:         %s\n", id.Phone.OrElse("-"))
	fmt.Fprintf(w, "Address:       %s\n", id.Address.OrElse("-"))
	fmt.Fprintf(w, "Profile image: %s\n", id.ProfileImage.OrElse("-"))
	fmt.Fprintf(w, "Member since:  %s\n", timex.FormatTimestamp(id.CreatedAt))
}

// toPatch turns a prompt answer into a patch: empty keeps, "-" clears.
func toPatch(s string) optional.Patch[string] {
	switch s {
	case "":
		return optional.Keep[string]()
	case clearMarker:
		return optional.Clear[string]()
	default:
		return optional.Set(s)
	}
}

// Profile edits the mutable profile fields of the active identity. Email
// and account type are shown but cannot be changed.
func (a *App) Profile(ctx context.Context) error {
	id, ok := a.session.Current()
	if !ok {
		fmt.Fprintln(a.out, "Please log in first.")
		return nil
	}

	fmt.Fprintf(a.out, "Editing %s (%s). Press Enter to keep a value, %q to clear it.\n",
		id.Email, id.Role.Title(), clearMarker)

	var answers [4]string
	prompts := [4]struct {
		label   string
		current string
	}{
		{"Name", id.Name},
		{"Phone", id.Phone.OrElse("")},
		{"Address", id.Address.OrElse("")},
		{"Profile image", id.ProfileImage.OrElse("")},
	}
	for i, p := range prompts {
		s, err := GetOptionalText(a.reader, p.label, p.current, a.out)
		if err != nil {
			return err
		}
		answers[i] = s
	}

	update := models.ProfileUpdate{
		Name:         toPatch(answers[0]),
		Phone:        toPatch(answers[1]),
		Address:      toPatch(answers[2]),
		ProfileImage: toPatch(answers[3]),
	}
	if update.IsEmpty() {
		fmt.Fprintln(a.out, "Nothing to update.")
		return nil
	}

	ok = await(ctx, a.out, a.session.State, func(ctx context.Context) bool {
		return a.session.UpdateProfile(ctx, update)
	})
	if !ok {
		fmt.Fprintln(a.out, "Profile update failed.")
		return nil
	}
	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}
