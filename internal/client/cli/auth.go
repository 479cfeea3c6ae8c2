package cli

import (
	"context"
	"fmt"

	"github.com/medmate/medmate/internal/client/models"
	"github.com/medmate/medmate/internal/client/session"
	"github.com/medmate/medmate/internal/common"
	"github.com/medmate/medmate/internal/optional"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// promptRole asks for donor or ngo. An empty answer picks def.
func (a *App) promptRole(def models.Role) (models.Role, error) {
	s, err := getSimpleText(a.reader, fmt.Sprintf("Account type (donor/ngo) [%s]", def), a.out)
	if err != nil {
		return "", err
	}
	if s == "" {
		return def, nil
	}
	return models.ParseRole(s)
}

func optionalText(s string) optional.Value[string] {
	if s == "" {
		return optional.None[string]()
	}
	return optional.Some(s)
}

// Signup walks through the registration form. The store decides whether the
// form is acceptable; the CLI only reports the outcome.
func (a *App) Signup(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Already logged in. Log out first.")
		return nil
	}

	role, err := a.promptRole(models.RoleDonor)
	if err != nil {
		return err
	}

	nameLabel := "Full name"
	if role == models.RoleNGO {
		nameLabel = "Organization name"
	}
	name, err := getSimpleText(a.reader, nameLabel, a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	phone, err := getSimpleText(a.reader, "Phone (optional)", a.out)
	if err != nil {
		return err
	}
	address, err := getSimpleText(a.reader, "Address (optional)", a.out)
	if err != nil {
		return err
	}

	data := models.SignupData{
		Email:    email,
		Password: string(password),
		Name:     name,
		Role:     role,
		Phone:    optionalText(phone),
		Address:  optionalText(address),
	}
	ok := await(ctx, a.out, a.session.State, func(ctx context.Context) bool {
		return a.session.Signup(ctx, data)
	})
	if !ok {
		fmt.Fprintln(a.out, "Signup failed. Check the form or use a different email.")
		return nil
	}

	id, _ := a.session.Current()
	fmt.Fprintf(a.out, "Account created. Welcome, %s!\n", id.Name)
	return nil
}

// Login prompts for account type, email and password. Every failure prints
// the same hint.
func (a *App) Login(ctx context.Context) error {
	role, err := a.promptRole(models.RoleDonor)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ok := await(ctx, a.out, a.session.State, func(ctx context.Context) bool {
		return a.session.Login(ctx, email, string(password), role)
	})
	if !ok {
		fmt.Fprintln(a.out, session.LoginFailureHint)
		return nil
	}

	id, _ := a.session.Current()
	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", id.Name, id.Role.Title())
	return nil
}

// Logout ends the session.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Reset asks for confirmation, then ends the session and wipes local storage.
func (a *App) Reset(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Remove all locally stored data? (yes/no)", a.out)
	if err != nil {
		return err
	}
	if answer != "yes" {
		fmt.Fprintln(a.out, "Reset cancelled.")
		return nil
	}
	if err := a.session.Reset(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Local data removed.")
	return nil
}

// WhoAmI prints the active identity.
func (a *App) WhoAmI(_ context.Context) error {
	id, ok := a.session.Current()
	if !ok {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	printIdentity(a.out, id)
	return nil
}
