package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/bookshelf/internal/client/guard"
	"github.com/dmitrijs2005/bookshelf/internal/client/models"
	"github.com/dmitrijs2005/bookshelf/internal/common"
)

// getSimpleText, getPassword, getMultiline and getFields are indirections
// used to facilitate testing. They point to interactive input helpers and
// can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
	getFields     = GetFields
)

var errEmptyInput = errors.New("input must not be empty")

func (a *App) Login(ctx context.Context) error {
	return a.Execute(ctx, command{route: guard.RouteLogin, run: a.login})
}

func (a *App) Register(ctx context.Context) error {
	return a.Execute(ctx, command{route: guard.RouteRegister, run: a.register})
}

func (a *App) Profile(ctx context.Context) error {
	return a.Execute(ctx, command{route: guard.RouteProfile, run: a.profile})
}

// Logout is not a navigation and needs no guard: it is a no-op when
// nobody is logged in.
func (a *App) Logout(ctx context.Context) error {
	if !a.auth.IsAuthenticated() {
		a.println("Not logged in.")
		return nil
	}
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.println("Logged out.")
	return nil
}

// login prompts for credentials. The password is wiped before returning.
func (a *App) login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if email == "" {
		return errEmptyInput
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	resp, err := a.auth.Login(ctx, models.Credentials{Email: email, Password: string(password)})
	if err != nil {
		return err
	}

	a.println("Welcome, " + displayName(resp.User) + "!")
	return nil
}

func (a *App) register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if name == "" || email == "" {
		return errEmptyInput
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	resp, err := a.auth.Register(ctx, models.Registration{Name: name, Email: email, Password: string(password)})
	if err != nil {
		return err
	}

	a.println("Account created. Welcome, " + displayName(resp.User) + "!")
	return nil
}

func (a *App) profile(ctx context.Context) error {
	p, err := a.auth.GetProfile(ctx)
	if err != nil {
		return err
	}
	a.printf("Name:  %s\n", p.Name)
	a.printf("Email: %s\n", p.Email)
	return nil
}

func displayName(u models.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
