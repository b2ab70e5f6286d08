package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/eldercare/internal/client/api"
	"github.com/dmitrijs2005/eldercare/internal/client/authflow"
	"github.com/dmitrijs2005/eldercare/internal/client/session"
	"github.com/dmitrijs2005/eldercare/internal/client/storage"
)

// Register collects the registration form and submits it. On success the
// flow moves to login with the email remembered; on failure it stays on the
// register screen.
func (a *App) Register(ctx context.Context) error {
	a.flow.ShowRegister()

	var (
		form authflow.RegisterForm
		err  error
	)
	if form.Name, err = GetSimpleText(a.reader, "Name (optional)", a.out); err != nil {
		return err
	}
	if form.Email, err = GetSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if form.Password, err = GetPassword(a.reader, "Password", a.out); err != nil {
		return err
	}
	if form.ConfirmPassword, err = GetPassword(a.reader, "Confirm password", a.out); err != nil {
		return err
	}

	res := a.flow.SubmitRegister(ctx, form)
	if !res.OK {
		a.logger.Debug(ctx, "registration rejected", "reason", res.Error)
		fmt.Fprintln(a.out, "Error:", res.Error)
		return nil
	}

	a.showBanner()
	return nil
}

// Login collects credentials, prefilled with the last used email, and moves
// to the home screen when the server issues a token.
func (a *App) Login(ctx context.Context) error {
	a.flow.ShowLogin()
	a.showBanner()
	v := a.flow.View()

	email, err := GetWithDefault(a.reader, "Email", v.Email, a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}

	res := a.flow.SubmitLogin(ctx, authflow.LoginForm{Email: email, Password: password})
	if !res.OK {
		a.logger.Debug(ctx, "login rejected", "reason", res.Error)
		fmt.Fprintln(a.out, "Error:", res.Error)
		return nil
	}

	if res.Nav.To != "" {
		a.current = res.Nav.To
	}
	fmt.Fprintf(a.out, "Signed in as %s\n", strings.TrimSpace(email))
	return nil
}

// Logout forgets the token. Records stay on this device.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		return err
	}
	a.redirect(session.ScreenLogin)
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

// WhoAmI prints the profile behind the stored token. A token the server
// rejects is dropped.
func (a *App) WhoAmI(ctx context.Context) error {
	g, ok, err := a.guard(ctx)
	if err != nil || !ok {
		return err
	}

	p, err := a.api.Me(ctx, g.Token)
	if err != nil {
		var ae *api.Error
		if errors.As(err, &ae) && ae.Status == http.StatusUnauthorized {
			if cerr := a.session.Clear(ctx); cerr != nil {
				return cerr
			}
			a.redirect(session.ScreenLogin)
		}
		return err
	}

	name := "-"
	if p.Name != nil && *p.Name != "" {
		name = *p.Name
	}
	fmt.Fprintf(a.out, "ID:    %d\nName:  %s\nEmail: %s\nRole:  %s\n", p.ID, name, p.Email, p.Role)
	return nil
}

// Status reports whether the server and its database answer.
func (a *App) Status(ctx context.Context) error {
	h, err := a.api.Health(ctx)
	if err != nil {
		return err
	}
	if !h.OK {
		fmt.Fprintln(a.out, "Server: not ok")
		return nil
	}
	fmt.Fprintf(a.out, "Server: ok (db check %d)\n", h.DB)
	return nil
}

func (a *App) showBanner() {
	if v := a.flow.View(); v.Banner != "" {
		fmt.Fprintln(a.out, v.Banner)
	}
}

// Reset signs out and deletes every record list on this device after the
// user types "yes".
func (a *App) Reset(ctx context.Context) error {
	if _, ok, err := a.guard(ctx); err != nil || !ok {
		return err
	}

	all, err := a.store.List(ctx)
	if err != nil {
		return err
	}
	lists := 0
	for k := range all {
		if k != storage.KeyToken {
			lists++
		}
	}

	answer, err := GetSimpleText(a.reader,
		fmt.Sprintf("This signs you out and deletes %d stored record list(s) from this device. Type 'yes' to continue", lists), a.out)
	if err != nil {
		return err
	}
	if answer != "yes" {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.store.Clear(ctx); err != nil {
		return err
	}
	a.redirect(session.ScreenLogin)
	fmt.Fprintln(a.out, "All local data removed.")
	return nil
}
