// Package authflow drives the login/register screens as an explicit state
// machine. It knows nothing about terminals; the CLI renders View values and
// feeds form submissions back in.
package authflow

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/eldercare/internal/client/api"
	"github.com/dmitrijs2005/eldercare/internal/client/session"
)

// View is what the current auth screen should show.
type View struct {
	Screen session.Screen
	Email  string
	Banner string
	Error  string
	Busy   bool
}

// Labels shown while a submission is in flight.
const (
	BusyLogin    = "Signing in..."
	BusyRegister = "Creating account..."
)

// BusyLabel is the in-flight label for the current screen, or "" when idle.
func (v View) BusyLabel() string {
	if !v.Busy {
		return ""
	}
	if v.Screen == session.ScreenRegister {
		return BusyRegister
	}
	return BusyLogin
}

// Nav asks the router to leave the auth screens. A zero Nav means stay.
type Nav struct {
	To session.Screen
}

// Result is the outcome of a submission.
type Result struct {
	OK    bool
	Error string
	Nav   Nav
}

type Flow struct {
	api     api.Client
	session *session.Session

	screen session.Screen
	email  string
	banner string
	err    string
	busy   bool

	onBusy func(View)
}

func New(c api.Client, s *session.Session) *Flow {
	return &Flow{api: c, session: s, screen: session.ScreenLogin}
}

// Enter is called when the auth screens are opened. With a usable token it
// sends the user straight Home.
func (f *Flow) Enter(ctx context.Context) (View, Nav, error) {
	g, err := f.session.RequireAuth(ctx)
	if err != nil {
		return View{}, Nav{}, err
	}
	if g.Authorized {
		return View{}, Nav{To: session.ScreenHome}, nil
	}
	return f.View(), Nav{}, nil
}

// View returns the current screen. The post-registration banner is handed
// out once, to the first Login render after it was set.
func (f *Flow) View() View {
	v := View{Screen: f.screen, Email: f.email, Error: f.err, Busy: f.busy}
	if f.screen == session.ScreenLogin && f.banner != "" {
		v.Banner = f.banner
		f.banner = ""
	}
	return v
}

func (f *Flow) Screen() session.Screen { return f.screen }

// OnBusy registers fn to be called with the current view whenever a
// submission starts or finishes.
func (f *Flow) OnBusy(fn func(View)) { f.onBusy = fn }

func (f *Flow) setBusy(b bool) {
	f.busy = b
	if f.onBusy != nil {
		f.onBusy(View{Screen: f.screen, Email: f.email, Error: f.err, Busy: b})
	}
}

func (f *Flow) ShowRegister() {
	f.screen = session.ScreenRegister
	f.err = ""
}

func (f *Flow) ShowLogin() {
	f.screen = session.ScreenLogin
	f.err = ""
}

// SubmitRegister validates the form, calls the server and on success moves to
// Login with the email prefilled and the success banner queued. It never logs
// the user in.
func (f *Flow) SubmitRegister(ctx context.Context, form RegisterForm) Result {
	f.err = ""
	if msg := ValidateRegister(form); msg != "" {
		return f.fail(msg)
	}

	email := strings.TrimSpace(form.Email)

	f.setBusy(true)
	err := f.api.Register(ctx, api.RegisterRequest{
		Name:     strings.TrimSpace(form.Name),
		Email:    email,
		Password: form.Password,
	})
	f.setBusy(false)

	if err != nil {
		return f.fail(messageOr(err, MsgRegisterFailed))
	}

	f.email = email
	f.banner = MsgRegistered
	f.screen = session.ScreenLogin
	return Result{OK: true}
}

// SubmitLogin validates the form, calls the server and on success stores the
// token and asks for Home.
func (f *Flow) SubmitLogin(ctx context.Context, form LoginForm) Result {
	f.err = ""
	if msg := ValidateLogin(form); msg != "" {
		return f.fail(msg)
	}

	email := strings.TrimSpace(form.Email)

	f.setBusy(true)
	token, err := f.api.Login(ctx, api.LoginRequest{Email: email, Password: form.Password})
	f.setBusy(false)

	if err != nil {
		return f.fail(messageOr(err, MsgLoginFailed))
	}

	if err := f.session.SetToken(ctx, token); err != nil {
		return f.fail(err.Error())
	}

	f.email = email
	f.banner = ""
	return Result{OK: true, Nav: Nav{To: session.ScreenHome}}
}

func (f *Flow) fail(msg string) Result {
	f.err = msg
	return Result{Error: msg}
}

func messageOr(err error, fallback string) string {
	if msg := api.Message(err); msg != "" {
		return msg
	}
	return fallback
}
