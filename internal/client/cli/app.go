package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/eldercare/internal/client/api"
	"github.com/dmitrijs2005/eldercare/internal/client/authflow"
	"github.com/dmitrijs2005/eldercare/internal/client/config"
	"github.com/dmitrijs2005/eldercare/internal/client/records"
	"github.com/dmitrijs2005/eldercare/internal/client/session"
	"github.com/dmitrijs2005/eldercare/internal/client/storage"
	"github.com/dmitrijs2005/eldercare/internal/filex"
	"github.com/dmitrijs2005/eldercare/internal/logging"
)

type App struct {
	config  *config.Config
	db      *sql.DB
	api     api.Client
	store   storage.Repository
	session *session.Session
	flow    *authflow.Flow
	kinds   map[string]recordCommands
	logger  logging.Logger

	reader  *bufio.Reader
	out     io.Writer
	current session.Screen
	now     func() time.Time
}

// NewApp opens local storage at c.StorePath and builds a client talking to
// c.ServerURL. Diagnostics go to stderr; the REPL uses stdin and stdout.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewTextLogger(os.Stderr, logging.ParseLevel(c.LogLevel))

	if _, err := filex.EnsureParentDir(c.StorePath); err != nil {
		logger.Error(ctx, "error preparing local storage", "path", c.StorePath, "error", err)
		return nil, err
	}

	db, err := storage.Open(ctx, c.StorePath)
	if err != nil {
		logger.Error(ctx, "error opening local storage", "path", c.StorePath, "error", err)
		return nil, err
	}

	a := newApp(api.NewHTTPClient(c.ServerURL, c.RequestTimeout), db, logger, os.Stdin, os.Stdout)
	a.config = c
	return a, nil
}

func newApp(client api.Client, db *sql.DB, logger logging.Logger, in io.Reader, out io.Writer) *App {
	repo := storage.NewSQLiteRepository(db)
	s := session.New(repo)
	a := &App{
		db:      db,
		api:     client,
		store:   repo,
		session: s,
		flow:    authflow.New(client, s),
		kinds: map[string]recordCommands{
			"appointments": appointmentCommands(records.Appointments(db)),
			"meds":         medicationCommands(records.Medications(db)),
			"health":       healthLogCommands(records.HealthLogs(db)),
			"reminders":    reminderCommands(records.Reminders(db)),
		},
		logger:  logger.With("module", "cli"),
		reader:  bufio.NewReader(in),
		out:     out,
		current: session.ScreenLogin,
		now:     time.Now,
	}
	a.flow.OnBusy(func(v authflow.View) {
		if l := v.BusyLabel(); l != "" {
			fmt.Fprintln(a.out, l)
		}
	})
	return a
}

// Run shows the first screen and drives the REPL until the user exits or
// the process is interrupted. Local storage is closed on return.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer a.db.Close()

	fmt.Fprintln(a.out, "Elder Care (type 'help' for commands)")

	_, nav, err := a.flow.Enter(ctx)
	if err != nil {
		a.logger.Error(ctx, "error reading session", "error", err)
		return err
	}
	if nav.To == session.ScreenHome {
		a.current = session.ScreenHome
		fmt.Fprintln(a.out, "Welcome back.")
	} else {
		fmt.Fprintln(a.out, "Sign in with 'login' or create an account with 'register'.")
	}

	runREPL(ctx, a, a.reader, a.out)
	return nil
}

// screen is Home, or whichever auth screen the flow is on.
func (a *App) screen() session.Screen {
	if a.current == session.ScreenHome {
		return a.current
	}
	return a.flow.Screen()
}

// guard runs the session check every home command starts with. When the
// token is gone it switches to the login screen and reports false; the
// caller must stop there.
func (a *App) guard(ctx context.Context) (session.Guard, bool, error) {
	g, err := a.session.RequireAuth(ctx)
	if err != nil {
		return g, false, err
	}
	if !g.Authorized {
		a.redirect(g.Redirect)
		fmt.Fprintln(a.out, "Your session has ended. Please sign in again.")
		return g, false, nil
	}
	return g, true, nil
}

func (a *App) redirect(to session.Screen) {
	a.current = to
	if to == session.ScreenRegister {
		a.flow.ShowRegister()
	} else {
		a.flow.ShowLogin()
	}
}

func (a *App) prompter() *prompter {
	return &prompter{r: a.reader, w: a.out, now: a.now}
}
