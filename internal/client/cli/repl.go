package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/eldercare/internal/client/api"
	"github.com/dmitrijs2005/eldercare/internal/client/session"
	"github.com/dmitrijs2005/eldercare/internal/common"
)

// Record list commands accepted on the home screen.
var recordKinds = []string{"appointments", "meds", "health", "reminders"}

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	screen() session.Screen
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Reset(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Status(ctx context.Context) error
	Records(ctx context.Context, kind string, args []string) error
}

// runREPL reads commands from r until EOF, "exit"/"quit" or ctx is done.
//
// Commands depend on the screen:
//
//	auth:  login, register, status, help, exit
//	home:  appointments|meds|health|reminders [list|add|edit <id>|delete <id>],
//	       whoami, status, logout, reset, help, exit
//
// Command errors are printed inline and never stop the loop.
func runREPL(ctx context.Context, a execIface, r *bufio.Reader, w io.Writer) {
	for ctx.Err() == nil {
		fmt.Fprintf(w, "eldercare (%s)> ", a.screen())

		line, err := readLine(r)
		if err != nil {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		case "help":
			printHelp(w, a.screen())
			continue
		case "status":
			report(w, a.Status(ctx))
			continue
		}

		if a.screen() == session.ScreenHome {
			err = dispatchHome(ctx, a, cmd, args)
		} else {
			err = dispatchAuth(ctx, a, cmd)
		}
		if errors.Is(err, errUnknownCommand) {
			fmt.Fprintln(w, "Unknown command:", cmd)
			continue
		}
		report(w, err)
	}
}

var errUnknownCommand = errors.New("unknown command")

func dispatchAuth(ctx context.Context, a execIface, cmd string) error {
	switch cmd {
	case "login":
		return a.Login(ctx)
	case "register":
		return a.Register(ctx)
	}
	return errUnknownCommand
}

func dispatchHome(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "whoami":
		return a.WhoAmI(ctx)
	case "logout":
		return a.Logout(ctx)
	case "reset":
		return a.Reset(ctx)
	case "appointments", "meds", "health", "reminders":
		return a.Records(ctx, cmd, args)
	}
	return errUnknownCommand
}

func printHelp(w io.Writer, s session.Screen) {
	if s == session.ScreenHome {
		fmt.Fprintf(w, "Available commands: %s [list|add|edit <id>|delete <id>], whoami, status, logout, reset, exit\n",
			strings.Join(recordKinds, "|"))
		return
	}
	fmt.Fprintln(w, "Available commands: login, register, status, exit")
}

func report(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(w, "Error:", errorMessage(err))
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return "no record with that id"
	case errors.Is(err, api.ErrUnavailable):
		return "server unavailable: " + api.Message(err)
	}
	return api.Message(err)
}
