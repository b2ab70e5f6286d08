package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/eldercare/internal/client/records"
)

// Records runs one record list subcommand: list (default), add, edit <id>
// or delete <id>.
func (a *App) Records(ctx context.Context, kind string, args []string) error {
	cmds, ok := a.kinds[kind]
	if !ok {
		return errUnknownCommand
	}
	if _, ok, err := a.guard(ctx); err != nil || !ok {
		return err
	}

	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		return cmds.list(ctx, a.out)
	case "add":
		return cmds.add(ctx, a.prompter())
	case "edit", "delete":
		if len(args) < 2 {
			fmt.Fprintf(a.out, "Usage: %s %s <id>\n", kind, sub)
			return nil
		}
		if sub == "edit" {
			return cmds.edit(ctx, a.prompter(), args[1])
		}
		return cmds.remove(ctx, a.out, args[1])
	}

	fmt.Fprintf(a.out, "Usage: %s [list|add|edit <id>|delete <id>]\n", kind)
	return nil
}

type prompter struct {
	r   *bufio.Reader
	w   io.Writer
	now func() time.Time
}

func (p *prompter) text(label, current string) (string, error) {
	return GetWithDefault(p.r, label, current, p.w)
}

func (p *prompter) when(label string, current time.Time) (time.Time, error) {
	return GetTime(p.r, label, current, p.w)
}

type recordCommands interface {
	list(ctx context.Context, w io.Writer) error
	add(ctx context.Context, p *prompter) error
	edit(ctx context.Context, p *prompter, id string) error
	remove(ctx context.Context, w io.Writer, id string) error
}

// recordCmd is the list/add/edit/delete screen shared by all record kinds.
// form receives the current record (zero on add) and returns the new one.
type recordCmd[T records.Record[T]] struct {
	store   *records.Store[T]
	noun    string
	columns []string
	row     func(T) []string
	form    func(p *prompter, cur T) (T, error)
}

func (c *recordCmd[T]) list(ctx context.Context, w io.Writer) error {
	items, err := c.store.View(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintf(w, "No %ss yet.\n", c.noun)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(append([]string{"ID"}, c.columns...), "\t"))
	for _, it := range items {
		fmt.Fprintln(tw, strings.Join(append([]string{it.RecordID()}, c.row(it)...), "\t"))
	}
	return tw.Flush()
}

func (c *recordCmd[T]) add(ctx context.Context, p *prompter) error {
	var zero T
	item, err := c.form(p, zero)
	if err != nil {
		return err
	}
	saved, err := c.store.Add(ctx, item)
	if err != nil {
		return err
	}
	fmt.Fprintf(p.w, "Added %s %s\n", c.noun, saved.RecordID())
	return nil
}

func (c *recordCmd[T]) edit(ctx context.Context, p *prompter, id string) error {
	cur, err := c.store.Get(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(p.w, "Press Enter to keep the current value, or type "+ClearValue+" to clear it.")
	item, err := c.form(p, cur)
	if err != nil {
		return err
	}
	if err := c.store.Update(ctx, id, item); err != nil {
		return err
	}
	fmt.Fprintf(p.w, "Saved %s %s\n", c.noun, id)
	return nil
}

func (c *recordCmd[T]) remove(ctx context.Context, w io.Writer, id string) error {
	if err := c.store.Remove(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(w, "Deleted %s %s\n", c.noun, id)
	return nil
}
