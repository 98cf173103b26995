package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/nexus-dashboard/internal/domain"
	"github.com/nexus-dashboard/internal/store"
)

type notificationsCmd struct {
	*env
	toggle  string
	markAll bool
}

func (*notificationsCmd) Name() string     { return "notifications" }
func (*notificationsCmd) Synopsis() string { return "list, toggle or mark all notifications as read" }
func (*notificationsCmd) Usage() string {
	return `dashboard notifications [-toggle <id>] [-mark-all]

  Lists notifications with the unread count. -toggle flips one notification's
  read flag; -mark-all marks every unread notification as read. A failed
  write is rolled back and reported. When the backend cannot be read, a
  built-in sample list is shown instead.
`
}

func (c *notificationsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.toggle, "toggle", "", "Flip the read flag of the notification with this id")
	f.BoolVar(&c.markAll, "mark-all", false, "Mark all notifications as read")
}

func (c *notificationsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := store.New(c.client, store.WithLogger(c.logger), store.WithConcurrency(c.concurrency))
	if err := s.Load(ctx); err != nil && s.UsingFallback() {
		fmt.Fprintf(c.out, "backend unavailable (%v), showing sample notifications\n\n", err)
	}

	status := subcommands.ExitSuccess
	var op store.Op
	switch {
	case c.toggle != "":
		op = s.ToggleRead(ctx, c.toggle)
	case c.markAll:
		op = s.MarkAllRead(ctx)
	}
	switch op.State {
	case store.OpIdle:
		if c.toggle != "" {
			fmt.Fprintf(c.out, "no notification with id %q\n\n", c.toggle)
			status = subcommands.ExitUsageError
		}
	case store.OpCommitted:
		fmt.Fprintf(c.out, "%s: updated %d notification(s)\n\n", op.Kind, op.Touched())
	case store.OpRolledBack:
		fmt.Fprintf(c.out, "%s failed, changes rolled back: %v\n\n", op.Kind, op.Err)
		status = subcommands.ExitFailure
	}

	c.printNotifications(s.Notifications(), s.UnreadCount())
	return status
}

func (e *env) printNotifications(ns []domain.Notification, unread int) {
	fmt.Fprintf(e.out, "Notifications (%d unread)\n", unread)
	tw := e.table()
	for _, n := range ns {
		mark := " "
		if !n.IsRead {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s %s\t%s\t%s\t%s\n", mark, n.ID, n.SentAt.Format("2006-01-02 15:04"), n.Type, n.Message)
	}
	tw.Flush()
}
