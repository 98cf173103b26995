package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/google/subcommands"
	"github.com/nexus-dashboard/internal/api"
	"github.com/nexus-dashboard/internal/view"
)

// env is shared by every command. main fills it after flag parsing.
type env struct {
	client   *api.Client
	logger   *slog.Logger
	currency string
	out      io.Writer

	// concurrency bounds the PATCHes mark-all-read keeps in flight.
	concurrency int
}

func (e *env) table() *tabwriter.Writer {
	return tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
}

func (e *env) money(v float64) string { return view.FormatCurrency(v, e.currency) }

func (e *env) signed(v float64) string { return view.FormatSignedCurrency(v, e.currency) }

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, err)
	return subcommands.ExitFailure
}

// clickSort replays comma-separated column header clicks starting from the
// screen's initial sort.
func clickSort[K ~string](key K, dir view.Direction, clicks string) (K, view.Direction) {
	for _, c := range strings.Split(clicks, ",") {
		if c = strings.TrimSpace(c); c != "" {
			key, dir = view.ToggleSortDirection(key, dir, K(c))
		}
	}
	return key, dir
}
