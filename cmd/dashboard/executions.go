package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/nexus-dashboard/internal/api"
)

type executionsCmd struct{ *env }

func (*executionsCmd) Name() string     { return "executions" }
func (*executionsCmd) Synopsis() string { return "list fills for your orders" }
func (*executionsCmd) Usage() string {
	return `dashboard executions

  Lists order fills in the order the backend returns them. Backends
  without an executions route are reported as having no fills.
`
}
func (*executionsCmd) SetFlags(*flag.FlagSet) {}

func (c *executionsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fills, err := c.client.GetExecutions(ctx)
	if api.IsNotFound(err) {
		c.logger.Debug("executions route not served", "err", err)
		fills = nil
	} else if err != nil {
		return fail(err)
	}
	if len(fills) == 0 {
		fmt.Fprintln(c.out, "no executions")
		return subcommands.ExitSuccess
	}

	tw := c.table()
	fmt.Fprintln(tw, "ID\tORDER\tTIME\tSYMBOL\tQTY\tPRICE\tVALUE")
	for _, x := range fills {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n", x.ID, x.OrderID, x.ExecutedAt.Format("2006-01-02 15:04"),
			x.Symbol, x.ExecutedQuantity, c.money(x.ExecutedPrice), c.money(x.ExecutedPrice*float64(x.ExecutedQuantity)))
	}
	tw.Flush()
	return subcommands.ExitSuccess
}
