package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/nexus-dashboard/internal/domain"
	"github.com/nexus-dashboard/internal/view"
)

type placeCmd struct {
	*env
	symbol   string
	side     string
	quantity int64
	price    float64
}

func (*placeCmd) Name() string     { return "place" }
func (*placeCmd) Synopsis() string { return "place a buy or sell order" }
func (*placeCmd) Usage() string {
	return `dashboard place -symbol <symbol> -side buy|sell -qty <n> -price <price>
`
}

func (c *placeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Ticker symbol")
	f.StringVar(&c.side, "side", string(domain.OrderBuy), "buy or sell")
	f.Int64Var(&c.quantity, "qty", 1, "Number of shares")
	f.Float64Var(&c.price, "price", 0, "Limit price per share")
}

func (c *placeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.price <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	o, err := c.client.CreateOrder(ctx, domain.CreateOrderRequest{
		Symbol:   c.symbol,
		Type:     domain.OrderSide(c.side),
		Quantity: c.quantity,
		Price:    c.price,
	})
	if err != nil {
		return fail(err)
	}
	fmt.Fprintf(c.out, "order %s placed: %s %d %s @ %s, total %s (%s)\n", o.ID, o.Type, o.Quantity, o.Symbol,
		c.money(o.Price), c.money(view.OrderTotal(o.Price, o.Quantity)), o.Status)
	return subcommands.ExitSuccess
}
