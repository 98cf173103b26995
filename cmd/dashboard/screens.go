package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/nexus-dashboard/internal/domain"
	"github.com/nexus-dashboard/internal/view"
	"golang.org/x/sync/errgroup"
)

type summaryCmd struct{ *env }

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the dashboard overview" }
func (*summaryCmd) Usage() string {
	return `dashboard summary

  Shows portfolio value and P&L, order counts, the top movers and the most
  recent orders.
`
}
func (*summaryCmd) SetFlags(*flag.FlagSet) {}

func (c *summaryCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var (
		portfolio []domain.PortfolioItem
		market    []domain.MarketData
		orders    []domain.Order
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { portfolio, err = c.client.GetPortfolio(gctx); return })
	g.Go(func() (err error) { market, err = c.client.GetMarketData(gctx); return })
	g.Go(func() (err error) { orders, err = c.client.GetOrders(gctx); return })
	if err := g.Wait(); err != nil {
		return fail(err)
	}

	s := view.Dashboard(portfolio, market, orders)
	fmt.Fprintf(c.out, "Portfolio value  %s\n", c.money(s.TotalValue))
	fmt.Fprintf(c.out, "Total P&L        %s (%s)\n", c.signed(s.TotalPnl), view.FormatPercent(s.PnlPercent))
	fmt.Fprintf(c.out, "Positions        %d\n", s.Positions)
	fmt.Fprintf(c.out, "Orders           %d (%d pending)\n", s.TotalOrders, s.PendingOrders)
	fmt.Fprintf(c.out, "Stocks tracked   %d\n\n", s.StocksTracked)

	c.printMovers("Top gainers", s.TopGainers)
	c.printMovers("Top losers", s.TopLosers)

	fmt.Fprintln(c.out, "Recent orders")
	c.printOrders(s.RecentOrders)
	return subcommands.ExitSuccess
}

type portfolioCmd struct{ *env }

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "list holdings with value and unrealized P&L" }
func (*portfolioCmd) Usage() string    { return "dashboard portfolio\n" }
func (*portfolioCmd) SetFlags(*flag.FlagSet) {}

func (c *portfolioCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	items, err := c.client.GetPortfolio(ctx)
	if err != nil {
		return fail(err)
	}
	tw := c.table()
	fmt.Fprintln(tw, "SYMBOL\tQTY\tAVG PRICE\tPRICE\tVALUE\tP&L")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n", it.Symbol, it.Quantity,
			c.money(it.AvgBuyPrice), c.money(it.CurrentPrice), c.money(it.CurrentValue), c.signed(it.UnrealizedPnl))
	}
	t := view.AggregatePortfolio(items)
	fmt.Fprintf(tw, "TOTAL\t\t\t\t%s\t%s\n", c.money(t.TotalValue), c.signed(t.TotalPnl))
	tw.Flush()
	return subcommands.ExitSuccess
}

type marketCmd struct {
	*env
	search string
	clicks string
}

func (*marketCmd) Name() string     { return "market" }
func (*marketCmd) Synopsis() string { return "search and sort live quotes" }
func (*marketCmd) Usage() string {
	return `dashboard market [-q <text>] [-sort <column>[,<column>...]]

  Columns: symbol, price, changePercent, volume. Each -sort entry is a click
  on that column header: a new column sorts descending, clicking the active
  column again flips it. Rows start sorted by symbol, descending.
`
}

func (c *marketCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.search, "q", "", "Keep rows whose symbol or name contains this text")
	f.StringVar(&c.clicks, "sort", "", "Comma-separated column header clicks")
}

func (c *marketCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	data, err := c.client.GetMarketData(ctx)
	if err != nil {
		return fail(err)
	}
	key, dir := clickSort(view.SortBySymbol, view.Desc, c.clicks)
	rows := view.FilterAndSortMarket(data, c.search, key, dir)
	tw := c.table()
	fmt.Fprintln(tw, "SYMBOL\tNAME\tPRICE\tCHANGE\tCHANGE %\tVOLUME")
	for _, d := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n", d.Symbol, d.Name, c.money(d.Price), c.signed(d.Change),
			view.FormatPercent(d.ChangePercent), d.Volume)
	}
	tw.Flush()
	return subcommands.ExitSuccess
}

type ordersCmd struct {
	*env
	clicks string
}

func (*ordersCmd) Name() string     { return "orders" }
func (*ordersCmd) Synopsis() string { return "list orders" }
func (*ordersCmd) Usage() string {
	return `dashboard orders [-sort <column>[,<column>...]]

  Columns: date, status, amount. Clicks work as on the market screen; orders
  start newest first.
`
}

func (c *ordersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.clicks, "sort", "", "Comma-separated column header clicks")
}

func (c *ordersCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	orders, err := c.client.GetOrders(ctx)
	if err != nil {
		return fail(err)
	}
	key, dir := clickSort(view.SortByDate, view.Desc, c.clicks)
	c.printOrders(view.SortOrders(orders, key, dir))
	return subcommands.ExitSuccess
}

type moversCmd struct {
	*env
	limit int
}

func (*moversCmd) Name() string     { return "movers" }
func (*moversCmd) Synopsis() string { return "show the biggest gainers and losers" }
func (*moversCmd) Usage() string    { return "dashboard movers [-n <limit>]\n" }

func (c *moversCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 3, "Rows per list")
}

func (c *moversCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	data, err := c.client.GetMarketData(ctx)
	if err != nil {
		return fail(err)
	}
	c.printMovers("Top gainers", view.RankMovers(data, view.Gain, c.limit))
	c.printMovers("Top losers", view.RankMovers(data, view.Loss, c.limit))
	return subcommands.ExitSuccess
}

func (e *env) printMovers(title string, rows []domain.MarketData) {
	fmt.Fprintln(e.out, title)
	tw := e.table()
	for _, d := range rows {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", d.Symbol, e.money(d.Price), view.FormatPercent(d.ChangePercent))
	}
	if len(rows) == 0 {
		fmt.Fprintln(tw, "  none")
	}
	tw.Flush()
	fmt.Fprintln(e.out)
}

func (e *env) printOrders(orders []domain.Order) {
	tw := e.table()
	fmt.Fprintln(tw, "ID\tDATE\tSYMBOL\tSIDE\tQTY\tPRICE\tAMOUNT\tSTATUS\tACTIONS")
	for _, o := range orders {
		actions := "-"
		if view.CanEdit(o) && view.CanCancel(o) {
			actions = "edit,cancel"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n", o.ID, o.PlacedAt.Format("2006-01-02 15:04"),
			o.Symbol, o.Type, o.Quantity, e.money(o.Price), e.money(o.Amount().InexactFloat64()), o.Status, actions)
	}
	tw.Flush()
}
