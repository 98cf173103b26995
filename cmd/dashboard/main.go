// Command dashboard renders the trading dashboard screens in a terminal and
// drives the notification store against the REST backend.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/nexus-dashboard/internal/api"
	"github.com/nexus-dashboard/internal/config"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	apiURL := flag.String("api", cfg.APIBaseURL, "Base URL of the dashboard backend")
	currency := flag.String("currency", cfg.Currency, "ISO 4217 code used to display amounts")
	verbose := flag.Bool("v", false, "Log requests and store rollbacks to stderr")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	e := &env{out: os.Stdout}
	register(commander, e)

	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	e.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	e.currency = *currency
	e.concurrency = cfg.NotificationConcurrency
	e.client = api.NewClient(*apiURL,
		api.WithTimeout(cfg.APITimeout),
		api.WithRetries(cfg.APIMaxRetries, 250*time.Millisecond),
		api.WithLogger(e.logger),
		api.WithUserAgent(api.DefaultUserAgent+" (cli)"),
	)

	os.Exit(int(commander.Execute(context.Background())))
}

// register adds every dashboard command to c, grouped by screen.
func register(c *subcommands.Commander, e *env) {
	c.Register(&summaryCmd{env: e}, "screens")
	c.Register(&portfolioCmd{env: e}, "screens")
	c.Register(&marketCmd{env: e}, "screens")
	c.Register(&ordersCmd{env: e}, "screens")
	c.Register(&moversCmd{env: e}, "screens")
	c.Register(&executionsCmd{env: e}, "screens")

	c.Register(&notificationsCmd{env: e}, "notifications")

	c.Register(&placeCmd{env: e}, "trading")
}
