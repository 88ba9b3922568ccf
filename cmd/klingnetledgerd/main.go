// Command klingnetledgerd runs the fork-manager ledger as an interactive
// line-based REPL.
package main

import (
	"fmt"
	"os"

	"github.com/benbjohnson/clock"
	"github.com/urfave/cli/v2"

	"github.com/Klingon-tech/klingnet-fork/config"
	"github.com/Klingon-tech/klingnet-fork/internal/fork"
	"github.com/Klingon-tech/klingnet-fork/internal/log"
	"github.com/Klingon-tech/klingnet-fork/internal/repl"
)

func main() {
	app := &cli.App{
		Name:  "klingnetledgerd",
		Usage: "in-memory fork-manager ledger, commands read from stdin as JSON lines",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "recent-limit",
				Usage: "number of recent main-chain tips kept in the fast-extension cache",
				Value: config.DefaultRecentLimit,
			},
			&cli.StringFlag{
				Name:  "history",
				Usage: "path to the REPL history file",
				Value: config.DefaultConfig().HistoryFile,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn, or error",
				Value: "info",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "emit structured JSON logs instead of the colored console writer",
			},
			&cli.StringFlag{
				Name:  "commands",
				Usage: "read an initial batch of command envelopes from this file before prompting interactively",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a .conf file overlaying the defaults (explicit flags still win)",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg := config.DefaultConfig()

	if path := c.String("config"); path != "" {
		values, err := config.LoadFile(path)
		if err != nil {
			return fmt.Errorf("load config file: %w", err)
		}
		if err := config.ApplyFileConfig(cfg, values); err != nil {
			return fmt.Errorf("apply config file: %w", err)
		}
	}

	if c.IsSet("recent-limit") {
		cfg.RecentLimit = c.Int("recent-limit")
	}
	if c.IsSet("history") {
		cfg.HistoryFile = c.String("history")
	}
	if c.IsSet("commands") {
		cfg.CommandsFile = c.String("commands")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-json") {
		cfg.Log.JSON = c.Bool("log-json")
	}

	log.Init(cfg.Log.Level, cfg.Log.JSON)

	manager := fork.NewManager(cfg.RecentLimit, clock.New())
	adapter := repl.NewAdapter(manager)
	r := repl.New(adapter, cfg.HistoryFile)

	if cfg.CommandsFile != "" {
		f, err := os.Open(cfg.CommandsFile)
		if err != nil {
			return fmt.Errorf("open commands file: %w", err)
		}
		err = r.RunCommands(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("run commands file: %w", err)
		}
	}

	return r.Run()
}
