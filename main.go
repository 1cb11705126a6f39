// devconsole - an embeddable developer console for terminal apps.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jeranaias/devconsole/internal/cli"
	"github.com/jeranaias/devconsole/internal/config"
	"github.com/jeranaias/devconsole/internal/console"
	"github.com/jeranaias/devconsole/internal/ui"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to config file (default ~/.devconsole/config.toml)")
		plain      = flag.Bool("plain", false, "run the plain-terminal REPL host instead of the TUI")
		dev        = flag.Bool("dev", false, "register dev-only commands")
		themeMode  = flag.String("theme", "", "color theme: dark, light or auto (overrides config)")
		version    = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Printf("devconsole %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "devconsole: %v\n", err)
		os.Exit(1)
	}
	if *themeMode != "" {
		cfg.Theme = *themeMode
	}

	con := console.New(console.Options{
		DevBuilds:   cfg.DevBuilds || *dev,
		HistorySize: cfg.HistorySize,
		LogCapacity: cfg.LogCapacity,
	})

	for key, command := range cfg.Bindings {
		con.Bind(key, command)
	}

	// Hot-reload: the watcher goroutine only feeds the channel; hosts
	// apply reloaded configs on their own update loop.
	watchPath := *configPath
	if watchPath == "" {
		if p, err := config.ConfigPath(); err == nil {
			watchPath = p
		}
	}
	var reload chan *config.Config
	if watchPath != "" {
		reload = make(chan *config.Config, 1)
		watcher, err := config.NewWatcher(watchPath, func(next *config.Config) {
			select {
			case reload <- next:
			default:
			}
		})
		if err == nil {
			err = watcher.Watch()
			if err != nil {
				watcher.Close()
			} else {
				defer watcher.Close()
			}
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "devconsole: config hot reload disabled: %v\n", err)
		}
	}

	theme := ui.NewTheme(cfg.Theme)

	if *plain {
		repl := cli.NewREPL(con, theme, cfg, reload)
		defer repl.Close()
		if err := repl.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "devconsole: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := ui.Run(con, theme, cfg.Prompt, reload); err != nil {
		fmt.Fprintf(os.Stderr, "devconsole: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}
