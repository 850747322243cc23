// Copyright 2025 The Fuzzdict Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the fuzzdict finder application.

Fuzzdict shows, in real time, the dictionary words closest to whatever is
typed, ranked by length-normalized edit distance. It runs as a full-screen
terminal UI by default, or as a msgpack IPC server for editor integration.

# Usage

Start the finder against the system dictionary:

	fuzzdict

Use a custom word list and a fixed number of result rows:

	fuzzdict -dict ./words.txt -limit 15

Run the msgpack IPC server over stdin/stdout:

	fuzzdict -serve

Rank queries line by line without the full-screen UI:

	fuzzdict -c -limit 10

# Keys

Typing edits the query; every keystroke re-ranks the dictionary. Up/Down
(or Ctrl+P/Ctrl+N) move the selection, Tab completes the query to the
first prefix match, Enter prints the selected word to stdout and exits,
Esc or Ctrl+C quits without printing.

# Configuration

Runtime configuration lives in a TOML file, created with defaults on first
run at ~/.config/fuzzdict/config.toml:

	[dict]
	path = "/usr/share/dict/words"
	case_sensitive = false

	[rank]
	workers = 0
	max_limit = 64

	[tui]
	rows = 0

Command line flags override the file for a single invocation.

# Exit codes

0 on a normal exit (with or without a selection); 1 when the dictionary
cannot be loaded or the terminal cannot be initialized.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/bastiangx/fuzzdict/internal/cli"
	"github.com/bastiangx/fuzzdict/internal/tui"
	"github.com/bastiangx/fuzzdict/pkg/config"
	"github.com/bastiangx/fuzzdict/pkg/dictionary"
	"github.com/bastiangx/fuzzdict/pkg/server"
)

const (
	Version = "0.3.0"
	AppName = "fuzzdict"
	gh      = "https://github.com/bastiangx/fuzzdict"
)

// sigHandler restores the terminal before exiting on OS signals.
func sigHandler(screen tcell.Screen) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		if screen != nil {
			screen.Fini()
		}
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires the flags, config, dictionary and the chosen mode together.
// The packages do the actual work; main only manages the flow.
func main() {
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	dictPath := flag.String("dict", "", "Dictionary file, one word per line (overrides config)")
	configPath := flag.String("config", "", "Path to config.toml")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	serveMode := flag.Bool("serve", false, "Run the msgpack IPC server instead of the TUI")
	cliMode := flag.Bool("c", false, "Run line-mode CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaultConfig.TUI.Rows, "Number of result rows (0 derives from terminal height)")
	workers := flag.Int("workers", defaultConfig.Rank.Workers, "Parallel scan workers (0 for GOMAXPROCS)")
	caseSensitive := flag.Bool("case", defaultConfig.Dict.CaseSensitive, "Match case-sensitively")

	flag.Parse()

	if *showVersion {
		showVersionInfo()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if activePath != "" {
		log.Debugf("Using config file: (%s)", activePath)
	}

	// Flags passed explicitly win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dict":
			appConfig.Dict.Path = *dictPath
		case "case":
			appConfig.Dict.CaseSensitive = *caseSensitive
		case "workers":
			appConfig.Rank.Workers = *workers
		case "limit":
			appConfig.TUI.Rows = *limit
		}
	})

	log.Debugf("Loading dictionary from: %s", appConfig.Dict.Path)
	store, err := dictionary.Load(appConfig.Dict.Path, appConfig.Dict.CaseSensitive)
	if err != nil {
		if errors.Is(err, dictionary.ErrEmptyDictionary) {
			log.Errorf("Dictionary at %s has no usable words", appConfig.Dict.Path)
		} else {
			log.Errorf("Could not read dictionary: %v", err)
		}
		os.Exit(1)
	}
	log.Debugf("Dictionary ready: %d words", store.Len())

	// CLI mode is mainly for testing and dbg purposes.
	// New ranking behavior should be checked here before touching the TUI.
	if *cliMode {
		sigHandler(nil)
		log.SetReportTimestamp(false)
		cliLimit := appConfig.TUI.Rows
		if cliLimit <= 0 {
			cliLimit = 10
		}
		inputHandler := cli.NewInputHandler(store, cliLimit, appConfig.Rank.Workers)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	if *serveMode {
		sigHandler(nil)
		log.Debug("spawning IPC")
		srv := server.NewServer(store, appConfig)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Errorf("Failed to create terminal screen: %v", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		log.Errorf("Failed to initialize terminal: %v", err)
		os.Exit(1)
	}
	sigHandler(screen)

	app := tui.New(screen, store, appConfig)
	word, runErr := app.Run()
	screen.Fini()

	if runErr != nil {
		log.Fatalf("TUI error: %v", runErr)
	}
	if word != "" {
		fmt.Println(word)
	}
}

// showVersionInfo displays version info with styled output.
func showVersionInfo() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ Fuzzdict ] Finds the words you almost typed!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}
