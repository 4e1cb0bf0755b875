// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the spell checking server and CLI [DBG] application.

WordSpell loads a sectioned affix dictionary (base words, prefix and suffix rules,
phonetic rules) and answers containment, correction, expansion, phonetic and completion
queries. It can operate as a MessagePack IPC server for integration with text editors,
or as a CLI application for testing and debugging dictionaries.

# Usage

Start the server on a dictionary:

	wordspell -dict en.dic

Decode a Latin-1 dictionary and reload it whenever the file changes:

	wordspell -dict de.dic -enc latin1 -watch

Run in CLI mode for interactive testing:

	wordspell -dict en.dic -c -limit 10

A relative -dict path is looked up in the working directory, next to the executable,
and in the dicts/ directory under both the executable and the config directory.

# Configuration

Runtime configuration is managed through a TOML file:

	[server]
	max_limit = 64
	max_word_len = 100
	default_limit = 10

	[dict]
	path = ""
	encoding = "auto"
	watch = false

	[suggest]
	max_distance = 3
	cache_size = 1024
	phonetic = true
	max_candidates = 5000

	[cli]
	default_limit = 8
	show_bases = true

The config file is created with defaults if it doesn't exist. Flags override it.
Values of the wrong type are ignored individually; the rest of the file still applies.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout:

	{"id": "1", "op": "check", "w": "unbaked"}
	{"id": "1", "k": true, "b": ["unbake", "bake"], "t": 41}

See package server for every operation.

# Command Line Flags

	-dict string
	    Dictionary file (default from config)
	-enc string
	    Dictionary encoding: auto, utf-8, iso-8859-1, ... (default from config)
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-config string
	    Path to a config file
	-limit int
	    Number of suggestions to return in CLI mode
	-watch
	    Reload the dictionary when its file changes
	-rebuild-config
	    Write a fresh default config file and exit
	-version
	    Show current version
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordspell/internal/cli"
	"github.com/bastiangx/wordspell/internal/logger"
	"github.com/bastiangx/wordspell/internal/utils"
	"github.com/bastiangx/wordspell/pkg/config"
	"github.com/bastiangx/wordspell/pkg/dictionary"
	"github.com/bastiangx/wordspell/pkg/server"
	"github.com/bastiangx/wordspell/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0-beta"
	AppName = "wordspell"
	gh      = "https://github.com/bastiangx/wordspell"
)

// sigHandler cancels ctx on the first interrupt and exits on the second.
func sigHandler(cancel context.CancelFunc) {
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		cancel()
		<-c
		os.Exit(1)
	}()
}

// main wires config, dictionary, engine and the chosen front end together.
// It does not implement logic for them and only manages the flow.
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigHandler(cancel)

	showVersion := flag.Bool("version", false, "Show current version")
	dictPath := flag.String("dict", "", "Dictionary file (default from config)")
	encoding := flag.String("enc", "", "Dictionary encoding (default from config)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	configPath := flag.String("config", "", "Path to config file")
	limit := flag.Int("limit", 0, "Number of suggestions to return in CLI mode (default from config)")
	watch := flag.Bool("watch", false, "Reload the dictionary when its file changes")
	rebuild := flag.Bool("rebuild-config", false, "Write a fresh default config file and exit")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}
	log.SetOutput(os.Stderr)

	if *rebuild {
		path, err := config.RebuildConfigFile()
		if err != nil {
			log.Fatalf("Failed to rebuild config: %v", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote default config to %s\n", path)
		os.Exit(0)
	}

	appConfig, loadedFrom, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(loadedFrom))

	if *dictPath == "" {
		*dictPath = appConfig.Dict.Path
	}
	if *dictPath == "" {
		log.Fatal("No dictionary given: use -dict or set dict.path in the config file")
	}
	if *encoding == "" {
		*encoding = appConfig.Dict.Encoding
	}
	enc, err := dictionary.ParseEncoding(*encoding)
	if err != nil {
		log.Fatalf("Invalid encoding: %v", err)
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}
	resolved := pathResolver.ResolveDictPath(*dictPath)
	if err := dictionary.ValidateFile(resolved); err != nil {
		log.Fatalf("Invalid dictionary: %v", err)
	}

	log.Debugf("Loading dictionary %s (%s)", resolved, enc)
	reloader, err := dictionary.NewReloader(resolved, enc)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}

	engine := suggest.NewLive(reloader, suggestOptions(appConfig.Suggest))

	if *watch || appConfig.Dict.Watch {
		go func() {
			if err := reloader.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Errorf("Dictionary watcher stopped: %v", err)
			}
		}()
	}

	// CLI would be mainly used for testing and dbg purposes.
	if *cliMode {
		log.SetReportTimestamp(false)
		n := *limit
		if n < 1 {
			n = appConfig.CLI.DefaultLimit
		}
		log.Debug("Input info:", "limit", n, "showBases", appConfig.CLI.ShowBases)

		inputHandler := cli.NewInputHandler(engine, n, appConfig.CLI.ShowBases)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	showStartupInfo(resolved, reloader.Current().Stats())

	srv := server.NewServer(engine, appConfig.Server)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func suggestOptions(c config.SuggestConfig) suggest.Options {
	return suggest.Options{
		MaxDistance:   c.MaxDistance,
		MaxCandidates: c.MaxCandidates,
		Phonetic:      c.Phonetic,
		CacheSize:     c.CacheSize,
	}
}

func printVersion() {
	banner := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["encodings"] = lipgloss.NewStyle().Faint(true)
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ WordSpell ] affix dictionary spell checker")
	banner.Print("", "version", Version)
	banner.Print("", "encodings", fmt.Sprint(dictionary.SupportedEncodings()))
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}

// showStartupInfo writes basic info about the loaded dictionary to stderr.
func showStartupInfo(path string, stats dictionary.Stats) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)
	defer log.SetLevel(currentLevel)

	log.Infof("%s %s (pid %d)", AppName, Version, os.Getpid())
	log.Info("dictionary loaded", "path", path, "words", stats.Words,
		"prefixRules", stats.PrefixRules, "suffixRules", stats.SuffixRules,
		"phoneticRules", stats.PhoneticRules, "skipped", stats.SkippedLines)
	log.Info("status: ready")
}
