package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/rephrase/internal/cli"
	"github.com/bastiangx/rephrase/pkg/annotate"
	"github.com/bastiangx/rephrase/pkg/config"
	"github.com/bastiangx/rephrase/pkg/engine"
	"github.com/bastiangx/rephrase/pkg/inflect"
	"github.com/bastiangx/rephrase/pkg/rules"
	"github.com/bastiangx/rephrase/pkg/scorer"
	"github.com/bastiangx/rephrase/pkg/server"
)

func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()
	rulePath := flag.String("rules", "", "Path to a JSON or YAML rule file (required)")
	configPath := flag.String("config", "", "Path to config.toml (default: ~/.config/rephrase/config.toml)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run in CLI input handler mode")
	limit := flag.Int("limit", 0, "Number of suggestions to return per match (0 uses the config value)")

	flag.Parse()

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(false)
	} else {
		log.SetLevel(log.ErrorLevel)
	}

	cfg, cfgPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfgPath != "" {
		log.Debugf("Using config: %s", cfgPath)
	}

	if *rulePath == "" {
		log.Fatal("No rule file given, pass one with -rules")
	}
	ruleSet, err := rules.LoadFile(*rulePath)
	if err != nil {
		log.Fatalf("Failed to load rules from %s: %v", *rulePath, err)
	}
	log.Debugf("Loaded %d rules from %s", len(ruleSet), *rulePath)

	var sc scorer.Scorer = scorer.Default{}
	if cfg.Scorer.BigramPath != "" {
		ngram, err := scorer.LoadNgram(cfg.Scorer.BigramPath, cfg.Scorer.UnseenLogProb)
		if err != nil {
			log.Fatalf("Failed to load bigram table: %v", err)
		}
		sc = ngram
		log.Debugf("Using bigram scorer from %s", cfg.Scorer.BigramPath)
	}

	inflector := inflect.NewEnglish(nil)
	eng, err := engine.New(ruleSet, engine.Options{
		Annotator:                annotate.NewWithInflector(inflector),
		Inflector:                inflector,
		Scorer:                   sc,
		ExpansionCap:             cfg.Engine.ExpansionCap,
		DefaultMaxCount:          cfg.Engine.DefaultMaxCount,
		FilterSuggestions:        cfg.Engine.FilterSuggestions,
		AllowMultipleWhitespaces: cfg.Engine.AllowMultipleWhitespaces,
	})
	if err != nil {
		log.Fatalf("Failed to build engine: %v", err)
	}

	maxSuggestions := cfg.Server.MaxSuggestions
	if *limit > 0 {
		maxSuggestions = *limit
	}

	if *cliMode {
		inputHandler := cli.NewInputHandler(eng, 10000, maxSuggestions)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI input handler error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC processor")
	srv := server.NewServer(eng, maxSuggestions)
	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
