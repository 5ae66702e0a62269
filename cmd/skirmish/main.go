// Package main provides the skirmish binary: a terminal front end for
// turn-based encounters against a roster of scripted enemies.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/config"
	"github.com/cory-johannsen/skirmish/internal/frontend/text"
	"github.com/cory-johannsen/skirmish/internal/game/encounter"
	"github.com/cory-johannsen/skirmish/internal/game/roster"
	"github.com/cory-johannsen/skirmish/internal/observability"
	"github.com/cory-johannsen/skirmish/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	rosterPath := flag.String("roster", "", "path to roster YAML; overrides content.roster_file")
	color := flag.Bool("color", false, "enable ANSI color output")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	if *rosterPath != "" {
		cfg.Content.RosterFile = *rosterPath
	}
	r, err := loadRoster(cfg.Content.RosterFile)
	if err != nil {
		logger.Fatal("loading roster", zap.Error(err))
	}
	logger.Info("roster loaded",
		zap.String("player", r.Player.Name),
		zap.Int("enemies", len(r.Enemies)),
		zap.String("source", rosterSource(cfg.Content.RosterFile)),
	)

	engine := encounter.NewEngine(cfg.Rules.ToRules(), logger)
	renderer := text.NewRenderer(*color)
	session := NewSession(os.Stdin, os.Stdout, r, engine, renderer, logger)

	lc := server.NewLifecycle(logger)
	lc.Add("session", session)
	if err := lc.Run(context.Background()); err != nil {
		logger.Fatal("session failed", zap.Error(err))
	}
}

func loadRoster(path string) (*roster.Roster, error) {
	if path == "" {
		return roster.Default(), nil
	}
	return roster.LoadFile(path)
}

func rosterSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
