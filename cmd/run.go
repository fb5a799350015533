package cmd

import (
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/triviaz/internal/app"
	"github.com/abhisek/triviaz/internal/logger"
	"github.com/abhisek/triviaz/internal/screen"
	"github.com/abhisek/triviaz/internal/screens/game"
)

// runApp builds the round defaults from config and launches the TUI.
// start, when non-nil, builds a screen to open over the home screen.
func runApp(start func(game.Round) screen.Screen) error {
	log, err := logger.NewTUI(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	round := roundFromConfig(log)
	opts := app.Options{
		Round:            round,
		ChallengeSeconds: int(cfg.Round.TimeLimit / time.Second),
		LoadErr:          bankErr,
	}
	if bankErr != nil {
		log.Error("question bank failed to load", zap.String("path", cfg.BankPath), zap.Error(bankErr))
	} else if start != nil {
		opts.Start = start(round)
	}

	log.Info("starting tui",
		zap.String("env", cfg.Env),
		zap.Int("bank_size", bankLen()),
		zap.Int("questions", cfg.Round.Questions),
		zap.String("level", cfg.Round.Level),
		zap.Bool("timed", cfg.Round.Timed),
	)
	return app.Run(opts)
}

func roundFromConfig(log *zap.Logger) game.Round {
	return game.Round{
		Bank:         bank,
		Options:      cfg.Round.QuizOptions(),
		Cycle:        cfg.Round.Cycle,
		AdvanceDelay: cfg.Round.AdvanceDelay,
		Logger:       log,
		Rand:         rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64())),
	}
}

func bankLen() int {
	if bank == nil {
		return 0
	}
	return bank.Len()
}
