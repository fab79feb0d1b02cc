package main

import (
	"testing"

	"github.com/WillChangeThisLater/gpt-chess/app/config"
)

// Failures inside run must come back as errors so deferred cleanup (the
// engine shutdown) still fires; only main is allowed to exit the process.
func TestRunReturnsErrorOnBadConfig(t *testing.T) {
	t.Setenv("ENGINE_MOVE_TIME", "not-a-number")
	t.Setenv("WHITE_PLAYER", config.PlayerRandom)
	t.Setenv("BLACK_PLAYER", config.PlayerRandom)

	if err := run(); err == nil {
		t.Fatalf("run should return an error on bad config")
	}
}

func TestBuildPlayerFailures(t *testing.T) {
	cfg := &config.Config{}
	cfg.Engine.MoveTime = 100

	t.Run("unknown kind", func(t *testing.T) {
		if _, err := buildPlayer(cfg, "grandmaster", 1500, nil); err == nil {
			t.Fatalf("buildPlayer should reject unknown kinds")
		}
	})

	t.Run("out of range elo", func(t *testing.T) {
		if _, err := buildPlayer(cfg, config.PlayerEngine, 100, nil); err == nil {
			t.Fatalf("buildPlayer should reject an out-of-range elo")
		}
	})
}
