package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/WillChangeThisLater/gpt-chess/app"
	"github.com/WillChangeThisLater/gpt-chess/app/config"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

// run owns every resource for one match. Failures return instead of exiting
// so the deferred engine shutdown still runs; main is the only place that
// calls log.Fatalf.
func run() error {
	start := time.Now()
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// One engine process backs every engine player; it is owned here and
	// released on every exit path.
	var engine *app.UCIEngine
	if cfg.Match.White == config.PlayerEngine || cfg.Match.Black == config.PlayerEngine {
		engine, err = app.NewUCIEngine(cfg.Engine.Path)
		if err != nil {
			return fmt.Errorf("failed to start engine %q: %w", cfg.Engine.Path, err)
		}
		defer engine.Close()
		if err := engine.NewGame(); err != nil {
			return fmt.Errorf("failed to reset engine: %w", err)
		}
	}

	white, err := buildPlayer(cfg, cfg.Match.White, cfg.Match.WhiteElo, engine)
	if err != nil {
		return fmt.Errorf("failed to build white player: %w", err)
	}
	black, err := buildPlayer(cfg, cfg.Match.Black, cfg.Match.BlackElo, engine)
	if err != nil {
		return fmt.Errorf("failed to build black player: %w", err)
	}

	log.Printf("White: %s", white.Name())
	log.Printf("Black: %s", black.Name())

	report, err := app.NewGame(white, black).Play(context.Background())
	if err != nil {
		return fmt.Errorf("game aborted: %w", err)
	}

	fmt.Println(strings.Join(report.SANHistory, " "))
	fmt.Printf("%s by %s after %d plies\n", report.Outcome, report.Method, report.TotalPlies)
	fmt.Println(report.Result)
	log.Printf("Took %s", time.Since(start))
	return nil
}

func buildPlayer(cfg *config.Config, kind string, elo int, engine *app.UCIEngine) (app.Player, error) {
	switch kind {
	case config.PlayerRandom:
		return app.NewRandomPlayer(), nil
	case config.PlayerEngine:
		rating, err := app.NewElo(elo)
		if err != nil {
			return nil, err
		}
		return app.NewEnginePlayer(engine, rating, cfg.Engine.MoveTime), nil
	case config.PlayerOpenAI:
		model := app.NewOpenAIModel(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
		return app.NewLLMPlayer(model, cfg.OpenAI.Model), nil
	}
	return nil, fmt.Errorf("unknown player kind %q", kind)
}
