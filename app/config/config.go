package config

import (
	"fmt"
	"os"
	"strconv"

	// this will automatically load your .env file:
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Engine EngineConfig
	OpenAI OpenAIConfig
	Match  MatchConfig
}

type EngineConfig struct {
	Path     string
	MoveTime int // milliseconds per engine query
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

// MatchConfig picks who sits on each side. PlayerKind is one of
// "engine", "openai", "random".
type MatchConfig struct {
	White    string
	Black    string
	WhiteElo int
	BlackElo int
}

const (
	PlayerEngine = "engine"
	PlayerOpenAI = "openai"
	PlayerRandom = "random"
)

func LoadConfig() (*Config, error) {
	moveTime, err := getEnvInt("ENGINE_MOVE_TIME", 100)
	if err != nil {
		return nil, err
	}

	whiteElo, err := getEnvInt("WHITE_ELO", 1320)
	if err != nil {
		return nil, err
	}

	blackElo, err := getEnvInt("BLACK_ELO", 1320)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Engine: EngineConfig{
			Path:     getEnv("ENGINE_PATH", "stockfish"),
			MoveTime: moveTime,
		},
		OpenAI: OpenAIConfig{
			APIKey: os.Getenv("OPENAI_API_KEY"),
			Model:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		},
		Match: MatchConfig{
			White:    getEnv("WHITE_PLAYER", PlayerEngine),
			Black:    getEnv("BLACK_PLAYER", PlayerOpenAI),
			WhiteElo: whiteElo,
			BlackElo: blackElo,
		},
	}

	for _, kind := range []string{cfg.Match.White, cfg.Match.Black} {
		switch kind {
		case PlayerEngine, PlayerOpenAI, PlayerRandom:
		default:
			return nil, fmt.Errorf("unknown player kind %q", kind)
		}
	}
	if cfg.Match.White == PlayerOpenAI || cfg.Match.Black == PlayerOpenAI {
		if cfg.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY must be set when an openai player is configured")
		}
	}

	return cfg, nil
}

// default value with env override
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("error converting string to int: %s: %w", key, err)
	}
	return n, nil
}
