package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/go-playground/validator/v10"
	"github.com/notnil/chess"
)

// Player is anything that can propose one legal move for the current position.
// Implementations must only read the board; the game loop applies the move.
type Player interface {
	GetMove(ctx context.Context, board *Board) (*chess.Move, error)
	Name() string
}

// Stockfish only honors UCI_Elo inside this range when UCI_LimitStrength is on.
// https://official-stockfish.github.io/docs/stockfish-wiki/UCI-&-Commands.html
const (
	MinElo = 1320
	MaxElo = 3190
)

var validate = validator.New()

// Elo is a validated engine strength rating. Construct via NewElo; an
// out-of-range value is a configuration error, caught before the engine ever
// sees it.
type Elo int

type eloSpec struct {
	Rating int `validate:"gte=1320,lte=3190"`
}

func NewElo(rating int) (Elo, error) {
	if err := validate.Struct(eloSpec{Rating: rating}); err != nil {
		return 0, fmt.Errorf("engine elo %d outside supported range %d-%d: %w", rating, MinElo, MaxElo, err)
	}
	return Elo(rating), nil
}

// RandomPlayer plays a uniformly random legal move. Mostly useful as a
// baseline opponent and in tests.
type RandomPlayer struct{}

func NewRandomPlayer() *RandomPlayer {
	return &RandomPlayer{}
}

func (p *RandomPlayer) GetMove(ctx context.Context, board *Board) (*chess.Move, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return nil, errors.New("no legal moves")
	}
	return moves[rand.Intn(len(moves))], nil
}

func (p *RandomPlayer) Name() string {
	return "random"
}

// EnginePlayer asks a UCI engine for its best move at a fixed strength. The
// engine handle is owned by the caller (one process can back several players);
// the strength option is re-applied before every query because it is shared
// engine state.
type EnginePlayer struct {
	engine   *UCIEngine
	elo      Elo
	moveTime int // milliseconds
}

func NewEnginePlayer(engine *UCIEngine, elo Elo, moveTimeMS int) *EnginePlayer {
	return &EnginePlayer{engine: engine, elo: elo, moveTime: moveTimeMS}
}

func (p *EnginePlayer) GetMove(ctx context.Context, board *Board) (*chess.Move, error) {
	if err := p.engine.SetStrength(p.elo); err != nil {
		return nil, err
	}
	uciMove, err := p.engine.BestMove(ctx, board.FEN(), p.moveTime)
	if err != nil {
		return nil, err
	}
	// The engine never proposes illegal moves, but decode against the board
	// anyway so downstream code only ever sees canonical moves.
	move, err := board.ParseMove(uciMove)
	if err != nil {
		return nil, fmt.Errorf("engine proposed %q: %w", uciMove, err)
	}
	return move, nil
}

func (p *EnginePlayer) Name() string {
	return fmt.Sprintf("stockfish@%d", p.elo)
}
