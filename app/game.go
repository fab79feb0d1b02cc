package app

import (
	"context"
	"fmt"
	"log"

	"github.com/WillChangeThisLater/gpt-chess/app/models"
	"github.com/notnil/chess"
)

// Game alternates two players over one board until the position is terminal.
// Strictly sequential: every turn blocks on the active player's round trips.
// There is no recovery here; any player or board error aborts the run with no
// partial result.
type Game struct {
	board *Board
	white Player
	black Player
}

func NewGame(white, black Player) *Game {
	return &Game{board: NewBoard(), white: white, black: black}
}

func (g *Game) Play(ctx context.Context) (models.GameReport, error) {
	fmt.Println(Prettify(g.board))

	for !g.board.IsTerminal() {
		player := g.white
		if g.board.WaitingOn() == chess.Black {
			player = g.black
		}

		move, err := player.GetMove(ctx, g.board)
		if err != nil {
			return models.GameReport{}, fmt.Errorf("%s to move: %w", g.board.WaitingOn().Name(), err)
		}
		if err := g.board.SubmitMove(move); err != nil {
			return models.GameReport{}, fmt.Errorf("%s played unplayable move: %w", player.Name(), err)
		}

		log.Printf("%s played %s", player.Name(), chess.UCINotation{}.Encode(nil, move))
		fmt.Println()
		fmt.Println(Prettify(g.board))
		fmt.Println()
	}

	history := g.board.AlgebraicHistory()
	return models.GameReport{
		Result:     ClassifyOutcome(g.board.Outcome()),
		Outcome:    g.board.Outcome().String(),
		Method:     g.board.Method().String(),
		SANHistory: history,
		PGN:        g.board.PGN(),
		White:      g.white.Name(),
		Black:      g.black.Name(),
		TotalPlies: len(history),
	}, nil
}
