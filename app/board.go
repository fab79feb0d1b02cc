package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

// ErrInvalidMove marks text that does not denote a legal move in the current
// position. Callers that can fall back to another move source should test for
// it with errors.Is; everything else propagates.
var ErrInvalidMove = errors.New("invalid move")

// Board wraps a notnil/chess game and keeps the algebraic transcript of every
// move that was actually applied. All mutation goes through SubmitMove; players
// only read.
type Board struct {
	game             *chess.Game
	algebraicHistory []string
}

func NewBoard() *Board {
	return &Board{game: chess.NewGame()}
}

// NewBoardFromFEN sets up a board from an arbitrary position. The transcript
// starts empty; history rendering only covers moves made from here on.
func NewBoardFromFEN(fen string) (*Board, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("bad FEN %q: %w", fen, err)
	}
	return &Board{game: chess.NewGame(opt)}, nil
}

// LegalMoves enumerates every legal move in the current position.
func (b *Board) LegalMoves() []*chess.Move {
	return b.game.ValidMoves()
}

// LegalMoveUCIs returns the legal moves as UCI strings ("e2e4", ...). This is
// the choice set handed to constrained generation, so it must stay in lockstep
// with LegalMoves.
func (b *Board) LegalMoveUCIs() []string {
	moves := b.game.ValidMoves()
	ucis := make([]string, len(moves))
	for i, m := range moves {
		ucis[i] = chess.UCINotation{}.Encode(nil, m)
	}
	return ucis
}

// ParseMove turns free text into a legal move for the current position. UCI
// notation is tried first (that is what the engine and the extraction prompt
// speak), then SAN. The returned move is the canonical one from the legal-move
// list, so tags (capture, check) are populated. Any failure wraps
// ErrInvalidMove.
func (b *Board) ParseMove(text string) (*chess.Move, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty move text", ErrInvalidMove)
	}

	pos := b.game.Position()
	var decoded *chess.Move
	if m, err := (chess.UCINotation{}).Decode(pos, text); err == nil {
		decoded = m
	} else if m, err := (chess.AlgebraicNotation{}).Decode(pos, text); err == nil {
		decoded = m
	} else {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMove, text)
	}

	// Decoding alone is not a legality check in every notation, so anchor the
	// result to the valid-move list.
	want := chess.UCINotation{}.Encode(nil, decoded)
	for _, m := range b.game.ValidMoves() {
		if (chess.UCINotation{}).Encode(nil, m) == want {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: %q is not legal here", ErrInvalidMove, text)
}

// SubmitMove applies a move and appends its SAN rendering to the transcript.
// The move must already be legal (from ParseMove, LegalMoves, or the engine);
// a failure here is not recoverable.
func (b *Board) SubmitMove(move *chess.Move) error {
	pos := b.game.Position()
	san := chess.AlgebraicNotation{}.Encode(pos, move)
	if err := b.game.Move(move); err != nil {
		return fmt.Errorf("submit move %s: %w", chess.UCINotation{}.Encode(nil, move), err)
	}
	b.algebraicHistory = append(b.algebraicHistory, san)
	return nil
}

// WaitingOn reports whose turn it is.
func (b *Board) WaitingOn() chess.Color {
	return b.game.Position().Turn()
}

// MoveHistory returns the applied moves as UCI strings, oldest first.
func (b *Board) MoveHistory() []string {
	moves := b.game.Moves()
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = chess.UCINotation{}.Encode(nil, m)
	}
	return out
}

// AlgebraicHistory returns the SAN transcript, oldest first.
func (b *Board) AlgebraicHistory() []string {
	out := make([]string, len(b.algebraicHistory))
	copy(out, b.algebraicHistory)
	return out
}

// NumberedHistory renders the transcript in move-number notation,
// "1. e4 e5 2. Nf3 Nc6". Empty string before the first move.
func (b *Board) NumberedHistory() string {
	var sb strings.Builder
	for i, san := range b.algebraicHistory {
		if i%2 == 0 {
			if i > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "%d. %s", i/2+1, san)
		} else {
			fmt.Fprintf(&sb, " %s", san)
		}
	}
	return sb.String()
}

func (b *Board) IsTerminal() bool {
	return b.game.Outcome() != chess.NoOutcome
}

func (b *Board) Outcome() chess.Outcome {
	return b.game.Outcome()
}

func (b *Board) Method() chess.Method {
	return b.game.Method()
}

func (b *Board) FEN() string {
	return b.game.Position().String()
}

func (b *Board) PGN() string {
	return strings.TrimSpace(b.game.String())
}

// Position exposes an immutable snapshot for callers that need to hand the
// position to the engine.
func (b *Board) Position() *chess.Position {
	return b.game.Position()
}
