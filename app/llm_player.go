package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/notnil/chess"
)

// LLMPlayer turns a language model's chess analysis into a guaranteed-legal
// move. Free-text generation gives the best reasoning but an unreliable
// format, so each move request runs a layered protocol:
//
//  1. ask for an unconstrained written analysis of the position
//  2. ask the model to extract the single recommended move from that analysis
//  3. validate the extraction against the legal-move list
//  4. if validation fails, re-ask with generation constrained to the legal
//     moves, which cannot produce an illegal move
//
// An invalid extraction is an expected signal, handled here; it never reaches
// the game loop.
type LLMPlayer struct {
	model TextModel
	name  string
}

func NewLLMPlayer(model TextModel, name string) *LLMPlayer {
	return &LLMPlayer{model: model, name: name}
}

func (p *LLMPlayer) GetMove(ctx context.Context, board *Board) (*chess.Move, error) {
	analysis, err := p.model.Complete(ctx, analysisPrompt(board))
	if err != nil {
		return nil, fmt.Errorf("analysis request: %w", err)
	}

	extraction := extractionPrompt(board, analysis)
	raw, err := p.model.Complete(ctx, extraction)
	if err != nil {
		return nil, fmt.Errorf("extraction request: %w", err)
	}

	move, err := board.ParseMove(firstLine(raw))
	if err == nil {
		return move, nil
	}
	if !errors.Is(err, ErrInvalidMove) {
		return nil, err
	}

	// The model recommended something we can't read. Fall back to constrained
	// choice over the legal moves; the answer is legal by construction.
	log.Printf("llm player %s: extraction %q not legal, falling back to constrained choice", p.name, firstLine(raw))
	choices := board.LegalMoveUCIs()
	picked, err := p.model.Choose(ctx, extraction, choices)
	if err != nil {
		return nil, fmt.Errorf("constrained fallback: %w", err)
	}
	move, err = board.ParseMove(picked)
	if err != nil {
		// Unreachable as long as Choose honors its contract.
		return nil, fmt.Errorf("constrained fallback produced %q: %w", picked, err)
	}
	return move, nil
}

func (p *LLMPlayer) Name() string {
	return p.name
}

// firstLine trims the reply to the first non-empty line; models sometimes pad
// the answer with blank lines or trailing commentary.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
