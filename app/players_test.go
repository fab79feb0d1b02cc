package app

import (
	"context"
	"strings"
	"testing"

	"github.com/notnil/chess"
)

func TestNewElo(t *testing.T) {
	cases := []struct {
		name   string
		rating int
		ok     bool
	}{
		{"below minimum", 1319, false},
		{"minimum", 1320, true},
		{"middle", 2000, true},
		{"maximum", 3190, true},
		{"above maximum", 3191, false},
		{"zero", 0, false},
		{"negative", -100, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			elo, err := NewElo(tc.rating)
			if tc.ok {
				if err != nil {
					t.Fatalf("NewElo(%d) error = %v, want ok", tc.rating, err)
				}
				if int(elo) != tc.rating {
					t.Fatalf("NewElo(%d) = %d", tc.rating, elo)
				}
			} else if err == nil {
				t.Fatalf("NewElo(%d) should fail", tc.rating)
			}
		})
	}
}

func TestRandomPlayerReturnsLegalMove(t *testing.T) {
	b := NewBoard()
	legal := map[string]bool{}
	for _, uci := range b.LegalMoveUCIs() {
		legal[uci] = true
	}

	p := NewRandomPlayer()
	for i := 0; i < 10; i++ {
		m, err := p.GetMove(context.Background(), b)
		if err != nil {
			t.Fatalf("GetMove error = %v", err)
		}
		if uci := (chess.UCINotation{}).Encode(nil, m); !legal[uci] {
			t.Fatalf("random player proposed illegal move %s", uci)
		}
	}
}

// Engine player against a scripted UCI transcript: the move must be one of the
// 20 legal opening moves, the strength option must be re-applied before the
// query, and applying the move must flip the turn indicator.
func TestEnginePlayerOpeningMove(t *testing.T) {
	eng, sb := newTestEngine([]string{"bestmove e2e4"})
	elo, err := NewElo(MinElo)
	if err != nil {
		t.Fatalf("NewElo error = %v", err)
	}
	p := NewEnginePlayer(eng, elo, 100)

	b := NewBoard()
	move, err := p.GetMove(context.Background(), b)
	if err != nil {
		t.Fatalf("GetMove error = %v", err)
	}

	uci := chess.UCINotation{}.Encode(nil, move)
	found := false
	for _, legal := range b.LegalMoveUCIs() {
		if legal == uci {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("engine move %s not in legal opening set", uci)
	}

	sent := sb.String()
	if !strings.Contains(sent, "setoption name UCI_Elo value 1320") {
		t.Fatalf("engine player did not configure strength before query: %q", sent)
	}

	if err := b.SubmitMove(move); err != nil {
		t.Fatalf("SubmitMove error = %v", err)
	}
	if b.WaitingOn() != chess.Black {
		t.Fatalf("turn did not flip after white's move, got %s", b.WaitingOn().Name())
	}
}

func TestEnginePlayerRejectsIllegalEngineMove(t *testing.T) {
	eng, _ := newTestEngine([]string{"bestmove e7e5"})
	elo, _ := NewElo(MinElo)
	p := NewEnginePlayer(eng, elo, 100)

	if _, err := p.GetMove(context.Background(), NewBoard()); err == nil {
		t.Fatalf("GetMove should surface a move the board cannot accept")
	}
}
