package app

import (
	"strings"
	"testing"

	"github.com/WillChangeThisLater/gpt-chess/app/models"
	"github.com/notnil/chess"
)

func TestPrettifyOpeningPosition(t *testing.T) {
	rows := strings.Split(Prettify(NewBoard()), "\n")
	if len(rows) != 9 {
		t.Fatalf("Prettify rows = %d, want 9 (header + 8 ranks)", len(rows))
	}

	cases := []struct {
		row  int
		want string
	}{
		{0, "  a b c d e f g h"},
		{1, "8 ♜ ♞ ♝ ♛ ♚ ♝ ♞ ♜"},
		{4, "5 . . . . . . . ."},
		{7, "2 ♙ ♙ ♙ ♙ ♙ ♙ ♙ ♙"},
		{8, "1 ♖ ♘ ♗ ♕ ♔ ♗ ♘ ♖"},
	}
	for _, tc := range cases {
		if rows[tc.row] != tc.want {
			t.Fatalf("Prettify row %d = %q, want %q", tc.row, rows[tc.row], tc.want)
		}
	}
}

func TestPrettifyAfterMove(t *testing.T) {
	b := NewBoard()
	m, err := b.ParseMove("e4")
	if err != nil {
		t.Fatalf("ParseMove error = %v", err)
	}
	if err := b.SubmitMove(m); err != nil {
		t.Fatalf("SubmitMove error = %v", err)
	}

	rows := strings.Split(Prettify(b), "\n")
	if rows[5] != "4 . . . . ♙ . . ." {
		t.Fatalf("rank 4 after e4 = %q", rows[5])
	}
	if rows[7] != "2 ♙ ♙ ♙ ♙ . ♙ ♙ ♙" {
		t.Fatalf("rank 2 after e4 = %q", rows[7])
	}
}

func TestClassifyOutcome(t *testing.T) {
	cases := map[chess.Outcome]models.Result{
		chess.WhiteWon: models.WhiteWin,
		chess.BlackWon: models.BlackWin,
		chess.Draw:     models.Draw,
	}
	for outcome, want := range cases {
		if got := ClassifyOutcome(outcome); got != want {
			t.Fatalf("ClassifyOutcome(%v) = %v, want %v", outcome, got, want)
		}
	}
}
