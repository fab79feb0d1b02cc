package app

import (
	"strings"

	"github.com/WillChangeThisLater/gpt-chess/app/models"
	"github.com/notnil/chess"
)

var pieceUnicode = map[rune]rune{
	'r': '♜',
	'n': '♞',
	'b': '♝',
	'q': '♛',
	'k': '♚',
	'p': '♟',
	'R': '♖',
	'N': '♘',
	'B': '♗',
	'Q': '♕',
	'K': '♔',
	'P': '♙',
}

// Prettify renders the position as a rank/file-labelled unicode grid,
// rank 8 on top:
//
//	  a b c d e f g h
//	8 ♜ ♞ ♝ ♛ ♚ ♝ ♞ ♜
//	...
func Prettify(b *Board) string {
	// The piece-placement field of the FEN is the board, rank 8 first.
	placement := strings.Split(b.FEN(), " ")[0]
	ranks := strings.Split(placement, "/")

	rows := []string{"  a b c d e f g h"}
	for i, rank := range ranks {
		cells := make([]string, 0, 8)
		for _, r := range rank {
			if r >= '1' && r <= '8' {
				for n := 0; n < int(r-'0'); n++ {
					cells = append(cells, ".")
				}
				continue
			}
			cells = append(cells, string(pieceUnicode[r]))
		}
		rows = append(rows, string(rune('8'-i))+" "+strings.Join(cells, " "))
	}
	return strings.Join(rows, "\n")
}

// ClassifyOutcome maps a finished game's outcome string to our result bucket.
func ClassifyOutcome(outcome chess.Outcome) models.Result {
	switch outcome {
	case chess.WhiteWon:
		return models.WhiteWin
	case chess.BlackWon:
		return models.BlackWin
	default:
		return models.Draw
	}
}
