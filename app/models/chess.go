package models

// Result buckets a finished game from White's point of view.
type Result string

const (
	WhiteWin Result = "white_win"
	BlackWin Result = "black_win"
	Draw     Result = "tie"
)

// GameReport is everything we keep from a finished game: the classification,
// how the game ended, and the full transcript.
type GameReport struct {
	Result     Result   `json:"result"`
	Outcome    string   `json:"outcome"`     // "1-0", "0-1", "1/2-1/2"
	Method     string   `json:"method"`      // "Checkmate", "Stalemate", ...
	SANHistory []string `json:"san_history"` // one SAN token per applied move
	PGN        string   `json:"pgn"`
	White      string   `json:"white"`
	Black      string   `json:"black"`
	TotalPlies int      `json:"total_plies"`
}
