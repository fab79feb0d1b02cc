package app

import (
	"fmt"
	"strings"
)

// Prompt construction for the LLM player. The analysis prompt is deliberately
// unconstrained (models reason better in prose); the extraction prompt asks
// for a single UCI token and carries few-shot transcription examples, because
// models otherwise love to answer in SAN or with commentary.

func analysisPrompt(board *Board) string {
	return fmt.Sprintf(`You are a chess grandmaster playing in the world chess championship.
The game has progressed as follows:

`+"```move_history\n%s\n```"+`

And now the board is in the following position:

`+"```current_board\n%s\n```"+`

%s to move.

Determine the best line. Think as many steps ahead as
you can. Explain your reasoning. Use UCI notation.
`,
		board.NumberedHistory(),
		Prettify(board),
		strings.ToUpper(board.WaitingOn().Name()))
}

func extractionPrompt(board *Board, analysis string) string {
	return fmt.Sprintf(`You are transcribing a chess sequence. The game thus far is as follows:

%s

Your job is to extract the next move in the game from a text
summary, which is below. Provide this move in UCI notation.
Do not provide explanations of any kind. Do not provide multiple moves.

%s

Your task is below.

Explanation:

%s

Answer:
`, board.NumberedHistory(), transcriptionExamples, analysis)
}

const transcriptionExamples = `Example 1 (Good):

    Explanation:

        Unintuitive as it may seem, Be6!! is the best move. The idea is to offer
        the queen in exchange for a fierce attack with minor pieces. Declining the
        offer runs into a 'Philidor Mate' (smothered mate) after ...Qb5+ and the
        knight checks that follow.

    Answer:

        g4e6

Example 2 (Bad):

    Explanation:

        As Black, a strong move here is **...dxc4**. This move captures the pawn
        on c4, gaining a material advantage and undermining White's pawn
        structure in the center.

    Answer:

        dxc4

    Why is this answer wrong?

        The answer should be in UCI notation. 'd5c4' is the correct answer.

Example 3 (Good):

    Explanation:

        Opening with 1. e4 is one of the most common and traditional choices for
        White. It sets up for open games, including the Spanish game (Ruy Lopez),
        Italian game, King's Gambit, etc., depending on Black's responses.

    Answer:

        e2e4

Example 4 (Bad):

    Explanation:

        **Best Move:**
        **Qe2 - Moving Queen back to e2 (defensive move)**

        This reinforces the defense against threats to the black king while
        keeping the queen connected to the center.

    Answer:

        d7e8

    Why is this answer wrong?

        d7e8 is not the suggested move. The suggestion is Qe2, which is
        'd1e2' in UCI notation.

Example 5 (Good):

    Explanation:

        Qe7 is the only good move. White is threatening mate in two moves, and
        7...Qd7 loses the rook to 8.Qxb7. Notice that 7...Qe7 saves the rook:
        8.Qxb7 Qb4+ forces a queen exchange.

    Answer:

        d8e7`
