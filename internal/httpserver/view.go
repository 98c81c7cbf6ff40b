package httpserver

import "github.com/robalobadob/wordle/apps/go-wordle/internal/game"

// view is the JSON rendering of a session.
type view struct {
	GameID      string        `json:"gameId"`
	State       game.State    `json:"state"`
	Over        bool          `json:"over"`
	Win         bool          `json:"win"`
	Length      int           `json:"length"`
	MaxAttempts int           `json:"maxAttempts"`
	Remaining   int           `json:"remaining"`
	Input       string        `json:"input"`
	Board       []game.Row    `json:"board"`
	Keyboard    [][]game.Tile `json:"keyboard"`
	Answer      string        `json:"answer,omitempty"`   // revealed once the game is over
	Accepted    *bool         `json:"accepted,omitempty"` // set on key/guess responses
}

func render(id string, s *game.Session, accepted *bool) view {
	v := view{
		GameID:      id,
		State:       s.State(),
		Over:        s.IsGameOver(),
		Win:         s.IsWin(),
		Length:      s.Length(),
		MaxAttempts: s.MaxAttempts(),
		Remaining:   s.Remaining(),
		Input:       s.Input(),
		Board:       s.BoardView(),
		Keyboard:    keyboard(s.Layout(), s.KeyboardAggregate()),
		Accepted:    accepted,
	}
	if v.Over {
		v.Answer = s.Target()
	}
	return v
}

// keyboard lays the aggregate out along the layout rows.
func keyboard(l game.Layout, agg game.KeyboardAggregate) [][]game.Tile {
	rows := l.Rows()
	out := make([][]game.Tile, len(rows))
	for i, row := range rows {
		for _, r := range row {
			letter := string(r)
			out[i] = append(out[i], game.Tile{Letter: letter, Status: agg.Status(letter)})
		}
	}
	return out
}
