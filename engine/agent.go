package engine

import (
	"github.com/terrycts0101/Reversi/game"
	"github.com/terrycts0101/Reversi/searcher"
)

// Agent produces the next move for side on b. ok is false when the agent has
// no move to offer (the engine then applies the pass policy).
type Agent interface {
	FindMove(b *game.Board, side game.Side) (move game.Move, ok bool)
}

// SearchAgent plays moves chosen by a searcher.AI.
type SearchAgent struct {
	AI *searcher.AI
}

// NewEasyAgent plays the single-ply greedy search.
func NewEasyAgent() *SearchAgent {
	return &SearchAgent{AI: searcher.New()}
}

// NewHardAgent plays the depth-limited negamax at the hard preset.
func NewHardAgent() *SearchAgent {
	return &SearchAgent{AI: searcher.New(searcher.WithDepth(searcher.HardDepth))}
}

func (a *SearchAgent) FindMove(b *game.Board, side game.Side) (game.Move, bool) {
	result := a.AI.FindMove(b, side)
	if result.Move == game.NoMove {
		return game.NoMove, false
	}
	return result.Move, true
}
