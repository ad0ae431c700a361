// Package searcher selects moves for the computer opponent: an exhaustive
// single-ply greedy pass, and a depth-limited negamax that uses the greedy
// pass as its leaf evaluator.
package searcher

import "github.com/terrycts0101/Reversi/game"

// NoMoveScore is the sentinel score paired with game.NoMove when the side to
// move has no legal cell. It is low enough that any real line beats it.
const NoMoveScore = -65535

// Depth presets for the two difficulty modes. Easy plays the one-ply greedy
// search; hard looks ahead three plies (plus the implicit greedy ply at the
// leaves).
const (
	EasyDepth = 0
	HardDepth = 3
)

// Result pairs the chosen move with its heuristic score.
type Result struct {
	Move  game.Move
	Score int
}

// Option configures an AI.
type Option func(*AI)

// AI is a configured search handle for one computer player.
type AI struct {
	depth int
}

// WithDepth sets the negamax lookahead; 0 falls back to the greedy search.
func WithDepth(depth int) Option {
	return func(a *AI) {
		if depth > 0 {
			a.depth = depth
		}
	}
}

// New builds an AI. With no options it plays the greedy (easy) search.
func New(options ...Option) *AI {
	a := &AI{}
	for _, option := range options {
		option(a)
	}
	return a
}

// FindMove returns the best move for side on b, or the no-move sentinel.
func (a *AI) FindMove(b *game.Board, side game.Side) Result {
	if a.depth > 0 {
		return Minimax(b, side, a.depth)
	}
	return Greedy(b, side)
}
