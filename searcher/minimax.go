package searcher

import "github.com/terrycts0101/Reversi/game"

// Minimax is a depth-limited negamax over the same scan order as Greedy. At
// depth 0 it is Greedy, which makes the greedy pass the leaf evaluator of the
// tree rather than a separate algorithm; the effective horizon is therefore
// depth+1 plies. Each recursion flips the side and negates the child score.
//
// Two inherited quirks are kept on purpose. Improvement here is non-strict,
// so ties keep the latest scanned cell, the opposite policy from Greedy. And
// a simulated node whose mover has no legal cell returns the no-move sentinel
// instead of passing the turn, so such branches surface as extremely bad for
// the stuck side rather than being searched further.
func Minimax(b *game.Board, side game.Side, depth int) Result {
	if depth == 0 {
		return Greedy(b, side)
	}

	best := Result{Move: game.NoMove, Score: NoMoveScore}

	for x := 0; x < game.Size; x++ {
		for y := 0; y < game.Size; y++ {
			clone := b.Clone()
			if !clone.Apply(side, x, y) {
				continue
			}
			score := -Minimax(clone, side.Opponent(), depth-1).Score
			if score >= best.Score {
				best = Result{Move: game.Move{X: x, Y: y}, Score: score}
			}
		}
	}
	return best
}
