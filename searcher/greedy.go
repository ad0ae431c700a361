package searcher

import "github.com/terrycts0101/Reversi/game"

// Greedy tries every cell in x-outer, y-inner scan order on a clone of b and
// keeps the placement with the highest resulting Score for side. Improvement
// is strict, so ties keep the earliest scanned cell. Returns the no-move
// sentinel when no cell is playable.
func Greedy(b *game.Board, side game.Side) Result {
	best := Result{Move: game.NoMove, Score: NoMoveScore}

	for x := 0; x < game.Size; x++ {
		for y := 0; y < game.Size; y++ {
			clone := b.Clone()
			if !clone.Apply(side, x, y) {
				continue
			}
			if score := game.Score(clone, side); score > best.Score {
				best = Result{Move: game.Move{X: x, Y: y}, Score: score}
			}
		}
	}
	return best
}
