package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/terrycts0101/Reversi/game"
)

func boardWith(placements map[game.Move]game.Side) *game.Board {
	b := &game.Board{}
	for m, s := range placements {
		b.Cells[m.X][m.Y] = s
		b.Count++
	}
	return b
}

func TestGreedy(t *testing.T) {
	t.Run("takes the corner when it can", func(t *testing.T) {
		b := boardWith(map[game.Move]game.Side{{X: 2, Y: 0}: game.Dark, {X: 1, Y: 0}: game.Light})

		got := Greedy(b, game.Dark)

		require.Equal(t, game.Move{X: 0, Y: 0}, got.Move)
		require.Equal(t, 99, got.Score, "99 at the corner, -8 at (1,0), +8 at (2,0)")
	})

	t.Run("ties keep the earliest scanned cell", func(t *testing.T) {
		// All four opening moves score 4 by symmetry, so the strict
		// improvement rule must keep the first in x-outer, y-inner order.
		b := game.NewBoard()

		got := Greedy(b, game.Dark)

		require.Equal(t, game.Move{X: 2, Y: 4}, got.Move)
		require.Equal(t, 4, got.Score)
	})

	t.Run("does not mutate the caller's board", func(t *testing.T) {
		b := game.NewBoard()
		before := *b

		Greedy(b, game.Dark)

		require.Equal(t, before, *b)
	})

	t.Run("returns the sentinel when no move exists", func(t *testing.T) {
		b := boardWith(map[game.Move]game.Side{{X: 0, Y: 0}: game.Dark})

		got := Greedy(b, game.Dark)

		require.Equal(t, Result{Move: game.NoMove, Score: NoMoveScore}, got)
	})

	t.Run("returns the sentinel on a full board", func(t *testing.T) {
		b := &game.Board{}
		for x := 0; x < game.Size; x++ {
			for y := 0; y < game.Size; y++ {
				b.Cells[x][y] = game.Light
				b.Count++
			}
		}

		require.Equal(t, game.NoMove, Greedy(b, game.Dark).Move)
		require.Equal(t, game.NoMove, Greedy(b, game.Light).Move)
	})
}
