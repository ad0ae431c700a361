package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoveCursor(t *testing.T) {
	t.Run("right walks the row to the next empty cell", func(t *testing.T) {
		b := NewBoard()
		require.Equal(t, Move{1, 0}, b.MoveCursor(Move{0, 0}, Right))
	})

	t.Run("right skips occupied cells", func(t *testing.T) {
		b := NewBoard()
		// (3,3) and (4,3) are occupied in the opening position.
		require.Equal(t, Move{5, 3}, b.MoveCursor(Move{2, 3}, Right))
	})

	t.Run("left wraps around from the first cell", func(t *testing.T) {
		b := NewBoard()
		require.Equal(t, Move{7, 7}, b.MoveCursor(Move{0, 0}, Left))
	})

	t.Run("down walks the column and skips occupied cells", func(t *testing.T) {
		b := NewBoard()
		// Walking down column 3 skips (3,3) and (3,4).
		require.Equal(t, Move{3, 5}, b.MoveCursor(Move{3, 2}, Down))
	})

	t.Run("up walks the column backwards", func(t *testing.T) {
		b := NewBoard()
		require.Equal(t, Move{3, 1}, b.MoveCursor(Move{3, 2}, Up))
	})

	t.Run("full board leaves the cursor in place", func(t *testing.T) {
		b := &Board{}
		for x := 0; x < Size; x++ {
			for y := 0; y < Size; y++ {
				b.Cells[x][y] = Dark
				b.Count++
			}
		}
		require.Equal(t, Move{2, 2}, b.MoveCursor(Move{2, 2}, Right))
	})
}
