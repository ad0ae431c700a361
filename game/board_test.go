package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	require.Equal(t, Dark, b.At(3, 3))
	require.Equal(t, Dark, b.At(4, 4))
	require.Equal(t, Light, b.At(3, 4))
	require.Equal(t, Light, b.At(4, 3))
	require.Equal(t, 4, b.Count, "count must equal the number of occupied cells")

	dark, light := b.Tally()
	require.Equal(t, 2, dark)
	require.Equal(t, 2, light)
}

func TestClone(t *testing.T) {
	t.Run("mutating the clone leaves the original untouched", func(t *testing.T) {
		b := NewBoard()
		clone := b.Clone()

		require.True(t, clone.Apply(Dark, 2, 4))

		require.Equal(t, Empty, b.At(2, 4), "original board should not change")
		require.Equal(t, Light, b.At(3, 4), "original board should not change")
		require.Equal(t, 4, b.Count)
		require.Equal(t, 5, clone.Count)
	})
}

func TestWinner(t *testing.T) {
	t.Run("majority side wins", func(t *testing.T) {
		b := NewBoard()
		require.True(t, b.Apply(Dark, 2, 4))

		require.Equal(t, Dark, b.Winner())
	})

	t.Run("equal counts draw", func(t *testing.T) {
		require.Equal(t, Empty, NewBoard().Winner())
	})
}

func TestSideOpponent(t *testing.T) {
	require.Equal(t, Light, Dark.Opponent())
	require.Equal(t, Dark, Light.Opponent())
}
