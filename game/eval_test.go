package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	t.Run("opening position is worth zero to both sides", func(t *testing.T) {
		b := NewBoard()
		require.Equal(t, 0, Score(b, Dark))
		require.Equal(t, 0, Score(b, Light))
	})

	t.Run("score is antisymmetric between the sides", func(t *testing.T) {
		b := NewBoard()
		require.True(t, b.Apply(Dark, 2, 4))

		require.Equal(t, 4, Score(b, Dark), "(2,4) is worth 4, the flipped and original pieces sit on zero-weight cells")
		require.Equal(t, -Score(b, Dark), Score(b, Light))
	})

	t.Run("corners dominate the valuation", func(t *testing.T) {
		b := boardWith(map[Move]Side{{0, 0}: Dark})
		require.Equal(t, 99, Score(b, Dark))
		require.Equal(t, -99, Score(b, Light))
	})

	t.Run("cells adjacent to a corner are a liability", func(t *testing.T) {
		b := boardWith(map[Move]Side{{1, 1}: Dark})
		require.Equal(t, -24, Score(b, Dark))
	})
}
