package game

// weights is the positional value of each cell, identical for both sides:
// corners dominate, cells adjacent to a corner are a liability, edges beat
// the interior. Purely positional; no mobility or piece-count term.
var weights = [Size][Size]int{
	{99, -8, 8, 6, 6, 8, -8, 99},
	{-8, -24, -4, -3, -3, -4, -24, -8},
	{8, -4, 7, 4, 4, 7, -4, 8},
	{6, -3, 4, 0, 0, 4, -3, 6},
	{6, -3, 4, 0, 0, 4, -3, 6},
	{8, -4, 7, 4, 4, 7, -4, 8},
	{-8, -24, -4, -3, -3, -4, -24, -8},
	{99, -8, 8, 6, 6, 8, -8, 99},
}

// Score evaluates the board from side's perspective. Multiplying each cell by
// side maps the absolute valuation into "how good is this for the side
// asking": Score(b, Dark) == -Score(b, Light).
func Score(b *Board, side Side) int {
	score := 0
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			score += int(b.Cells[i][j]) * int(side) * weights[i][j]
		}
	}
	return score
}
