package game

// The 8 ray directions: every (dx, dy) in {-1,0,1}^2 except (0,0).
var directions = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// IsLegal reports whether side may place at (x, y): the cell is Empty and at
// least one direction holds a contiguous run of opponent pieces terminated by
// a same-side anchor before the scan hits Empty or the board edge. Read-only.
func (b *Board) IsLegal(side Side, x, y int) bool {
	if b.Cells[x][y] != Empty {
		return false
	}

	for _, d := range directions {
		cx, cy := x+d[0], y+d[1]
		sawOpponent := false
	scan:
		for cx >= 0 && cx < Size && cy >= 0 && cy < Size {
			switch b.Cells[cx][cy] {
			case Empty:
				break scan
			case side:
				if sawOpponent {
					return true
				}
				break scan
			default:
				sawOpponent = true
				cx += d[0]
				cy += d[1]
			}
		}
	}
	return false
}

// Apply places side at (x, y) and flips every captured run, returning false
// and leaving the board untouched when the move is illegal. Each direction is
// re-scanned independently: only runs that terminate at a same-side anchor
// are flipped, the rest contribute nothing even though the aggregate
// legality check already passed through some other direction.
func (b *Board) Apply(side Side, x, y int) bool {
	if !b.IsLegal(side, x, y) {
		return false
	}

	b.Cells[x][y] = side
	b.Count++

	for _, d := range directions {
		cx, cy := x+d[0], y+d[1]
		var run []Move
	scan:
		for cx >= 0 && cx < Size && cy >= 0 && cy < Size {
			switch b.Cells[cx][cy] {
			case Empty:
				break scan
			case side:
				// Anchored: the whole run is captured.
				for _, m := range run {
					b.Cells[m.X][m.Y] = side
				}
				break scan
			default:
				run = append(run, Move{cx, cy})
				cx += d[0]
				cy += d[1]
			}
		}
	}
	return true
}

// EnumerateLegal evaluates IsLegal for all 64 cells, returning the legality
// grid and whether at least one legal cell exists.
func (b *Board) EnumerateLegal(side Side) (grid [Size][Size]bool, ok bool) {
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			grid[x][y] = b.IsLegal(side, x, y)
			ok = ok || grid[x][y]
		}
	}
	return grid, ok
}

// Advance applies the turn policy after side has moved: the opponent is next
// unless it has no legal cell, in which case the turn passes back to side;
// when neither side can move the game is over.
func (b *Board) Advance(side Side) (next Side, over bool) {
	next = side.Opponent()
	if _, ok := b.EnumerateLegal(next); ok {
		return next, false
	}
	next = next.Opponent()
	if _, ok := b.EnumerateLegal(next); ok {
		return next, false
	}
	return next, true
}
