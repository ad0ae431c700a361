package game

// Direction is a cursor movement request from the input layer.
type Direction string

const (
	Left  Direction = "left"
	Right Direction = "right"
	Up    Direction = "up"
	Down  Direction = "down"
)

// MoveCursor slides the highlighted cell one step in dir, skipping occupied
// cells with wraparound. The grid is walked as a 1D strip: row-major for
// left/right, column-major for up/down, so repeated presses of one key visit
// every empty cell. On a full board the cursor stays put.
func (b *Board) MoveCursor(c Move, dir Direction) Move {
	if b.Full() {
		return c
	}

	x, y := c.X, c.Y
	vertical := dir == Up || dir == Down
	if vertical {
		x, y = y, x
	}

	step := -1
	if dir == Right || dir == Down {
		step = 1
	}

	val := y*Size + x
	for {
		val = (val + step + Size*Size) % (Size * Size)
		y = val / Size
		x = val % Size

		cx, cy := x, y
		if vertical {
			cx, cy = cy, cx
		}
		if b.Cells[cx][cy] == Empty {
			return Move{cx, cy}
		}
	}
}
