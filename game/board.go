package game

// Size is the board edge length.
const Size = 8

// Side identifies a player, and doubles as the owner of a cell: cells and
// sides share one signed domain so that "opponent" is plain negation and
// evaluation can use sign arithmetic instead of branching on an enum.
type Side int8

const (
	Empty Side = 0
	Dark  Side = 1
	Light Side = -1
)

// Opponent returns the other player.
func (s Side) Opponent() Side { return -s }

func (s Side) String() string {
	switch s {
	case Dark:
		return "black"
	case Light:
		return "white"
	default:
		return "empty"
	}
}

// Move is a board coordinate, 0 <= X,Y < Size.
type Move struct {
	X, Y int
}

// NoMove is the reserved coordinate returned by search when the side to move
// has no legal cell.
var NoMove = Move{-1, -1}

// Board is the 8x8 game state. Cells is indexed [x][y]. Count tracks the
// number of non-Empty cells and must stay equal to it after every mutation.
type Board struct {
	Cells [Size][Size]Side
	Count int
}

// NewBoard returns a board in the standard opening position: Dark on
// (3,3)/(4,4), Light on (3,4)/(4,3).
func NewBoard() *Board {
	b := &Board{}
	b.Cells[3][3], b.Cells[4][4] = Dark, Dark
	b.Cells[3][4], b.Cells[4][3] = Light, Light
	b.Count = 4
	return b
}

// Clone returns an independent copy. Search clones before every simulated
// move so the caller's board is never mutated.
func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

// At returns the owner of cell (x, y).
func (b *Board) At(x, y int) Side { return b.Cells[x][y] }

// Full reports whether no Empty cell remains.
func (b *Board) Full() bool { return b.Count == Size*Size }

// Tally returns the piece counts for Dark and Light.
func (b *Board) Tally() (dark, light int) {
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			switch b.Cells[x][y] {
			case Dark:
				dark++
			case Light:
				light++
			}
		}
	}
	return dark, light
}

// Winner returns the side with the piece majority, or Empty on a draw.
func (b *Board) Winner() Side {
	dark, light := b.Tally()
	switch {
	case dark > light:
		return Dark
	case light > dark:
		return Light
	default:
		return Empty
	}
}
