// Package store reads and writes the textual save format: a side-to-move
// line ("B" or "W") followed by 8 rows of 8 runes ('*' empty, 'B' dark,
// 'W' light). File row i / column j maps to board cell (x=j, y=i); the
// transpose must be preserved exactly for round-trip fidelity. End-of-game
// records append two score lines and an outcome line.
package store

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/terrycts0101/Reversi/game"
)

// Load parses a saved game. Malformed input (missing lines, wrong line
// length, unknown rune or side indicator) fails with an error; the core is
// never handed a partially filled board.
func Load(r io.Reader) (*game.Board, game.Side, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return nil, 0, fmt.Errorf("load board: missing side line")
	}
	var side game.Side
	switch scanner.Text() {
	case "B":
		side = game.Dark
	case "W":
		side = game.Light
	default:
		return nil, 0, fmt.Errorf("load board: invalid side line %q", scanner.Text())
	}

	b := &game.Board{}
	for i := 0; i < game.Size; i++ {
		if !scanner.Scan() {
			return nil, 0, fmt.Errorf("load board: want %d rows, got %d", game.Size, i)
		}
		row := scanner.Text()
		if len(row) != game.Size {
			return nil, 0, fmt.Errorf("load board: row %d has %d cells, want %d", i, len(row), game.Size)
		}
		for j := 0; j < game.Size; j++ {
			switch row[j] {
			case '*':
				b.Cells[j][i] = game.Empty
			case 'B':
				b.Cells[j][i] = game.Dark
				b.Count++
			case 'W':
				b.Cells[j][i] = game.Light
				b.Count++
			default:
				return nil, 0, fmt.Errorf("load board: invalid cell %q at row %d col %d", row[j], i, j)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("load board: %w", err)
	}
	return b, side, nil
}

// Save writes the side-to-move line and the board grid.
func Save(w io.Writer, b *game.Board, side game.Side) error {
	return write(w, b, side, false)
}

// WriteResult writes the grid plus the end-of-game trailer: both scores and
// the outcome by piece majority. The "write" wording is part of the
// historical format.
func WriteResult(w io.Writer, b *game.Board, side game.Side) error {
	return write(w, b, side, true)
}

func write(w io.Writer, b *game.Board, side game.Side, end bool) error {
	bw := bufio.NewWriter(w)

	if side == game.Light {
		fmt.Fprintln(bw, "W")
	} else {
		fmt.Fprintln(bw, "B")
	}

	for i := 0; i < game.Size; i++ {
		for j := 0; j < game.Size; j++ {
			switch b.Cells[j][i] {
			case game.Dark:
				bw.WriteByte('B')
			case game.Light:
				bw.WriteByte('W')
			default:
				bw.WriteByte('*')
			}
		}
		bw.WriteByte('\n')
	}

	if end {
		dark, light := b.Tally()
		fmt.Fprintf(bw, "black score: %d\n", dark)
		fmt.Fprintf(bw, "write score: %d\n", light)
		switch {
		case dark > light:
			fmt.Fprintln(bw, "black wins")
		case dark < light:
			fmt.Fprintln(bw, "write wins")
		default:
			fmt.Fprintln(bw, "draw game")
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write board: %w", err)
	}
	return nil
}

// LoadFile loads a saved game from path.
func LoadFile(path string) (*game.Board, game.Side, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open save file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// SaveFile saves the game to path, replacing any previous save.
func SaveFile(path string, b *game.Board, side game.Side) error {
	return writeFile(path, b, side, false)
}

// WriteResultFile writes the end-of-game record to path.
func WriteResultFile(path string, b *game.Board, side game.Side) error {
	return writeFile(path, b, side, true)
}

func writeFile(path string, b *game.Board, side game.Side, end bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create save file: %w", err)
	}
	defer f.Close()
	if end {
		return WriteResult(f, b, side)
	}
	return Save(f, b, side)
}
