// Package engine runs a local game between two agents: it owns the board and
// the side-to-move token, applies each agent's move through the rules engine,
// and handles passes and game end via the turn-advance policy.
package engine

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/terrycts0101/Reversi/game"
	"github.com/terrycts0101/Reversi/store"
)

// Update records one applied move together with a snapshot of the position
// after it.
type Update struct {
	Move  game.Move
	Side  game.Side
	Board *game.Board
}

type Engine struct {
	Board   *game.Board
	Side    game.Side
	Agents  map[game.Side]Agent
	Cursor  game.Move
	Updates []Update

	over bool
}

// Local builds an engine over an existing position, applying the turn policy
// right away: if side cannot move the turn passes, and if neither side can
// move the game is already over.
func Local(b *game.Board, side game.Side, dark, light Agent) *Engine {
	if dark == nil || light == nil {
		panic("engine: both agents are required")
	}

	e := &Engine{
		Board:  b,
		Side:   side,
		Agents: map[game.Side]Agent{game.Dark: dark, game.Light: light},
	}
	e.Cursor = b.MoveCursor(game.Move{X: 0, Y: 0}, game.Right)

	if _, ok := b.EnumerateLegal(side); !ok {
		e.Side, e.over = b.Advance(side.Opponent())
	}
	return e
}

// Run plays the game to completion and returns the winner (game.Empty on a
// draw).
func (e *Engine) Run() (game.Side, error) {
	log.Info().Msgf("%s is starting", e.Side)

	for !e.over {
		move, ok := e.Agents[e.Side].FindMove(e.Board, e.Side)
		if !ok {
			// Advance guarantees the side to move has a legal cell.
			return game.Empty, fmt.Errorf("agent for %s found no move in a playable position", e.Side)
		}
		if !e.Board.Apply(e.Side, move.X, move.Y) {
			return game.Empty, fmt.Errorf("agent for %s played illegal move (%d,%d)", e.Side, move.X, move.Y)
		}

		e.Updates = append(e.Updates, Update{Move: move, Side: e.Side, Board: e.Board.Clone()})
		log.Info().Msgf("%s plays (%d,%d)", e.Side, move.X, move.Y)

		if !e.Board.Full() {
			e.Cursor = e.Board.MoveCursor(move, game.Right)
		}

		next, over := e.Board.Advance(e.Side)
		if over {
			e.over = true
			break
		}
		if next == e.Side {
			log.Info().Msgf("%s passes", next.Opponent())
		}
		e.Side = next
	}

	winner := e.Board.Winner()
	dark, light := e.Board.Tally()
	log.Info().Msgf("game over: black %d, white %d", dark, light)
	return winner, nil
}

// Over reports whether the game has ended.
func (e *Engine) Over() bool { return e.over }

// WriteResult writes the end-of-game record for the final position.
func (e *Engine) WriteResult(w io.Writer) error {
	return store.WriteResult(w, e.Board, e.Side)
}
