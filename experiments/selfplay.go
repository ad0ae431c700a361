// Package experiments pits search configurations against each other over many
// self-play games and records the outcomes as CSV for offline analysis.
package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/terrycts0101/Reversi/engine"
	"github.com/terrycts0101/Reversi/experiments/metrics"
	"github.com/terrycts0101/Reversi/game"
	"github.com/terrycts0101/Reversi/searcher"
)

const (
	NumGames     = 30 // Per matchup
	OpeningPlies = 4  // Random plies before the agents take over
)

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Depth: searcher.EasyDepth},
	{ID: 2, Depth: 1},
	{ID: 3, Depth: 2},
	{ID: 4, Depth: searcher.HardDepth},
}

// RunDepthExperiment plays every depth config against the greedy baseline,
// both as Black and as White, and writes agent, game, and move records.
func RunDepthExperiment() error {
	baseline := depthConfigs[0]
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range depthConfigs[1:] {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, baseline})
	}

	return runExperiment("depth_to_strength", depthConfigs, matchUps)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) error {
	writer, err := metrics.NewWriter(name)
	if err != nil {
		return fmt.Errorf("failed to set up experiment %s: %w", name, err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to record configs: %w", err)
	}

	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	gameID := 0
	for _, matchUp := range matchUps {
		black, white := matchUp[0], matchUp[1]
		log.Info().Msgf("matchup: depth %d (black) vs depth %d (white)", black.Depth, white.Depth)

		for i := 0; i < NumGames; i++ {
			gameID++
			record, moves, err := runGame(gameID, black, white, rng)
			if err != nil {
				return fmt.Errorf("game %d failed: %w", gameID, err)
			}
			gameRecords = append(gameRecords, record)
			moveRecords = append(moveRecords, moves...)
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to record games: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to record moves: %w", err)
	}
	log.Info().Msgf("experiment %s: %d games recorded", name, len(gameRecords))
	return nil
}

func runGame(id int, black, white metrics.AgentConfig, rng *rand.Rand) (metrics.GameRecord, []metrics.MoveRecord, error) {
	board, side := randomOpening(rng, OpeningPlies)

	rec := &recorder{}
	e := engine.Local(board, side,
		&timedAgent{ai: newAI(black), depth: black.Depth, rec: rec},
		&timedAgent{ai: newAI(white), depth: white.Depth, rec: rec})

	start := time.Now()
	winner, err := e.Run()
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	darkScore, lightScore := e.Board.Tally()
	record := metrics.GameRecord{
		ID:    id,
		Black: black.ID,
		White: white.ID,
		GameMetric: metrics.GameMetric{
			Winner:     winner.String(),
			BlackScore: darkScore,
			WhiteScore: lightScore,
			TotalMoves: len(e.Updates),
			Duration:   time.Since(start),
		},
	}

	moves := make([]metrics.MoveRecord, len(rec.moves))
	for i, m := range rec.moves {
		moves[i] = metrics.MoveRecord{Game: id, MoveMetric: m}
	}
	return record, moves, nil
}

func newAI(config metrics.AgentConfig) *searcher.AI {
	return searcher.New(searcher.WithDepth(config.Depth))
}

// randomOpening plays a few uniformly random legal plies from the standard
// opening so repeated games between deterministic agents diverge.
func randomOpening(rng *rand.Rand, plies int) (*game.Board, game.Side) {
	b := game.NewBoard()
	side := game.Dark

	for i := 0; i < plies; i++ {
		grid, ok := b.EnumerateLegal(side)
		if !ok {
			break
		}
		var moves []game.Move
		for x := 0; x < game.Size; x++ {
			for y := 0; y < game.Size; y++ {
				if grid[x][y] {
					moves = append(moves, game.Move{X: x, Y: y})
				}
			}
		}
		m := moves[rng.Intn(len(moves))]
		b.Apply(side, m.X, m.Y)

		next, over := b.Advance(side)
		if over {
			break
		}
		side = next
	}
	return b, side
}

// recorder numbers search calls across both agents of one game.
type recorder struct {
	step  int
	moves []metrics.MoveMetric
}

// timedAgent wraps a searcher.AI and records every search call.
type timedAgent struct {
	ai    *searcher.AI
	depth int
	rec   *recorder
}

func (a *timedAgent) FindMove(b *game.Board, side game.Side) (game.Move, bool) {
	start := time.Now()
	result := a.ai.FindMove(b, side)

	a.rec.step++
	a.rec.moves = append(a.rec.moves, metrics.MoveMetric{
		Step:     a.rec.step,
		Side:     side.String(),
		Depth:    a.depth,
		X:        result.Move.X,
		Y:        result.Move.Y,
		Score:    result.Score,
		Duration: time.Since(start),
	})

	if result.Move == game.NoMove {
		return game.NoMove, false
	}
	return result.Move, true
}
