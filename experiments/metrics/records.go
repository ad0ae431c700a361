package metrics

import "time"

// AgentConfig describes one search configuration under test.
type AgentConfig struct {
	ID    int
	Depth int // Negamax depth; 0 plays the greedy search
}

// MoveMetric captures one search call inside a game.
type MoveMetric struct {
	Step     int
	Side     string
	Depth    int
	X, Y     int
	Score    int
	Duration time.Duration
}

// GameMetric captures one finished game.
type GameMetric struct {
	Winner     string
	BlackScore int
	WhiteScore int
	TotalMoves int
	Duration   time.Duration
}

// GameRecord ties a game to the two configs that played it.
type GameRecord struct {
	ID     int
	Black  int // AgentConfig.ID
	White  int // AgentConfig.ID
	GameMetric
}

// MoveRecord ties a move to its game.
type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
