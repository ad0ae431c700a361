package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/terrycts0101/Reversi/engine"
	"github.com/terrycts0101/Reversi/experiments"
	"github.com/terrycts0101/Reversi/game"
	"github.com/terrycts0101/Reversi/store"
)

type config struct {
	experiment bool
	resultPath string
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config{
		experiment: len(os.Args) > 1 && os.Args[1] == "experiment",
		resultPath: "result.log",
	}

	if cfg.experiment {
		if err := experiments.RunDepthExperiment(); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	runExhibitionGame(cfg)
}

// runExhibitionGame plays one easy-vs-hard game from the standard opening and
// writes the end-of-game record.
func runExhibitionGame(cfg config) {
	board := game.NewBoard()
	e := engine.Local(board, game.Dark, engine.NewEasyAgent(), engine.NewHardAgent())

	winner, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}

	if err := store.WriteResultFile(cfg.resultPath, e.Board, e.Side); err != nil {
		log.Fatal().Err(err).Msg("could not write result")
	}

	dark, light := e.Board.Tally()
	log.Info().Msgf("winner: %s (black %d, white %d)", winner, dark, light)
}
