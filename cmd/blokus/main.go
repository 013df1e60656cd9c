// Command blokus runs Blokus game simulations: it resolves a board
// layout (a named preset or a YAML file), plays games to completion
// with random legal moves, and reports scores and winners.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/josephcrivera/Blokus-Game-Simulation/engine"
	"github.com/josephcrivera/Blokus-Game-Simulation/internal/config"
	"github.com/josephcrivera/Blokus-Game-Simulation/internal/session"
)

func main() {
	preset := flag.String("game", "duo", "preset layout: "+strings.Join(config.PresetNames(), ", "))
	configPath := flag.String("config", "", "YAML game config (overrides -game)")
	games := flag.Int("n", 1, "number of games to simulate")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	flag.Parse()

	log := newLogger()

	cfg, err := resolveConfig(*preset, *configPath)
	if err != nil {
		log.WithError(err).Fatal("resolve game config")
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))
	log.WithFields(logrus.Fields{
		"players": cfg.Players,
		"size":    cfg.Size,
		"seed":    *seed,
		"games":   *games,
	}).Info("starting simulation")

	manager := session.NewManager(log)
	for i := 0; i < *games; i++ {
		if err := runGame(manager, cfg, rng, log); err != nil {
			log.WithError(err).Fatal("simulation failed")
		}
	}
}

// newLogger configures logrus from the environment. A .env file is
// honored when present; BLOKUS_LOG_LEVEL picks the level.
func newLogger() *logrus.Logger {
	_ = godotenv.Load()

	log := logrus.New()
	if level, err := logrus.ParseLevel(os.Getenv("BLOKUS_LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}
	return log
}

func resolveConfig(preset, path string) (config.GameConfig, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.Preset(preset)
}

func runGame(manager *session.Manager, cfg config.GameConfig, rng *rand.Rand, log *logrus.Logger) error {
	s, err := manager.Create(cfg.Players, cfg.Size, cfg.StartPoints())
	if err != nil {
		return err
	}
	defer manager.Remove(s.ID)

	if err := s.Playout(rng); err != nil {
		return err
	}

	state := s.Snapshot()
	for p := 1; p <= s.NumPlayers(); p++ {
		log.WithFields(logrus.Fields{
			"game_id": s.ID,
			"player":  p,
			"score":   s.Score(p),
		}).Info("final score")
	}
	log.WithFields(logrus.Fields{
		"game_id": s.ID,
		"winners": state.Winners,
		"moves":   state.MoveCount,
	}).Info("winners")

	// The text grid only represents one- and two-player boards; larger
	// games report scores only.
	if text, err := engine.FormatGrid(state.Grid); err == nil {
		fmt.Print(text)
	}
	return nil
}
