package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gridward/gridward/internal/config"
	"github.com/gridward/gridward/internal/game"
	"github.com/gridward/gridward/internal/game/core"
	"github.com/gridward/gridward/internal/game/events/subscribers"
	"github.com/gridward/gridward/internal/game/level"
	"github.com/gridward/gridward/internal/game/states"
)

var playCmd = &cobra.Command{
	Use:   "play [level-file]",
	Short: "Play a level interactively",
	Long: `Play a level in the terminal. Without an argument the built-in
level is used; game.level_path from the config file comes next.

Controls (type a command and press enter):
  w/a/s/d     - Move north/west/south/east
  pw/pa/ps/pd - Place a tower on the adjacent tile, firing that way
  x           - Skip the turn
  q           - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	levelPath := config.Get().Game.LevelPath
	if len(args) == 1 {
		levelPath = args[0]
	}

	var lvl *level.Level
	var err error
	if levelPath != "" {
		lvl, err = level.Load(levelPath)
	} else {
		lvl, err = level.Default()
	}
	if err != nil {
		return fmt.Errorf("loading level: %w", err)
	}

	engine := game.NewEngine(lvl, logger)
	if config.Get().Development.VerboseLogging {
		engine.Bus().Subscribe(subscribers.NewLoggerSubscriber("event_log", logger, zerolog.DebugLevel))
	}

	fmt.Printf("%s\n", engine.Board())
	printStatus(engine)

	maxTurns := config.Get().Game.MaxTurns
	scanner := bufio.NewScanner(os.Stdin)
	for !engine.IsOver() {
		if maxTurns > 0 && engine.Turn() >= maxTurns {
			fmt.Println("Turn limit reached.")
			break
		}

		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "q" {
			break
		}

		intent, ok := parseCommand(line)
		if !ok {
			fmt.Println("Commands: w/a/s/d move, pw/pa/ps/pd place tower, x skip, q quit")
			continue
		}

		if err := engine.SubmitIntent(intent); err != nil {
			fmt.Printf("Rejected: %v\n", err)
			continue
		}

		fmt.Printf("%s\n", engine.Board())
		printStatus(engine)
	}

	switch engine.Phase() {
	case states.PhaseVictory:
		fmt.Println("Victory! All enemies destroyed.")
	case states.PhaseGameOver:
		fmt.Println("Game over. An enemy reached the goal.")
	}
	return scanner.Err()
}

func parseCommand(line string) (game.Intent, bool) {
	dirs := map[byte]core.Direction{
		'w': core.North,
		'd': core.East,
		's': core.South,
		'a': core.West,
	}

	switch {
	case line == "x":
		return game.SkipIntent(), true
	case len(line) == 1:
		if dir, ok := dirs[line[0]]; ok {
			return game.MoveIntent(dir), true
		}
	case len(line) == 2 && line[0] == 'p':
		if dir, ok := dirs[line[1]]; ok {
			return game.PlaceTowerIntent(dir), true
		}
	}
	return game.Intent{}, false
}

func printStatus(e *game.Engine) {
	snap := e.Snapshot()
	towers := "unlimited"
	if snap.RemainingTowers >= 0 {
		towers = fmt.Sprintf("%d", snap.RemainingTowers)
	}
	fmt.Printf("Turn %d | Enemies: %d | Towers left: %s\n", snap.Turn, len(snap.Enemies), towers)
}
