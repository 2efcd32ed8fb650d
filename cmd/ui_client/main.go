package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/gridward/gridward/internal/config"
	"github.com/gridward/gridward/internal/game"
	"github.com/gridward/gridward/internal/game/events/subscribers"
	"github.com/gridward/gridward/internal/game/level"
	"github.com/gridward/gridward/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "config file path")
	levelPath := flag.String("level", "", "level file (defaults to the built-in level)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal(err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var lvl *level.Level
	var err error
	if *levelPath != "" {
		lvl, err = level.Load(*levelPath)
	} else if path := config.Get().Game.LevelPath; path != "" {
		lvl, err = level.Load(path)
	} else {
		lvl, err = level.Default()
	}
	if err != nil {
		log.Fatal(err)
	}

	engine := game.NewEngine(lvl, logger)
	if config.Get().Development.VerboseLogging {
		engine.Bus().Subscribe(subscribers.NewLoggerSubscriber("event_log", logger, zerolog.DebugLevel))
	}

	uiGame, err := ui.NewUIGame(engine)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(ui.ScreenWidth(), ui.ScreenHeight())
	ebiten.SetWindowTitle(config.Get().UI.Window.Title)

	if err := ebiten.RunGame(uiGame); err != nil {
		log.Fatal(err)
	}
}
