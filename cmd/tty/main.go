// cmd/tty/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"go-battle-city/internal/app"
	"go-battle-city/internal/tty"

	"github.com/gdamore/tcell/v2"
)

func main() {
	settingsPath := flag.String("config", "settings.toml", "Path to the TOML settings file")
	players := flag.Int("players", 0, "Number of players (1 or 2), overrides the settings file")
	logPath := flag.String("log", "", "Write the log to this file instead of discarding it")
	flag.Parse()

	// Лог в терминал испортил бы экран
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	env, err := app.Bootstrap(*settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer env.Close()

	n := env.Settings.Players
	if *players == 1 || *players == 2 {
		n = *players
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init screen: %v\n", err)
		os.Exit(1)
	}

	game := app.NewGame(env.Settings, env.Levels, env.Sounds)
	game.Start(n)
	session := tty.NewSession(screen, game)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	runErr := session.Run(ctx, screen)
	screen.Fini()
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Game stopped: %v\n", runErr)
		os.Exit(1)
	}
}
