package main

import (
	"flag"
	"io"
	"log"
	"os"

	"lightsout/internal/app"
	"lightsout/internal/game"
	"lightsout/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logFile := flag.String("log-file", "", "append logs to this file (the terminal is busy drawing)")
	flag.Parse()

	var out io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log file: %v", err)
		}
		defer f.Close()
		out = f
	}
	logger, err := cfg.NewLogger(out)
	if err != nil {
		log.Fatal(err)
	}
	sess, err := cfg.NewSession(logger)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}
	err = term.New(screen, game.NewController(sess)).Run()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
