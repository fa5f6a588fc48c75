package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gridsnake/internal/app"
	"gridsnake/internal/engine"
	"gridsnake/internal/ui/terminal"

	"github.com/gdamore/tcell/v2"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	opts := app.RegisterFlags(flag.CommandLine)
	logPath := flag.String("log", "", "write the log to this file (the terminal is busy drawing)")
	flag.Parse()

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	application, err := app.NewApp(opts)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := application.Start(ctx); err != nil {
		screen.Fini()
		log.Fatalf("Failed to start app: %v", err)
	}
	defer application.Stop()

	view := terminal.NewView(screen, application)
	application.AddSink(view)

	quit := make(chan struct{})
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Shutting down...")
		close(quit)
	}()

	go handleAppEvents(application, view)

	if err := application.StartGame(); err != nil {
		log.Printf("Failed to start game: %v", err)
	}

	view.Run(quit)
}

func handleAppEvents(application *app.App, view *terminal.View) {
	for event := range application.Events() {
		switch event.Type {
		case app.AppEventStarted:
			view.SetMessage("")

		case app.AppEventGameOver:
			if payload, ok := event.Payload.(engine.GameOverPayload); ok && payload.NewHighScore {
				view.SetMessage("New high score!")
			}

		case app.AppEventError:
			if payload, ok := event.Payload.(app.ErrorPayload); ok {
				view.SetMessage(payload.Message)
			}
		}
	}
}
