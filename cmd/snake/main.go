package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gridsnake/internal/app"
	"gridsnake/internal/engine"
	"gridsnake/internal/ui/graphics"
	"gridsnake/internal/ui/graphics/screens"
	"gridsnake/internal/ui/types"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	opts := app.RegisterFlags(flag.CommandLine)
	flag.Parse()

	application, err := app.NewApp(opts)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := application.Start(ctx); err != nil {
		log.Fatalf("Failed to start app: %v", err)
	}

	ui := graphics.NewEngine(application.Engine().Layout())

	settings := screens.NewConfigScreen(ui, application.GameConfig())
	ui.RegisterScreens(
		screens.NewMenuScreen(ui),
		settings,
		screens.NewGameScreen(ui),
	)

	application.AddSink(ui)
	ui.Render(application.Frame())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Shutting down...")
		application.Stop()
		cancel()
		os.Exit(0)
	}()

	go handleAppEvents(application, ui, settings)
	go handleUIEvents(application, ui)

	if err := ui.Run(); err != nil {
		log.Fatalf("UI error: %v", err)
	}

	application.Stop()
}

func handleAppEvents(application *app.App, ui *graphics.Engine, settings *screens.ConfigScreen) {
	for event := range application.Events() {
		switch event.Type {
		case app.AppEventStarted:
			ui.SetMessage("")

		case app.AppEventGameOver:
			if payload, ok := event.Payload.(engine.GameOverPayload); ok && payload.NewHighScore {
				ui.SetMessage("New high score!")
			}

		case app.AppEventReconfigured:
			payload := event.Payload.(app.ReconfiguredPayload)
			settings.SetConfig(payload.Config)
			ui.Resize(payload.Layout)
			ui.Render(application.Frame())
			ui.SetScreen(types.ScreenMenu)

		case app.AppEventError:
			if payload, ok := event.Payload.(app.ErrorPayload); ok {
				ui.SetError(payload.Message)
			}
		}
	}
}

func handleUIEvents(application *app.App, ui *graphics.Engine) {
	input := application.Input()

	for event := range ui.Events() {
		switch event.Type {
		case types.UIEventStartGame:
			input <- app.InputEvent{Type: app.InputStartGame}

		case types.UIEventSteer:
			data := event.Payload.(types.SteerData)
			input <- app.InputEvent{Type: app.InputSteer, Payload: data.Directions}

		case types.UIEventExitGame:
			input <- app.InputEvent{Type: app.InputStopGame}

		case types.UIEventApplyConfig:
			data := event.Payload.(types.ConfigData)
			input <- app.InputEvent{Type: app.InputReconfigure, Payload: data.Config}

		case types.UIEventQuit:
			input <- app.InputEvent{Type: app.InputQuit}
			application.Stop()
			os.Exit(0)
		}
	}
}
