package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog/log"
)

var (
	configPath = flag.String("config", "", "Settings file (default: user config dir).")
	headlessOn = flag.Bool("headless", false, "Log samples to stdout instead of opening a window.")
	portFlag   = flag.String("port", "", "Serial port; overrides the saved port.")
	baudFlag   = flag.Int("baud", 0, "Baud rate; overrides the saved rate.")
	debug      = flag.Bool("debug", false, "Enable debug logging.")
)

func main() {
	flag.Parse()
	setupLogging(os.Stderr, *debug)

	path := *configPath
	if path == "" {
		var err error
		path, err = defaultSettingsPath()
		if err != nil {
			log.Fatal().Err(err).Msg("locate settings")
		}
	}

	settings, err := LoadSettings(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("using default settings")
	}
	if *portFlag != "" {
		settings.Port = *portFlag
	}
	if *baudFlag != 0 {
		settings.BaudRate = *baudFlag
	}

	link := NewSerialLink()
	if err := link.SetBaudRate(settings.BaudRate); err != nil {
		log.Fatal().Err(err).Msg("configure baud rate")
	}

	commands, err := NewCommandSet(link, settings.Commands)
	if err != nil {
		log.Fatal().Err(err).Msg("load commands")
	}

	if *headlessOn {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := newHeadless(link, commands).run(ctx, settings.Port, os.Stdin, os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("headless logger")
		}
		return
	}

	a := app.NewWithID("com.github.serial-datalogger")
	w := a.NewWindow("Data Logger")
	w.Resize(fyne.NewSize(1280, 720))

	NewAppUI(w, link, commands, settings, path)

	w.ShowAndRun()
}
