// main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"orb/v2/internal/config"
	"orb/v2/internal/logger"
	"orb/v2/sphere"

	"go.uber.org/zap"
)

func main() {
	graphics := flag.Bool("graphics", false, "Render in an interactive tcell screen instead of raw ANSI output")
	frames := flag.Int("frames", 0, "Render this many frames then exit (0 = run until interrupted)")
	cfgPath := flag.String("config", "", "Path to config file")
	debug := flag.Bool("debug", false, "Enable debug logging")
	logFile := flag.String("logfile", "", "Write logs to this file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *debug {
		cfg.Logging.Level = "debug"
	}
	if *logFile != "" {
		cfg.Logging.LogFile = *logFile
	}

	// The renderer owns stdout, so logs go to the file sink only.
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, false); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting",
		zap.Int("width", cfg.Screen.Width),
		zap.Int("height", cfg.Screen.Height),
		zap.Float64("radius", cfg.Sphere.Radius),
		zap.Bool("graphics", *graphics),
	)

	geom := sphere.Sphere{Radius: cfg.Sphere.Radius, Step: cfg.Sphere.Step}

	if *graphics {
		if err := sphere.NewView(geom).Run(); err != nil {
			logger.Error("graphics mode failed", zap.Error(err))
			fmt.Fprintf(os.Stderr, "Graphics error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	canvas := sphere.NewCanvas(cfg.Screen.Width, cfg.Screen.Height, cfg.Screen.Distance, cfg.Screen.ZOffset)
	deltas := sphere.Deltas{
		Pitch: cfg.Animation.PitchDelta,
		Yaw:   cfg.Animation.YawDelta,
		Roll:  cfg.Animation.RollDelta,
	}

	r := sphere.NewRenderer(canvas, geom, deltas, os.Stdout)
	if err := r.Run(ctx, *frames); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("render loop failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Render error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("stopped")
}
