package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

// Version information - set by ldflags during build
var Version = "dev"

type CLI struct {
	Debug   bool             `help:"Enable debug logging" env:"SOBEL_DEBUG"`
	Version kong.VersionFlag `help:"Print version information"`

	Apply     ApplyCmd     `cmd:"" help:"Write the Sobel gradient magnitude of an image"`
	Direction DirectionCmd `cmd:"" help:"Write a direction map: hue from theta, brightness from magnitude"`
	Stats     StatsCmd     `cmd:"" help:"Print gradient statistics of an image as JSON"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("sobel"),
		kong.Description("Sobel edge gradients for image files."),
		kong.UsageOnError(),
		kong.Vars{"version": Version},
	)

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := kctx.Run(); err != nil {
		slog.Error("command failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
