package main

import (
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"

	"github.com/jhignight2004/ProjectBlu360/internal/cmd"
	"github.com/jhignight2004/ProjectBlu360/internal/log"
)

func main() {
	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name("blu360"),
		kong.Description("Xbox 360 vendor-protocol tools: evdev bridge, live telemetry, probing."),
		kong.UsageOnError(),
		// Flags and env override config file values.
		kong.Configuration(kongtoml.Loader, configCandidates()...),
	)

	logger, closer, err := log.Setup(cli.Log.Level, cli.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	ctx.Bind(logger)
	ctx.FatalIfErrorf(ctx.Run())
}

func configCandidates() []string {
	paths := []string{"blu360.toml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "blu360", "config.toml"))
	}
	return paths
}
