package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/blogsphere/blogsphere-cli/internal/buildinfo"
	"github.com/blogsphere/blogsphere-cli/internal/client/cli"
	"github.com/blogsphere/blogsphere-cli/internal/client/config"
	"github.com/blogsphere/blogsphere-cli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app := cli.NewApp(cfg, log)
	app.Run(ctx)

}
