package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/bookshelf/internal/buildinfo"
	"github.com/dmitrijs2005/bookshelf/internal/client/cli"
	"github.com/dmitrijs2005/bookshelf/internal/client/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bookshelf: %v\n", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
