package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/bookshelf/internal/buildinfo"
	"github.com/dmitrijs2005/bookshelf/internal/server"
	"github.com/dmitrijs2005/bookshelf/internal/server/config"
)

// main starts the development backend; it serves until interrupted.
func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bookshelf-server: %v\n", err)
		os.Exit(1)
	}

	app.Run(context.Background())
}
