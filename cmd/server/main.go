package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/jitsunotes/internal/server"
	"github.com/dmitrijs2005/jitsunotes/internal/server/config"
)

func main() {
	if err := run(); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.Run(ctx)
}
