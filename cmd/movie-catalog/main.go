package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/EgorLis/movie-catalog/internal/app"
)

// @title       movie-catalog API
// @version     1.0
// @description CRUD over the movies collection with a look-aside cache
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.Build(ctx)
	if err != nil {
		log.Fatalf("build: %v", err)
	}

	if err := a.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
