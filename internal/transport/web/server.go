package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/EgorLis/movie-catalog/internal/config"
	"github.com/EgorLis/movie-catalog/internal/domain"
	"github.com/EgorLis/movie-catalog/internal/transport/web/v1/health"
	"github.com/EgorLis/movie-catalog/internal/transport/web/v1/movie"
)

type Server struct {
	log    *log.Logger
	server *http.Server
	cfg    *config.Config
}

func New(logger *log.Logger, cfg *config.Config, movies domain.MoviesRepo, cache domain.Cache) *Server {
	healthLog := log.New(logger.Writer(), logger.Prefix()+"[health] ", logger.Flags())
	movieLog := log.New(logger.Writer(), logger.Prefix()+"[movie] ", logger.Flags())

	healthHandler := &health.Handler{DB: movies, Cache: cache, Log: healthLog}
	movieHandler := &movie.Handler{Log: movieLog, Movies: movies, Cache: cache}

	srv := &http.Server{
		Addr:              cfg.AppPort,
		Handler:           NewRouter(healthHandler, movieHandler, logger),
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		MaxHeaderBytes:    1 << 20,
		ReadHeaderTimeout: 2 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return &Server{server: srv, cfg: cfg, log: logger}
}

func (ws *Server) Run() {
	ws.log.Printf("started on %s", ws.server.Addr)
	if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		ws.log.Fatalf("error: %v", err)
	}
}

func (ws *Server) Close(ctx context.Context) {
	if err := ws.server.Shutdown(ctx); err != nil {
		ws.log.Printf("forced to shutdown: %v", err)
	}
	ws.log.Println("exited gracefully")
}
