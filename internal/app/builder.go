package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/EgorLis/movie-catalog/internal/config"
	"github.com/EgorLis/movie-catalog/internal/domain"
	memcache "github.com/EgorLis/movie-catalog/internal/infra/cache/memory"
	redisx "github.com/EgorLis/movie-catalog/internal/infra/cache/redis"
	"github.com/EgorLis/movie-catalog/internal/infra/database/postgres"
	"github.com/EgorLis/movie-catalog/internal/transport/web"
)

type App struct {
	config *config.Config
	server *web.Server
	log    *log.Logger
	cache  domain.Cache
	repo   domain.MoviesRepo
}

func Build(ctx context.Context) (*App, error) {
	base := log.New(os.Stdout, "[app] ", log.LstdFlags)

	serverLog := log.New(base.Writer(), base.Prefix()+"[server] ", base.Flags())
	pgLog := log.New(base.Writer(), base.Prefix()+"[postgres] ", base.Flags())
	cacheLog := log.New(base.Writer(), base.Prefix()+"[cache] ", base.Flags())

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed load config: %w", err)
	}
	base.Printf("\n  configuration: %s-------------------", cfg)

	base.Println("init PostgreSQL")
	pgRepo, err := postgres.NewPGRepo(ctx, pgLog, cfg.GetDSN(), cfg.DBScheme)
	if err != nil {
		return nil, fmt.Errorf("failed init postgres: %w", err)
	}
	base.Println("PostgreSQL is initialized")

	base.Printf("init cache (%s)", cfg.CacheBackend)
	var cache domain.Cache
	switch cfg.CacheBackend {
	case config.CacheBackendMemory:
		cache = memcache.New(cacheLog)
	default:
		cache = redisx.New(redisx.Config{
			Addr:     cfg.RedisAddr,
			DB:       cfg.RedisDB,
			Password: cfg.RedisPassword,
		}, cacheLog)
	}
	if err := cache.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed init cache: %w", err)
	}
	base.Println("cache is initialized")

	base.Println("init Server")
	server := web.New(serverLog, cfg, pgRepo, cache)
	base.Println("Server is initialized")

	base.Println("build ended")
	return &App{
		config: cfg,
		server: server,
		log:    base,
		repo:   pgRepo,
		cache:  cache}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.log.Println("start application...")
	go a.server.Run()
	<-ctx.Done()
	a.log.Println("stop application...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	a.server.Close(stopCtx)
	a.repo.Close()
	a.cache.Close()

	return nil
}
