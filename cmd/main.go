package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/goserg/foodlog/auth/password"
	authservice "github.com/goserg/foodlog/auth/service"
	authsqlite "github.com/goserg/foodlog/auth/storage/sqlite"
	"github.com/goserg/foodlog/auth/token"
	"github.com/goserg/foodlog/internal/cache/mem"
	rediscache "github.com/goserg/foodlog/internal/cache/redis"
	"github.com/goserg/foodlog/internal/config"
	"github.com/goserg/foodlog/internal/logger"
	"github.com/goserg/foodlog/internal/search"
	"github.com/goserg/foodlog/internal/service"
	"github.com/goserg/foodlog/internal/storage"
	foodsqlite "github.com/goserg/foodlog/internal/storage/sqlite"
	"github.com/goserg/foodlog/internal/web"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "", "path to server toml config")
	flag.Parse()

	cfg, err := config.New(*configPath)
	if err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
	l := logger.New(cfg.Log.Level)

	if err := run(l, cfg); err != nil {
		l.WithError(err).Error("server stopped")
		os.Exit(1)
	}
}

func run(l *logrus.Logger, cfg config.Config) error {
	timeout, err := cfg.Search.TimeoutDuration()
	if err != nil {
		return err
	}
	db, err := storage.Open(cfg.Storage.SqliteFile)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	cache, closeCache, err := newSearchCache(l, cfg)
	if err != nil {
		db.Close()
		return err
	}

	searcher := search.New(l, search.Config{
		BaseURL: cfg.Search.BaseURL,
		APIKey:  cfg.Search.APIKey,
		Timeout: timeout,
	}, cache)
	if cfg.Search.APIKey == "" {
		l.Warn("search api key is empty, provider requests will be rejected")
	}

	issuer := token.NewIssuer(token.Config{Secret: cfg.Auth.Secret})
	auth := authservice.New(authsqlite.New(l, db), password.NewHasher(), issuer)
	foodStorage := foodsqlite.New(l, db)
	foods := service.New(foodStorage, foodStorage)

	server := web.New(l, cfg.Server, issuer, auth, foods, searcher)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve()
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"web": func(ctx context.Context) error {
				l.Info("shutting down")
				return server.Shutdown(ctx)
			},
		},
	)

	select {
	case err := <-serveErr:
		closeAll(l, db, closeCache)
		return err
	case code := <-wait:
		closeAll(l, db, closeCache)
		if code != 0 {
			return fmt.Errorf("shutdown finished with code %d", code)
		}
		return nil
	}
}

func newSearchCache(l *logrus.Logger, cfg config.Config) (search.Cache, func() error, error) {
	ttl, err := cfg.Search.CacheTTLDuration()
	if err != nil {
		return nil, nil, err
	}
	if !cfg.Redis.Enabled {
		return mem.New(ttl), func() error { return nil }, nil
	}
	c := rediscache.New(redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}), ttl)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.Ping(ctx); err != nil {
		c.Close()
		return nil, nil, fmt.Errorf("connect redis %s: %w", cfg.Redis.Addr, err)
	}
	l.WithField("addr", cfg.Redis.Addr).Info("search cache: redis")
	return c, c.Close, nil
}

func closeAll(l *logrus.Logger, db *sql.DB, closeCache func() error) {
	if err := closeCache(); err != nil {
		l.WithError(err).Warn("close search cache")
	}
	if err := db.Close(); err != nil {
		l.WithError(err).Warn("close database")
	}
}
