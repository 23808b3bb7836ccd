package main

import (
	"log"

	"github.com/Natali-Skv/forum_tree/config"
	"github.com/Natali-Skv/forum_tree/configRouting"
	"github.com/Natali-Skv/forum_tree/internal/store"
	"github.com/Natali-Skv/forum_tree/internal/store/memory"
	"github.com/Natali-Skv/forum_tree/internal/store/postgres"
	"github.com/Natali-Skv/forum_tree/internal/tools/logging"
	"github.com/google/uuid"
	"github.com/jackc/pgx"
	"github.com/labstack/echo-contrib/prometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err.Error())
	}
	defer logger.Sync()

	s, closeStore, err := openStore(cfg, logger)
	if err != nil {
		logger.Fatal("open store", zap.String("backend", cfg.Backend), zap.Error(err))
	}
	defer closeStore()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(logging.RequestLogger(logger))
	prometheus.NewPrometheus("forum", nil).Use(e)

	handlers := configRouting.NewHandlers(s, logger)
	handlers.ConfigureRouting(e)

	logger.Info("listening", zap.String("addr", cfg.ListenAddr), zap.String("backend", cfg.Backend))
	if err := e.Start(cfg.ListenAddr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func openStore(cfg config.Config, logger *zap.Logger) (store.Store, func(), error) {
	if cfg.Backend == config.BackendMemory {
		return memory.New(), func() {}, nil
	}

	pgxConn, err := pgx.ParseConnectionString(cfg.Db.ConnString())
	if err != nil {
		return nil, nil, err
	}
	connPool, err := pgx.NewConnPool(pgx.ConnPoolConfig{
		ConnConfig:     pgxConn,
		MaxConnections: cfg.Db.MaxConnections,
	})
	if err != nil {
		return nil, nil, err
	}
	if err := postgres.Migrate(connPool); err != nil {
		connPool.Close()
		return nil, nil, err
	}
	s, err := postgres.New(connPool, logger)
	if err != nil {
		connPool.Close()
		return nil, nil, err
	}
	return s, connPool.Close, nil
}
