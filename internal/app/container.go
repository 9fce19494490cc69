package app

import (
	"context"
	"log"
	"time"

	"hirehub/internal/config"
	"hirehub/internal/database"
	dbpostgres "hirehub/internal/database/postgres"
	"hirehub/internal/infrastructure/cache"
	"hirehub/internal/ws"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Logger *log.Logger
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.Default()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := database.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	hub := ws.NewHub(logger)
	go hub.Run()

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  cache.NewRedis(logger),
		Hub:    hub,
		Logger: logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
