package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	httpapi "overcooked-pos/analytics-svc/internal/api/http"
	"overcooked-pos/analytics-svc/internal/service"
	"overcooked-pos/config"
)

type Config struct {
	Port  string `env:"PORT" envDefault:"8083"`
	Redis config.Redis
}

func main() {
	config.LoadDotEnv()

	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		log.Fatalf("[analytics-svc] %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb := config.MustInitRedis(cfg.Redis)
	defer rdb.Close()

	handler := httpapi.NewHandler(service.NewAnalyticsService(rdb, nil))
	if err := httpapi.StartServer(ctx, ":"+cfg.Port, httpapi.NewRouter(handler)); err != nil {
		log.Printf("[analytics-svc] ERROR: server: %v", err)
	}
}
