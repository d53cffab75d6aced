package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"overcooked-pos/agg-svc/internal/service"
	"overcooked-pos/agg-svc/internal/storage"
	"overcooked-pos/config"
)

type Config struct {
	Redis config.Redis
	Kafka config.Kafka
}

func main() {
	config.LoadDotEnv()

	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		log.Fatalf("[agg-svc] %v", err)
	}
	if !cfg.Kafka.Enabled() {
		log.Fatal("[agg-svc] KAFKA_BROKER is required")
	}

	rdb := config.MustInitRedis(cfg.Redis)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg.Kafka)
	defer reader.Close()
	log.Printf("[agg-svc] consuming %s", cfg.Kafka)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service.NewConsumer(reader, storage.NewStore(rdb)).Start(ctx)
}
