package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"overcooked-pos/config"
	httpapi "overcooked-pos/pos-svc/internal/api/http"
	"overcooked-pos/pos-svc/internal/service"
	"overcooked-pos/pos-svc/internal/storage"
	"overcooked-pos/pos-svc/internal/store"
)

type Config struct {
	Server   config.Server
	Postgres config.Postgres
	Kafka    config.Kafka
}

type adapters struct {
	publisher service.OrderPublisher
	archive   service.HistoryArchive
	closers   []func() error
}

func (a *adapters) Close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			log.Printf("[pos-svc] WARNING: close adapter: %v", err)
		}
	}
}

// connectAdapters enables the archive and the event stream when their hosts
// are configured. The POS runs fully in memory without them.
func connectAdapters(ctx context.Context, cfg Config) *adapters {
	a := &adapters{}

	if cfg.Postgres.Enabled() {
		db := config.MustInitPostgres(cfg.Postgres)
		archive := storage.NewPostgresArchive(db)
		if err := archive.EnsureSchema(ctx); err != nil {
			log.Fatalf("[pos-svc] %v", err)
		}
		a.archive = archive
		a.closers = append(a.closers, db.Close)
		log.Printf("[pos-svc] archiving paid orders to postgres %s/%s", cfg.Postgres.Host, cfg.Postgres.Name)
	} else {
		log.Println("[pos-svc] DB_HOST not set, order archive disabled")
	}

	if cfg.Kafka.Enabled() {
		writer := config.NewKafkaWriter(cfg.Kafka)
		a.publisher = storage.NewKafkaPublisher(writer)
		a.closers = append(a.closers, writer.Close)
		log.Printf("[pos-svc] publishing paid orders to kafka %s", cfg.Kafka)
	} else {
		log.Println("[pos-svc] KAFKA_BROKER not set, order events disabled")
	}

	return a
}

func newHandler(cfg Config, s *store.Store, a *adapters) *httpapi.Handler {
	qr := service.DefaultQRGenerator{BaseURL: cfg.Server.PublicURL}
	return httpapi.NewHandler(
		service.NewInventoryService(s),
		service.NewOrderService(s, a.publisher, a.archive, qr),
		service.NewReservationService(s),
		service.NewReportService(s, nil),
	)
}

func main() {
	config.LoadDotEnv()

	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		log.Fatalf("[pos-svc] %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := connectAdapters(ctx, cfg)
	defer a.Close()

	s := store.New(store.WithInventory(store.DefaultInventory()))
	if err := httpapi.StartServer(ctx, cfg.Server.Addr(), httpapi.NewRouter(newHandler(cfg, s, a))); err != nil {
		log.Printf("[pos-svc] ERROR: server: %v", err)
	}
}
