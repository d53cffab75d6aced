package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

type Server struct {
	Port      string `env:"PORT" envDefault:"8081"`
	PublicURL string `env:"PUBLIC_URL" envDefault:"http://localhost:8080"`
}

func (s Server) Addr() string {
	return ":" + s.Port
}

// Postgres is optional for the POS; an empty host disables the archive.
type Postgres struct {
	Host     string `env:"DB_HOST"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	Name     string `env:"DB_NAME" envDefault:"overcooked"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

func (p Postgres) Enabled() bool {
	return p.Host != ""
}

func (p Postgres) DSN() string {
	return "host=" + p.Host + " port=" + p.Port + " user=" + p.User +
		" password=" + p.Password + " dbname=" + p.Name + " sslmode=" + p.SSLMode
}

type Redis struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     string `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

func (r Redis) Addr() string {
	return net.JoinHostPort(r.Host, r.Port)
}

// Kafka is optional for the POS; an empty broker disables event publishing.
type Kafka struct {
	Broker  string `env:"KAFKA_BROKER"`
	Topic   string `env:"KAFKA_TOPIC" envDefault:"orders"`
	GroupID string `env:"KAFKA_GROUP_ID" envDefault:"agg-svc-consumer"`
}

func (k Kafka) Enabled() bool {
	return k.Broker != ""
}

type Gateway struct {
	Port            string `env:"PORT" envDefault:"8080"`
	PosSvcURL       string `env:"POS_SVC_URL" envDefault:"http://localhost:8081"`
	AnalyticsSvcURL string `env:"ANALYTICS_SVC_URL" envDefault:"http://localhost:8083"`
}

func MustInitPostgres(cfg Postgres) *sql.DB {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = db.PingContext(ctx); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func NewRedisClient(cfg Redis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func MustInitRedis(cfg Redis) *redis.Client {
	client := NewRedisClient(cfg)

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(cfg Kafka) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Broker},
		Topic:   cfg.Topic,
		GroupID: cfg.GroupID,
	})
}

func NewKafkaWriter(cfg Kafka) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Broker),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

func (k Kafka) String() string {
	return fmt.Sprintf("broker=%s topic=%s group=%s", k.Broker, k.Topic, k.GroupID)
}
