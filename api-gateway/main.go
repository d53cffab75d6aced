package main

import (
	"log"
	"net/http"
	"time"

	"overcooked-pos/api-gateway/internal/gateway"
	"overcooked-pos/config"

	"github.com/rs/cors"
)

func main() {
	config.LoadDotEnv()

	var cfg config.Gateway
	if err := config.ParseEnv(&cfg); err != nil {
		log.Fatalf("[gateway] %v", err)
	}

	gw := gateway.NewGateway(gateway.Config{
		PosSvcURL:       cfg.PosSvcURL,
		AnalyticsSvcURL: cfg.AnalyticsSvcURL,
	}, &http.Client{Timeout: 15 * time.Second})

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(gw.SetupRoutes())

	log.Printf("[gateway] API Gateway starting on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
