package main

import (
	"log"

	"roast-backend/internal/bootstrap"
	"roast-backend/internal/shared/config"
	"roast-backend/internal/shared/server"
)

func main() {
	cfg := config.Load()
	app := bootstrap.Build(cfg)

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
