package main

import (
	"fmt"
	"log"

	"timberco/internal/config"
	"timberco/internal/database"
	"timberco/internal/server"
)

func main() {
	cfg := config.Load()
	database.Init(cfg.DatabaseURL)

	r := server.NewRouter(cfg)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
