package main

import (
	"log"

	"nakliyat-api/internal/api"
	"nakliyat-api/internal/config"
	"nakliyat-api/internal/database"
	"nakliyat-api/internal/storage"
	"nakliyat-api/internal/ws"
)

func main() {
	cfg := config.LoadConfig()
	database.Init(cfg)

	hub := ws.NewHub()
	go hub.Run()

	store := storage.NewClient(cfg)
	r := api.NewRouter(cfg, store, hub)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
