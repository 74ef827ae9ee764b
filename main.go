package main

import (
	"log"

	"Kalambury/internal/config"
	"Kalambury/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Println("Starting board")
	if err := ui.RunApp(cfg); err != nil {
		// missing host elements are a wiring defect, not something to recover from
		log.Fatalf("Failed to start board: %v", err)
	}
}
