package main

import (
	"flag"
	"log"
	"supplier-admin/internal/config"
	"supplier-admin/internal/server"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to an optional YAML config file")
	flag.StringVar(&configPath, "c", "", "shorthand for -config")
	flag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	if err := srv.Start(); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
