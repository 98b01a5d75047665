package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"

	"github.com/jwdomes/mushland-game/internal/config"
	"github.com/jwdomes/mushland-game/internal/server"
)

//go:embed web/static
var static embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	port := flag.Int("port", cfg.Port, "server port")
	flag.Parse()
	cfg.Port = *port

	sub, err := fs.Sub(static, "web/static")
	if err != nil {
		log.Fatalf("static fs: %v", err)
	}

	srv := server.New(cfg, sub)
	if err := srv.Start(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
