package server

import (
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jwdomes/mushland-game/internal/config"
	"github.com/jwdomes/mushland-game/internal/engine"
)

// Server ties together HTTP serving and WebSocket handling.
type Server struct {
	handlers *Handlers
	config   config.Config
	static   fs.FS
	logger   *log.Logger
}

// New creates a server. static is the renderer's file tree, served at /.
func New(cfg config.Config, static fs.FS) *Server {
	logger := log.New(os.Stdout, "[server] ", log.LstdFlags)
	return &Server{
		handlers: NewHandlers(cfg, engine.New(engine.DefaultConfig()), logger),
		config:   cfg,
		static:   static,
		logger:   logger,
	}
}

// Routes builds the HTTP router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handlers.HandleHealth)
	r.Get("/ws", s.handlers.HandleWS)

	r.Route("/api", func(r chi.Router) {
		r.Get("/create", s.handlers.HandleCreateGame)
		r.Post("/create", s.handlers.HandleCreateGame)
		r.Get("/qr", s.handlers.HandleQR)
		r.Get("/sessions/{id}/replay", s.handlers.HandleReplay)
		r.Delete("/sessions/{id}", s.handlers.HandleDeleteGame)
	})

	if s.static != nil {
		r.Handle("/*", http.FileServer(http.FS(s.static)))
	}
	return r
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Printf("Mushland server starting on http://localhost%s", addr)
	s.logger.Printf("Open http://localhost%s/api/create to start a new game", addr)
	return srv.ListenAndServe()
}
