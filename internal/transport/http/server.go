package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	channelService "github.com/teleole/channel-manager-bot/internal/modules/channel/service"
	"github.com/teleole/channel-manager-bot/internal/modules/channel/domain"
	"github.com/teleole/channel-manager-bot/internal/shared/config"
	sloghttp "github.com/samber/slog-http"
)

// Server exposes health and registry status over HTTP
type Server struct {
	cfg      *config.Config
	registry *channelService.Service
	logger   *slog.Logger
}

// New creates a new HTTP server
func New(cfg *config.Config, registry *channelService.Service) *Server {
	return &Server{
		cfg:      cfg,
		registry: registry,
		logger:   slog.Default(),
	}
}

// SetLogger sets the logger
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Start starts the HTTP server
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /status", s.handleStatus)

	addr := fmt.Sprintf(":%s", s.cfg.HTTPPort)
	s.logger.Info("HTTP server starting", "addr", addr)

	// Use slog-http middleware with recovery
	handler := sloghttp.Recovery(mux)
	handler = sloghttp.New(s.logger)(handler)

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

type statusResponse struct {
	Users    int `json:"users"`
	Channels int `json:"channels"`
	Groups   int `json:"groups"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	all, err := s.registry.All()
	if err != nil {
		s.logger.Error("Error loading registry for status", "error", err)
		http.Error(w, "Failed to load registry", http.StatusInternalServerError)
		return
	}

	var resp statusResponse
	resp.Users = len(all)
	for _, channels := range all {
		for _, cfg := range channels {
			if cfg.Kind == domain.ChatKindChannel {
				resp.Channels++
			} else {
				resp.Groups++
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}
