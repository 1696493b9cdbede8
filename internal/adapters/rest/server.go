package rest

import (
	"context"
	"fmt"
	"marketplace-proxy/internal/core/port"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// CORSOptions - настройки CORS для фронтенда
type CORSOptions struct {
	AllowedOrigin string
}

type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

// NewRouter собирает роутер со всеми middleware и маршрутами
func NewRouter(handlers *ItemsHandlers, corsOpts CORSOptions, baseLogger port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(baseLogger)) // метод, путь, статус и время выполнения каждого запроса
	r.Use(middleware.Recoverer)         // паника -> 500 вместо падения сервера

	r.Use(cors.Handler(cors.Options{
		// Фронтенд работает с одного адреса
		AllowedOrigins:   []string{corsOpts.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS", "PUT", "PATCH", "DELETE"},
		AllowedHeaders:   []string{"X-Requested-With", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api/items", func(r chi.Router) {
		r.Get("/", handlers.HandleSearchItems)
		r.Get("/{id}", handlers.HandleGetItem)
	})

	return r
}

func NewServer(listenPort string, handler http.Handler, baseLogger port.LoggerPort) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + listenPort,
			Handler: handler,
		},
		logger: baseLogger,
	}
}

// Start запускает HTTP-сервер
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", port.Fields{"address": s.httpServer.Addr})
	// ListenAndServe работает, пока не получит ошибку или Shutdown
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
