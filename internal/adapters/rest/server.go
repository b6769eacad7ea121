package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	core_port "listing-service/internal/core/port"
)

// Server - наш REST API сервер.
type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// NewServer создает новый экземпляр сервера. Публичный read-only API:
// поиск, карточка, похожие и health.
func NewServer(port string, handlers *ListingsHandler, baseLogger core_port.LoggerPort) *Server {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		// Публичная витрина: читаем отовсюду, но только безопасными методами
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		// На сколько секунд браузер может кэшировать preflight-ответ
		MaxAge: 300,
	}))

	r.Route("/properties", func(r chi.Router) {
		r.Get("/", handlers.SearchListings)
		r.Get("/{listingID}", handlers.GetListing)
		r.Get("/{listingID}/similar", handlers.GetSimilarListings)
	})
	r.Get("/health", handlers.Health)

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	return &Server{
		httpServer: srv,
		logger:     baseLogger,
	}
}

// Start запускает HTTP-сервер.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
