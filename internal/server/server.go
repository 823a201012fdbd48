package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	httpapi "github.com/jaqueline-monteiro/goldencity-memo-api/internal/api/http"
	"github.com/jaqueline-monteiro/goldencity-memo-api/internal/api/http/middleware"
	"github.com/jaqueline-monteiro/goldencity-memo-api/internal/api/ws"
	"github.com/jaqueline-monteiro/goldencity-memo-api/internal/config"
	"github.com/jaqueline-monteiro/goldencity-memo-api/internal/repository/memory"
	notesService "github.com/jaqueline-monteiro/goldencity-memo-api/internal/service/notes"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// Server HTTP сервер приложения
type Server struct {
	httpServer *http.Server
	cfg        *config.Config
	log        zerolog.Logger
}

// New собирает сервер: Repository → Service → Handler → middleware.
// Хранилище создается здесь и передается явно — один экземпляр на процесс,
// без скрытого глобального состояния.
func New(cfg *config.Config, log zerolog.Logger) *Server {
	// Инициализация компонентов (DI): Repository → Service → Handler
	noteRepo := memory.NewRepository()
	log.Info().Msg("initialized in-memory repository")

	events := notesService.NewEventService()
	noteSvc := notesService.NewNoteService(noteRepo, events, log)
	log.Info().Msg("initialized note service")

	handler := httpapi.NewHandler(noteSvc, cfg.API.Title, cfg.API.Version, log)

	mux := http.NewServeMux()
	handler.Register(mux)
	mux.Handle("GET /events", ws.NewEventsHandler(events, cfg.HTTP.Origins(), log))

	// Применение middleware (в обратном порядке выполнения):
	// CORS → Logging → RateLimit → mux
	var h http.Handler = mux
	h = middleware.RateLimit(h, cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst, log)
	h = middleware.Logging(h, log)
	h = setupCORS(cfg.HTTP).Handler(h)

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           h,
		ReadTimeout:       time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.Server.ReadHeaderTimeout) * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		cfg:        cfg,
		log:        log,
	}
}

// Start запускает HTTP сервер в горутине.
// Возвращает канал ошибок для отслеживания ошибок сервера.
func (s *Server) Start() <-chan error {
	errChan := make(chan error, 1)

	go func() {
		s.log.Info().
			Str("addr", s.httpServer.Addr).
			Str("cors_origins", s.cfg.HTTP.CORSAllowedOrigins).
			Msg("HTTP server listening")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	return errChan
}

// Shutdown выполняет graceful shutdown сервера.
// По истечении таймаута из конфигурации соединения закрываются принудительно.
func (s *Server) Shutdown() error {
	s.log.Info().Msg("starting graceful shutdown")

	timeout := time.Duration(s.cfg.Server.GracefulShutdownTimeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.log.Warn().Err(err).Msg("graceful shutdown failed, forcing close")
		if closeErr := s.httpServer.Close(); closeErr != nil {
			return closeErr
		}
		return err
	}

	s.log.Info().Msg("HTTP server stopped gracefully")
	return nil
}

// setupCORS настраивает CORS middleware используя конфигурацию
func setupCORS(cfg *config.ConfigHTTP) *cors.Cors {
	maxAge := cfg.CORSMaxAge
	if maxAge == 0 {
		maxAge = 86400 // 24 часа по умолчанию
	}

	return cors.New(cors.Options{
		AllowedOrigins: cfg.Origins(),
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{
			"Content-Type",
			"Authorization",
			"X-Requested-With",
		},
		AllowCredentials: true,
		MaxAge:           maxAge,
	})
}
