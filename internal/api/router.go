package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"lifesaver/internal/api/handlers/http/admin"
	"lifesaver/internal/api/handlers/http/hospital"
	"lifesaver/internal/api/handlers/http/public"
	"lifesaver/internal/api/handlers/http/responder"
	"lifesaver/internal/api/handlers/http/system"
	"lifesaver/internal/config"
	"lifesaver/internal/middleware"
	"lifesaver/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

type Handlers struct {
	Public    *public.Handler
	Hospital  *hospital.Handler
	Responder *responder.Handler
	Admin     *admin.Handler
	System    *system.Handler
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, checks map[string]system.Pinger) *Server {
	h := Handlers{
		Public:    public.NewHandler(logger, svc.SOSService),
		Hospital:  hospital.NewHandler(logger, svc.RequestService),
		Responder: responder.NewHandler(logger, svc.AlertService),
		Admin:     admin.NewHandler(logger, svc.StatsService),
		System:    system.NewHandler(logger, checks),
	}

	r := InitRouter(cfg, h, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, h Handlers, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			ar.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			ar.Get("/stats", h.Admin.AdminStats)
		})

		// PUBLIC
		api.Group(func(pr chi.Router) {
			pr.Use(middleware.Identity(logger))

			pr.Group(func(sr chi.Router) {
				sr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
				sr.Post("/sos", h.Public.PublicSOS)
				sr.Post("/emergency", h.Public.PublicEmergency)
			})

			// HOSPITAL
			pr.Get("/hospitals/{id}/requests", h.Hospital.HospitalRequestList)
			pr.Patch("/requests/{id}/status", h.Hospital.HospitalRequestStatus)

			// RESPONDER
			pr.Get("/responders/alerts", h.Responder.ResponderAlerts)
			pr.Patch("/alerts/{id}/status", h.Responder.ResponderAlertStatus)
		})

		// SYSTEM
		api.Get("/health", h.System.SystemHealth)
		api.Get("/ready", h.System.SystemReady)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
