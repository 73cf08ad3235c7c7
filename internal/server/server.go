package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goto/workforce/api/handler/v1beta1"
	"github.com/goto/workforce/pkg/log"
	"github.com/goto/workforce/pkg/opentelemetry"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	shutdownTimeout   = 15 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// RunServer serves the REST API until SIGINT or SIGTERM
func RunServer(config *Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := log.NewCtxLogger(config.LogLevel, log.DefaultContextKeys)

	if config.Telemetry.Enabled {
		shutdownOtel, err := opentelemetry.Init(ctx, config.Telemetry)
		if err != nil {
			return fmt.Errorf("initializing telemetry: %w", err)
		}
		defer func() {
			if err := shutdownOtel(); err != nil {
				logger.Error(context.Background(), "failed to shut down telemetry", "error", err)
			}
		}()
	}

	services, err := InitServices(ServiceDeps{
		Config:      config,
		Logger:      logger,
		Validator:   validator.New(),
		WithJournal: true,
	})
	if err != nil {
		return fmt.Errorf("initializing services: %w", err)
	}
	defer services.Close()

	handler, err := NewHTTPHandler(config, services, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Port),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "server started", "port", config.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}

// NewHTTPHandler builds the API mux wrapped with identity, logging and tracing middlewares
func NewHTTPHandler(config *Config, services *Services, logger log.Logger) (http.Handler, error) {
	var opts []v1beta1.HandlerOption
	if services.JournalRepository != nil {
		opts = append(opts, v1beta1.WithJournalRepository(services.JournalRepository))
	}
	h := v1beta1.NewHandler(
		services.InboxService,
		services.DecisionService,
		services.HistoryService,
		logger,
		opts...,
	)

	mux := runtime.NewServeMux()
	if err := h.RegisterRoutes(mux); err != nil {
		return nil, fmt.Errorf("registering routes: %w", err)
	}
	if err := mux.HandlePath(http.MethodGet, "/ping", func(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "pong")
	}); err != nil {
		return nil, fmt.Errorf("registering ping route: %w", err)
	}

	var handler http.Handler = mux
	handler = headerAuth(config.Auth.Default, handler)
	handler = enrichLogFields(handler)
	handler = otelhttp.NewHandler(handler, "workforce")
	return handler, nil
}
