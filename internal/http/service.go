package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"github.com/tuanvumaihuynh/hvac-catalog/internal/config"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/http/apierr"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/http/metric"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/http/middleware"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/http/swagger"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/query"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/service"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/storage/db"
)

var tracer = otel.Tracer("internal/http")

// Service represents the HTTP service.
type Service struct {
	cfg     config.HTTP
	logger  *slog.Logger
	metrics *metric.Metrics
	doc     *openapi3.T

	productSvc     service.ProductService
	inquirySvc     service.InquiryService
	parser         *query.Parser
	healthCheckers []db.HealthChecker
}

type CleanupFunc func(ctx context.Context) error

func New(
	cfg config.HTTP,
	log *slog.Logger,
	doc *openapi3.T,
	productSvc service.ProductService,
	inquirySvc service.InquiryService,
	parser *query.Parser,
	healthCheckers ...db.HealthChecker,
) *Service {
	return &Service{
		cfg:            cfg,
		logger:         log.With(slog.String("service", "http")),
		metrics:        metric.New(),
		doc:            doc,
		productSvc:     productSvc,
		inquirySvc:     inquirySvc,
		parser:         parser,
		healthCheckers: healthCheckers,
	}
}

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	r, err := s.Router()
	if err != nil {
		return nil, err
	}

	return s.RunWithServer(ctx, r)
}

// Router builds the fully wired handler tree.
func (s *Service) Router() (chi.Router, error) {
	r := chi.NewRouter()
	s.RegisterMiddlewares(r)

	if s.cfg.Swagger {
		if err := swagger.Register(r, s.doc); err != nil {
			return nil, fmt.Errorf("register swagger: %w", err)
		}
	}

	s.RegisterHandlers(r)

	return r, nil
}

func (s *Service) RunWithServer(ctx context.Context, handler http.Handler) (CleanupFunc, error) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64 KB
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", srv.Addr, err)
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.ErrorContext(ctx, "http server stopped", slog.Any("error", err))
		}
	}()

	s.logger.InfoContext(ctx, "http server listening", slog.String("addr", ln.Addr().String()))

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}

func (s *Service) RegisterMiddlewares(r chi.Router) {
	r.Use(
		middleware.Recoverer(s.logger),
		middleware.Trace(tracer),
		middleware.Metrics(s.metrics),
		middleware.CorrelationID(),
		middleware.Cors(s.cfg.AllowedOrigins),
		middleware.Logging(s.logger),
	)
}

func (s *Service) RegisterHandlers(r chi.Router) {
	h := s.newHandler()

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", s.handle(h.ListProducts))
		r.Get("/products/filters", s.handle(h.ListProductFilters))
		r.Get("/products/{id}", s.handle(h.GetProduct))
		r.Post("/inquiries", s.handle(h.CreateInquiry))
	})

	r.Get("/healthz", s.handle(h.Healthz))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, apierr.ErrorResponse{
			Error:      "route not found",
			Code:       "ROUTE_NOT_FOUND",
			StatusCode: http.StatusNotFound,
		})
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, apierr.ErrorResponse{
			Error:      "method not allowed",
			Code:       "METHOD_NOT_ALLOWED",
			StatusCode: http.StatusMethodNotAllowed,
		})
	})

	r.Handle(middleware.MetricsPath, promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	}))
}

type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle adapts an error returning handler, rendering any error through
// handleResponseError.
func (s *Service) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			s.handleResponseError(w, r, err)
		}
	}
}

func (s *Service) handleResponseError(w http.ResponseWriter, r *http.Request, err error) {
	res := apierr.New(err)

	logLevel := slog.LevelInfo
	if res.StatusCode >= 500 {
		logLevel = slog.LevelError
	}
	s.logger.Log(r.Context(), logLevel, "http response error", slog.Any("error", err))

	s.writeError(w, r, res)
}

func (s *Service) writeError(w http.ResponseWriter, r *http.Request, res apierr.ErrorResponse) {
	if err := writeJSON(w, res.StatusCode, res); err != nil {
		s.logger.ErrorContext(r.Context(), "error encoding error response",
			slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck
	w.Write(body)

	return nil
}

type handler struct {
	*productHandler
	*inquiryHandler
	*healthHandler
}

func (s *Service) newHandler() *handler {
	return &handler{
		productHandler: newProductHandler(s.productSvc, s.parser),
		inquiryHandler: newInquiryHandler(s.inquirySvc),
		healthHandler:  newHealthHandler(s.logger, s.healthCheckers),
	}
}
