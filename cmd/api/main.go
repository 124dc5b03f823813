package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"text-summarizer/internal/config"
	"text-summarizer/internal/infra/download"
	"text-summarizer/internal/infra/extract"
	"text-summarizer/internal/infra/readability"
	"text-summarizer/internal/infra/summarizer"
	"text-summarizer/internal/observability/logging"
	"text-summarizer/internal/observability/tracing"
	"text-summarizer/internal/usecase/summarize"
	envconfig "text-summarizer/pkg/config"
	"text-summarizer/pkg/security/csp"

	hhttp "text-summarizer/internal/handler/http"
	hauth "text-summarizer/internal/handler/http/auth"
	"text-summarizer/internal/handler/http/middleware"
	"text-summarizer/internal/handler/http/requestid"
	hsummary "text-summarizer/internal/handler/http/summary"

	_ "text-summarizer/docs" // swagger docs
)

// @title           Text Summarizer API
// @version         1.0
// @description     Abstractive summaries of typed text, uploaded documents and article URLs,
// @description     with keyword highlighting and readability metrics.

// @contact.name   API Support

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT bearer token. Send "Bearer {token}" in the Authorization header.

// lightRouteTimeout bounds routes that never call the generator.
const lightRouteTimeout = 15 * time.Second

func main() {
	if err := envconfig.LoadDotEnv(); err != nil {
		slog.Error("failed to load .env", slog.Any("error", err))
		os.Exit(1)
	}
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	shutdownTracing := tracing.InitProvider()

	serverCfg, err := config.LoadServerConfig()
	if err != nil {
		logger.Error("failed to load server configuration", slog.Any("error", err))
		os.Exit(1)
	}
	summarizerCfg, err := config.LoadSummarizerConfig()
	if err != nil {
		logger.Error("failed to load summarizer configuration", slog.Any("error", err))
		os.Exit(1)
	}
	profile, err := config.LoadGenerationProfile(envconfig.GetEnvString("GENERATION_PROFILE", ""))
	if err != nil {
		logger.Error("failed to load generation profile", slog.Any("error", err))
		os.Exit(1)
	}

	version := getVersion()
	components, err := setupServer(logger, serverCfg, summarizerCfg, profile, version)
	if err != nil {
		logger.Error("failed to set up server", slog.Any("error", err))
		os.Exit(1)
	}

	runServer(logger, serverCfg, summarizerCfg, components, version)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(ctx); err != nil {
		logger.Warn("tracer provider shutdown failed", slog.Any("error", err))
	}
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	return envconfig.GetEnvString("VERSION", "dev")
}

// ServerComponents holds components needed for server operation and cleanup.
type ServerComponents struct {
	Handler   http.Handler
	Limiter   *hhttp.RateLimiter
	Downloads *download.Store
}

// setupServer builds the generator, the pipeline and the HTTP handler.
func setupServer(
	logger *slog.Logger,
	serverCfg *config.ServerConfig,
	summarizerCfg *config.SummarizerConfig,
	profile summarize.DecodingProfile,
	version string,
) (*ServerComponents, error) {
	gen, err := summarizer.New(summarizerCfg)
	if err != nil {
		return nil, err
	}
	logger.Info("summarizer backend configured",
		slog.String("backend", gen.Name()),
		slog.Int("max_concurrent", summarizerCfg.MaxConcurrent),
		slog.Duration("timeout", summarizerCfg.Timeout))

	store := download.NewStore(serverCfg.DownloadTTL)
	svc := summarize.NewService(gen, readability.NewScorer(), store, summarize.Config{
		Profile:       profile,
		MaxConcurrent: int64(summarizerCfg.MaxConcurrent),
		Timeout:       summarizerCfg.Timeout,
	})

	var limiter *hhttp.RateLimiter
	create := func(h http.Handler) http.Handler { return h }
	if serverCfg.RateLimitRPM > 0 {
		limiter = hhttp.NewRateLimiter(serverCfg.RateLimitRPM, serverCfg.TrustProxyHeaders)
		create = limiter.Limit
		logger.Info("rate limiting enabled", slog.Int("requests_per_minute", serverCfg.RateLimitRPM))
	} else {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
	}
	if serverCfg.AuthEnabled() {
		authz := hauth.Middleware([]byte(serverCfg.JWTSecret), nil)
		limit := create
		create = func(h http.Handler) http.Handler { return limit(authz(h)) }
		logger.Info("bearer token auth enabled for summary creation")
	}

	mux := http.NewServeMux()
	if err := hsummary.Register(mux, svc, hsummary.Config{
		Files:          extract.NewRegistry(),
		URLs:           extract.NewFetcher(serverCfg.Fetch),
		Profile:        profile,
		MaxUploadBytes: serverCfg.MaxUploadBytes,
		AuthRequired:   serverCfg.AuthEnabled(),
		Create:         create,
		Light:          hhttp.Timeout(lightRouteTimeout),
	}); err != nil {
		return nil, err
	}

	mux.Handle("GET /health", &hhttp.HealthHandler{Generator: svc, Downloads: store, Version: version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{Generator: svc})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET /swagger/", csp.Middleware(csp.SwaggerUIPolicy())(httpSwagger.WrapHandler))

	corsCfg, err := middleware.NewCORSConfig(serverCfg.CORSAllowedOrigins, logger)
	if err != nil {
		return nil, err
	}
	if len(corsCfg.AllowedOrigins) > 0 {
		logger.Info("CORS enabled", slog.Any("allowed_origins", corsCfg.AllowedOrigins))
	}

	return &ServerComponents{
		Handler:   applyMiddleware(logger, mux, serverCfg, corsCfg),
		Limiter:   limiter,
		Downloads: store,
	}, nil
}

// applyMiddleware wraps the handler with the middleware chain.
// Order, outermost first: Request ID → Tracing → Metrics → Logging → Recovery → Input validation → CORS.
func applyMiddleware(logger *slog.Logger, handler http.Handler, cfg *config.ServerConfig, cors middleware.CORSConfig) http.Handler {
	chain := handler
	if len(cors.AllowedOrigins) > 0 {
		chain = middleware.CORS(cors)(chain)
	}
	chain = hhttp.InputValidation(cfg.MaxUploadBytes)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.MetricsMiddleware(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(
	logger *slog.Logger,
	serverCfg *config.ServerConfig,
	summarizerCfg *config.SummarizerConfig,
	components *ServerComponents,
	version string,
) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if components.Limiter != nil {
		go hhttp.StartRateLimitCleanup(ctx, components.Limiter, 5*time.Minute, 10*time.Minute)
	}

	purger, err := download.StartPurger(components.Downloads, serverCfg.PurgeSchedule, logger)
	if err != nil {
		logger.Error("failed to start download purger", slog.Any("error", err))
		os.Exit(1)
	}

	addr := ":" + serverCfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           components.Handler,
		ReadHeaderTimeout: serverCfg.ReadHeaderTimeout,
		// Generation may take up to the summarizer timeout.
		WriteTimeout: summarizerCfg.Timeout + 30*time.Second,
		IdleTimeout:  2 * time.Minute,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	// In-flight generations finish before the base context is cancelled.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), serverCfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}

	cancel()
	<-purger.Stop().Done()
	logger.Info("server stopped")
}
