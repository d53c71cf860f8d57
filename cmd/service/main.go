package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "delivery/internal/app"
	"delivery/internal/handlers/rest/client_orders_get"
	"delivery/internal/handlers/rest/clients_get"
	"delivery/internal/handlers/rest/contact_post"
	"delivery/internal/handlers/rest/courier_approve_post"
	"delivery/internal/handlers/rest/courier_apply_post"
	"delivery/internal/handlers/rest/courier_delete"
	"delivery/internal/handlers/rest/courier_feedback_get"
	"delivery/internal/handlers/rest/courier_get"
	"delivery/internal/handlers/rest/courier_put"
	"delivery/internal/handlers/rest/couriers_available_get"
	"delivery/internal/handlers/rest/couriers_get"
	"delivery/internal/handlers/rest/email_verified_get"
	"delivery/internal/handlers/rest/feedback_post"
	"delivery/internal/handlers/rest/healthcheck_head"
	"delivery/internal/handlers/rest/newsletter_post"
	"delivery/internal/handlers/rest/notification_send_post"
	"delivery/internal/handlers/rest/notification_token_post"
	"delivery/internal/handlers/rest/notifications_get"
	"delivery/internal/handlers/rest/notifications_read_post"
	"delivery/internal/handlers/rest/order_create_post"
	"delivery/internal/handlers/rest/order_delete"
	"delivery/internal/handlers/rest/order_get"
	"delivery/internal/handlers/rest/order_status_patch"
	"delivery/internal/handlers/rest/orders_get"
	"delivery/internal/handlers/rest/orders_user_get"
	"delivery/internal/handlers/rest/ping_get"
	"delivery/internal/handlers/rest/settings_get"
	"delivery/internal/handlers/rest/settings_patch"
	"delivery/internal/handlers/rest/signin_google_post"
	"delivery/internal/handlers/rest/signin_post"
	"delivery/internal/handlers/rest/signup_post"
	"delivery/internal/handlers/rest/upload_post"
	"delivery/internal/pkg/config"
	"delivery/internal/pkg/dotenv"
	metrics_system "delivery/internal/pkg/metrics"
	authmw "delivery/internal/pkg/middlewares/auth"
	"delivery/internal/pkg/middlewares/graceful_shutdown"
	"delivery/internal/pkg/middlewares/metrics"
	"delivery/internal/pkg/middlewares/rate_limiter"
	"delivery/internal/pkg/middlewares/timeout"
	"delivery/internal/pkg/postgres"
	"delivery/pkg/logger"
	"delivery/pkg/logger/zap_adapter"
	"delivery/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting delivery-service application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	authed := authmw.Middleware(app.Tokens)
	admin := func(h http.Handler) http.Handler {
		return authed(authmw.RequireAdmin(app.ServiceAuth)(h))
	}

	// аккаунты
	router.Handle("/api/auth/signup", signup_post.New(log, app.ServiceAuth)).Methods("POST")
	router.Handle("/api/auth/signin", signin_post.New(log, app.ServiceAuth)).Methods("POST")
	router.Handle("/api/auth/signin-google", signin_google_post.New(log, app.ServiceAuth)).Methods("POST")
	router.Handle("/api/auth/check-email-verified", authed(email_verified_get.New(log, app.ServiceAuth))).Methods("GET")

	// заказы; /user регистрируется до /{id}, иначе "user" матчится как id
	router.Handle("/api/commandes/create", authed(order_create_post.New(log, app.ServiceOrder))).Methods("POST")
	router.Handle("/api/commandes/user", authed(orders_user_get.New(log, app.ServiceOrder))).Methods("GET")
	router.Handle("/api/commandes", admin(orders_get.New(log, app.ServiceOrder))).Methods("GET")
	router.Handle("/api/commandes/{id}", authed(order_get.New(log, app.ServiceOrder))).Methods("GET")
	router.Handle("/api/commandes/{id}", authed(order_status_patch.New(log, app.ServiceOrder))).Methods("PATCH")
	router.Handle("/api/commandes/{id}", authed(order_delete.New(log, app.ServiceOrder))).Methods("DELETE")

	// отзывы
	router.Handle("/api/feedback/submit", authed(feedback_post.New(log, app.ServiceFeedback))).Methods("POST")
	router.Handle("/api/feedback/courier/{id:[0-9]+}", courier_feedback_get.New(log, app.ServiceFeedback)).Methods("GET")

	// курьеры: coursiers - заявки, truecoursiers - действующие
	router.Handle("/api/coursiers/create", authed(courier_apply_post.New(log, app.ServiceCourier))).Methods("POST")
	router.Handle("/api/truecoursiers/available", couriers_available_get.New(log, app.ServiceCourier)).Methods("GET")
	router.Handle("/api/coursiers/{id:[0-9]+}/approve", admin(courier_approve_post.New(log, app.ServiceCourier))).Methods("POST")
	router.Handle("/api/{collection:coursiers|truecoursiers}", admin(couriers_get.New(log, app.ServiceCourier))).Methods("GET")
	router.Handle("/api/{collection:coursiers|truecoursiers}/{id:[0-9]+}", admin(courier_get.New(log, app.ServiceCourier))).Methods("GET")
	router.Handle("/api/{collection:coursiers|truecoursiers}/{id:[0-9]+}", admin(courier_put.New(log, app.ServiceCourier))).Methods("PUT")
	router.Handle("/api/{collection:coursiers|truecoursiers}/{id:[0-9]+}", admin(courier_delete.New(log, app.ServiceCourier))).Methods("DELETE")

	// уведомления
	router.Handle("/api/notifications/send", admin(notification_send_post.New(log, app.ServiceNotification))).Methods("POST")
	router.Handle("/api/notifications/register", authed(notification_token_post.New(log, app.ServiceNotification))).Methods("POST")
	router.Handle("/api/notifications/mark-read", authed(notifications_read_post.New(log, app.ServiceNotification))).Methods("POST")
	router.Handle("/api/notifications", authed(notifications_get.New(log, app.ServiceNotification))).Methods("GET")

	// файлы
	router.Handle("/api/upload", authed(upload_post.New(log, app.ServiceCourier))).Methods("POST")

	// админка
	router.Handle("/api/settings", admin(settings_get.New(log, app.ServiceSettings))).Methods("GET")
	router.Handle("/api/settings", admin(settings_patch.New(log, app.ServiceSettings))).Methods("PATCH")
	router.Handle("/api/clients", admin(clients_get.New(log, app.ServiceAuth))).Methods("GET")
	router.Handle("/api/clients/{id:[0-9]+}/orders", admin(client_orders_get.New(log, app.ServiceOrder))).Methods("GET")

	// маркетинг
	router.Handle("/api/newsletter/subscribe", newsletter_post.New(log, app.ServiceMarketing)).Methods("POST")
	router.Handle("/api/contact/submit", contact_post.New(log, app.ServiceMarketing)).Methods("POST")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
