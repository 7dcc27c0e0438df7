package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/api"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/infra"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/repositories"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/usecases"
	"github.com/pimcore/admin-ui-classic-bundle-sub003/utils"
)

func RunServer() error {
	apiConfig := api.Configuration{
		Env:                 utils.GetEnv("ENV", "development"),
		AppName:             "grid-backend",
		Port:                utils.GetRequiredEnv[string]("PORT"),
		RequestLoggingLevel: utils.GetEnv("REQUEST_LOGGING_LEVEL", "info"),
		DefaultTimeout:      time.Duration(utils.GetEnv("DEFAULT_TIMEOUT_SECOND", 10)) * time.Second,
		AllowedOrigins:      splitList(utils.GetEnv("ALLOWED_ORIGINS", "")),
	}
	dbConfig := infra.ListingDbConfig{
		Url:              utils.GetEnv("PG_CONNECTION_STRING", ""),
		Host:             utils.GetEnv("PG_HOSTNAME", ""),
		Port:             utils.GetEnv("PG_PORT", "5432"),
		Database:         utils.GetEnv("PG_DATABASE", "pimcore"),
		User:             utils.GetEnv("PG_USER", ""),
		Password:         utils.GetEnv("PG_PASSWORD", ""),
		SslMode:          utils.GetEnv("PG_SSL_MODE", "prefer"),
		Socket:           utils.GetEnv("PG_CONNECT_WITH_SOCKET", false),
		MaxConnections:   utils.GetEnv("PG_MAX_POOL_SIZE", infra.DEFAULT_MAX_CONNECTIONS),
		ApplicationName:  apiConfig.AppName,
		StatementTimeout: time.Duration(utils.GetEnv("PG_STATEMENT_TIMEOUT_SECOND", 0)) * time.Second,
	}
	serverConfig := struct {
		defaultLocale       string
		gridConfigCacheSize int
		loggingFormat       string
		release             string
		sentryDsn           string
	}{
		defaultLocale:       utils.GetEnv("DEFAULT_LOCALE", "en"),
		gridConfigCacheSize: utils.GetEnv("GRID_CONFIG_CACHE_SIZE", usecases.DEFAULT_GRID_CONFIG_CACHE_SIZE),
		loggingFormat:       utils.GetEnv("LOGGING_FORMAT", utils.LoggingFormatText),
		release:             utils.GetEnv("RELEASE", ""),
		sentryDsn:           utils.GetEnv("SENTRY_DSN", ""),
	}

	logger := utils.NewLogger(serverConfig.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	infra.SetupSentry(serverConfig.sentryDsn, apiConfig.Env, serverConfig.release)
	defer sentry.Flush(3 * time.Second)

	pool, err := infra.NewPostgresConnectionPool(ctx, dbConfig.ConnectionString(), dbConfig.MaxConnections)
	if err != nil {
		utils.ReportUnexpectedError(ctx, err, map[string]string{"phase": "startup", "database": dbConfig.Database})
		return err
	}
	defer pool.Close()

	uc, err := usecases.NewUsecases(repositories.NewRepositories(pool),
		usecases.WithDefaultLocale(serverConfig.defaultLocale),
		usecases.WithGridConfigCacheSize(serverConfig.gridConfigCacheSize),
	)
	if err != nil {
		utils.ReportUnexpectedError(ctx, err, map[string]string{"phase": "startup"})
		return err
	}

	router := api.InitRouterMiddlewares(ctx, apiConfig)
	server := api.NewServer(router, apiConfig, uc)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", slog.String("port", apiConfig.Port))
		err := server.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			utils.ReportUnexpectedError(ctx, errors.Wrap(err, "error serving the grid api"),
				map[string]string{"phase": "serve"})
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		utils.ReportUnexpectedError(ctx, errors.Wrap(err, "error shutting down the grid api"),
			map[string]string{"phase": "shutdown"})
		return err
	}
	return nil
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
