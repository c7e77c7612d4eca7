package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theimpacts/impacts/internal/auth"
	"github.com/theimpacts/impacts/internal/build"
	"github.com/theimpacts/impacts/internal/content"
	"github.com/theimpacts/impacts/internal/db"
	"github.com/theimpacts/impacts/internal/handler"
	"github.com/theimpacts/impacts/internal/metrics"
	"github.com/theimpacts/impacts/internal/store"
	"github.com/theimpacts/impacts/internal/submit"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			site, legal, err := content.Load()
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			subscriberStore := store.NewSubscriberStore(database)
			if n, err := subscriberStore.Count(ctx); err == nil {
				metrics.SubscribersTotal.Set(float64(n))
			} else {
				log.Warn("count subscribers", zap.Error(err))
			}

			router := handler.NewRouter(handler.Deps{
				SessionManager: auth.NewSessionManager(database, cfg.DB.Driver, cfg.SessionLifetime, cfg.InsecureCookies),
				Submitter: submit.New(cfg.API.BaseURL,
					submit.WithTimeout(cfg.API.Timeout),
					submit.WithLogger(log.Named("submit")),
				),
				Site:          site,
				Legal:         legal,
				DB:            database,
				TokenStore:    auth.NewSQLTokenStore(database),
				Contacts:      store.NewContactStore(database),
				Subscribers:   subscriberStore,
				StatusChecks:  store.NewStatusCheckStore(database),
				CORSOrigins:   cfg.CORSOrigins,
				SecureCookies: !cfg.InsecureCookies,
				Logger:        log,
			})

			srv := &http.Server{
				Addr:              cfg.HTTP.Addr,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info("listening", zap.String("addr", cfg.HTTP.Addr), zap.String("api", cfg.API.BaseURL), zap.String("version", build.String()))
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
