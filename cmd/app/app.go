package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/restron/restron-api/internal/api"
	"github.com/restron/restron-api/internal/config"
	"github.com/restron/restron-api/internal/db"
	"github.com/restron/restron-api/internal/logger"
	"github.com/restron/restron-api/internal/push"
	"github.com/restron/restron-api/internal/realtime"
	"github.com/restron/restron-api/internal/repository/dao"
	"github.com/restron/restron-api/internal/service"
)

const shutdownTimeout = 10 * time.Second

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	// Money goes over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(postgresDB); err != nil {
		return fmt.Errorf("failed to migrate database -> %w", err)
	}

	location, err := time.LoadLocation(conf.Orders.TimeZone)
	if err != nil {
		return fmt.Errorf("failed to load orders.time_zone %q -> %w", conf.Orders.TimeZone, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sender, err := pushSender(ctx, conf.Push)
	if err != nil {
		return fmt.Errorf("failed to initialize push -> %w", err)
	}

	hub := realtime.NewHub()
	go hub.Run(ctx)

	s := api.NewServer(conf, postgresDB, hub, sender, location)

	addr := ":" + s.Config.API.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		zap.L().Info(fmt.Sprintf("starting server at %v", addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start the server -> %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zap.L().Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down the server -> %w", err)
	}

	return nil
}

// pushSender returns nil when push is disabled so the notifier skips devices.
func pushSender(ctx context.Context, conf *config.PushConfig) (service.PushSender, error) {
	if !conf.Enabled {
		zap.L().Info("push notifications disabled")
		return nil, nil
	}
	if conf.CredentialsBase64 == "" {
		return nil, errors.New("push.credentials_base64 must be set when push is enabled")
	}

	sender, err := push.NewFCMSender(ctx, conf.CredentialsBase64)
	if err != nil {
		return nil, err
	}

	return sender, nil
}
