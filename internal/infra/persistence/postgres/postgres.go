// Package postgres implements the subscription repositories on PostgreSQL through gorm.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"interest/config"
	"interest/internal/domain/lifecycle"
	"interest/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbStatsName                 = "product_interest"
	poolCheckInterval           = 15 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary connection (plus replicas, if configured) and ties its life to the fx app.
// Pool statistics are exported to Prometheus while the app runs.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// multi-step writes go through TransactionManager.Execute
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	statsCollector := collectors.NewDBStatsCollector(sqlDB, dbStatsName)
	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if err := prometheus.Register(statsCollector); err != nil {
				var already prometheus.AlreadyRegisteredError
				if !errors.As(err, &already) {
					return errors.Wrap(err, "failed to register PostgreSQL stats collector")
				}
			}

			go watchPoolWaits(watchCtx, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()
			prometheus.Unregister(statsCollector)

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// watchPoolWaits warns when requests queued noticeably for a connection since the previous check.
func watchPoolWaits(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	ticker := time.NewTicker(poolCheckInterval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			if waited := poolWait(prev, cur); waited >= dbPoolWarnDurationThreshold {
				logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool wait detected",
					slog.Int64("wait_count", cur.WaitCount-prev.WaitCount),
					slog.Duration("wait_duration", waited),
					slog.Int("max_open_conns", cur.MaxOpenConnections),
					slog.Int("in_use_conns", cur.InUse),
				)
			}
			prev = cur
		}
	}
}

func poolWait(prev, cur sql.DBStats) time.Duration {
	if cur.WaitCount <= prev.WaitCount {
		return 0
	}

	return cur.WaitDuration - prev.WaitDuration
}
