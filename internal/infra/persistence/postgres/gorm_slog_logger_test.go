package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"interest/config"
	deliverycontext "interest/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func sqlFn() (string, int64) {
	return `SELECT * FROM "product_interest_relationships" WHERE product_id = 3`, 2
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		elapsed   time.Duration
		err       error
		expectLog string
	}{
		{name: "failed query", err: errors.New("connection refused"), expectLog: "GORM query failed"},
		{name: "record not found ignored", err: gorm.ErrRecordNotFound},
		{name: "duplicate subscription ignored", err: gorm.ErrDuplicatedKey},
		{name: "slow query", elapsed: time.Second, expectLog: "GORM slow query"},
		{name: "fast query without debug"},
		{name: "fast query with debug", debug: true, expectLog: "GORM query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			l := newGormSlogLogger(base, cfg)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlFn, tt.err)

			if tt.expectLog == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.expectLog)
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&base, nil)), &config.Config{})

	ctx := deliverycontext.WithLogger(context.Background(),
		slog.New(slog.NewTextHandler(&scoped, nil)).With(slog.String("request_id", "req-9")))

	l.Trace(ctx, time.Now(), sqlFn, errors.New("deadlock detected"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-9")
}
