package impl

import (
	"io"
	"log/slog"

	"interest/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Admin: &config.AdminConfig{
			MenuSlug: "product-interest-list",
			PerPage:  10,
		},
	}
}
