package usecase_test

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/bnema/miniworld/internal/logging"
)

func testContext() context.Context {
	cfg := logging.DefaultConfig()
	cfg.Level = zerolog.DebugLevel
	cfg.Output = io.Discard
	return logging.WithContext(context.Background(), logging.New(cfg))
}
