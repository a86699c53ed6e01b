package dialog_test

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/miniworld/internal/logging"
)

func testContext() context.Context {
	return logging.WithContext(context.Background(), zerolog.Nop())
}
