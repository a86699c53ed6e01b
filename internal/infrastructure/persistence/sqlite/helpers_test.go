package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/bnema/miniworld/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/miniworld/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	return logging.WithContext(context.Background(), zerolog.Nop())
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sqlite.NewConnection(testCtx(), filepath.Join(t.TempDir(), "miniworld.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}
