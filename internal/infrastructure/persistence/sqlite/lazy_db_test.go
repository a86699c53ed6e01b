package sqlite_test

import (
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bnema/miniworld/internal/domain/entity"
	"github.com/bnema/miniworld/internal/infrastructure/persistence/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyDB_NotInitializedByDefault(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))

	assert.False(t, lazy.IsInitialized())
	assert.NoError(t, lazy.Close(), "closing an unopened database is a no-op")
}

func TestLazyDB_ConcurrentAccessSharesConnection(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))

	const goroutines = 8
	dbs := make([]*sql.DB, goroutines)
	errs := make([]error, goroutines)

	var wg sync.WaitGroup
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dbs[i], errs[i] = lazy.DB(ctx)
		}()
	}
	wg.Wait()

	for i := range goroutines {
		require.NoError(t, errs[i])
		assert.Same(t, dbs[0], dbs[i])
	}
	assert.True(t, lazy.IsInitialized())

	var one int
	require.NoError(t, dbs[0].QueryRowContext(ctx, "SELECT 1").Scan(&one))
	assert.Equal(t, 1, one)

	require.NoError(t, lazy.Close())
	assert.False(t, lazy.IsInitialized())
}

func TestLazyDB_InitFailureIsSticky(t *testing.T) {
	lazy := sqlite.NewLazyDB("")

	_, err := lazy.DB(testCtx())
	require.Error(t, err)
	_, err = lazy.DB(testCtx())
	require.Error(t, err)
}

func TestLazyRepositories_OpenOnFirstUse(t *testing.T) {
	ctx := testCtx()
	dir := t.TempDir()
	lazy := sqlite.NewLazyDB(filepath.Join(dir, "test.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	zoom := sqlite.NewLazyZoomRepository(lazy)
	settings := sqlite.NewLazySettingsRepository(lazy)
	cards := sqlite.NewLazyCreditCardRepository(lazy, filepath.Join(dir, "card.key"))
	assert.False(t, lazy.IsInitialized())

	require.NoError(t, zoom.Set(ctx, entity.NewZoomLevel("example.com", 1.5)))
	assert.True(t, lazy.IsInitialized())

	require.NoError(t, settings.Set(ctx, "homepage", "https://example.com"))
	got, err := settings.Get(ctx, "homepage")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", got)

	card := &entity.CreditCard{CardholderName: "Ada", Number: "4111111111111111", ExpiryMonth: 1, ExpiryYear: 2031}
	require.NoError(t, cards.Save(ctx, card))
	assert.FileExists(t, filepath.Join(dir, "card.key"))
}
