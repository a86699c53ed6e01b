package sqlite

import (
	"context"
	"database/sql"
	"sync"

	"github.com/bnema/miniworld/internal/application/port"
	"github.com/bnema/miniworld/internal/domain/entity"
	"github.com/bnema/miniworld/internal/domain/repository"
)

// lazyRepo builds a repository the first time it is needed.
type lazyRepo[T any] struct {
	provider port.DatabaseProvider
	build    func(*sql.DB) (T, error)

	once sync.Once
	repo T
	err  error
}

func (l *lazyRepo[T]) get(ctx context.Context) (T, error) {
	l.once.Do(func() {
		db, err := l.provider.DB(ctx)
		if err != nil {
			l.err = err
			return
		}
		l.repo, l.err = l.build(db)
	})
	return l.repo, l.err
}

// LazyZoomRepository wraps the zoom repository with lazy database initialization.
type LazyZoomRepository struct {
	lazy lazyRepo[repository.ZoomRepository]
}

// NewLazyZoomRepository creates a lazy-loading zoom repository.
func NewLazyZoomRepository(provider port.DatabaseProvider) repository.ZoomRepository {
	return &LazyZoomRepository{lazy: lazyRepo[repository.ZoomRepository]{
		provider: provider,
		build: func(db *sql.DB) (repository.ZoomRepository, error) {
			return NewZoomRepository(db), nil
		},
	}}
}

func (r *LazyZoomRepository) Get(ctx context.Context, domain string) (*entity.ZoomLevel, error) {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.Get(ctx, domain)
}

func (r *LazyZoomRepository) Set(ctx context.Context, level *entity.ZoomLevel) error {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return err
	}
	return repo.Set(ctx, level)
}

func (r *LazyZoomRepository) Delete(ctx context.Context, domain string) error {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return err
	}
	return repo.Delete(ctx, domain)
}

func (r *LazyZoomRepository) DeleteAll(ctx context.Context) error {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return err
	}
	return repo.DeleteAll(ctx)
}

func (r *LazyZoomRepository) GetAll(ctx context.Context) ([]*entity.ZoomLevel, error) {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.GetAll(ctx)
}

// LazyAddressRepository wraps the address repository with lazy database initialization.
type LazyAddressRepository struct {
	lazy lazyRepo[repository.AddressRepository]
}

// NewLazyAddressRepository creates a lazy-loading address repository.
func NewLazyAddressRepository(provider port.DatabaseProvider) repository.AddressRepository {
	return &LazyAddressRepository{lazy: lazyRepo[repository.AddressRepository]{
		provider: provider,
		build: func(db *sql.DB) (repository.AddressRepository, error) {
			return NewAddressRepository(db), nil
		},
	}}
}

func (r *LazyAddressRepository) Save(ctx context.Context, address *entity.Address) error {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return err
	}
	return repo.Save(ctx, address)
}

func (r *LazyAddressRepository) Get(ctx context.Context, id entity.AddressID) (*entity.Address, error) {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.Get(ctx, id)
}

func (r *LazyAddressRepository) GetAll(ctx context.Context) ([]*entity.Address, error) {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.GetAll(ctx)
}

func (r *LazyAddressRepository) Delete(ctx context.Context, id entity.AddressID) error {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return err
	}
	return repo.Delete(ctx, id)
}

// LazyCreditCardRepository wraps the card repository with lazy database and
// key initialization.
type LazyCreditCardRepository struct {
	lazy lazyRepo[repository.CreditCardRepository]
}

// NewLazyCreditCardRepository creates a lazy-loading card repository whose
// encryption key lives at keyPath.
func NewLazyCreditCardRepository(provider port.DatabaseProvider, keyPath string) repository.CreditCardRepository {
	return &LazyCreditCardRepository{lazy: lazyRepo[repository.CreditCardRepository]{
		provider: provider,
		build: func(db *sql.DB) (repository.CreditCardRepository, error) {
			cipher, err := LoadOrCreateCardCipher(keyPath)
			if err != nil {
				return nil, err
			}
			return NewCreditCardRepository(db, cipher), nil
		},
	}}
}

func (r *LazyCreditCardRepository) Save(ctx context.Context, card *entity.CreditCard) error {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return err
	}
	return repo.Save(ctx, card)
}

func (r *LazyCreditCardRepository) GetAll(ctx context.Context) ([]*entity.CreditCard, error) {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.GetAll(ctx)
}

func (r *LazyCreditCardRepository) Delete(ctx context.Context, id entity.CreditCardID) error {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return err
	}
	return repo.Delete(ctx, id)
}

// LazySettingsRepository wraps the settings repository with lazy database initialization.
type LazySettingsRepository struct {
	lazy lazyRepo[repository.SettingsRepository]
}

// NewLazySettingsRepository creates a lazy-loading settings repository.
func NewLazySettingsRepository(provider port.DatabaseProvider) repository.SettingsRepository {
	return &LazySettingsRepository{lazy: lazyRepo[repository.SettingsRepository]{
		provider: provider,
		build: func(db *sql.DB) (repository.SettingsRepository, error) {
			return NewSettingsRepository(db), nil
		},
	}}
}

func (r *LazySettingsRepository) Get(ctx context.Context, key string) (string, error) {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return "", err
	}
	return repo.Get(ctx, key)
}

func (r *LazySettingsRepository) Set(ctx context.Context, key, value string) error {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return err
	}
	return repo.Set(ctx, key, value)
}

func (r *LazySettingsRepository) Delete(ctx context.Context, key string) error {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return err
	}
	return repo.Delete(ctx, key)
}
