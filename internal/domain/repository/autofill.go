package repository

import (
	"context"

	"github.com/bnema/miniworld/internal/domain/entity"
)

// AddressRepository persists autofill addresses.
type AddressRepository interface {
	// Save inserts the address and assigns its ID.
	Save(ctx context.Context, address *entity.Address) error
	// Get returns nil if the address does not exist.
	Get(ctx context.Context, id entity.AddressID) (*entity.Address, error)
	GetAll(ctx context.Context) ([]*entity.Address, error)
	Delete(ctx context.Context, id entity.AddressID) error
}

// CreditCardRepository persists autofill payment cards. Implementations
// must not store card numbers in clear text.
type CreditCardRepository interface {
	// Save inserts the card and assigns its ID.
	Save(ctx context.Context, card *entity.CreditCard) error
	GetAll(ctx context.Context) ([]*entity.CreditCard, error)
	Delete(ctx context.Context, id entity.CreditCardID) error
}
