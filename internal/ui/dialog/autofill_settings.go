package dialog

import (
	"context"
	"fmt"

	"github.com/bnema/miniworld/internal/domain/entity"
)

type autofillStore interface {
	addressAdder
	ListAddresses(ctx context.Context) ([]*entity.Address, error)
	DeleteAddress(ctx context.Context, id entity.AddressID) error
	ListCards(ctx context.Context) ([]*entity.CreditCard, error)
	AddCard(ctx context.Context, card *entity.CreditCard) error
	DeleteCard(ctx context.Context, id entity.CreditCardID) error
}

// AddressRow is one line of the address list.
type AddressRow struct {
	ID      entity.AddressID
	Name    string
	Address string
	Phone   string
}

// CardRow is one line of the payment card list. Numbers are masked.
type CardRow struct {
	ID     entity.CreditCardID
	Holder string
	Number string
	Expiry string
}

// AutofillSettings lists stored addresses and cards.
type AutofillSettings struct {
	store     autofillStore
	addresses []AddressRow
	cards     []CardRow
}

// NewAutofillSettings creates the dialog model. Call Load before reading rows.
func NewAutofillSettings(store autofillStore) *AutofillSettings {
	return &AutofillSettings{store: store}
}

// Load refreshes both lists.
func (s *AutofillSettings) Load(ctx context.Context) error {
	addresses, err := s.store.ListAddresses(ctx)
	if err != nil {
		return err
	}
	cards, err := s.store.ListCards(ctx)
	if err != nil {
		return err
	}

	s.addresses = make([]AddressRow, 0, len(addresses))
	for _, a := range addresses {
		s.addresses = append(s.addresses, AddressRow{
			ID:      a.ID,
			Name:    a.Name,
			Address: a.FullAddress(),
			Phone:   a.Phone,
		})
	}

	s.cards = make([]CardRow, 0, len(cards))
	for _, c := range cards {
		s.cards = append(s.cards, CardRow{
			ID:     c.ID,
			Holder: c.CardholderName,
			Number: c.Masked(),
			Expiry: c.Expiry(),
		})
	}
	return nil
}

// Addresses returns the address rows from the last Load.
func (s *AutofillSettings) Addresses() []AddressRow {
	return s.addresses
}

// Cards returns the card rows from the last Load.
func (s *AutofillSettings) Cards() []CardRow {
	return s.cards
}

// NewAddressForm opens the address entry form bound to the same store.
func (s *AutofillSettings) NewAddressForm() *AddressEntryForm {
	return NewAddressEntryForm(s.store)
}

// SubmitAddress stores the form's address and reloads the lists.
func (s *AutofillSettings) SubmitAddress(ctx context.Context, form *AddressEntryForm) error {
	if _, err := form.Submit(ctx); err != nil {
		return err
	}
	return s.Load(ctx)
}

// AddCard stores a card and reloads the lists.
func (s *AutofillSettings) AddCard(ctx context.Context, card *entity.CreditCard) error {
	if err := s.store.AddCard(ctx, card); err != nil {
		return fmt.Errorf("failed to add card: %w", err)
	}
	return s.Load(ctx)
}

// DeleteAddress removes an address and reloads the lists.
func (s *AutofillSettings) DeleteAddress(ctx context.Context, id entity.AddressID) error {
	if err := s.store.DeleteAddress(ctx, id); err != nil {
		return err
	}
	return s.Load(ctx)
}

// DeleteCard removes a card and reloads the lists.
func (s *AutofillSettings) DeleteCard(ctx context.Context, id entity.CreditCardID) error {
	if err := s.store.DeleteCard(ctx, id); err != nil {
		return err
	}
	return s.Load(ctx)
}
