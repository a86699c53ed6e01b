package dialog

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/miniworld/internal/domain/entity"
)

type addressAdder interface {
	AddAddress(ctx context.Context, address *entity.Address) error
}

// AddressEntryForm is the "add address" form.
type AddressEntryForm struct {
	store addressAdder

	// Address holds the field values as typed.
	Address entity.Address
}

// NewAddressEntryForm creates an empty form with the default country selected.
func NewAddressEntryForm(store addressAdder) *AddressEntryForm {
	return &AddressEntryForm{
		store:   store,
		Address: entity.Address{Country: entity.Countries[0]},
	}
}

// Countries lists the country choices in display order.
func (f *AddressEntryForm) Countries() []string {
	return entity.Countries
}

// SelectCountry picks a country by index. Out of range indexes are ignored.
func (f *AddressEntryForm) SelectCountry(index int) {
	if index >= 0 && index < len(entity.Countries) {
		f.Address.Country = entity.Countries[index]
	}
}

// Validate reports the first invalid field.
func (f *AddressEntryForm) Validate() error {
	a := f.trimmed()
	return a.Validate()
}

// Submit validates and stores the address, returning the stored copy.
func (f *AddressEntryForm) Submit(ctx context.Context) (*entity.Address, error) {
	a := f.trimmed()
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := f.store.AddAddress(ctx, &a); err != nil {
		return nil, fmt.Errorf("failed to add address: %w", err)
	}
	return &a, nil
}

func (f *AddressEntryForm) trimmed() entity.Address {
	a := f.Address
	for _, field := range []*string{
		&a.Name, &a.Organization, &a.PostalCode, &a.Province, &a.City,
		&a.District, &a.Street, &a.Phone, &a.Email,
	} {
		*field = strings.TrimSpace(*field)
	}
	return a
}
