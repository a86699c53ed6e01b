package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/miniworld/internal/domain/entity"
	"github.com/bnema/miniworld/internal/domain/repository"
	"github.com/bnema/miniworld/internal/logging"
)

// ManageAutofillUseCase handles the stored addresses and payment cards
// offered by form autofill.
type ManageAutofillUseCase struct {
	addresses repository.AddressRepository
	cards     repository.CreditCardRepository
	now       func() time.Time
}

// NewManageAutofillUseCase creates a new autofill management use case.
func NewManageAutofillUseCase(
	addresses repository.AddressRepository,
	cards repository.CreditCardRepository,
) *ManageAutofillUseCase {
	return &ManageAutofillUseCase{
		addresses: addresses,
		cards:     cards,
		now:       time.Now,
	}
}

// ListAddresses returns every stored address.
func (uc *ManageAutofillUseCase) ListAddresses(ctx context.Context) ([]*entity.Address, error) {
	addresses, err := uc.addresses.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return addresses, nil
}

// AddAddress validates and stores a new address. An empty country selects
// the default entry of the country list.
func (uc *ManageAutofillUseCase) AddAddress(ctx context.Context, address *entity.Address) error {
	log := logging.FromContext(ctx)

	if address.Country == "" {
		address.Country = entity.Countries[0]
	}
	if err := address.Validate(); err != nil {
		return err
	}
	address.CreatedAt = uc.now()

	if err := uc.addresses.Save(ctx, address); err != nil {
		return fmt.Errorf("failed to save address: %w", err)
	}

	log.Info().Int64("address_id", int64(address.ID)).Msg("autofill address added")
	return nil
}

// DeleteAddress removes an address.
func (uc *ManageAutofillUseCase) DeleteAddress(ctx context.Context, id entity.AddressID) error {
	existing, err := uc.addresses.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get address: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("address %d: %w", id, entity.ErrAutofillEntryNotFound)
	}

	if err := uc.addresses.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}

	logging.FromContext(ctx).Info().Int64("address_id", int64(id)).Msg("autofill address deleted")
	return nil
}

// ListCards returns every stored card.
func (uc *ManageAutofillUseCase) ListCards(ctx context.Context) ([]*entity.CreditCard, error) {
	cards, err := uc.cards.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

// AddCard normalizes, validates and stores a new card.
func (uc *ManageAutofillUseCase) AddCard(ctx context.Context, card *entity.CreditCard) error {
	card.Number = entity.NormalizeCardNumber(card.Number)
	if err := card.Validate(); err != nil {
		return err
	}
	card.CreatedAt = uc.now()

	if err := uc.cards.Save(ctx, card); err != nil {
		return fmt.Errorf("failed to save card: %w", err)
	}

	logging.FromContext(ctx).Info().
		Int64("card_id", int64(card.ID)).
		Str("card", card.Masked()).
		Msg("autofill card added")
	return nil
}

// DeleteCard removes a card.
func (uc *ManageAutofillUseCase) DeleteCard(ctx context.Context, id entity.CreditCardID) error {
	if err := uc.cards.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}

	logging.FromContext(ctx).Info().Int64("card_id", int64(id)).Msg("autofill card deleted")
	return nil
}
