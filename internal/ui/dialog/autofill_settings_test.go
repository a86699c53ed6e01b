package dialog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/miniworld/internal/application/usecase"
	"github.com/bnema/miniworld/internal/domain/entity"
	repomocks "github.com/bnema/miniworld/internal/domain/repository/mocks"
	"github.com/bnema/miniworld/internal/ui/dialog"
)

func newAutofillSettings(t *testing.T) (*dialog.AutofillSettings, *repomocks.MockAddressRepository, *repomocks.MockCreditCardRepository) {
	t.Helper()
	addresses := repomocks.NewMockAddressRepository(t)
	cards := repomocks.NewMockCreditCardRepository(t)
	return dialog.NewAutofillSettings(usecase.NewManageAutofillUseCase(addresses, cards)), addresses, cards
}

func TestAutofillSettings_LoadBuildsRows(t *testing.T) {
	s, addresses, cards := newAutofillSettings(t)

	addresses.EXPECT().GetAll(mock.Anything).Return([]*entity.Address{
		{ID: 1, Name: "Ada", Province: "Greater London", City: "London", Street: "12 St James's Square", Phone: "+44 20 0000"},
	}, nil)
	cards.EXPECT().GetAll(mock.Anything).Return([]*entity.CreditCard{
		{ID: 3, CardholderName: "ADA LOVELACE", Number: "4111111111111111", ExpiryMonth: 4, ExpiryYear: 2029},
	}, nil)

	require.NoError(t, s.Load(testContext()))

	assert.Equal(t, []dialog.AddressRow{
		{ID: 1, Name: "Ada", Address: "Greater London London 12 St James's Square", Phone: "+44 20 0000"},
	}, s.Addresses())
	assert.Equal(t, []dialog.CardRow{
		{ID: 3, Holder: "ADA LOVELACE", Number: "**** **** **** 1111", Expiry: "04/29"},
	}, s.Cards())
}

func TestAutofillSettings_AddCardReloads(t *testing.T) {
	s, addresses, cards := newAutofillSettings(t)

	cards.EXPECT().Save(mock.Anything, mock.MatchedBy(func(c *entity.CreditCard) bool {
		return c.Number == "4111111111111111"
	})).Return(nil)
	addresses.EXPECT().GetAll(mock.Anything).Return(nil, nil)
	cards.EXPECT().GetAll(mock.Anything).Return([]*entity.CreditCard{
		{ID: 1, CardholderName: "Ada", Number: "4111111111111111", ExpiryMonth: 1, ExpiryYear: 2030},
	}, nil)

	err := s.AddCard(testContext(), &entity.CreditCard{
		CardholderName: "Ada",
		Number:         "4111 1111-1111 1111",
		ExpiryMonth:    1,
		ExpiryYear:     2030,
	})
	require.NoError(t, err)
	assert.Len(t, s.Cards(), 1)
}

func TestAutofillSettings_AddCardRejectsInvalid(t *testing.T) {
	s, _, _ := newAutofillSettings(t)

	err := s.AddCard(testContext(), &entity.CreditCard{CardholderName: "Ada", Number: "1234", ExpiryMonth: 1, ExpiryYear: 2030})
	assert.ErrorIs(t, err, entity.ErrCardNumber)
}

func TestAutofillSettings_SubmitAddressThenDelete(t *testing.T) {
	ctx := testContext()
	s, addresses, cards := newAutofillSettings(t)

	stored := &entity.Address{ID: 5, Name: "Ada", City: "London"}
	addresses.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
	addresses.EXPECT().GetAll(mock.Anything).Return([]*entity.Address{stored}, nil).Once()
	addresses.EXPECT().Get(mock.Anything, entity.AddressID(5)).Return(stored, nil).Once()
	addresses.EXPECT().Delete(mock.Anything, entity.AddressID(5)).Return(nil).Once()
	addresses.EXPECT().GetAll(mock.Anything).Return(nil, nil).Once()
	cards.EXPECT().GetAll(mock.Anything).Return(nil, nil).Times(2)

	form := s.NewAddressForm()
	form.Address.Name = "Ada"
	form.Address.City = "London"
	require.NoError(t, s.SubmitAddress(ctx, form))
	require.Len(t, s.Addresses(), 1)

	require.NoError(t, s.DeleteAddress(ctx, s.Addresses()[0].ID))
	assert.Empty(t, s.Addresses())
}

func TestAutofillSettings_DeleteMissingCard(t *testing.T) {
	s, _, cards := newAutofillSettings(t)
	cards.EXPECT().Delete(mock.Anything, entity.CreditCardID(9)).Return(entity.ErrAutofillEntryNotFound)

	err := s.DeleteCard(testContext(), 9)
	assert.ErrorIs(t, err, entity.ErrAutofillEntryNotFound)
}
