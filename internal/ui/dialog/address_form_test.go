package dialog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/miniworld/internal/application/usecase"
	"github.com/bnema/miniworld/internal/domain/entity"
	repomocks "github.com/bnema/miniworld/internal/domain/repository/mocks"
	"github.com/bnema/miniworld/internal/ui/dialog"
)

func TestAddressEntryForm_DefaultsToFirstCountry(t *testing.T) {
	form := dialog.NewAddressEntryForm(nil)

	assert.Equal(t, entity.Countries[0], form.Address.Country)
	assert.Equal(t, entity.Countries, form.Countries())

	form.SelectCountry(2)
	assert.Equal(t, entity.Countries[2], form.Address.Country)
	form.SelectCountry(99)
	assert.Equal(t, entity.Countries[2], form.Address.Country)
}

func TestAddressEntryForm_Validate(t *testing.T) {
	tests := []struct {
		name    string
		address entity.Address
		wantErr error
	}{
		{
			name:    "name required",
			address: entity.Address{Name: "   ", City: "Lyon"},
			wantErr: entity.ErrAddressNameRequired,
		},
		{
			name:    "street or city required",
			address: entity.Address{Name: "Ada"},
			wantErr: entity.ErrAddressLocation,
		},
		{
			name:    "bad email",
			address: entity.Address{Name: "Ada", Street: "1 Main St", Email: "not-an-email"},
			wantErr: entity.ErrAddressEmail,
		},
		{
			name:    "valid with city only",
			address: entity.Address{Name: "Ada", City: "London", Email: " ada@example.com "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := dialog.NewAddressEntryForm(nil)
			country := form.Address.Country
			form.Address = tt.address
			form.Address.Country = country

			err := form.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAddressEntryForm_SubmitPersistsTrimmedAddress(t *testing.T) {
	ctx := testContext()
	addresses := repomocks.NewMockAddressRepository(t)
	uc := usecase.NewManageAutofillUseCase(addresses, repomocks.NewMockCreditCardRepository(t))

	addresses.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(a *entity.Address) bool {
			return a.Name == "Ada Lovelace" && a.Street == "12 St James's Square" && a.Country == "United Kingdom"
		})).
		Run(func(_ context.Context, a *entity.Address) { a.ID = 7 }).
		Return(nil)

	form := dialog.NewAddressEntryForm(uc)
	form.Address.Name = "  Ada Lovelace "
	form.Address.Street = "12 St James's Square"
	form.SelectCountry(4)

	saved, err := form.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.AddressID(7), saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestAddressEntryForm_SubmitInvalidDoesNotPersist(t *testing.T) {
	addresses := repomocks.NewMockAddressRepository(t)
	uc := usecase.NewManageAutofillUseCase(addresses, repomocks.NewMockCreditCardRepository(t))

	form := dialog.NewAddressEntryForm(uc)
	_, err := form.Submit(testContext())

	assert.ErrorIs(t, err, entity.ErrAddressNameRequired)
}

func TestAddressEntryForm_SubmitStoreError(t *testing.T) {
	addresses := repomocks.NewMockAddressRepository(t)
	uc := usecase.NewManageAutofillUseCase(addresses, repomocks.NewMockCreditCardRepository(t))
	addresses.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	form := dialog.NewAddressEntryForm(uc)
	form.Address.Name = "Ada"
	form.Address.City = "London"

	_, err := form.Submit(testContext())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
