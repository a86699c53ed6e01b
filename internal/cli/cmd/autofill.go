package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/miniworld/internal/cli"
	"github.com/bnema/miniworld/internal/cli/styles"
	"github.com/bnema/miniworld/internal/domain/entity"
	"github.com/bnema/miniworld/internal/ui/dialog"
)

var (
	addressFlags entity.Address
	cardHolder   string
	cardNumber   string
	cardExpiry   string
)

var autofillCmd = &cobra.Command{
	Use:   "autofill",
	Short: "Manage saved addresses and payment cards",
}

var addressesCmd = &cobra.Command{
	Use:     "addresses",
	Aliases: []string{"address"},
	Short:   "Manage saved addresses",
}

var addressesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved addresses",
	Args:  cobra.NoArgs,
	RunE:  runAddressesList,
}

var addressesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Save an address",
	Example: `  miniworld autofill addresses add --name "Ada Lovelace" --street "12 St James's Square" \
      --city London --country "United Kingdom" --email ada@example.com`,
	Args: cobra.NoArgs,
	RunE: runAddressesAdd,
}

var addressesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved address",
	Args:  cobra.ExactArgs(1),
	RunE:  runAddressesDelete,
}

var cardsCmd = &cobra.Command{
	Use:     "cards",
	Aliases: []string{"card"},
	Short:   "Manage saved payment cards",
}

var cardsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved cards (numbers are masked)",
	Args:  cobra.NoArgs,
	RunE:  runCardsList,
}

var cardsAddCmd = &cobra.Command{
	Use:     "add",
	Short:   "Save a payment card",
	Example: `  miniworld autofill cards add --holder "Ada Lovelace" --number "4111 1111 1111 1111" --expiry 04/29`,
	Args:    cobra.NoArgs,
	RunE:    runCardsAdd,
}

var cardsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved card",
	Args:  cobra.ExactArgs(1),
	RunE:  runCardsDelete,
}

func init() {
	rootCmd.AddCommand(autofillCmd)
	autofillCmd.AddCommand(addressesCmd, cardsCmd)
	addressesCmd.AddCommand(addressesListCmd, addressesAddCmd, addressesDeleteCmd)
	cardsCmd.AddCommand(cardsListCmd, cardsAddCmd, cardsDeleteCmd)

	f := addressesAddCmd.Flags()
	f.StringVar(&addressFlags.Name, "name", "", "full name (required)")
	f.StringVar(&addressFlags.Organization, "organization", "", "organization")
	f.StringVar(&addressFlags.Street, "street", "", "street address")
	f.StringVar(&addressFlags.District, "district", "", "district")
	f.StringVar(&addressFlags.City, "city", "", "city")
	f.StringVar(&addressFlags.Province, "province", "", "province or state")
	f.StringVar(&addressFlags.PostalCode, "postal-code", "", "postal code")
	f.StringVar(&addressFlags.Country, "country", "", "country or region (default "+entity.Countries[0]+")")
	f.StringVar(&addressFlags.Phone, "phone", "", "phone number")
	f.StringVar(&addressFlags.Email, "email", "", "email address")
	_ = addressesAddCmd.MarkFlagRequired("name")

	cf := cardsAddCmd.Flags()
	cf.StringVar(&cardHolder, "holder", "", "cardholder name (required)")
	cf.StringVar(&cardNumber, "number", "", "card number (required)")
	cf.StringVar(&cardExpiry, "expiry", "", "expiry as MM/YY or MM/YYYY (required)")
	for _, name := range []string{"holder", "number", "expiry"} {
		_ = cardsAddCmd.MarkFlagRequired(name)
	}
}

func loadAutofill() (*cli.App, *dialog.AutofillSettings, *styles.AutofillCLIRenderer, error) {
	a, err := requireApp()
	if err != nil {
		return nil, nil, nil, err
	}
	settings := dialog.NewAutofillSettings(a.AutofillUC)
	if err := settings.Load(a.Ctx()); err != nil {
		return nil, nil, nil, fmt.Errorf("load autofill entries: %w", err)
	}
	return a, settings, styles.NewAutofillCLIRenderer(a.Theme), nil
}

func runAddressesList(_ *cobra.Command, _ []string) error {
	_, settings, renderer, err := loadAutofill()
	if err != nil {
		return err
	}
	fmt.Println(renderer.RenderAddresses(settings.Addresses()))
	return nil
}

func runAddressesAdd(_ *cobra.Command, _ []string) error {
	a, settings, renderer, err := loadAutofill()
	if err != nil {
		return err
	}

	form := settings.NewAddressForm()
	country := form.Address.Country
	form.Address = addressFlags
	form.Address.Country = country
	if addressFlags.Country != "" {
		index := countryIndex(form.Countries(), addressFlags.Country)
		if index < 0 {
			return fmt.Errorf("%w: %s (choose from %s)", entity.ErrAddressCountry, addressFlags.Country, strings.Join(form.Countries(), ", "))
		}
		form.SelectCountry(index)
	}

	if err := settings.SubmitAddress(a.Ctx(), form); err != nil {
		return err
	}
	fmt.Println(renderer.RenderAdded("address", strings.TrimSpace(form.Address.Name)))
	return nil
}

func runAddressesDelete(_ *cobra.Command, args []string) error {
	a, settings, renderer, err := loadAutofill()
	if err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := settings.DeleteAddress(a.Ctx(), entity.AddressID(id)); err != nil {
		return err
	}
	fmt.Println(renderer.RenderDeleted("address", id))
	return nil
}

func runCardsList(_ *cobra.Command, _ []string) error {
	_, settings, renderer, err := loadAutofill()
	if err != nil {
		return err
	}
	fmt.Println(renderer.RenderCards(settings.Cards()))
	return nil
}

func runCardsAdd(_ *cobra.Command, _ []string) error {
	a, settings, renderer, err := loadAutofill()
	if err != nil {
		return err
	}

	month, year, err := parseExpiry(cardExpiry)
	if err != nil {
		return err
	}
	card := &entity.CreditCard{
		CardholderName: strings.TrimSpace(cardHolder),
		Number:         entity.NormalizeCardNumber(cardNumber),
		ExpiryMonth:    month,
		ExpiryYear:     year,
	}
	if err := settings.AddCard(a.Ctx(), card); err != nil {
		return err
	}
	fmt.Println(renderer.RenderAdded("card", card.Masked()))
	return nil
}

func runCardsDelete(_ *cobra.Command, args []string) error {
	a, settings, renderer, err := loadAutofill()
	if err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := settings.DeleteCard(a.Ctx(), entity.CreditCardID(id)); err != nil {
		return err
	}
	fmt.Println(renderer.RenderDeleted("card", id))
	return nil
}

func countryIndex(countries []string, name string) int {
	for i, c := range countries {
		if strings.EqualFold(c, strings.TrimSpace(name)) {
			return i
		}
	}
	return -1
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// parseExpiry accepts MM/YY and MM/YYYY. Two-digit years are in the 2000s.
func parseExpiry(s string) (month, year int, err error) {
	mm, yy, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q, use MM/YY", entity.ErrCardExpiry, s)
	}
	month, err = strconv.Atoi(mm)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", entity.ErrCardExpiry, s)
	}
	year, err = strconv.Atoi(yy)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", entity.ErrCardExpiry, s)
	}
	if len(yy) == 2 {
		year += 2000
	}
	return month, year, nil
}
