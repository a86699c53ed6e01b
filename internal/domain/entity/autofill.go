package entity

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"
)

// AddressID identifies a stored autofill address.
type AddressID int64

// Countries lists the selectable countries/regions of the address form.
// The first entry is the default selection.
var Countries = []string{
	"China",
	"United States",
	"Japan",
	"South Korea",
	"United Kingdom",
	"France",
	"Germany",
	"Other",
}

// Address is an autofill postal address.
type Address struct {
	ID           AddressID
	Name         string
	Organization string
	PostalCode   string
	Province     string
	City         string
	District     string
	Street       string
	Country      string
	Phone        string
	Email        string
	CreatedAt    time.Time
}

// FullAddress joins the regional parts and street into one display line.
func (a *Address) FullAddress() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Province, a.City, a.District, a.Street} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Validation errors for autofill entries.
var (
	ErrAddressNameRequired   = errors.New("address name is required")
	ErrAddressLocation       = errors.New("address needs a street or a city")
	ErrAddressEmail          = errors.New("invalid email address")
	ErrAddressCountry        = errors.New("unknown country")
	ErrCardholderRequired    = errors.New("cardholder name is required")
	ErrCardNumber            = errors.New("invalid card number")
	ErrCardExpiry            = errors.New("invalid card expiry")
	ErrAutofillEntryNotFound = errors.New("autofill entry not found")
)

// Validate checks the address fields.
func (a *Address) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrAddressNameRequired
	}
	if strings.TrimSpace(a.Street) == "" && strings.TrimSpace(a.City) == "" {
		return ErrAddressLocation
	}
	if email := strings.TrimSpace(a.Email); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return fmt.Errorf("%w: %s", ErrAddressEmail, email)
		}
	}
	if a.Country != "" && !isKnownCountry(a.Country) {
		return fmt.Errorf("%w: %s", ErrAddressCountry, a.Country)
	}
	return nil
}

func isKnownCountry(country string) bool {
	for _, c := range Countries {
		if c == country {
			return true
		}
	}
	return false
}

// CreditCardID identifies a stored autofill card.
type CreditCardID int64

// CreditCard is an autofill payment card. Number holds digits only.
type CreditCard struct {
	ID             CreditCardID
	CardholderName string
	Number         string
	ExpiryMonth    int
	ExpiryYear     int
	CreatedAt      time.Time
}

// NormalizeCardNumber strips spaces and dashes from a card number.
func NormalizeCardNumber(number string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, number)
}

// Masked hides everything but the last four digits.
// Numbers shorter than four characters are returned unchanged.
func (c *CreditCard) Masked() string {
	if len(c.Number) < 4 {
		return c.Number
	}
	return "**** **** **** " + c.Number[len(c.Number)-4:]
}

// Expiry renders the expiry date as MM/YY.
func (c *CreditCard) Expiry() string {
	return fmt.Sprintf("%02d/%02d", c.ExpiryMonth, c.ExpiryYear%100)
}

// Validate checks holder, number (Luhn) and expiry.
func (c *CreditCard) Validate() error {
	if strings.TrimSpace(c.CardholderName) == "" {
		return ErrCardholderRequired
	}
	if !luhnValid(c.Number) {
		return ErrCardNumber
	}
	if c.ExpiryMonth < 1 || c.ExpiryMonth > 12 || c.ExpiryYear < 2000 {
		return ErrCardExpiry
	}
	return nil
}

func luhnValid(number string) bool {
	if len(number) < 12 || len(number) > 19 {
		return false
	}
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		r := rune(number[i])
		if !unicode.IsDigit(r) {
			return false
		}
		d := int(r - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
