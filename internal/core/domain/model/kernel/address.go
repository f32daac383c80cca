package kernel

import (
	"errors"
	"strings"

	"dinner/internal/pkg/errs"
	"dinner/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly initialized Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is the immutable delivery destination of an order or the default address of a customer.
// Street, city, postal code and country are required; state is optional.
//
// Example:
//
//	addr, err := kernel.NewAddress("221B Baker Street", "London", "", "NW1 6XE", "UK")
//	fmt.Println(addr) // 221B Baker Street, London, NW1 6XE, UK
type Address struct { //nolint:recvcheck //using for validation
	street     string
	city       string
	state      string
	postalCode string
	country    string
	guard      guard.ConstructorGuard
}

// NewAddress trims every part and validates the required ones.
func NewAddress(street, city, state, postalCode, country string) (Address, error) {
	addr := Address{
		state: strings.TrimSpace(state),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setStreet(street),
		addr.setCity(city),
		addr.setPostalCode(postalCode),
		addr.setCountry(country),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

func (a Address) Street() string {
	return a.street
}

func (a Address) City() string {
	return a.city
}

func (a Address) State() string {
	return a.state
}

func (a Address) PostalCode() string {
	return a.postalCode
}

func (a Address) Country() string {
	return a.country
}

func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.state == other.state &&
		a.postalCode == other.postalCode &&
		a.country == other.country
}

// String joins the non-empty parts with ", ".
func (a Address) String() string {
	parts := make([]string, 0, 5)
	for _, p := range []string{a.street, a.city, a.state, a.postalCode, a.country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a *Address) setStreet(street string) error {
	return requiredPart(&a.street, "street", street)
}

func (a *Address) setCity(city string) error {
	return requiredPart(&a.city, "city", city)
}

func (a *Address) setPostalCode(postalCode string) error {
	return requiredPart(&a.postalCode, "postalCode", postalCode)
}

func (a *Address) setCountry(country string) error {
	return requiredPart(&a.country, "country", country)
}

func requiredPart(dst *string, name, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*dst = value
	return nil
}
