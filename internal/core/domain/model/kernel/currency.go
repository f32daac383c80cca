package kernel

import (
	"fmt"
	"strings"

	"dinner/internal/pkg/errs"
)

// Currency is a three-letter upper-case currency code such as "USD".
// There is no process-wide default: every Money, Dinner and Order names its currency.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
)

// NewCurrency normalises code (trim, upper-case) and validates its shape.
func NewCurrency(code string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

func (c Currency) Validate() error {
	if c == "" {
		return errs.NewValueIsRequiredError("currency")
	}
	if len(c) != 3 {
		return errs.NewValueIsInvalidErrorWithCause("currency", fmt.Errorf("%q is not a three-letter code", string(c)))
	}
	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return errs.NewValueIsInvalidErrorWithCause("currency", fmt.Errorf("%q is not a three-letter code", string(c)))
		}
	}
	return nil
}

func (c Currency) String() string {
	return string(c)
}
