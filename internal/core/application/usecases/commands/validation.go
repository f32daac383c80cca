package commands

import (
	"strings"

	"dinner/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

func requireText(paramName, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}

func requireNonNegative(paramName string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsOutOfRangeError(paramName, amount.String(), "0", "unbounded")
	}
	return nil
}

func requirePositive(paramName string, value int) error {
	if value <= 0 {
		return errs.NewValueIsOutOfRangeError(paramName, value, 1, "unbounded")
	}
	return nil
}
