package kernel

import (
	"errors"
	"fmt"

	"dinner/internal/pkg/errs"
	"dinner/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when a zero Money value is used in arithmetic.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, NewMoneyFromString or ZeroMoney")

// Money is an immutable exact decimal amount tagged with a currency.
//
// Binary operations require both operands to carry the same currency and fail with
// errs.CurrencyMismatchError otherwise. Multiply scales by a dimensionless factor and
// keeps the currency. Amounts are never rounded by arithmetic; String renders two
// fraction digits.
type Money struct {
	amount   decimal.Decimal
	currency Currency
	guard    guard.ConstructorGuard
}

// NewMoney builds an amount in currency.
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	if err := currency.Validate(); err != nil {
		return Money{}, err
	}

	return Money{
		amount:   amount,
		currency: currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// NewMoneyFromString parses a decimal literal such as "12.50".
func NewMoneyFromString(amount string, currency Currency) (Money, error) {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(value, currency)
}

// MustMoney is NewMoneyFromString for literals known to be valid. It panics otherwise.
func MustMoney(amount string, currency Currency) Money {
	m, err := NewMoneyFromString(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

// ZeroMoney returns a zero amount. currency is expected to be already validated.
func ZeroMoney(currency Currency) Money {
	return Money{
		amount:   decimal.Zero,
		currency: currency,
		guard:    guard.NewConstructorGuard(),
	}
}

func (m Money) Validate() error {
	if err := m.guard.Validate(ErrMoneyIsNotConstructed); err != nil {
		return err
	}
	return m.currency.Validate()
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Currency() Currency {
	return m.currency
}

func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return m.with(m.amount.Add(other.amount)), nil
}

func (m Money) Subtract(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return m.with(m.amount.Sub(other.amount)), nil
}

// Multiply scales the amount, e.g. by a percentage rate or a quantity.
func (m Money) Multiply(factor decimal.Decimal) Money {
	return m.with(m.amount.Mul(factor))
}

// Times multiplies by an integer quantity.
func (m Money) Times(quantity int) Money {
	return m.Multiply(decimal.NewFromInt(int64(quantity)))
}

// Equal compares currency and numeric amount, so 1.5 and 1.50 are equal.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(2), m.currency)
}

// Sum adds amounts starting from zero in currency.
func Sum(currency Currency, amounts ...Money) (Money, error) {
	total := ZeroMoney(currency)
	for _, a := range amounts {
		var err error
		if total, err = total.Add(a); err != nil {
			return Money{}, err
		}
	}
	return total, nil
}

func (m Money) sameCurrency(other Money) error {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return err
	}
	if m.currency != other.currency {
		return errs.NewCurrencyMismatchError(m.currency.String(), other.currency.String())
	}
	return nil
}

func (m Money) with(amount decimal.Decimal) Money {
	return Money{amount: amount, currency: m.currency, guard: m.guard}
}
