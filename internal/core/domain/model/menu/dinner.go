package menu

import (
	"errors"
	"fmt"
	"strings"

	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/pkg/errs"
	"dinner/internal/pkg/guard"
)

// ErrDinnerIsNotConstructed is returned when a Dinner was not built by NewDinner.
var ErrDinnerIsNotConstructed = errors.New("Dinner must be created via NewDinner constructor")

// Dinner is a priced product composed of bundled menu items and governed by a pricing Policy.
//
// Its total price is computed, never stored:
//
//	adjust(basePrice) + sum(bundled item prices) + flat fee
//
// The policy's premium or discount is applied to the base price alone, never to the items
// or the fee. All amounts share the base price's currency.
//
// Example:
//
//	d, _ := menu.NewDinner(menu.French, "Bistro Night", "Coq au vin", kernel.MustMoney("30", kernel.USD))
//	total, _ := d.CalculateTotalPrice() // 53.50 USD
type Dinner struct {
	policy       Policy
	name         string
	description  string
	basePrice    kernel.Money
	servingStyle ServingStyle
	menuItems    []*MenuItem
	guard        guard.ConstructorGuard
}

// NewDinner configures a dinner with the policy's default serving style and bundled items.
func NewDinner(policy Policy, name, description string, basePrice kernel.Money) (*Dinner, error) {
	d := &Dinner{
		description: strings.TrimSpace(description),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setPolicy(policy),
		d.setName(name),
		d.setBasePrice(basePrice),
	); err != nil {
		return nil, err
	}

	items, err := policy.bundledItems(basePrice.Currency())
	if err != nil {
		return nil, err
	}
	d.menuItems = items
	d.servingStyle = policy.DefaultServingStyle()

	return d, nil
}

func (d *Dinner) Validate() error {
	if d == nil {
		return ErrDinnerIsNotConstructed
	}
	return d.guard.Validate(ErrDinnerIsNotConstructed)
}

// Policy returns the pricing policy chosen at construction. It never changes.
func (d *Dinner) Policy() Policy {
	return d.policy
}

// Name is the display name given at construction, for example "Bistro Night".
// It is what an order line records as its product name.
func (d *Dinner) Name() string {
	return d.name
}

func (d *Dinner) Description() string {
	return d.description
}

// BasePrice is the price before the policy adjustment, items and fee.
//
// Example:
//
//	d, _ := menu.NewDinner(menu.Valentine, "Date Night", "", kernel.MustMoney("40", kernel.USD))
//	d.BasePrice()         // 40.00 USD
//	d.AdjustedBasePrice() // 36.00 USD after the 10% discount
func (d *Dinner) BasePrice() kernel.Money {
	return d.basePrice
}

// Currency is the base price's currency, shared by every bundled item and the fee.
func (d *Dinner) Currency() kernel.Currency {
	return d.basePrice.Currency()
}

// ServingStyle starts at the policy's default and changes only through SetServingStyle.
func (d *Dinner) ServingStyle() ServingStyle {
	return d.servingStyle
}

// MenuItems returns a copy of the bundle in insertion order.
func (d *Dinner) MenuItems() []*MenuItem {
	out := make([]*MenuItem, len(d.menuItems))
	copy(out, d.menuItems)
	return out
}

// SetServingStyle fails with a validation error when the policy does not allow style.
func (d *Dinner) SetServingStyle(style ServingStyle) error {
	if err := style.Validate(); err != nil {
		return err
	}
	if !d.policy.Allows(style) {
		return errs.NewValueIsInvalidErrorWithCause(
			"servingStyle",
			fmt.Errorf("%s dinner can only be served in %s style", d.policy.Name(), d.policy.DefaultServingStyle()),
		)
	}
	d.servingStyle = style
	return nil
}

// AddMenuItem extends the bundle. The item must be priced in the dinner's currency.
func (d *Dinner) AddMenuItem(item *MenuItem) error {
	if err := item.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("menuItem", err)
	}
	if item.Price().Currency() != d.Currency() {
		return errs.NewCurrencyMismatchError(d.Currency().String(), item.Price().Currency().String())
	}
	d.menuItems = append(d.menuItems, item)
	return nil
}

// AdjustedBasePrice is the base price after the policy's premium or discount.
func (d *Dinner) AdjustedBasePrice() (kernel.Money, error) {
	return d.policy.Adjustment().Apply(d.basePrice)
}

// MenuItemsTotal sums the bundled item prices.
func (d *Dinner) MenuItemsTotal() (kernel.Money, error) {
	prices := make([]kernel.Money, 0, len(d.menuItems))
	for _, item := range d.menuItems {
		prices = append(prices, item.Price())
	}
	return kernel.Sum(d.Currency(), prices...)
}

// FlatFee is the policy's fixed surcharge in the dinner's currency, or zero when the policy has none.
//
//   - English: tea service 3.50
//   - Valentine: romantic setup 15.00
//   - ChampagneFeast: champagne premium 50.00
func (d *Dinner) FlatFee() (kernel.Money, error) {
	return d.policy.FlatFee(d.Currency())
}

// CalculateTotalPrice returns adjust(basePrice) + Σ item prices + flat fee.
//
// Returns:
//   - kernel.Money: the total in the dinner's currency
//   - error: errs.CurrencyMismatchError if an item was priced in another currency
//
// Example:
//
//	d, _ := menu.NewDinner(menu.English, "Sunday Roast", "", kernel.MustMoney("25", kernel.USD))
//	total, _ := d.CalculateTotalPrice() // 25.00 + 8.50 + 3.50 = 37.00 USD
func (d *Dinner) CalculateTotalPrice() (kernel.Money, error) {
	adjusted, err := d.AdjustedBasePrice()
	if err != nil {
		return kernel.Money{}, err
	}
	items, err := d.MenuItemsTotal()
	if err != nil {
		return kernel.Money{}, err
	}
	fee, err := d.FlatFee()
	if err != nil {
		return kernel.Money{}, err
	}
	return kernel.Sum(d.Currency(), adjusted, items, fee)
}

// UnitPrice makes Dinner a Product; it is the total price.
func (d *Dinner) UnitPrice() (kernel.Money, error) {
	return d.CalculateTotalPrice()
}

// PreparationTimeMinutes is the sum of the bundled items' preparation times.
func (d *Dinner) PreparationTimeMinutes() int {
	total := 0
	for _, item := range d.menuItems {
		total += item.PreparationTimeMinutes()
	}
	return total
}

func (d *Dinner) ProductKind() string {
	return d.policy.Kind()
}

func (d *Dinner) Kind() string {
	return d.policy.Kind()
}

func (d *Dinner) CuisineStyle() string {
	return d.policy.CuisineStyle()
}

func (d *Dinner) SpecialInstructions() string {
	return d.policy.SpecialInstructions()
}

func (d *Dinner) IncludesTeaService() bool {
	return d.hasItemNamed("tea")
}

func (d *Dinner) IncludesWinePairing() bool {
	return d.hasItemNamed("wine")
}

func (d *Dinner) IncludesChampagne() bool {
	return d.hasItemNamed("champagne")
}

// IsSundayRoast looks at the dinner's own name, not its items.
func (d *Dinner) IsSundayRoast() bool {
	name := strings.ToLower(d.name)
	return strings.Contains(name, "sunday") || strings.Contains(name, "roast")
}

func (d *Dinner) IsLuxury() bool {
	return d.policy.luxury
}

func (d *Dinner) IsRomanticSetting() bool {
	return d.policy.romantic
}

// ChampagneValue is the price of the first champagne item, or zero.
func (d *Dinner) ChampagneValue() kernel.Money {
	for _, item := range d.menuItems {
		if strings.Contains(strings.ToLower(item.Name()), "champagne") {
			return item.Price()
		}
	}
	return kernel.ZeroMoney(d.Currency())
}

func (d *Dinner) hasItemNamed(fragment string) bool {
	for _, item := range d.menuItems {
		if strings.Contains(strings.ToLower(item.Name()), fragment) {
			return true
		}
	}
	return false
}

func (d *Dinner) setPolicy(policy Policy) error {
	if err := policy.Validate(); err != nil {
		return err
	}
	d.policy = policy
	return nil
}

func (d *Dinner) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Dinner) setBasePrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("basePrice", err)
	}
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("basePrice", fmt.Errorf("%s is negative", price))
	}
	d.basePrice = price
	return nil
}
