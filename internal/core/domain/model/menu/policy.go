package menu

import (
	"fmt"
	"slices"

	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// AdjustmentDirection tells whether a policy rate raises or lowers the base price.
type AdjustmentDirection int

const (
	NoAdjustment AdjustmentDirection = iota
	Premium
	Discount
)

// Adjustment is a percentage change applied to a dinner's base price only.
type Adjustment struct {
	Direction AdjustmentDirection
	Rate      decimal.Decimal
}

// Apply returns base+base*rate for a premium, base-base*rate for a discount and base otherwise.
func (a Adjustment) Apply(base kernel.Money) (kernel.Money, error) {
	switch a.Direction {
	case Premium:
		return base.Add(base.Multiply(a.Rate))
	case Discount:
		return base.Subtract(base.Multiply(a.Rate))
	default:
		return base, nil
	}
}

type itemTemplate struct {
	name        string
	description string
	amount      string
	itemType    ItemType
	prepMinutes int
}

type feeTemplate struct {
	label  string
	amount string
}

// Policy is the pricing and presentation configuration that distinguishes one kind of dinner
// from another. The set is closed: English, French, Valentine and ChampagneFeast.
//
// Template amounts carry no currency; they are instantiated in the currency of the dinner's
// base price.
type Policy struct {
	name                string
	kind                string
	defaultStyle        ServingStyle
	allowedStyles       []ServingStyle
	adjustment          Adjustment
	fee                 *feeTemplate
	items               []itemTemplate
	cuisineStyle        string
	specialInstructions string
	luxury              bool
	romantic            bool
}

var (
	English = Policy{
		name:         "English",
		kind:         "EnglishDinner",
		defaultStyle: Formal,
		fee:          &feeTemplate{label: "tea service", amount: "3.50"},
		items: []itemTemplate{
			{"English Tea", "Traditional English breakfast tea", "2.50", Beverage, 3},
			{"Yorkshire Pudding", "Traditional English side dish", "6.00", SideDish, 8},
		},
		cuisineStyle:        "Traditional English Cuisine",
		specialInstructions: "Served with traditional English tea service",
	}

	French = Policy{
		name:         "French",
		kind:         "FrenchDinner",
		defaultStyle: Formal,
		adjustment:   Adjustment{Direction: Premium, Rate: decimal.RequireFromString("0.25")},
		items: []itemTemplate{
			{"Baguette", "Fresh French baguette with butter", "4.00", Bread, 3},
			{"House Wine", "French wine pairing recommendation", "12.00", Beverage, 2},
		},
		cuisineStyle:        "Traditional French Cuisine",
		specialInstructions: "Served in traditional French style with wine pairing",
	}

	Valentine = Policy{
		name:         "Valentine",
		kind:         "ValentineDinner",
		defaultStyle: Formal,
		adjustment:   Adjustment{Direction: Discount, Rate: decimal.RequireFromString("0.10")},
		fee:          &feeTemplate{label: "romantic setup", amount: "15.00"},
		items: []itemTemplate{
			{"Romantic Candlelight", "Ambient lighting for romantic atmosphere", "5.00", Beverage, 5},
			{"Fresh Rose", "Single red rose for romantic setting", "8.00", Appetizer, 2},
		},
		cuisineStyle:        "Romantic Valentine Dinner",
		specialInstructions: "Romantic setting with candlelight and fresh rose included",
		romantic:            true,
	}

	ChampagneFeast = Policy{
		name:          "ChampagneFeast",
		kind:          "ChampagneFeastDinner",
		defaultStyle:  Formal,
		allowedStyles: []ServingStyle{Formal},
		adjustment:    Adjustment{Direction: Premium, Rate: decimal.RequireFromString("0.40")},
		fee:           &feeTemplate{label: "champagne premium", amount: "50.00"},
		items: []itemTemplate{
			{"Premium Champagne", "High-quality champagne for celebration", "45.00", Beverage, 5},
			{"Caviar", "Premium caviar as appetizer", "25.00", Appetizer, 3},
			{"Truffle Garnish", "Fresh truffle shavings", "15.00", SideDish, 2},
		},
		cuisineStyle:        "Luxury Champagne Feast",
		specialInstructions: "Premium luxury dinner with champagne - formal service only",
		luxury:              true,
	}
)

// Policies returns every known policy in catalog order.
func Policies() []Policy {
	return []Policy{English, French, Valentine, ChampagneFeast}
}

// ParsePolicy accepts either the policy name ("French") or its kind ("FrenchDinner").
func ParsePolicy(s string) (Policy, error) {
	for _, p := range Policies() {
		if p.name == s || p.kind == s {
			return p, nil
		}
	}
	return Policy{}, errs.NewValueIsInvalidErrorWithCause("policy", fmt.Errorf("%q is not a known dinner policy", s))
}

func (p Policy) Validate() error {
	if p.name == "" {
		return errs.NewValueIsRequiredError("policy")
	}
	return nil
}

func (p Policy) Name() string {
	return p.name
}

// Kind is the product kind recorded on order lines, e.g. "FrenchDinner".
func (p Policy) Kind() string {
	return p.kind
}

func (p Policy) DefaultServingStyle() ServingStyle {
	return p.defaultStyle
}

func (p Policy) Adjustment() Adjustment {
	return p.adjustment
}

func (p Policy) CuisineStyle() string {
	return p.cuisineStyle
}

func (p Policy) SpecialInstructions() string {
	return p.specialInstructions
}

// Allows reports whether a dinner under this policy may be served in style.
func (p Policy) Allows(style ServingStyle) bool {
	if style.Validate() != nil {
		return false
	}
	return len(p.allowedStyles) == 0 || slices.Contains(p.allowedStyles, style)
}

// FlatFee returns the fee in currency, or zero when the policy has none.
func (p Policy) FlatFee(currency kernel.Currency) (kernel.Money, error) {
	if p.fee == nil {
		return kernel.ZeroMoney(currency), nil
	}
	return kernel.NewMoneyFromString(p.fee.amount, currency)
}

// FeeLabel is empty when the policy has no flat fee.
func (p Policy) FeeLabel() string {
	if p.fee == nil {
		return ""
	}
	return p.fee.label
}

func (p Policy) bundledItems(currency kernel.Currency) ([]*MenuItem, error) {
	items := make([]*MenuItem, 0, len(p.items))
	for _, tpl := range p.items {
		price, err := kernel.NewMoneyFromString(tpl.amount, currency)
		if err != nil {
			return nil, err
		}
		item, err := NewMenuItem(tpl.name, tpl.description, price, tpl.itemType)
		if err != nil {
			return nil, err
		}
		if err = item.SetPreparationTimeMinutes(tpl.prepMinutes); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
