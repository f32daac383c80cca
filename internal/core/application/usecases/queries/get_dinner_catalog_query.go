package queries

import (
	"errors"
	"maps"

	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/core/domain/model/menu"
	"dinner/internal/pkg/errs"
	"dinner/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetDinnerCatalogQueryIsNotConstructed = errors.New(
	"GetDinnerCatalogQuery must be created via NewGetDinnerCatalogQuery constructor",
)

// DefaultBasePrices returns the list base price of each policy, keyed by policy name.
func DefaultBasePrices() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		menu.English.Name():        decimal.NewFromInt(25),
		menu.French.Name():         decimal.NewFromInt(30),
		menu.Valentine.Name():      decimal.NewFromInt(40),
		menu.ChampagneFeast.Name(): decimal.NewFromInt(100),
	}
}

// GetDinnerCatalogQuery prices every dinner policy in one currency.
// Base prices missing from overrides fall back to DefaultBasePrices.
type GetDinnerCatalogQuery struct {
	currency   kernel.Currency
	basePrices map[string]decimal.Decimal

	guard guard.ConstructorGuard
}

func NewGetDinnerCatalogQuery(
	currency kernel.Currency,
	overrides map[string]decimal.Decimal,
) (GetDinnerCatalogQuery, error) {
	if err := currency.Validate(); err != nil {
		return GetDinnerCatalogQuery{}, err
	}

	prices := DefaultBasePrices()
	for name, price := range overrides {
		policy, err := menu.ParsePolicy(name)
		if err != nil {
			return GetDinnerCatalogQuery{}, err
		}
		if price.IsNegative() {
			return GetDinnerCatalogQuery{}, errs.NewValueIsOutOfRangeError("basePrice", price.String(), "0", "unbounded")
		}
		prices[policy.Name()] = price
	}

	return GetDinnerCatalogQuery{
		currency:   currency,
		basePrices: prices,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetDinnerCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetDinnerCatalogQueryIsNotConstructed)
}

func (q GetDinnerCatalogQuery) Currency() kernel.Currency {
	return q.currency
}

// BasePrices returns a copy of the effective base prices.
func (q GetDinnerCatalogQuery) BasePrices() map[string]decimal.Decimal {
	return maps.Clone(q.basePrices)
}

// DinnerCatalogEntry is one priced dinner policy.
type DinnerCatalogEntry struct {
	Policy                 string
	Kind                   string
	CuisineStyle           string
	SpecialInstructions    string
	DefaultServingStyle    string
	AllowedServingStyles   []string
	Currency               string
	BasePrice              string
	AdjustedBasePrice      string
	MenuItems              []CatalogMenuItem
	MenuItemsTotal         string
	FeeLabel               string
	FlatFee                string
	TotalPrice             string
	PreparationTimeMinutes int
	IncludesTeaService     bool
	IncludesWinePairing    bool
	IncludesChampagne      bool
	IsLuxury               bool
	IsRomanticSetting      bool
}

// CatalogMenuItem is an item bundled with a dinner.
type CatalogMenuItem struct {
	Name                   string
	Description            string
	ItemType               string
	Price                  string
	PreparationTimeMinutes int
}
