package queries

import (
	"context"

	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/core/domain/model/menu"
)

// GetDinnerCatalogQueryHandler builds the priced dinner catalog from the policies alone.
// It needs no storage.
type GetDinnerCatalogQueryHandler struct{}

func NewGetDinnerCatalogQueryHandler() GetDinnerCatalogQueryHandler {
	return GetDinnerCatalogQueryHandler{}
}

// Handle returns one entry per policy in catalog order.
func (h GetDinnerCatalogQueryHandler) Handle(
	_ context.Context,
	query GetDinnerCatalogQuery,
) ([]DinnerCatalogEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	basePrices := query.BasePrices()
	entries := make([]DinnerCatalogEntry, 0, len(menu.Policies()))
	for _, policy := range menu.Policies() {
		base, err := kernel.NewMoney(basePrices[policy.Name()], query.Currency())
		if err != nil {
			return nil, err
		}

		entry, err := catalogEntry(policy, base)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func catalogEntry(policy menu.Policy, base kernel.Money) (DinnerCatalogEntry, error) {
	d, err := menu.NewDinner(policy, policy.Name()+" Dinner", policy.CuisineStyle(), base)
	if err != nil {
		return DinnerCatalogEntry{}, err
	}

	adjusted, err := d.AdjustedBasePrice()
	if err != nil {
		return DinnerCatalogEntry{}, err
	}
	itemsTotal, err := d.MenuItemsTotal()
	if err != nil {
		return DinnerCatalogEntry{}, err
	}
	fee, err := d.FlatFee()
	if err != nil {
		return DinnerCatalogEntry{}, err
	}
	total, err := d.CalculateTotalPrice()
	if err != nil {
		return DinnerCatalogEntry{}, err
	}

	styles := make([]string, 0)
	for _, s := range menu.AllServingStyles() {
		if policy.Allows(s) {
			styles = append(styles, s.String())
		}
	}

	items := make([]CatalogMenuItem, 0, len(d.MenuItems()))
	for _, mi := range d.MenuItems() {
		items = append(items, CatalogMenuItem{
			Name:                   mi.Name(),
			Description:            mi.Description(),
			ItemType:               mi.ItemType().String(),
			Price:                  formatAmount(mi.Price().Amount()),
			PreparationTimeMinutes: mi.PreparationTimeMinutes(),
		})
	}

	return DinnerCatalogEntry{
		Policy:                 policy.Name(),
		Kind:                   policy.Kind(),
		CuisineStyle:           policy.CuisineStyle(),
		SpecialInstructions:    policy.SpecialInstructions(),
		DefaultServingStyle:    policy.DefaultServingStyle().String(),
		AllowedServingStyles:   styles,
		Currency:               base.Currency().String(),
		BasePrice:              formatAmount(base.Amount()),
		AdjustedBasePrice:      formatAmount(adjusted.Amount()),
		MenuItems:              items,
		MenuItemsTotal:         formatAmount(itemsTotal.Amount()),
		FeeLabel:               policy.FeeLabel(),
		FlatFee:                formatAmount(fee.Amount()),
		TotalPrice:             formatAmount(total.Amount()),
		PreparationTimeMinutes: d.PreparationTimeMinutes(),
		IncludesTeaService:     d.IncludesTeaService(),
		IncludesWinePairing:    d.IncludesWinePairing(),
		IncludesChampagne:      d.IncludesChampagne(),
		IsLuxury:               d.IsLuxury(),
		IsRomanticSetting:      d.IsRomanticSetting(),
	}, nil
}
