package http

import (
	"dinner/internal/core/application/usecases/queries"
	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

func toAddress(a Address) (kernel.Address, error) {
	return kernel.NewAddress(a.Street, a.City, a.State, a.PostalCode, a.Country)
}

func parseAmount(name, raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return amount, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toOrder(view queries.GetOrderQueryResponse) Order {
	items := make([]OrderItem, len(view.Items))
	for i, item := range view.Items {
		items[i] = OrderItem{
			ID:                     item.ID.Bytes(),
			ProductName:            item.ProductName,
			ProductKind:            item.ProductKind,
			UnitPrice:              item.UnitPrice,
			Quantity:               item.Quantity,
			TotalPrice:             item.TotalPrice,
			PreparationTimeMinutes: item.PreparationTimeMinutes,
		}
	}

	return Order{
		ID:                          view.ID.Bytes(),
		CustomerID:                  view.CustomerID.Bytes(),
		Status:                      view.Status,
		Currency:                    view.Currency,
		OrderTime:                   view.OrderTime,
		Items:                       items,
		Subtotal:                    view.Subtotal,
		Tax:                         view.Tax,
		DeliveryFee:                 view.DeliveryFee,
		TotalAmount:                 view.TotalAmount,
		DeliveryAddress:             view.DeliveryAddress,
		EstimatedDeliveryTime:       view.EstimatedDeliveryTime,
		Notes:                       view.Notes,
		TotalPreparationTimeMinutes: view.TotalPreparationTimeMinutes,
	}
}

func toDinner(entry queries.DinnerCatalogEntry) Dinner {
	items := make([]DinnerMenuItem, len(entry.MenuItems))
	for i, item := range entry.MenuItems {
		items[i] = DinnerMenuItem{
			Name:                   item.Name,
			Description:            item.Description,
			ItemType:               item.ItemType,
			Price:                  item.Price,
			PreparationTimeMinutes: item.PreparationTimeMinutes,
		}
	}

	return Dinner{
		Policy:                 entry.Policy,
		Kind:                   entry.Kind,
		CuisineStyle:           entry.CuisineStyle,
		SpecialInstructions:    entry.SpecialInstructions,
		DefaultServingStyle:    entry.DefaultServingStyle,
		AllowedServingStyles:   entry.AllowedServingStyles,
		Currency:               entry.Currency,
		BasePrice:              entry.BasePrice,
		AdjustedBasePrice:      entry.AdjustedBasePrice,
		MenuItems:              items,
		MenuItemsTotal:         entry.MenuItemsTotal,
		FeeLabel:               entry.FeeLabel,
		FlatFee:                entry.FlatFee,
		TotalPrice:             entry.TotalPrice,
		PreparationTimeMinutes: entry.PreparationTimeMinutes,
		IncludesTeaService:     entry.IncludesTeaService,
		IncludesWinePairing:    entry.IncludesWinePairing,
		IncludesChampagne:      entry.IncludesChampagne,
		IsLuxury:               entry.IsLuxury,
		IsRomanticSetting:      entry.IsRomanticSetting,
	}
}
