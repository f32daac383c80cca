package menu

import (
	"fmt"

	"dinner/internal/pkg/errs"
)

// ItemType is the catalog category of a MenuItem.
type ItemType int

const (
	UnknownItemType ItemType = iota
	Appetizer
	Beverage
	SideDish
	Bread
	Main
	Dessert
	Soup
	Salad
)

func getItemTypeStrings() map[ItemType]string {
	return map[ItemType]string{
		UnknownItemType: "Unknown",
		Appetizer:       "Appetizer",
		Beverage:        "Beverage",
		SideDish:        "SideDish",
		Bread:           "Bread",
		Main:            "Main",
		Dessert:         "Dessert",
		Soup:            "Soup",
		Salad:           "Salad",
	}
}

func (t ItemType) String() string {
	if str, ok := getItemTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

func (t ItemType) Validate() error {
	if _, ok := getItemTypeStrings()[t]; !ok || t == UnknownItemType {
		return errs.NewValueIsInvalidErrorWithCause("itemType", fmt.Errorf("%d is not a valid item type", t))
	}
	return nil
}

// ParseItemType maps a name such as "SideDish" to its ItemType.
func ParseItemType(s string) (ItemType, error) {
	for t, str := range getItemTypeStrings() {
		if t != UnknownItemType && str == s {
			return t, nil
		}
	}
	return UnknownItemType, errs.NewValueIsInvalidErrorWithCause("itemType", fmt.Errorf("%q is not a valid item type", s))
}
