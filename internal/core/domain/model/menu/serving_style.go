package menu

import (
	"fmt"

	"dinner/internal/pkg/errs"
)

// ServingStyle describes how a dinner is presented at the table.
type ServingStyle int

const (
	UnknownServingStyle ServingStyle = iota
	Formal
	Casual
	Family
	Individual
	Buffet
)

type servingStyleInfo struct {
	name        string
	description string
}

func getServingStyles() map[ServingStyle]servingStyleInfo {
	return map[ServingStyle]servingStyleInfo{
		Formal:     {"Formal", "Formal dining experience with multiple courses"},
		Casual:     {"Casual", "Casual dining with relaxed presentation"},
		Family:     {"Family", "Family-style serving for sharing"},
		Individual: {"Individual", "Individual portions for single serving"},
		Buffet:     {"Buffet", "Self-service buffet style"},
	}
}

// AllServingStyles lists the valid styles in declaration order.
func AllServingStyles() []ServingStyle {
	return []ServingStyle{Formal, Casual, Family, Individual, Buffet}
}

func (s ServingStyle) String() string {
	if info, ok := getServingStyles()[s]; ok {
		return info.name
	}
	return "Unknown"
}

func (s ServingStyle) Description() string {
	return getServingStyles()[s].description
}

func (s ServingStyle) Validate() error {
	if _, ok := getServingStyles()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("servingStyle", fmt.Errorf("%d is not a valid serving style", s))
	}
	return nil
}

func ParseServingStyle(s string) (ServingStyle, error) {
	for style, info := range getServingStyles() {
		if info.name == s {
			return style, nil
		}
	}
	return UnknownServingStyle, errs.NewValueIsInvalidErrorWithCause(
		"servingStyle", fmt.Errorf("%q is not a valid serving style", s))
}
