package http

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Request and response bodies of the /api/v1 contract in api/openapi.yaml.
// Amounts travel as decimal strings so no precision is lost.

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type NewCustomer struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
}

type NewOrder struct {
	CustomerID      openapi_types.UUID `json:"customerId"`
	Currency        *string            `json:"currency,omitempty"`
	DeliveryAddress *Address           `json:"deliveryAddress,omitempty"`
	Notes           *string            `json:"notes,omitempty"`
}

type NewDinnerLine struct {
	Policy       string  `json:"policy"`
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	BasePrice    string  `json:"basePrice"`
	ServingStyle *string `json:"servingStyle,omitempty"`
	Quantity     int     `json:"quantity"`
}

type NewMenuItemLine struct {
	Name                   string  `json:"name"`
	Description            *string `json:"description,omitempty"`
	Price                  string  `json:"price"`
	ItemType               string  `json:"itemType"`
	PreparationTimeMinutes int     `json:"preparationTimeMinutes"`
	Quantity               int     `json:"quantity"`
}

type OrderCharges struct {
	Tax         string `json:"tax"`
	DeliveryFee string `json:"deliveryFee"`
}

type StatusChange struct {
	Status string `json:"status"`
}

type Created struct {
	ID openapi_types.UUID `json:"id"`
}

type OrderItem struct {
	ID                     openapi_types.UUID `json:"id"`
	ProductName            string             `json:"productName"`
	ProductKind            string             `json:"productKind"`
	UnitPrice              string             `json:"unitPrice"`
	Quantity               int                `json:"quantity"`
	TotalPrice             string             `json:"totalPrice"`
	PreparationTimeMinutes int                `json:"preparationTimeMinutes"`
}

type Order struct {
	ID                          openapi_types.UUID `json:"id"`
	CustomerID                  openapi_types.UUID `json:"customerId"`
	Status                      string             `json:"status"`
	Currency                    string             `json:"currency"`
	OrderTime                   time.Time          `json:"orderTime"`
	Items                       []OrderItem        `json:"items"`
	Subtotal                    string             `json:"subtotal"`
	Tax                         string             `json:"tax"`
	DeliveryFee                 string             `json:"deliveryFee"`
	TotalAmount                 string             `json:"totalAmount"`
	DeliveryAddress             string             `json:"deliveryAddress,omitempty"`
	EstimatedDeliveryTime       *time.Time         `json:"estimatedDeliveryTime,omitempty"`
	Notes                       string             `json:"notes,omitempty"`
	TotalPreparationTimeMinutes int                `json:"totalPreparationTimeMinutes"`
}

type ActiveOrder struct {
	ID                    openapi_types.UUID `json:"id"`
	CustomerID            openapi_types.UUID `json:"customerId"`
	Status                string             `json:"status"`
	OrderTime             time.Time          `json:"orderTime"`
	TotalAmount           string             `json:"totalAmount"`
	Currency              string             `json:"currency"`
	ItemCount             int                `json:"itemCount"`
	EstimatedDeliveryTime *time.Time         `json:"estimatedDeliveryTime,omitempty"`
}

type DinnerMenuItem struct {
	Name                   string `json:"name"`
	Description            string `json:"description"`
	ItemType               string `json:"itemType"`
	Price                  string `json:"price"`
	PreparationTimeMinutes int    `json:"preparationTimeMinutes"`
}

type Dinner struct {
	Policy                 string           `json:"policy"`
	Kind                   string           `json:"kind"`
	CuisineStyle           string           `json:"cuisineStyle"`
	SpecialInstructions    string           `json:"specialInstructions"`
	DefaultServingStyle    string           `json:"defaultServingStyle"`
	AllowedServingStyles   []string         `json:"allowedServingStyles"`
	Currency               string           `json:"currency"`
	BasePrice              string           `json:"basePrice"`
	AdjustedBasePrice      string           `json:"adjustedBasePrice"`
	MenuItems              []DinnerMenuItem `json:"menuItems"`
	MenuItemsTotal         string           `json:"menuItemsTotal"`
	FeeLabel               string           `json:"feeLabel,omitempty"`
	FlatFee                string           `json:"flatFee"`
	TotalPrice             string           `json:"totalPrice"`
	PreparationTimeMinutes int              `json:"preparationTimeMinutes"`
	IncludesTeaService     bool             `json:"includesTeaService"`
	IncludesWinePairing    bool             `json:"includesWinePairing"`
	IncludesChampagne      bool             `json:"includesChampagne"`
	IsLuxury               bool             `json:"isLuxury"`
	IsRomanticSetting      bool             `json:"isRomanticSetting"`
}

// GetDinnersParams are the query parameters of GET /api/v1/dinners.
type GetDinnersParams struct {
	Currency                *string
	EnglishBasePrice        *string
	FrenchBasePrice         *string
	ValentineBasePrice      *string
	ChampagneFeastBasePrice *string
}
