// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order is stored as one row in orders plus one row per line in order_items.
package orderrepo

import (
	"time"

	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Subtotal and total are stored for reporting queries; loading recomputes them from the lines.
type OrderDTO struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	Currency              string          `gorm:"type:char(3);not null"`
	OrderTime             time.Time       `gorm:"not null;index"`
	Status                int             `gorm:"type:smallint;not null;index"`
	Subtotal              decimal.Decimal `gorm:"type:numeric;not null"`
	Tax                   decimal.Decimal `gorm:"type:numeric;not null"`
	DeliveryFee           decimal.Decimal `gorm:"type:numeric;not null"`
	TotalAmount           decimal.Decimal `gorm:"type:numeric;not null"`
	Address               AddressDTO      `gorm:"embedded;embeddedPrefix:address_"`
	EstimatedDeliveryTime *time.Time
	Notes                 string          `gorm:"type:text"`
	Items                 []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	UpdatedAt             time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded delivery address within the order table.
type AddressDTO struct {
	Street     string `gorm:"type:varchar(255)"`
	City       string `gorm:"type:varchar(120)"`
	State      string `gorm:"type:varchar(120)"`
	PostalCode string `gorm:"type:varchar(20)"`
	Country    string `gorm:"type:varchar(60)"`
}

// OrderItemDTO is one order line. Position keeps insertion order.
type OrderItemDTO struct {
	ID                         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID                    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position                   int             `gorm:"not null"`
	ProductName                string          `gorm:"type:varchar(255);not null"`
	ProductKind                string          `gorm:"type:varchar(64);not null"`
	UnitPrice                  decimal.Decimal `gorm:"type:numeric;not null"`
	Quantity                   int             `gorm:"not null"`
	UnitPreparationTimeMinutes int             `gorm:"not null"`
}

// TableName specifies the database table name for order lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate with all of its lines to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(o.OrderItems()))
	for i, item := range o.OrderItems() {
		items = append(items, OrderItemDTO{
			ID:                         item.ID().Bytes(),
			OrderID:                    orderID,
			Position:                   i,
			ProductName:                item.ProductName(),
			ProductKind:                item.ProductKind(),
			UnitPrice:                  item.UnitPrice().Amount(),
			Quantity:                   item.Quantity(),
			UnitPreparationTimeMinutes: item.UnitPreparationTimeMinutes(),
		})
	}

	var eta *time.Time
	if t := o.EstimatedDeliveryTime(); !t.IsZero() {
		eta = &t
	}

	addr := o.DeliveryAddress()
	return OrderDTO{
		ID:          orderID,
		CustomerID:  o.CustomerID().Bytes(),
		Currency:    o.Currency().String(),
		OrderTime:   o.OrderTime(),
		Status:      int(o.Status()),
		Subtotal:    o.Subtotal().Amount(),
		Tax:         o.Tax().Amount(),
		DeliveryFee: o.DeliveryFee().Amount(),
		TotalAmount: o.TotalAmount().Amount(),
		Address: AddressDTO{
			Street:     addr.Street(),
			City:       addr.City(),
			State:      addr.State(),
			PostalCode: addr.PostalCode(),
			Country:    addr.Country(),
		},
		EstimatedDeliveryTime: eta,
		Notes:                 o.Notes(),
		Items:                 items,
	}
}

// toDomain converts a database DTO with preloaded lines to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	currency, err := kernel.NewCurrency(dto.Currency)
	if err != nil {
		return nil, err
	}

	addr, err := kernel.NewAddress(
		dto.Address.Street, dto.Address.City, dto.Address.State, dto.Address.PostalCode, dto.Address.Country)
	if err != nil {
		return nil, err
	}

	tax, err := kernel.NewMoney(dto.Tax, currency)
	if err != nil {
		return nil, err
	}

	fee, err := kernel.NewMoney(dto.DeliveryFee, currency)
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := orderItemToDomain(itemDTO, currency)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var eta time.Time
	if dto.EstimatedDeliveryTime != nil {
		eta = *dto.EstimatedDeliveryTime
	}

	return order.RestoreOrder(order.RestoreParams{
		ID:                    id,
		CustomerID:            customerID,
		Currency:              currency,
		OrderTime:             dto.OrderTime,
		Status:                order.Status(dto.Status),
		Items:                 items,
		Tax:                   tax,
		DeliveryFee:           fee,
		DeliveryAddress:       addr,
		EstimatedDeliveryTime: eta,
		Notes:                 dto.Notes,
	})
}

func orderItemToDomain(dto OrderItemDTO, currency kernel.Currency) (*order.OrderItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.UnitPrice, currency)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrderItem(id, dto.ProductName, dto.ProductKind, price, dto.Quantity, dto.UnitPreparationTimeMinutes)
}
