package queries

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/core/domain/model/order"
	"dinner/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order and its lines.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID)
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // 404
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var (
		resp                                 GetOrderQueryResponse
		customerID                           uuid.UUID
		status                               int
		subtotal, tax, deliveryFee, total    decimal.Decimal
		street, city, state, postal, country string
		eta                                  *time.Time
	)
	row := db.Raw(`
		SELECT
			customer_id,
			status,
			currency,
			order_time,
			subtotal,
			tax,
			delivery_fee,
			total_amount,
			address_street,
			address_city,
			address_state,
			address_postal_code,
			address_country,
			estimated_delivery_time,
			notes
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()
	err := row.Scan(
		&customerID,
		&status,
		&resp.Currency,
		&resp.OrderTime,
		&subtotal,
		&tax,
		&deliveryFee,
		&total,
		&street,
		&city,
		&state,
		&postal,
		&country,
		&eta,
		&resp.Notes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.ID = query.OrderID()
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Status = order.Status(status).String()
	resp.Currency = strings.TrimSpace(resp.Currency)
	resp.Subtotal = formatAmount(subtotal)
	resp.Tax = formatAmount(tax)
	resp.DeliveryFee = formatAmount(deliveryFee)
	resp.TotalAmount = formatAmount(total)
	resp.DeliveryAddress = joinAddress(street, city, state, postal, country)
	resp.EstimatedDeliveryTime = eta

	resp.Items, err = h.items(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	for _, item := range resp.Items {
		resp.TotalPreparationTimeMinutes += item.PreparationTimeMinutes
	}

	return resp, nil
}

func (h GetOrderQueryHandler) items(ctx context.Context, orderID kernel.UUID) ([]OrderItemView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_name,
			product_kind,
			unit_price,
			quantity,
			unit_preparation_time_minutes
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemView, 0)
	for rows.Next() {
		var (
			item      OrderItemView
			id        uuid.UUID
			unitPrice decimal.Decimal
			unitPrep  int
		)
		if err = rows.Scan(&id, &item.ProductName, &item.ProductKind, &unitPrice, &item.Quantity, &unitPrep); err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		item.UnitPrice = formatAmount(unitPrice)
		item.TotalPrice = formatAmount(unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
		item.PreparationTimeMinutes = unitPrep * item.Quantity
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func joinAddress(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ", ")
}
