package queries

import (
	"context"
	"strings"
	"time"

	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler lists active orders, oldest first.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.status,
			o.order_time,
			o.total_amount,
			o.currency,
			o.estimated_delivery_time,
			(SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id) AS item_count
		FROM orders o
		WHERE o.status NOT IN ?
		ORDER BY o.order_time, o.id
	`, []int{int(order.Delivered), int(order.Cancelled)}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp           GetActiveOrdersQueryResponse
			id, customerID uuid.UUID
			status         int
			total          decimal.Decimal
			eta            *time.Time
		)

		err = rows.Scan(
			&id,
			&customerID,
			&status,
			&resp.OrderTime,
			&total,
			&resp.Currency,
			&eta,
			&resp.ItemCount,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		resp.Status = order.Status(status).String()
		resp.TotalAmount = formatAmount(total)
		resp.Currency = strings.TrimSpace(resp.Currency)
		resp.EstimatedDeliveryTime = eta
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
