package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"dinner/internal/core/domain/model/customer"
	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/pkg/errs"
	"dinner/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsEmpty is returned when confirming an order without items.
	ErrOrderIsEmpty = errors.New("order has no items")

	// ErrOrderIsImmutable is returned when items or the address of a final order are changed.
	ErrOrderIsImmutable = errors.New("order is in a final status and can no longer be modified")
)

// Order is the aggregate root of a customer's dinner delivery. It exclusively owns its
// order items and keeps the monetary totals consistent with them.
//
// Order follows these invariants:
//   - subtotal is the sum of all item totals
//   - totalAmount == subtotal + tax + deliveryFee
//   - every amount is in the order's currency, fixed at creation
//   - items and the delivery address change only while the status is not final
//   - every mutator either fully succeeds or leaves the order unchanged
//
// The customer is referenced by id; the order never copies or owns customer data.
// Order is not safe for concurrent use: callers serialize access per order id.
type Order struct {
	id                    kernel.UUID
	customerID            kernel.UUID
	currency              kernel.Currency
	orderTime             time.Time
	status                Status
	orderItems            []*OrderItem
	subtotal              kernel.Money
	tax                   kernel.Money
	deliveryFee           kernel.Money
	totalAmount           kernel.Money
	deliveryAddress       kernel.Address
	estimatedDeliveryTime time.Time
	notes                 string
	guard                 guard.ConstructorGuard
}

// NewOrder creates a Pending order with no items and every amount at zero.
//
// Parameters:
//   - id: unique identifier of the order
//   - c: the ordering customer; must be constructed
//   - deliveryAddress: where the order goes
//   - currency: the currency of every amount on this order
//   - orderTime: when the order was placed
//
// Returns:
//   - *Order: the created order if all validations pass
//   - error: the joined validation errors otherwise
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), c, c.DeliveryAddress(), kernel.USD, time.Now())
func NewOrder(
	id kernel.UUID,
	c *customer.Customer,
	deliveryAddress kernel.Address,
	currency kernel.Currency,
	orderTime time.Time,
) (*Order, error) {
	if err := c.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("customer", err)
	}

	return RestoreOrder(RestoreParams{
		ID:              id,
		CustomerID:      c.ID(),
		Currency:        currency,
		OrderTime:       orderTime,
		Status:          Pending,
		DeliveryAddress: deliveryAddress,
	})
}

// RestoreParams carries the persisted state of an order.
// Zero Tax and DeliveryFee are read as zero amounts in Currency.
type RestoreParams struct {
	ID                    kernel.UUID
	CustomerID            kernel.UUID
	Currency              kernel.Currency
	OrderTime             time.Time
	Status                Status
	Items                 []*OrderItem
	Tax                   kernel.Money
	DeliveryFee           kernel.Money
	DeliveryAddress       kernel.Address
	EstimatedDeliveryTime time.Time
	Notes                 string
}

// RestoreOrder rebuilds an order loaded from storage. Subtotal and total are recomputed from
// the items and charges, so a stored row can never reintroduce inconsistent totals.
func RestoreOrder(p RestoreParams) (*Order, error) {
	o := &Order{
		estimatedDeliveryTime: p.EstimatedDeliveryTime,
		notes:                 strings.TrimSpace(p.Notes),
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setCustomerID(p.CustomerID),
		o.setCurrency(p.Currency),
		o.setOrderTime(p.OrderTime),
		o.setStatus(p.Status),
		o.setAddress(p.DeliveryAddress),
	); err != nil {
		return nil, err
	}

	tax := p.Tax
	if tax.Validate() != nil {
		tax = kernel.ZeroMoney(o.currency)
	}
	fee := p.DeliveryFee
	if fee.Validate() != nil {
		fee = kernel.ZeroMoney(o.currency)
	}

	for _, item := range p.Items {
		if err := o.checkItem(item); err != nil {
			return nil, err
		}
	}
	if err := errors.Join(o.checkCharge("tax", tax), o.checkCharge("deliveryFee", fee)); err != nil {
		return nil, err
	}

	if err := o.recalculateTotals(slices.Clone(p.Items), tax, fee); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identifier only.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Currency is fixed at creation. Every item, tax and fee on the order must use it.
func (o *Order) Currency() kernel.Currency {
	return o.currency
}

// OrderTime is when the order was placed. The kitchen counts preparation from this instant.
func (o *Order) OrderTime() time.Time {
	return o.orderTime
}

// Status returns the current lifecycle status.
//
// Example:
//
//	if o.Status().IsFinal() {
//	    // delivered or cancelled, nothing more will happen
//	}
func (o *Order) Status() Status {
	return o.status
}

// OrderItems returns a copy of the items in insertion order.
func (o *Order) OrderItems() []*OrderItem {
	return slices.Clone(o.orderItems)
}

// FindOrderItem returns the item with id, or nil.
func (o *Order) FindOrderItem(id kernel.UUID) *OrderItem {
	for _, item := range o.orderItems {
		if item.ID().IsEqual(id) {
			return item
		}
	}
	return nil
}

// Subtotal is the sum of every line total:
//
//	subtotal = Σ unitPrice × quantity
//
// It is recomputed on every item change and never set directly.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// Tax is the externally computed tax; zero until SetTax is called.
func (o *Order) Tax() kernel.Money {
	return o.tax
}

// DeliveryFee is the externally computed delivery fee; zero until SetDeliveryFee is called.
func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

// TotalAmount is what the customer pays:
//
//	totalAmount = subtotal + tax + deliveryFee
//
// Example:
//
//	_ = o.SetTax(kernel.MustMoney("5.35", kernel.USD))
//	fmt.Println(o.TotalAmount()) // e.g. "58.85 USD" for one French dinner at base price 30
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// DeliveryAddress defaults to the customer's address when the order is created.
func (o *Order) DeliveryAddress() kernel.Address {
	return o.deliveryAddress
}

// EstimatedDeliveryTime is the zero time until one has been set.
func (o *Order) EstimatedDeliveryTime() time.Time {
	return o.estimatedDeliveryTime
}

func (o *Order) Notes() string {
	return o.notes
}

// HasItems reports whether the order has at least one line. Only such orders can be confirmed.
func (o *Order) HasItems() bool {
	return len(o.orderItems) > 0
}

// IsModifiable reports whether items and address may still change.
func (o *Order) IsModifiable() bool {
	return !o.status.IsFinal()
}

// TotalPreparationTimeMinutes sums the preparation time of every line.
func (o *Order) TotalPreparationTimeMinutes() int {
	total := 0
	for _, item := range o.orderItems {
		total += item.PreparationTimeMinutes()
	}
	return total
}

// AddOrderItem appends item and recomputes subtotal and total.
//
// Returns:
//   - errs.ValueIsRequiredError when item is nil or not constructed
//   - ErrOrderIsImmutable when the order is final
//   - errs.CurrencyMismatchError when the item is priced in another currency
func (o *Order) AddOrderItem(item *OrderItem) error {
	if err := item.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderItem", err)
	}
	if err := o.checkModifiable(); err != nil {
		return err
	}
	if err := o.checkItem(item); err != nil {
		return err
	}

	items := append(slices.Clone(o.orderItems), item)
	return o.recalculateTotals(items, o.tax, o.deliveryFee)
}

// RemoveOrderItem removes item, compared by identity. Removing an item that is not on the
// order changes nothing.
func (o *Order) RemoveOrderItem(item *OrderItem) error {
	if err := o.checkModifiable(); err != nil {
		return err
	}

	idx := slices.Index(o.orderItems, item)
	if idx < 0 {
		return nil
	}

	items := slices.Delete(slices.Clone(o.orderItems), idx, idx+1)
	return o.recalculateTotals(items, o.tax, o.deliveryFee)
}

// SetTax replaces the externally computed tax. It is allowed in any status.
func (o *Order) SetTax(tax kernel.Money) error {
	if err := o.checkCharge("tax", tax); err != nil {
		return err
	}
	return o.recalculateTotals(o.orderItems, tax, o.deliveryFee)
}

// SetDeliveryFee replaces the delivery fee. It is allowed in any status.
func (o *Order) SetDeliveryFee(fee kernel.Money) error {
	if err := o.checkCharge("deliveryFee", fee); err != nil {
		return err
	}
	return o.recalculateTotals(o.orderItems, o.tax, fee)
}

func (o *Order) SetDeliveryAddress(address kernel.Address) error {
	if err := o.checkModifiable(); err != nil {
		return err
	}
	return o.setAddress(address)
}

func (o *Order) SetEstimatedDeliveryTime(t time.Time) {
	o.estimatedDeliveryTime = t
}

func (o *Order) SetNotes(notes string) {
	o.notes = strings.TrimSpace(notes)
}

// Confirm moves a Pending order with at least one item to Confirmed.
func (o *Order) Confirm() error {
	next, err := o.status.TransitionTo(Confirmed)
	if err != nil {
		return err
	}
	if !o.HasItems() {
		return ErrOrderIsEmpty
	}
	o.status = next
	return nil
}

// Cancel moves any non-final order to Cancelled.
func (o *Order) Cancel() error {
	return o.ChangeStatus(Cancelled)
}

func (o *Order) StartPreparing() error {
	return o.ChangeStatus(Preparing)
}

func (o *Order) MarkReady() error {
	return o.ChangeStatus(Ready)
}

func (o *Order) DispatchForDelivery() error {
	return o.ChangeStatus(OutForDelivery)
}

func (o *Order) MarkDelivered() error {
	return o.ChangeStatus(Delivered)
}

// ChangeStatus moves the order to target along the status machine. Confirming goes through
// Confirm so the non-empty rule always holds.
func (o *Order) ChangeStatus(target Status) error {
	if target == Confirmed {
		return o.Confirm()
	}

	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// recalculateTotals is the only place where items, charges and derived totals are written.
// Nothing is assigned unless every sum succeeds.
func (o *Order) recalculateTotals(items []*OrderItem, tax, fee kernel.Money) error {
	subtotal := kernel.ZeroMoney(o.currency)
	for _, item := range items {
		var err error
		if subtotal, err = subtotal.Add(item.TotalPrice()); err != nil {
			return err
		}
	}

	total, err := kernel.Sum(o.currency, subtotal, tax, fee)
	if err != nil {
		return err
	}

	o.orderItems = items
	o.tax = tax
	o.deliveryFee = fee
	o.subtotal = subtotal
	o.totalAmount = total
	return nil
}

func (o *Order) checkModifiable() error {
	if o.status.IsFinal() {
		return ErrOrderIsImmutable
	}
	return nil
}

func (o *Order) checkItem(item *OrderItem) error {
	if err := item.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderItem", err)
	}
	if item.Currency() != o.currency {
		return errs.NewCurrencyMismatchError(o.currency.String(), item.Currency().String())
	}
	return nil
}

func (o *Order) checkCharge(name string, amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	if amount.Currency() != o.currency {
		return errs.NewCurrencyMismatchError(o.currency.String(), amount.Currency().String())
	}
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is negative", amount))
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setCurrency(currency kernel.Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}
	o.currency = currency
	return nil
}

func (o *Order) setOrderTime(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("orderTime")
	}
	o.orderTime = t
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliveryAddress", err)
	}
	o.deliveryAddress = address
	return nil
}
