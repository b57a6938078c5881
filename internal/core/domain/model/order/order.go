package order

import (
	"errors"
	"time"

	"webshop/internal/core/domain/model/kernel"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods. This ensures all orders
// are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructors")

// defaultCurrency is the currency an order total falls back to when the order
// carries no items yet.
const defaultCurrency = "USD"

// Order represents a customer order in the web shop. It is the aggregate root
// that manages the order lifecycle from placement through delivery or return.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, order number, and customer ID
//   - Must have a valid shipping address
//   - The total amount always equals the sum of its item totals
//   - Status transitions follow defined business rules
//   - Can only be created through the NewOrder or RestoreOrder constructors
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderNumber is the human-readable order reference, e.g. "ORD-1A2B3C4D"
	orderNumber kernel.OrderNumber

	// customerID identifies the customer that placed the order
	customerID kernel.UUID

	// items are the order line items; the order owns them exclusively
	items []*OrderItem

	// status represents the current state in the order lifecycle
	status Status

	// totalAmount is the sum of all item totals
	totalAmount kernel.Money

	// orderDate is the moment the order was placed
	orderDate time.Time

	// deliveryDate is set once the order is delivered (nil before that)
	deliveryDate *time.Time

	// shippingAddress is the delivery destination
	shippingAddress kernel.Address

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with a freshly generated
// order number. This is the only way to place a new order, ensuring all
// business invariants hold from the start.
//
// An order may be created without items; completeness is checked by the
// order validation rules before the order is processed, so an empty order
// can exist but never be confirmed.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - customerID: Identifier of the ordering customer (must be a valid UUID)
//   - shippingAddress: Validated delivery address
//   - items: Line items of the order (each must be constructed via NewOrderItem)
//   - orderDate: The moment the order is placed
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	address, _ := kernel.NewAddress("1 Main St", "Springfield", "12345", "US")
//	order, err := NewOrder(kernel.NewUUID(), customerID, address, items, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	shippingAddress kernel.Address,
	items []*OrderItem,
	orderDate time.Time,
) (*Order, error) {
	order := &Order{
		orderNumber:   kernel.CreateOrderNumber(),
		status:        StatusPending,
		orderDate:     orderDate,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setShippingAddress(shippingAddress),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	if err := order.RecalculateTotal(); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence with its stored state.
// Unlike NewOrder it does not generate an order number or reset the status,
// and it keeps the persisted total instead of recomputing it.
func RestoreOrder(
	id kernel.UUID,
	orderNumber kernel.OrderNumber,
	customerID kernel.UUID,
	shippingAddress kernel.Address,
	items []*OrderItem,
	status Status,
	totalAmount kernel.Money,
	orderDate time.Time,
	deliveryDate *time.Time,
) (*Order, error) {
	order := &Order{
		orderDate:     orderDate,
		deliveryDate:  deliveryDate,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setCustomerID(customerID),
		order.setShippingAddress(shippingAddress),
		order.setItems(items),
		order.setStatus(status),
		order.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable order reference.
func (o *Order) OrderNumber() kernel.OrderNumber {
	return o.orderNumber
}

// CustomerID returns the identifier of the ordering customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns the order's line items.
func (o *Order) Items() []*OrderItem {
	return o.items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the sum of all item totals.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// OrderDate returns the moment the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// DeliveryDate returns the delivery timestamp, or nil if the order has not
// been delivered yet.
func (o *Order) DeliveryDate() *time.Time {
	return o.deliveryDate
}

// ShippingAddress returns the delivery destination.
func (o *Order) ShippingAddress() kernel.Address {
	return o.shippingAddress
}

// IsCancellable reports whether the order can still be cancelled.
// Only pending and confirmed orders are cancellable.
func (o *Order) IsCancellable() bool {
	return o.status.IsCancellable()
}

// RecalculateTotal re-derives the order total as the sum of its item totals.
// An order without items gets a zero total in the default currency.
func (o *Order) RecalculateTotal() error {
	currency := defaultCurrency
	if len(o.items) > 0 {
		currency = o.items[0].UnitPrice().Currency()
	}

	total, err := kernel.ZeroMoney(currency)
	if err != nil {
		return err
	}

	for _, item := range o.items {
		total, err = total.Add(item.TotalPrice())
		if err != nil {
			return err
		}
	}

	o.totalAmount = total
	return nil
}

// Confirm transitions the order from Pending to Confirmed.
// Returns an error if the order is not pending.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// StartProcessing transitions the order from Confirmed to Processing.
func (o *Order) StartProcessing() error {
	newStatus, err := o.status.StartProcessing()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Ship transitions the order from Processing to Shipped.
func (o *Order) Ship() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deliver transitions the order from Shipped to Delivered and records the
// delivery timestamp.
func (o *Order) Deliver(deliveredAt time.Time) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveryDate = &deliveredAt
	return nil
}

// Cancel transitions the order to Cancelled.
// Only pending and confirmed orders can be cancelled.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkReturned transitions a delivered order to Returned.
func (o *Order) MarkReturned() error {
	newStatus, err := o.status.MarkReturned()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setOrderNumber validates and sets the order's reference number.
// This is a private method used only during restoration.
func (o *Order) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}
	o.orderNumber = orderNumber
	return nil
}

// setCustomerID validates and sets the ordering customer's identifier.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setShippingAddress validates and sets the delivery destination.
// This is a private method used only during construction.
func (o *Order) setShippingAddress(shippingAddress kernel.Address) error {
	if err := shippingAddress.Validate(); err != nil {
		return err
	}
	o.shippingAddress = shippingAddress
	return nil
}

// setItems validates and sets the order's line items.
// This is a private method used only during construction.
func (o *Order) setItems(items []*OrderItem) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

// setStatus validates and sets the order's status.
// This is a private method used only during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setTotalAmount validates and sets the persisted order total.
// This is a private method used only during restoration.
func (o *Order) setTotalAmount(totalAmount kernel.Money) error {
	if err := totalAmount.Validate(); err != nil {
		return err
	}
	o.totalAmount = totalAmount
	return nil
}
