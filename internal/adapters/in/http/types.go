package http

import "time"

// defaultLowStockThreshold is used when the low-stock endpoint is called
// without an explicit threshold.
const defaultLowStockThreshold = 10

// Error is the JSON error body returned by every endpoint on failure.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder is the request body for placing an order.
type NewOrder struct {
	CustomerID      string         `json:"customerId"`
	ShippingAddress AddressPayload `json:"shippingAddress"`
	Items           []NewOrderItem `json:"items"`
}

// AddressPayload carries a shipping address over the wire.
type AddressPayload struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// NewOrderItem is one requested order line.
type NewOrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// OrderCreated reports the identifier assigned to a newly placed order.
type OrderCreated struct {
	ID string `json:"id"`
}

// ResolveCaseRequest is the request body for resolving a case.
type ResolveCaseRequest struct {
	Resolution string `json:"resolution"`
}

// PendingOrder is one row of the pending orders report.
type PendingOrder struct {
	ID          string    `json:"id"`
	OrderNumber string    `json:"orderNumber"`
	CustomerID  string    `json:"customerId"`
	TotalAmount string    `json:"totalAmount"`
	Currency    string    `json:"currency"`
	OrderDate   time.Time `json:"orderDate"`
}

// OpenCase is one row of the open cases report.
type OpenCase struct {
	ID         string    `json:"id"`
	CaseNumber string    `json:"caseNumber"`
	CustomerID string    `json:"customerId"`
	Type       string    `json:"type"`
	Priority   string    `json:"priority"`
	CreatedAt  time.Time `json:"createdAt"`
}

// LowStockProduct is one row of the low stock report.
type LowStockProduct struct {
	ID            string `json:"id"`
	SKU           string `json:"sku"`
	Name          string `json:"name"`
	StockQuantity int    `json:"stockQuantity"`
}
