package commands_test

import (
	"testing"
	"time"

	"webshop/internal/core/domain/model/casefile"
	"webshop/internal/core/domain/model/customer"
	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/core/domain/model/order"
	"webshop/internal/core/domain/model/product"
	"webshop/internal/core/domain/model/returns"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 12, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

func mustQuantity(t *testing.T, value int) kernel.Quantity {
	t.Helper()
	quantity, err := kernel.NewQuantity(value)
	require.NoError(t, err)
	return quantity
}

func mustMoney(t *testing.T, amount float64, currency string) kernel.Money {
	t.Helper()
	money, err := kernel.NewMoneyFromFloat(amount, currency)
	require.NoError(t, err)
	return money
}

func mustAddress(t *testing.T) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress("1 Main St", "Springfield", "12345", "US")
	require.NoError(t, err)
	return address
}

func newTestProduct(t *testing.T, stock int) *product.Product {
	t.Helper()
	sku, err := kernel.NewSKU("MOUSE001")
	require.NoError(t, err)

	p, err := product.NewProduct(kernel.NewUUID(), sku, "Wireless Mouse",
		"2.4GHz wireless mouse", mustMoney(t, 19.99, "USD"),
		mustQuantity(t, stock), product.CategoryElectronics, fixedNow.AddDate(0, -1, 0))
	require.NoError(t, err)
	return p
}

func newTestCustomer(t *testing.T, customerType customer.Type) *customer.Customer {
	t.Helper()
	email, err := kernel.NewEmailAddress("jane.doe@example.com")
	require.NoError(t, err)
	phone, err := kernel.NewPhoneNumber("+15551234567")
	require.NoError(t, err)

	c, err := customer.RestoreCustomer(kernel.NewUUID(), email, "Jane", "Doe",
		phone, mustAddress(t), customerType, fixedNow.AddDate(-1, 0, 0), true)
	require.NoError(t, err)
	return c
}

func newPendingOrder(t *testing.T, p *product.Product, orderDate time.Time) *order.Order {
	t.Helper()
	item, err := order.NewOrderItem(p.ID(), p.Name(), mustQuantity(t, 2), p.Price())
	require.NoError(t, err)

	ord, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
		mustAddress(t), []*order.OrderItem{item}, orderDate)
	require.NoError(t, err)
	return ord
}

func newDeliveredOrder(t *testing.T, p *product.Product, orderDate time.Time) *order.Order {
	t.Helper()
	ord := newPendingOrder(t, p, orderDate)
	require.NoError(t, ord.Confirm())
	require.NoError(t, ord.StartProcessing())
	require.NoError(t, ord.Ship())
	require.NoError(t, ord.Deliver(orderDate.AddDate(0, 0, 3)))
	return ord
}

func newOpenCase(t *testing.T, caseType casefile.CaseType, createdAt time.Time) *casefile.Case {
	t.Helper()
	c, err := casefile.NewCase(kernel.NewUUID(), kernel.NewUUID(), nil,
		caseType, "package arrived with a cracked casing", createdAt)
	require.NoError(t, err)
	return c
}

func newRequestedReturn(t *testing.T, orderID kernel.UUID, caseID *kernel.UUID, requestDate time.Time) *returns.Return {
	t.Helper()
	item, err := returns.NewReturnItem(kernel.NewUUID(), mustQuantity(t, 1),
		mustMoney(t, 19.99, "USD"), "unopened")
	require.NoError(t, err)

	ret, err := returns.NewReturn(kernel.NewUUID(), orderID, caseID,
		[]*returns.ReturnItem{item}, returns.ReasonDefective, requestDate)
	require.NoError(t, err)
	return ret
}
