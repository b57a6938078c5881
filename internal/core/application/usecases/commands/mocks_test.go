package commands_test

import (
	"context"
	"io"
	"log/slog"

	"webshop/internal/core/application/usecases/commands"
	"webshop/internal/core/domain/model/casefile"
	"webshop/internal/core/domain/model/customer"
	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/core/domain/model/order"
	"webshop/internal/core/domain/model/product"
	"webshop/internal/core/domain/model/returns"
	"webshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetByOrderNumber(ctx context.Context, n kernel.OrderNumber) (*order.Order, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}
func (m *MockProductRepository) GetBySKU(ctx context.Context, sku kernel.SKU) (*product.Product, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}
func (m *MockProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

type MockCaseRepository struct{ mock.Mock }

func (m *MockCaseRepository) Add(ctx context.Context, c *casefile.Case) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCaseRepository) Update(ctx context.Context, c *casefile.Case) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCaseRepository) Get(ctx context.Context, id kernel.UUID) (*casefile.Case, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*casefile.Case), args.Error(1)
}
func (m *MockCaseRepository) GetAllInOpenStatus(ctx context.Context) ([]*casefile.Case, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*casefile.Case), args.Error(1)
}

type MockReturnRepository struct{ mock.Mock }

func (m *MockReturnRepository) Add(ctx context.Context, r *returns.Return) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockReturnRepository) Update(ctx context.Context, r *returns.Return) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockReturnRepository) Get(ctx context.Context, id kernel.UUID) (*returns.Return, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*returns.Return), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}
func (m *MockCustomerRepository) GetByEmail(ctx context.Context, e kernel.EmailAddress) (*customer.Customer, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockOrderUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}
func (m *MockOrderUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCaseUoW struct{ mock.Mock }

func (m *MockCaseUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCaseUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCaseUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCaseUoW) CaseRepository() ports.CaseRepository {
	args := m.Called()
	return args.Get(0).(ports.CaseRepository)
}

type MockCaseUoWFactory struct{ mock.Mock }

func (m *MockCaseUoWFactory) Create() commands.CaseUoW {
	args := m.Called()
	return args.Get(0).(commands.CaseUoW)
}

type MockReturnUoW struct{ mock.Mock }

func (m *MockReturnUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReturnUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReturnUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReturnUoW) ReturnRepository() ports.ReturnRepository {
	args := m.Called()
	return args.Get(0).(ports.ReturnRepository)
}
func (m *MockReturnUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockReturnUoW) CaseRepository() ports.CaseRepository {
	args := m.Called()
	return args.Get(0).(ports.CaseRepository)
}

type MockReturnUoWFactory struct{ mock.Mock }

func (m *MockReturnUoWFactory) Create() commands.ReturnUoW {
	args := m.Called()
	return args.Get(0).(commands.ReturnUoW)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) ProcessPayment(ctx context.Context, customerID kernel.UUID, amount kernel.Money) (bool, error) {
	args := m.Called(ctx, customerID, amount)
	return args.Bool(0), args.Error(1)
}
func (m *MockPaymentGateway) RefundPayment(ctx context.Context, transactionID string, amount kernel.Money) (bool, error) {
	args := m.Called(ctx, transactionID, amount)
	return args.Bool(0), args.Error(1)
}

type MockNotificationService struct{ mock.Mock }

func (m *MockNotificationService) SendOrderConfirmation(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockNotificationService) SendReturnApproval(ctx context.Context, r *returns.Return) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockNotificationService) SendEscalationAlert(ctx context.Context, c *casefile.Case) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockNotificationService) SendStatusUpdate(ctx context.Context, customerID kernel.UUID, message string) error {
	args := m.Called(ctx, customerID, message)
	return args.Error(0)
}
