package queries_test

import (
	"context"
	"testing"
	"time"

	"webshop/internal/adapters/out/postgres/orderrepo"
	"webshop/internal/core/application/usecases/queries"
	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker implements the repository tracker for test purposes.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
}

type GetPendingOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetPendingOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetPendingOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items").Error)
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) newOrder(orderDate time.Time) *order.Order {
	address, err := kernel.NewAddress("1 Main St", "Springfield", "12345", "US")
	suite.Require().NoError(err)

	quantity, err := kernel.NewQuantity(1)
	suite.Require().NoError(err)

	unitPrice, err := kernel.NewMoneyFromFloat(19.99, "USD")
	suite.Require().NoError(err)

	item, err := order.NewOrderItem(kernel.NewUUID(), "Wireless Mouse", quantity, unitPrice)
	suite.Require().NoError(err)

	ord, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), address,
		[]*order.OrderItem{item}, orderDate)
	suite.Require().NoError(err)

	return ord
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetPendingOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) TestHandle_MixedStatuses_ReturnsOnlyPending() {
	ctx := context.Background()
	baseDate := time.Date(2024, 3, 12, 12, 0, 0, 0, time.UTC)

	pending := suite.newOrder(baseDate)
	suite.Require().NoError(suite.orderRepo.Add(ctx, pending))

	confirmed := suite.newOrder(baseDate)
	suite.Require().NoError(confirmed.Confirm())
	suite.Require().NoError(suite.orderRepo.Add(ctx, confirmed))

	cancelled := suite.newOrder(baseDate)
	suite.Require().NoError(cancelled.Cancel())
	suite.Require().NoError(suite.orderRepo.Add(ctx, cancelled))

	query := queries.NewGetPendingOrdersQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(pending.ID(), result[0].ID)
	suite.Equal(pending.OrderNumber().Value(), result[0].OrderNumber)
	suite.Equal(pending.CustomerID(), result[0].CustomerID)
	suite.True(pending.TotalAmount().IsEqual(result[0].TotalAmount))
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) TestHandle_OrdersSortedByOrderDate() {
	ctx := context.Background()
	baseDate := time.Date(2024, 3, 12, 12, 0, 0, 0, time.UTC)

	later := suite.newOrder(baseDate.Add(2 * time.Hour))
	suite.Require().NoError(suite.orderRepo.Add(ctx, later))

	earlier := suite.newOrder(baseDate)
	suite.Require().NoError(suite.orderRepo.Add(ctx, earlier))

	query := queries.NewGetPendingOrdersQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(earlier.ID(), result[0].ID)
	suite.Equal(later.ID(), result[1].ID)
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	var invalidQuery queries.GetPendingOrdersQuery

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().ErrorIs(err, queries.ErrGetPendingOrdersQueryIsNotConstructed)
	suite.Nil(result)
}

func TestGetPendingOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPendingOrdersQueryHandlerTestSuite))
}
