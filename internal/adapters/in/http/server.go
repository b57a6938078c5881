package http

import (
	"errors"
	"net/http"
	"strconv"

	"webshop/internal/core/application/usecases/commands"
	"webshop/internal/core/application/usecases/queries"
	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the webshop use cases over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	processOrderHandler     commands.ProcessOrderCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	handleReturnHandler     commands.HandleReturnCommandHandler
	processComplaintHandler commands.ProcessComplaintCommandHandler
	resolveCaseHandler      commands.ResolveCaseCommandHandler

	// Query handlers
	getPendingOrdersHandler    queries.GetPendingOrdersQueryHandler
	getOpenCasesHandler        queries.GetOpenCasesQueryHandler
	getLowStockProductsHandler queries.GetLowStockProductsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	processOrderHandler commands.ProcessOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	handleReturnHandler commands.HandleReturnCommandHandler,
	processComplaintHandler commands.ProcessComplaintCommandHandler,
	resolveCaseHandler commands.ResolveCaseCommandHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	getOpenCasesHandler queries.GetOpenCasesQueryHandler,
	getLowStockProductsHandler queries.GetLowStockProductsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		processOrderHandler:        processOrderHandler,
		cancelOrderHandler:         cancelOrderHandler,
		handleReturnHandler:        handleReturnHandler,
		processComplaintHandler:    processComplaintHandler,
		resolveCaseHandler:         resolveCaseHandler,
		getPendingOrdersHandler:    getPendingOrdersHandler,
		getOpenCasesHandler:        getOpenCasesHandler,
		getLowStockProductsHandler: getLowStockProductsHandler,
	}
}

// RegisterRoutes binds all webshop endpoints onto the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:orderId/process", s.ProcessOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.GET("/orders/pending", s.GetPendingOrders)

	api.POST("/returns/:returnId/process", s.HandleReturn)

	api.POST("/cases/:caseId/process", s.ProcessComplaint)
	api.POST("/cases/:caseId/resolve", s.ResolveCase)
	api.GET("/cases/open", s.GetOpenCases)

	api.GET("/products/low-stock", s.GetLowStockProducts)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	customerID, err := kernel.UUIDFromString(newOrder.CustomerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer id: " + err.Error(),
		})
	}

	address, err := kernel.NewAddress(
		newOrder.ShippingAddress.Street,
		newOrder.ShippingAddress.City,
		newOrder.ShippingAddress.ZipCode,
		newOrder.ShippingAddress.Country,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipping address: " + err.Error(),
		})
	}

	items := make([]commands.OrderItemInput, 0, len(newOrder.Items))
	for _, item := range newOrder.Items {
		productID, itemErr := kernel.UUIDFromString(item.ProductID)
		if itemErr != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid product id: " + itemErr.Error(),
			})
		}

		quantity, itemErr := kernel.NewQuantity(item.Quantity)
		if itemErr != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid quantity: " + itemErr.Error(),
			})
		}

		items = append(items, commands.OrderItemInput{ProductID: productID, Quantity: quantity})
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, address, items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandError(ctx, handleErr, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{ID: orderID.String()})
}

// ProcessOrder handles POST /api/v1/orders/:orderId/process - confirms a
// pending order by charging the customer and reserving stock.
func (s *Server) ProcessOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	cmd, err := commands.NewProcessOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.processOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandError(ctx, handleErr, "Failed to process order")
	}

	return ctx.NoContent(http.StatusOK)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandError(ctx, handleErr, "Failed to cancel order")
	}

	return ctx.NoContent(http.StatusOK)
}

// HandleReturn handles POST /api/v1/returns/:returnId/process - approves or
// rejects a requested return against the return window.
func (s *Server) HandleReturn(ctx echo.Context) error {
	returnID, err := kernel.UUIDFromString(ctx.Param("returnId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid return id: " + err.Error(),
		})
	}

	cmd, err := commands.NewHandleReturnCommand(returnID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid return data: " + err.Error(),
		})
	}

	if handleErr := s.handleReturnHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandError(ctx, handleErr, "Failed to handle return")
	}

	return ctx.NoContent(http.StatusOK)
}

// ProcessComplaint handles POST /api/v1/cases/:caseId/process - triages an
// open complaint case.
func (s *Server) ProcessComplaint(ctx echo.Context) error {
	caseID, err := kernel.UUIDFromString(ctx.Param("caseId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid case id: " + err.Error(),
		})
	}

	cmd, err := commands.NewProcessComplaintCommand(caseID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid case data: " + err.Error(),
		})
	}

	if handleErr := s.processComplaintHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandError(ctx, handleErr, "Failed to process complaint")
	}

	return ctx.NoContent(http.StatusOK)
}

// ResolveCase handles POST /api/v1/cases/:caseId/resolve.
func (s *Server) ResolveCase(ctx echo.Context) error {
	caseID, err := kernel.UUIDFromString(ctx.Param("caseId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid case id: " + err.Error(),
		})
	}

	var body ResolveCaseRequest
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewResolveCaseCommand(caseID, body.Resolution)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid case data: " + err.Error(),
		})
	}

	if handleErr := s.resolveCaseHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandError(ctx, handleErr, "Failed to resolve case")
	}

	return ctx.NoContent(http.StatusOK)
}

// GetPendingOrders handles GET /api/v1/orders/pending.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	query := queries.NewGetPendingOrdersQuery()

	orders, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve pending orders",
		})
	}

	response := make([]PendingOrder, len(orders))
	for i, ord := range orders {
		response[i] = PendingOrder{
			ID:          ord.ID.String(),
			OrderNumber: ord.OrderNumber,
			CustomerID:  ord.CustomerID.String(),
			TotalAmount: ord.TotalAmount.Amount().StringFixed(2),
			Currency:    ord.TotalAmount.Currency(),
			OrderDate:   ord.OrderDate,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOpenCases handles GET /api/v1/cases/open.
func (s *Server) GetOpenCases(ctx echo.Context) error {
	query := queries.NewGetOpenCasesQuery()

	cases, err := s.getOpenCasesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve open cases",
		})
	}

	response := make([]OpenCase, len(cases))
	for i, c := range cases {
		response[i] = OpenCase{
			ID:         c.ID.String(),
			CaseNumber: c.CaseNumber,
			CustomerID: c.CustomerID.String(),
			Type:       c.Type.String(),
			Priority:   c.Priority.String(),
			CreatedAt:  c.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetLowStockProducts handles GET /api/v1/products/low-stock?threshold=N.
func (s *Server) GetLowStockProducts(ctx echo.Context) error {
	threshold := defaultLowStockThreshold
	if raw := ctx.QueryParam("threshold"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid threshold: " + err.Error(),
			})
		}
		threshold = parsed
	}

	query, err := queries.NewGetLowStockProductsQuery(threshold)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid threshold: " + err.Error(),
		})
	}

	products, err := s.getLowStockProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve low stock products",
		})
	}

	response := make([]LowStockProduct, len(products))
	for i, p := range products {
		response[i] = LowStockProduct{
			ID:            p.ID.String(),
			SKU:           p.SKU,
			Name:          p.Name,
			StockQuantity: p.StockQuantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// commandError maps use case failures onto HTTP statuses: missing aggregates
// become 404, business rule refusals become 409, everything else 500.
func (s *Server) commandError(ctx echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: message + ": " + err.Error(),
		})
	case errors.Is(err, commands.ErrInvalidOrder),
		errors.Is(err, commands.ErrPaymentFailed),
		errors.Is(err, commands.ErrOrderAlreadyProcessed),
		errors.Is(err, commands.ErrOrderNotCancellable):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: message + ": " + err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: message,
		})
	}
}
