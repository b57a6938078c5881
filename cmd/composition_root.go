package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"webshop/internal/adapters/out/notifications"
	"webshop/internal/adapters/out/payment"
	"webshop/internal/adapters/out/postgres"
	"webshop/internal/core/application/usecases/commands"
	"webshop/internal/core/application/usecases/queries"
	"webshop/internal/core/domain/services"
	"webshop/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	clock      func() time.Time

	orderService services.OrderService
	caseService  services.CaseService

	paymentGateway      ports.PaymentGateway
	notificationService ports.NotificationService
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)
	clock := time.Now

	paymentGateway, err := payment.NewSandboxPaymentGateway(logger)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("build payment gateway: %w", err)
	}

	// Recipient lookups run outside any unit of work, so a fresh one is used
	// purely as a repository provider here.
	repos := uowFactory.Create()
	notificationService, err := notifications.NewEmailNotificationService(
		repos.OrderRepository(), repos.CustomerRepository(), logger)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("build notification service: %w", err)
	}

	return CompositionRoot{
		gormDB:              gormDB,
		uowFactory:          *uowFactory,
		logger:              logger,
		clock:               clock,
		orderService:        services.NewOrderService(),
		caseService:         services.NewCaseService(clock),
		paymentGateway:      paymentGateway,
		notificationService: notificationService,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateProcessOrderCommandHandler() commands.ProcessOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessOrderCommandHandler(
		f, c.orderService, c.paymentGateway, c.notificationService, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.orderService)
}

func (c *CompositionRoot) CreateHandleReturnCommandHandler() commands.HandleReturnCommandHandler {
	var f commands.ReturnUoWFactory = FuncReturnUoWFactory(func() commands.ReturnUoW {
		return c.uowFactory.Create()
	})
	return commands.NewHandleReturnCommandHandler(
		f, c.caseService, c.notificationService, c.logger)
}

func (c *CompositionRoot) CreateProcessComplaintCommandHandler() commands.ProcessComplaintCommandHandler {
	var f commands.CaseUoWFactory = FuncCaseUoWFactory(func() commands.CaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessComplaintCommandHandler(
		f, c.caseService, c.notificationService, c.logger)
}

func (c *CompositionRoot) CreateResolveCaseCommandHandler() commands.ResolveCaseCommandHandler {
	var f commands.CaseUoWFactory = FuncCaseUoWFactory(func() commands.CaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveCaseCommandHandler(
		f, c.notificationService, c.clock, c.logger)
}

func (c *CompositionRoot) CreateEscalateOverdueCasesCommandHandler() commands.EscalateOverdueCasesCommandHandler {
	var f commands.CaseUoWFactory = FuncCaseUoWFactory(func() commands.CaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEscalateOverdueCasesCommandHandler(
		f, c.caseService, c.notificationService, c.clock, c.logger)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenCasesQueryHandler() queries.GetOpenCasesQueryHandler {
	return queries.NewGetOpenCasesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLowStockProductsQueryHandler() queries.GetLowStockProductsQueryHandler {
	return queries.NewGetLowStockProductsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCaseUoWFactory func() commands.CaseUoW

func (f FuncCaseUoWFactory) Create() commands.CaseUoW {
	return f()
}

type FuncReturnUoWFactory func() commands.ReturnUoW

func (f FuncReturnUoWFactory) Create() commands.ReturnUoW {
	return f()
}
