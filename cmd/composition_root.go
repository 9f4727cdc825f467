package cmd

import (
	"log/slog"

	httpin "shipping/internal/adapters/in/http"
	"shipping/internal/adapters/out/postgres"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
	"shipping/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	generator  services.CodeGenerator
	clock      ports.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		generator:  services.NewCodeGenerator(nil),
		clock:      ports.SystemClock{},
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateQuoteCommandHandler() commands.CreateQuoteCommandHandler {
	var f commands.QuoteUoWFactory = FuncQuoteUoWFactory(func() commands.QuoteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateQuoteCommandHandler(f, c.generator, c.clock)
}

func (c *CompositionRoot) CreateAddQuoteItemCommandHandler() commands.AddQuoteItemCommandHandler {
	var f commands.QuoteUoWFactory = FuncQuoteUoWFactory(func() commands.QuoteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddQuoteItemCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateUpdateQuoteStatusCommandHandler() commands.UpdateQuoteStatusCommandHandler {
	var f commands.QuoteUoWFactory = FuncQuoteUoWFactory(func() commands.QuoteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateQuoteStatusCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateExpireQuotesCommandHandler() commands.ExpireQuotesCommandHandler {
	var f commands.QuoteUoWFactory = FuncQuoteUoWFactory(func() commands.QuoteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireQuotesCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f, c.generator, c.clock)
}

func (c *CompositionRoot) CreateChangeShipmentStatusCommandHandler() commands.ChangeShipmentStatusCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeShipmentStatusCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateUpdateShipmentLocationCommandHandler() commands.UpdateShipmentLocationCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateShipmentLocationCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateAddShipmentMilestoneCommandHandler() commands.AddShipmentMilestoneCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddShipmentMilestoneCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateGetShipmentTrackingQueryHandler() queries.GetShipmentTrackingQueryHandler {
	return queries.NewGetShipmentTrackingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveShipmentsQueryHandler() queries.GetActiveShipmentsQueryHandler {
	return queries.NewGetActiveShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateQuoteCommandHandler(),
		c.CreateAddQuoteItemCommandHandler(),
		c.CreateUpdateQuoteStatusCommandHandler(),
		c.CreateCreateShipmentCommandHandler(),
		c.CreateChangeShipmentStatusCommandHandler(),
		c.CreateUpdateShipmentLocationCommandHandler(),
		c.CreateAddShipmentMilestoneCommandHandler(),
		c.CreateGetShipmentTrackingQueryHandler(),
		c.CreateGetActiveShipmentsQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateExpireQuotesCommandHandler(), c.logger)
}

type FuncQuoteUoWFactory func() commands.QuoteUoW

func (f FuncQuoteUoWFactory) Create() commands.QuoteUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}
