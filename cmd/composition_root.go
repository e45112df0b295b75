package cmd

import (
	"math/rand"
	"time"

	"shipdesk/internal/adapters/out/postgres"
	"shipdesk/internal/adapters/out/ratecard"
	"shipdesk/internal/core/application/usecases/commands"
	"shipdesk/internal/core/application/usecases/queries"
	"shipdesk/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	rateCard     *ratecard.StaticRateCard
	awbGenerator services.AWBGenerator
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		rateCard:     ratecard.NewStaticRateCard(),
		awbGenerator: services.NewAWBGenerator(rand.New(rand.NewSource(time.Now().UnixNano()))),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	var f commands.SettlementUoWFactory = FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchOrderCommandHandler(f, c.rateCard, c.awbGenerator)
}

func (c *CompositionRoot) CreateSchedulePickupCommandHandler() commands.SchedulePickupCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSchedulePickupCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordTrackingEventCommandHandler() commands.RecordTrackingEventCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordTrackingEventCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCloneOrderCommandHandler() commands.CloneOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCloneOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateReportFailedAttemptCommandHandler() commands.ReportFailedAttemptCommandHandler {
	var f commands.IncidentUoWFactory = FuncIncidentUoWFactory(func() commands.IncidentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportFailedAttemptCommandHandler(f)
}

func (c *CompositionRoot) CreateResolveIncidentCommandHandler() commands.ResolveIncidentCommandHandler {
	var f commands.IncidentUoWFactory = FuncIncidentUoWFactory(func() commands.IncidentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveIncidentCommandHandler(f)
}

func (c *CompositionRoot) CreateReportWeightAuditCommandHandler() commands.ReportWeightAuditCommandHandler {
	var f commands.DisputeUoWFactory = FuncDisputeUoWFactory(func() commands.DisputeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportWeightAuditCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptDisputeCommandHandler() commands.AcceptDisputeCommandHandler {
	var f commands.DisputeUoWFactory = FuncDisputeUoWFactory(func() commands.DisputeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptDisputeCommandHandler(f)
}

func (c *CompositionRoot) CreateRaiseDisputeCommandHandler() commands.RaiseDisputeCommandHandler {
	var f commands.DisputeUoWFactory = FuncDisputeUoWFactory(func() commands.DisputeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRaiseDisputeCommandHandler(f)
}

func (c *CompositionRoot) CreateSweepExpiredDisputesCommandHandler() commands.SweepExpiredDisputesCommandHandler {
	var f commands.DisputeUoWFactory = FuncDisputeUoWFactory(func() commands.DisputeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSweepExpiredDisputesCommandHandler(f)
}

func (c *CompositionRoot) CreateCreditWalletCommandHandler() commands.CreditWalletCommandHandler {
	var f commands.WalletUoWFactory = FuncWalletUoWFactory(func() commands.WalletUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreditWalletCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterMerchantCommandHandler() commands.RegisterMerchantCommandHandler {
	var f commands.WalletUoWFactory = FuncWalletUoWFactory(func() commands.WalletUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterMerchantCommandHandler(f)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWalletBalanceQueryHandler() queries.GetWalletBalanceQueryHandler {
	return queries.NewGetWalletBalanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWalletStatementQueryHandler() queries.GetWalletStatementQueryHandler {
	return queries.NewGetWalletStatementQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOpenIncidentsQueryHandler() queries.ListOpenIncidentsQueryHandler {
	return queries.NewListOpenIncidentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDisputesQueryHandler() queries.ListDisputesQueryHandler {
	return queries.NewListDisputesQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncWalletUoWFactory func() commands.WalletUoW

func (f FuncWalletUoWFactory) Create() commands.WalletUoW {
	return f()
}

type FuncSettlementUoWFactory func() commands.SettlementUoW

func (f FuncSettlementUoWFactory) Create() commands.SettlementUoW {
	return f()
}

type FuncIncidentUoWFactory func() commands.IncidentUoW

func (f FuncIncidentUoWFactory) Create() commands.IncidentUoW {
	return f()
}

type FuncDisputeUoWFactory func() commands.DisputeUoW

func (f FuncDisputeUoWFactory) Create() commands.DisputeUoW {
	return f()
}
