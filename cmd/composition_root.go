package cmd

import (
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateAdvanceOrderCyclesCommandHandler() commands.AdvanceOrderCyclesCommandHandler {
	var f commands.OrderCycleUoWFactory = FuncOrderCycleUoWFactory(func() commands.OrderCycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCyclesCommandHandler(f)
}

func (c *CompositionRoot) CreatePurgeStaleCartsCommandHandler() commands.PurgeStaleCartsCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeStaleCartsCommandHandler(f)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewListOrdersQueryHandler(uow.OrderRepository(), uow.EnterpriseRepository())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetOrderQueryHandler(uow.OrderRepository(), uow.EnterpriseRepository())
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderCycleUoWFactory func() commands.OrderCycleUoW

func (f FuncOrderCycleUoWFactory) Create() commands.OrderCycleUoW {
	return f()
}
