// Package cmd wires the application together: configuration, database
// connection, unit of work factories and the command/query handlers behind
// the HTTP server and background jobs.
package cmd

import (
	"deliverymarket/internal/adapters/out/postgres"
	"deliverymarket/internal/adapters/out/postgres/catalogrepo"
	"deliverymarket/internal/core/application/usecases/commands"
	"deliverymarket/internal/core/application/usecases/queries"
	"deliverymarket/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    ports.Catalog
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    catalogrepo.NewGormCatalog(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateFoodOrderCommandHandler() commands.CreateFoodOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateFoodOrderCommandHandler(f, c.catalog)
}

func (c *CompositionRoot) CreateCancelFoodOrderCommandHandler() commands.CancelFoodOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelFoodOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateClaimFoodOrderCommandHandler() commands.ClaimFoodOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimFoodOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateFoodOrderStatusCommandHandler() commands.UpdateFoodOrderStatusCommandHandler {
	var f commands.OrderFulfillmentUoWFactory = FuncOrderFulfillmentUoWFactory(func() commands.OrderFulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateFoodOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateReviewFoodOrderCommandHandler() commands.ReviewFoodOrderCommandHandler {
	var f commands.OrderReviewUoWFactory = FuncOrderReviewUoWFactory(func() commands.OrderReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewFoodOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelParcelCommandHandler() commands.CancelParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateClaimParcelCommandHandler() commands.ClaimParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateParcelStatusCommandHandler() commands.UpdateParcelStatusCommandHandler {
	var f commands.ParcelFulfillmentUoWFactory = FuncParcelFulfillmentUoWFactory(func() commands.ParcelFulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateParcelStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateReviewParcelCommandHandler() commands.ReviewParcelCommandHandler {
	var f commands.ParcelReviewUoWFactory = FuncParcelReviewUoWFactory(func() commands.ParcelReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateReconcileRatingsCommandHandler() commands.ReconcileRatingsCommandHandler {
	var f commands.RatingUoWFactory = FuncRatingUoWFactory(func() commands.RatingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcileRatingsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetFoodOrderQueryHandler() queries.GetFoodOrderQueryHandler {
	return queries.NewGetFoodOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableOrdersQueryHandler() queries.GetAvailableOrdersQueryHandler {
	return queries.NewGetAvailableOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelQueryHandler() queries.GetParcelQueryHandler {
	return queries.NewGetParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableParcelsQueryHandler() queries.GetAvailableParcelsQueryHandler {
	return queries.NewGetAvailableParcelsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncOrderFulfillmentUoWFactory func() commands.OrderFulfillmentUoW

func (f FuncOrderFulfillmentUoWFactory) Create() commands.OrderFulfillmentUoW {
	return f()
}

type FuncParcelFulfillmentUoWFactory func() commands.ParcelFulfillmentUoW

func (f FuncParcelFulfillmentUoWFactory) Create() commands.ParcelFulfillmentUoW {
	return f()
}

type FuncOrderReviewUoWFactory func() commands.OrderReviewUoW

func (f FuncOrderReviewUoWFactory) Create() commands.OrderReviewUoW {
	return f()
}

type FuncParcelReviewUoWFactory func() commands.ParcelReviewUoW

func (f FuncParcelReviewUoWFactory) Create() commands.ParcelReviewUoW {
	return f()
}

type FuncRatingUoWFactory func() commands.RatingUoW

func (f FuncRatingUoWFactory) Create() commands.RatingUoW {
	return f()
}
