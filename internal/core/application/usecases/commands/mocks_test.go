package commands_test

import (
	"context"

	"deliverymarket/internal/core/application/usecases/commands"
	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/core/domain/model/order"
	"deliverymarket/internal/core/domain/model/parcel"
	"deliverymarket/internal/core/domain/model/review"
	"deliverymarket/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateIfStatus(
	ctx context.Context, aggregate *order.Order, expected order.Status,
) (bool, error) {
	args := m.Called(ctx, aggregate, expected)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if aggregate, ok := args.Get(0).(*order.Order); ok {
		return aggregate, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) ClaimIfUnassigned(ctx context.Context, aggregate *order.Order) (bool, error) {
	args := m.Called(ctx, aggregate)
	return args.Bool(0), args.Error(1)
}

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockParcelRepository) UpdateIfStatus(
	ctx context.Context, aggregate *parcel.Parcel, expected parcel.Status,
) (bool, error) {
	args := m.Called(ctx, aggregate, expected)
	return args.Bool(0), args.Error(1)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if aggregate, ok := args.Get(0).(*parcel.Parcel); ok {
		return aggregate, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockParcelRepository) ClaimIfUnassigned(ctx context.Context, aggregate *parcel.Parcel) (bool, error) {
	args := m.Called(ctx, aggregate)
	return args.Bool(0), args.Error(1)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) Add(ctx context.Context, entity *review.Review) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

type MockRatingRepository struct{ mock.Mock }

func (m *MockRatingRepository) RecomputeRating(
	ctx context.Context, target review.TargetType, targetID kernel.UUID,
) error {
	args := m.Called(ctx, target, targetID)
	return args.Error(0)
}

func (m *MockRatingRepository) IncrementCompletedDeliveries(ctx context.Context, driverID kernel.UUID) error {
	args := m.Called(ctx, driverID)
	return args.Error(0)
}

func (m *MockRatingRepository) RecomputeAllRatings(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockCatalog struct{ mock.Mock }

func (m *MockCatalog) GetRestaurant(ctx context.Context, id kernel.UUID) (ports.Restaurant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.Restaurant), args.Error(1)
}

func (m *MockCatalog) GetMenuItems(ctx context.Context, ids []kernel.UUID) ([]ports.MenuItem, error) {
	args := m.Called(ctx, ids)
	if items, ok := args.Get(0).([]ports.MenuItem); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockUoW implements every unit of work composition used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockUoW) ReviewRepository() ports.ReviewRepository {
	args := m.Called()
	return args.Get(0).(ports.ReviewRepository)
}

func (m *MockUoW) RatingRepository() ports.RatingRepository {
	args := m.Called()
	return args.Get(0).(ports.RatingRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockOrderFulfillmentUoWFactory struct{ mock.Mock }

func (m *MockOrderFulfillmentUoWFactory) Create() commands.OrderFulfillmentUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderFulfillmentUoW)
}

type MockParcelFulfillmentUoWFactory struct{ mock.Mock }

func (m *MockParcelFulfillmentUoWFactory) Create() commands.ParcelFulfillmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelFulfillmentUoW)
}

type MockOrderReviewUoWFactory struct{ mock.Mock }

func (m *MockOrderReviewUoWFactory) Create() commands.OrderReviewUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderReviewUoW)
}

type MockParcelReviewUoWFactory struct{ mock.Mock }

func (m *MockParcelReviewUoWFactory) Create() commands.ParcelReviewUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelReviewUoW)
}

type MockRatingUoWFactory struct{ mock.Mock }

func (m *MockRatingUoWFactory) Create() commands.RatingUoW {
	args := m.Called()
	return args.Get(0).(commands.RatingUoW)
}
