package queries_test

import (
	"context"
	"testing"
	"time"

	"deliverymarket/internal/adapters/out/postgres/parcelrepo"
	"deliverymarket/internal/core/application/usecases/queries"
	"deliverymarket/internal/core/domain/model/kernel"
	"deliverymarket/internal/core/domain/model/parcel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type GetAvailableParcelsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAvailableParcelsQueryHandler
	repo      *parcelrepo.GormParcelRepository
}

func (suite *GetAvailableParcelsQueryHandlerTestSuite) SetupSuite() {
	container, db, err := startQueryDatabase(context.Background())
	suite.Require().NoError(err)

	suite.container = container
	suite.db = db
	suite.handler = queries.NewGetAvailableParcelsQueryHandler(db)
	suite.repo = parcelrepo.NewGormParcelRepository(db, &noopAggregateTracker{})
}

func (suite *GetAvailableParcelsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetAvailableParcelsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parcels").Error)
}

func (suite *GetAvailableParcelsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.handler.Handle(context.Background(), queries.NewGetAvailableParcelsQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAvailableParcelsQueryHandlerTestSuite) TestHandle_ReturnsOnlyUnassignedPendingParcels() {
	driverID := kernel.NewUUID()
	now := time.Now().UTC()

	pending := suite.addParcel(parcel.StatusPending, nil, now)

	// Claimed, in flight, finished or cancelled parcels are off the board.
	suite.addParcel(parcel.StatusPending, &driverID, now)
	suite.addParcel(parcel.StatusAssigned, &driverID, now)
	suite.addParcel(parcel.StatusInTransit, &driverID, now)
	suite.addParcel(parcel.StatusDelivered, &driverID, now)
	suite.addParcel(parcel.StatusCancelled, nil, now)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetAvailableParcelsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(pending.ID()))
}

func (suite *GetAvailableParcelsQueryHandlerTestSuite) TestHandle_ParcelsAreOldestFirst() {
	now := time.Now().UTC()

	middle := suite.addParcel(parcel.StatusPending, nil, now.Add(-30*time.Minute))
	oldest := suite.addParcel(parcel.StatusPending, nil, now.Add(-2*time.Hour))
	newest := suite.addParcel(parcel.StatusPending, nil, now.Add(-5*time.Minute))

	result, err := suite.handler.Handle(context.Background(), queries.NewGetAvailableParcelsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.True(result[0].ID.IsEqual(oldest.ID()))
	suite.True(result[1].ID.IsEqual(middle.ID()))
	suite.True(result[2].ID.IsEqual(newest.ID()))
}

func (suite *GetAvailableParcelsQueryHandlerTestSuite) TestHandle_MapsParcelFields() {
	createdAt := time.Now().UTC().Add(-15 * time.Minute)
	stored := suite.addParcel(parcel.StatusPending, nil, createdAt)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetAvailableParcelsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	row := result[0]
	suite.True(row.ID.IsEqual(stored.ID()))
	suite.Equal(parcel.StatusPending.String(), row.Status)
	suite.Equal("1 Pickup Lane", row.PickupAddress)
	suite.Equal("2 Dropoff Road", row.DeliveryAddress)
	suite.Equal(parcel.SizeSmall.String(), row.Size)
	suite.True(row.DeliveryFee.Equal(decimal.RequireFromString("15.00")))
	suite.InDelta(5.0, row.EstimatedDistanceKm, 1e-9)
	suite.WithinDuration(createdAt, row.CreatedAt, time.Second)
}

func (suite *GetAvailableParcelsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.GetAvailableParcelsQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetAvailableParcelsQueryIsNotConstructed)
	suite.Nil(result)
}

func (suite *GetAvailableParcelsQueryHandlerTestSuite) addParcel(
	status parcel.Status, driverID *kernel.UUID, createdAt time.Time,
) *parcel.Parcel {
	aggregate := restoreParcelRow(suite.Require(), kernel.NewUUID(), status, driverID, createdAt)
	suite.Require().NoError(suite.repo.Add(context.Background(), aggregate))
	return aggregate
}

func TestGetAvailableParcelsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAvailableParcelsQueryHandlerTestSuite))
}

// restoreParcelRow builds a persistable small parcel with the standard
// 15.00 fee over 5 km.
func restoreParcelRow(
	r *require.Assertions,
	senderID kernel.UUID, status parcel.Status, driverID *kernel.UUID, createdAt time.Time,
) *parcel.Parcel {
	aggregate, err := parcel.RestoreParcel(
		kernel.NewUUID(), senderID, driverID, status,
		parcel.Recipient{Name: "Ada", Phone: "+15550100"},
		parcel.Waypoint{Address: "1 Pickup Lane"},
		parcel.Waypoint{Address: "2 Dropoff Road"},
		"", parcel.SizeSmall, nil,
		decimal.RequireFromString("15.00"), 5.0,
		createdAt, nil, nil,
	)
	r.NoError(err)
	return aggregate
}
