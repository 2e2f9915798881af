package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/apperrors"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/models"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/store"
	billingmocks "github.com/isikjon/taxi.wazir-fastapi-sub000/services/billing/mocks"
	driversmocks "github.com/isikjon/taxi.wazir-fastapi-sub000/services/drivers/mocks"
	matchmocks "github.com/isikjon/taxi.wazir-fastapi-sub000/services/match/mocks"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/services/rides/mocks"
)

// passthroughStore runs the transactional closure directly; repositories are
// mocked so no real Tx is needed.
type passthroughStore struct{}

func (passthroughStore) WithTx(ctx context.Context, fn func(ctx context.Context, tx store.Tx) error) error {
	return fn(ctx, nil)
}

type engineFixture struct {
	uc       *rideUC
	rideRepo *mocks.MockRideRepo
	drvRepo  *mocks.MockDriverRepo
	policy   *matchmocks.MockDispatchPolicy
	settle   *billingmocks.MockSettlementUC
	presence *driversmocks.MockPresenceUC
	gw       *mocks.MockRideGW
	now      time.Time
}

func newEngineFixture(t *testing.T) *engineFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := &models.Config{
		Dispatch: models.DispatchConfig{
			OfferTimeoutSec:    30,
			MaxOffers:          5,
			MinPaymentPct:      0.10,
			ActivityAccept:     4,
			ActivityDecline:    10,
			ActivityComplete:   2,
			PresenceTTLSec:     60,
			ProximityRadiusKm:  10,
			TransactionRetries: 3,
			SweepIntervalSec:   10,
		},
	}

	f := &engineFixture{
		rideRepo: mocks.NewMockRideRepo(ctrl),
		drvRepo:  mocks.NewMockDriverRepo(ctrl),
		policy:   matchmocks.NewMockDispatchPolicy(ctrl),
		settle:   billingmocks.NewMockSettlementUC(ctrl),
		presence: driversmocks.NewMockPresenceUC(ctrl),
		gw:       mocks.NewMockRideGW(ctrl),
		now:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	uc := NewRideUC(cfg, passthroughStore{}, f.rideRepo, f.drvRepo, f.policy, f.settle, f.presence, f.gw)
	f.uc = uc.(*rideUC)
	f.uc.now = func() time.Time { return f.now }
	return f
}

func verifiedRider(id uuid.UUID) *models.Rider {
	return &models.Rider{ID: id, Phone: "+79990001122", Verified: true}
}

func eligibleDriver(id uuid.UUID) *models.Driver {
	return &models.Driver{
		ID:       id,
		Tariff:   models.TariffEconomy,
		Eligible: true,
		Activity: 50,
		Rating:   4.5,
	}
}

func requestedRide(riderID uuid.UUID) *models.Ride {
	return &models.Ride{
		ID:            uuid.New(),
		Number:        "RQ1A2B3C",
		RiderID:       riderID,
		OriginText:    "Lenina 1",
		Tariff:        models.TariffEconomy,
		PaymentMethod: models.PaymentMethodCash,
		QuotedPrice:   400,
		State:         models.RideStateRequested,
	}
}

func assignedRide(riderID, driverID uuid.UUID) *models.Ride {
	ride := requestedRide(riderID)
	ride.DriverID = &driverID
	ride.State = models.RideStateAssigned
	return ride
}

func TestRequestRide_Success(t *testing.T) {
	f := newEngineFixture(t)
	riderID := uuid.New()

	f.rideRepo.EXPECT().GetRider(gomock.Any(), gomock.Any(), riderID).
		Return(verifiedRider(riderID), nil)
	f.rideRepo.EXPECT().InsertRide(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ store.Tx, ride *models.Ride) error {
			assert.Equal(t, models.RideStateRequested, ride.State)
			assert.NotEmpty(t, ride.Number)
			assert.Equal(t, int64(400), ride.QuotedPrice)
			return nil
		})
	f.gw.EXPECT().PublishRideRequested(gomock.Any(), gomock.Any()).Return(nil)

	ride, err := f.uc.RequestRide(context.Background(), models.RequestRideInput{
		RiderID:         riderID,
		OriginText:      "Lenina 1",
		DestinationText: "Kirova 15",
		Tariff:          models.TariffEconomy,
		PaymentMethod:   models.PaymentMethodCash,
		QuotedPrice:     400,
	})

	require.NoError(t, err)
	assert.Equal(t, models.RideStateRequested, ride.State)
	assert.Equal(t, f.now, ride.CreatedAt)
}

func TestRequestRide_RetriesOnNumberCollision(t *testing.T) {
	f := newEngineFixture(t)
	riderID := uuid.New()

	collision := apperrors.Wrap(apperrors.KindInternal, "failed to insert ride",
		&pgconn.PgError{Code: "23505", ConstraintName: "rides_number_key"})

	f.rideRepo.EXPECT().GetRider(gomock.Any(), gomock.Any(), riderID).
		Return(verifiedRider(riderID), nil).Times(2)
	first := f.rideRepo.EXPECT().InsertRide(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(collision)
	f.rideRepo.EXPECT().InsertRide(gomock.Any(), gomock.Any(), gomock.Any()).
		After(first).
		DoAndReturn(func(_ context.Context, _ store.Tx, ride *models.Ride) error {
			assert.NotEmpty(t, ride.Number)
			return nil
		})
	f.gw.EXPECT().PublishRideRequested(gomock.Any(), gomock.Any()).Return(nil)

	ride, err := f.uc.RequestRide(context.Background(), models.RequestRideInput{
		RiderID:         riderID,
		OriginText:      "Lenina 1",
		DestinationText: "Kirova 15",
		Tariff:          models.TariffEconomy,
		PaymentMethod:   models.PaymentMethodCash,
		QuotedPrice:     400,
	})

	require.NoError(t, err)
	assert.Equal(t, models.RideStateRequested, ride.State)
}

func TestRequestRide_UnverifiedRider(t *testing.T) {
	f := newEngineFixture(t)
	riderID := uuid.New()

	rider := verifiedRider(riderID)
	rider.Verified = false
	f.rideRepo.EXPECT().GetRider(gomock.Any(), gomock.Any(), riderID).Return(rider, nil)

	_, err := f.uc.RequestRide(context.Background(), models.RequestRideInput{
		RiderID:         riderID,
		OriginText:      "Lenina 1",
		DestinationText: "Kirova 15",
		Tariff:          models.TariffEconomy,
		PaymentMethod:   models.PaymentMethodCash,
		QuotedPrice:     400,
	})

	assert.True(t, apperrors.IsKind(err, apperrors.KindRiderNotVerified))
}

func TestRequestRide_InvalidInput(t *testing.T) {
	f := newEngineFixture(t)

	tests := []struct {
		name  string
		input models.RequestRideInput
	}{
		{"unknown tariff", models.RequestRideInput{
			RiderID: uuid.New(), OriginText: "a", DestinationText: "b",
			Tariff: "LUXURY", PaymentMethod: models.PaymentMethodCash,
		}},
		{"unknown payment method", models.RequestRideInput{
			RiderID: uuid.New(), OriginText: "a", DestinationText: "b",
			Tariff: models.TariffEconomy, PaymentMethod: "CRYPTO",
		}},
		{"missing destination", models.RequestRideInput{
			RiderID: uuid.New(), OriginText: "a",
			Tariff: models.TariffEconomy, PaymentMethod: models.PaymentMethodCash,
		}},
		{"negative price", models.RequestRideInput{
			RiderID: uuid.New(), OriginText: "a", DestinationText: "b",
			Tariff: models.TariffEconomy, PaymentMethod: models.PaymentMethodCash,
			QuotedPrice: -1,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.RequestRide(context.Background(), tt.input)
			assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidInput))
		})
	}
}

func TestAssignDriver_Success(t *testing.T) {
	f := newEngineFixture(t)
	driverID := uuid.New()
	ride := requestedRide(uuid.New())

	f.presence.EXPECT().GetPresence(gomock.Any(), driverID).
		Return(&models.PresenceSnapshot{DriverID: driverID, Online: true}, nil)
	f.drvRepo.EXPECT().GetDriverForUpdate(gomock.Any(), gomock.Any(), driverID).
		Return(eligibleDriver(driverID), nil)
	f.rideRepo.EXPECT().GetRideForUpdate(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)
	f.rideRepo.EXPECT().ActiveRideByDriver(gomock.Any(), gomock.Any(), driverID).Return(nil, nil)
	f.rideRepo.EXPECT().UpdateRide(gomock.Any(), gomock.Any(), ride).Return(nil)
	f.rideRepo.EXPECT().InsertAuditEntry(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishRideStateChanged(gomock.Any(), ride).Return(nil)

	result, err := f.uc.AssignDriver(context.Background(), ride.ID, driverID, models.ActorDispatcher)

	require.NoError(t, err)
	assert.False(t, result.Replay)
	assert.Equal(t, models.RideStateAssigned, result.Ride.State)
	require.NotNil(t, result.Ride.DriverID)
	assert.Equal(t, driverID, *result.Ride.DriverID)
	assert.Equal(t, f.now, *result.Ride.AssignedAt)
}

func TestAssignDriver_Replay(t *testing.T) {
	f := newEngineFixture(t)
	driverID := uuid.New()
	ride := assignedRide(uuid.New(), driverID)

	f.presence.EXPECT().GetPresence(gomock.Any(), driverID).
		Return(&models.PresenceSnapshot{DriverID: driverID, Online: true}, nil)
	f.drvRepo.EXPECT().GetDriverForUpdate(gomock.Any(), gomock.Any(), driverID).
		Return(eligibleDriver(driverID), nil)
	f.rideRepo.EXPECT().GetRideForUpdate(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)

	result, err := f.uc.AssignDriver(context.Background(), ride.ID, driverID, models.ActorDispatcher)

	require.NoError(t, err)
	assert.True(t, result.Replay)
	assert.Equal(t, models.RideStateAssigned, result.Ride.State)
}

func TestAssignDriver_DriverBusy(t *testing.T) {
	f := newEngineFixture(t)
	driverID := uuid.New()
	ride := requestedRide(uuid.New())
	other := assignedRide(uuid.New(), driverID)

	f.presence.EXPECT().GetPresence(gomock.Any(), driverID).
		Return(&models.PresenceSnapshot{DriverID: driverID, Online: true}, nil)
	f.drvRepo.EXPECT().GetDriverForUpdate(gomock.Any(), gomock.Any(), driverID).
		Return(eligibleDriver(driverID), nil)
	f.rideRepo.EXPECT().GetRideForUpdate(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)
	f.rideRepo.EXPECT().ActiveRideByDriver(gomock.Any(), gomock.Any(), driverID).Return(other, nil)

	_, err := f.uc.AssignDriver(context.Background(), ride.ID, driverID, models.ActorDispatcher)

	assert.True(t, apperrors.IsKind(err, apperrors.KindDriverBusy))
}

func TestAssignDriver_TariffMismatch(t *testing.T) {
	f := newEngineFixture(t)
	driverID := uuid.New()
	ride := requestedRide(uuid.New())
	driver := eligibleDriver(driverID)
	driver.Tariff = models.TariffBusiness

	f.presence.EXPECT().GetPresence(gomock.Any(), driverID).
		Return(&models.PresenceSnapshot{DriverID: driverID, Online: true}, nil)
	f.drvRepo.EXPECT().GetDriverForUpdate(gomock.Any(), gomock.Any(), driverID).Return(driver, nil)
	f.rideRepo.EXPECT().GetRideForUpdate(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)

	_, err := f.uc.AssignDriver(context.Background(), ride.ID, driverID, models.ActorDispatcher)

	assert.True(t, apperrors.IsKind(err, apperrors.KindTariffMismatch))
}

func TestAssignDriver_OfflineDriver(t *testing.T) {
	f := newEngineFixture(t)
	driverID := uuid.New()

	f.presence.EXPECT().GetPresence(gomock.Any(), driverID).
		Return(&models.PresenceSnapshot{DriverID: driverID, Online: false}, nil)

	_, err := f.uc.AssignDriver(context.Background(), uuid.New(), driverID, models.ActorDispatcher)

	assert.True(t, apperrors.IsKind(err, apperrors.KindDriverIneligible))
}

func TestAssignDriver_IneligibleDriver(t *testing.T) {
	f := newEngineFixture(t)
	driverID := uuid.New()
	driver := eligibleDriver(driverID)
	driver.Eligible = false

	f.presence.EXPECT().GetPresence(gomock.Any(), driverID).
		Return(&models.PresenceSnapshot{DriverID: driverID, Online: true}, nil)
	f.drvRepo.EXPECT().GetDriverForUpdate(gomock.Any(), gomock.Any(), driverID).Return(driver, nil)

	_, err := f.uc.AssignDriver(context.Background(), uuid.New(), driverID, models.ActorDispatcher)

	assert.True(t, apperrors.IsKind(err, apperrors.KindDriverIneligible))
}

func TestAcceptByDriver_Success(t *testing.T) {
	f := newEngineFixture(t)
	driverID := uuid.New()
	ride := assignedRide(uuid.New(), driverID)

	f.drvRepo.EXPECT().GetDriverForUpdate(gomock.Any(), gomock.Any(), driverID).
		Return(eligibleDriver(driverID), nil)
	f.rideRepo.EXPECT().GetRideForUpdate(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)
	f.rideRepo.EXPECT().UpdateRide(gomock.Any(), gomock.Any(), ride).Return(nil)
	f.drvRepo.EXPECT().AdjustActivity(gomock.Any(), gomock.Any(), driverID, 4).Return(nil)
	f.rideRepo.EXPECT().InsertAuditEntry(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishRideStateChanged(gomock.Any(), ride).Return(nil)

	result, err := f.uc.AcceptByDriver(context.Background(), ride.ID, driverID)

	require.NoError(t, err)
	assert.False(t, result.Replay)
	assert.Equal(t, models.RideStateAccepted, result.Ride.State)
	assert.Equal(t, f.now, *result.Ride.AcceptedAt)
}

func TestAcceptByDriver_Replay(t *testing.T) {
	f := newEngineFixture(t)
	driverID := uuid.New()
	ride := assignedRide(uuid.New(), driverID)
	ride.State = models.RideStateAccepted

	f.drvRepo.EXPECT().GetDriverForUpdate(gomock.Any(), gomock.Any(), driverID).
		Return(eligibleDriver(driverID), nil)
	f.rideRepo.EXPECT().GetRideForUpdate(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)

	result, err := f.uc.AcceptByDriver(context.Background(), ride.ID, driverID)

	require.NoError(t, err)
	assert.True(t, result.Replay)
}

func TestAcceptByDriver_NotAssignedToCaller(t *testing.T) {
	f := newEngineFixture(t)
	driverID := uuid.New()
	ride := assignedRide(uuid.New(), uuid.New())

	f.drvRepo.EXPECT().GetDriverForUpdate(gomock.Any(), gomock.Any(), driverID).
		Return(eligibleDriver(driverID), nil)
	f.rideRepo.EXPECT().GetRideForUpdate(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)

	_, err := f.uc.AcceptByDriver(context.Background(), ride.ID, driverID)

	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidInput))
}

func TestDeclineByDriver_TerminatesRide(t *testing.T) {
	f := newEngineFixture(t)
	driverID := uuid.New()
	ride := assignedRide(uuid.New(), driverID)

	f.drvRepo.EXPECT().GetDriverForUpdate(gomock.Any(), gomock.Any(), driverID).
		Return(eligibleDriver(driverID), nil)
	f.rideRepo.EXPECT().GetRideForUpdate(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)
	f.rideRepo.EXPECT().UpdateRide(gomock.Any(), gomock.Any(), ride).Return(nil)
	f.drvRepo.EXPECT().AdjustActivity(gomock.Any(), gomock.Any(), driverID, -10).Return(nil)
	f.rideRepo.EXPECT().InsertAuditEntry(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishRideStateChanged(gomock.Any(), ride).Return(nil)

	result, err := f.uc.DeclineByDriver(context.Background(), ride.ID, driverID, "too far")

	require.NoError(t, err)
	assert.Equal(t, models.RideStateCancelledByDriver, result.Ride.State)
	require.NotNil(t, result.Ride.CancelledBy)
	assert.Equal(t, models.ActorDriver, *result.Ride.CancelledBy)
	assert.Equal(t, "too far", *result.Ride.CancelReason)
}

func TestDeclineByDriver_IllegalFromAccepted(t *testing.T) {
	f := newEngineFixture(t)
	driverID := uuid.New()
	ride := assignedRide(uuid.New(), driverID)
	ride.State = models.RideStateAccepted

	f.drvRepo.EXPECT().GetDriverForUpdate(gomock.Any(), gomock.Any(), driverID).
		Return(eligibleDriver(driverID), nil)
	f.rideRepo.EXPECT().GetRideForUpdate(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)

	_, err := f.uc.DeclineByDriver(context.Background(), ride.ID, driverID, "")

	assert.True(t, apperrors.IsKind(err, apperrors.KindIllegalTransition))
}

func TestStartTrip_Success(t *testing.T) {
	f := newEngineFixture(t)
	driverID := uuid.New()
	ride := assignedRide(uuid.New(), driverID)
	ride.State = models.RideStateAccepted

	f.drvRepo.EXPECT().GetDriverForUpdate(gomock.Any(), gomock.Any(), driverID).
		Return(eligibleDriver(driverID), nil)
	f.rideRepo.EXPECT().GetRideForUpdate(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)
	f.rideRepo.EXPECT().UpdateRide(gomock.Any(), gomock.Any(), ride).Return(nil)
	f.rideRepo.EXPECT().InsertAuditEntry(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishRideStateChanged(gomock.Any(), ride).Return(nil)

	result, err := f.uc.StartTrip(context.Background(), ride.ID, driverID)

	require.NoError(t, err)
	assert.Equal(t, models.RideStateInProgress, result.Ride.State)
	assert.Equal(t, f.now, *result.Ride.StartedAt)
}

func TestStartTrip_IllegalFromAssigned(t *testing.T) {
	f := newEngineFixture(t)
	driverID := uuid.New()
	ride := assignedRide(uuid.New(), driverID)

	f.drvRepo.EXPECT().GetDriverForUpdate(gomock.Any(), gomock.Any(), driverID).
		Return(eligibleDriver(driverID), nil)
	f.rideRepo.EXPECT().GetRideForUpdate(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)

	_, err := f.uc.StartTrip(context.Background(), ride.ID, driverID)

	assert.True(t, apperrors.IsKind(err, apperrors.KindIllegalTransition))
}

func TestCancelRide_DispatcherCancelsInProgress(t *testing.T) {
	f := newEngineFixture(t)
	driverID := uuid.New()
	ride := assignedRide(uuid.New(), driverID)
	ride.State = models.RideStateInProgress
	ride.ProgressPct = 60

	f.rideRepo.EXPECT().GetRide(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)
	f.drvRepo.EXPECT().GetDriverForUpdate(gomock.Any(), gomock.Any(), driverID).
		Return(eligibleDriver(driverID), nil)
	f.rideRepo.EXPECT().GetRideForUpdate(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)
	f.rideRepo.EXPECT().UpdateRide(gomock.Any(), gomock.Any(), ride).Return(nil)
	f.rideRepo.EXPECT().InsertAuditEntry(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishRideStateChanged(gomock.Any(), ride).Return(nil)

	// No settlement expectations: a dispatcher cancel never pays out.
	result, err := f.uc.CancelRide(context.Background(), ride.ID, models.ActorDispatcher, "incident")

	require.NoError(t, err)
	assert.Equal(t, models.RideStateCancelledByDispatcher, result.Ride.State)
	assert.Nil(t, result.Ride.ActualPrice)
}

func TestCancelRide_RiderCannotCancelInProgress(t *testing.T) {
	f := newEngineFixture(t)
	driverID := uuid.New()
	ride := assignedRide(uuid.New(), driverID)
	ride.State = models.RideStateInProgress

	f.rideRepo.EXPECT().GetRide(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)
	f.drvRepo.EXPECT().GetDriverForUpdate(gomock.Any(), gomock.Any(), driverID).
		Return(eligibleDriver(driverID), nil)
	f.rideRepo.EXPECT().GetRideForUpdate(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)

	_, err := f.uc.CancelRide(context.Background(), ride.ID, models.ActorRider, "")

	assert.True(t, apperrors.IsKind(err, apperrors.KindIllegalTransition))
}

func TestCancelRide_DriverCancelAppliesPenalty(t *testing.T) {
	f := newEngineFixture(t)
	driverID := uuid.New()
	ride := assignedRide(uuid.New(), driverID)
	ride.State = models.RideStateAccepted

	f.rideRepo.EXPECT().GetRide(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)
	f.drvRepo.EXPECT().GetDriverForUpdate(gomock.Any(), gomock.Any(), driverID).
		Return(eligibleDriver(driverID), nil)
	f.rideRepo.EXPECT().GetRideForUpdate(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)
	f.rideRepo.EXPECT().UpdateRide(gomock.Any(), gomock.Any(), ride).Return(nil)
	f.drvRepo.EXPECT().AdjustActivity(gomock.Any(), gomock.Any(), driverID, -10).Return(nil)
	f.rideRepo.EXPECT().InsertAuditEntry(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishRideStateChanged(gomock.Any(), ride).Return(nil)

	result, err := f.uc.CancelRide(context.Background(), ride.ID, models.ActorDriver, "breakdown")

	require.NoError(t, err)
	assert.Equal(t, models.RideStateCancelledByDriver, result.Ride.State)
}

func TestCancelRide_ReplayOnCancelled(t *testing.T) {
	f := newEngineFixture(t)
	ride := requestedRide(uuid.New())
	actor := models.ActorRider
	ride.State = models.RideStateCancelledByRider
	ride.CancelledBy = &actor

	f.rideRepo.EXPECT().GetRide(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)
	f.rideRepo.EXPECT().GetRideForUpdate(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)

	result, err := f.uc.CancelRide(context.Background(), ride.ID, models.ActorRider, "")

	require.NoError(t, err)
	assert.True(t, result.Replay)
}

func TestCancelRide_CompletedIsIllegal(t *testing.T) {
	f := newEngineFixture(t)
	ride := requestedRide(uuid.New())
	ride.State = models.RideStateCompleted

	f.rideRepo.EXPECT().GetRide(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)
	f.rideRepo.EXPECT().GetRideForUpdate(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)

	_, err := f.uc.CancelRide(context.Background(), ride.ID, models.ActorDispatcher, "")

	assert.True(t, apperrors.IsKind(err, apperrors.KindIllegalTransition))
}

func TestOfferRide_Success(t *testing.T) {
	f := newEngineFixture(t)
	ride := requestedRide(uuid.New())
	candidates := []uuid.UUID{uuid.New(), uuid.New()}

	f.rideRepo.EXPECT().GetRide(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)
	f.policy.EXPECT().RankCandidates(gomock.Any(), ride).Return(candidates, nil)
	f.rideRepo.EXPECT().GetRideForUpdate(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)
	f.rideRepo.EXPECT().UpdateRide(gomock.Any(), gomock.Any(), ride).Return(nil)
	f.rideRepo.EXPECT().InsertOffers(gomock.Any(), gomock.Any(), ride.ID, candidates, f.now).Return(nil)
	f.rideRepo.EXPECT().InsertAuditEntry(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishRideStateChanged(gomock.Any(), ride).Return(nil)

	result, err := f.uc.OfferRide(context.Background(), ride.ID)

	require.NoError(t, err)
	assert.Equal(t, models.RideStateOffered, result.Ride.State)
	assert.Equal(t, f.now, *result.Ride.OfferedAt)
	assert.Equal(t, candidates, result.Candidates)
}

func TestOfferRide_NoEligibleDrivers(t *testing.T) {
	f := newEngineFixture(t)
	ride := requestedRide(uuid.New())

	f.rideRepo.EXPECT().GetRide(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)
	f.policy.EXPECT().RankCandidates(gomock.Any(), ride).Return(nil, nil)
	f.rideRepo.EXPECT().GetRideForUpdate(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)

	result, err := f.uc.OfferRide(context.Background(), ride.ID)

	assert.True(t, apperrors.IsKind(err, apperrors.KindNoEligibleDrivers))
	// Ride stays Requested so the dispatcher may retry or assign manually.
	require.NotNil(t, result)
	assert.Equal(t, models.RideStateRequested, result.Ride.State)
}

func TestOfferRide_IllegalState(t *testing.T) {
	f := newEngineFixture(t)
	ride := requestedRide(uuid.New())
	ride.State = models.RideStateInProgress

	f.rideRepo.EXPECT().GetRide(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)

	_, err := f.uc.OfferRide(context.Background(), ride.ID)

	assert.True(t, apperrors.IsKind(err, apperrors.KindIllegalTransition))
}

func TestOfferRide_LazyRevertOfExpiredOffer(t *testing.T) {
	f := newEngineFixture(t)
	ride := requestedRide(uuid.New())
	expired := f.now.Add(-2 * time.Minute)
	ride.State = models.RideStateOffered
	ride.OfferedAt = &expired
	candidates := []uuid.UUID{uuid.New()}

	f.rideRepo.EXPECT().GetRide(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)
	f.policy.EXPECT().RankCandidates(gomock.Any(), ride).Return(candidates, nil)
	f.rideRepo.EXPECT().GetRideForUpdate(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)
	// First update reverts the stale offer, second re-offers.
	f.rideRepo.EXPECT().UpdateRide(gomock.Any(), gomock.Any(), ride).Return(nil).Times(2)
	f.rideRepo.EXPECT().InsertAuditEntry(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.rideRepo.EXPECT().InsertOffers(gomock.Any(), gomock.Any(), ride.ID, candidates, f.now).Return(nil)
	f.gw.EXPECT().PublishRideStateChanged(gomock.Any(), ride).Return(nil)

	result, err := f.uc.OfferRide(context.Background(), ride.ID)

	require.NoError(t, err)
	assert.Equal(t, models.RideStateOffered, result.Ride.State)
	assert.Equal(t, f.now, *result.Ride.OfferedAt)
}
