package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/apperrors"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/models"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/store"
)

func inProgressRide(driverID uuid.UUID) *models.Ride {
	ride := assignedRide(uuid.New(), driverID)
	ride.State = models.RideStateInProgress
	// Moscow centre to a point roughly 11 km north-east.
	oLat, oLon := 55.7558, 37.6173
	dLat, dLon := 55.8304, 37.7223
	ride.OriginLat, ride.OriginLon = &oLat, &oLon
	ride.DestinationLat, ride.DestinationLon = &dLat, &dLon
	ride.TotalDistanceKm = 10.6
	return ride
}

func TestUpdateProgress_AdvancesTowardsDestination(t *testing.T) {
	f := newEngineFixture(t)
	driverID := uuid.New()
	ride := inProgressRide(driverID)
	ts := f.now.Add(time.Minute)

	f.drvRepo.EXPECT().GetDriverForUpdate(gomock.Any(), gomock.Any(), driverID).
		Return(eligibleDriver(driverID), nil)
	f.rideRepo.EXPECT().GetRideForUpdate(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)
	f.rideRepo.EXPECT().UpdateRide(gomock.Any(), gomock.Any(), ride).Return(nil)
	f.presence.EXPECT().Heartbeat(gomock.Any(), driverID, 55.79, 37.67, ts).
		Return(&models.PresenceSnapshot{DriverID: driverID, Online: true}, nil)

	// Roughly halfway along the route.
	snapshot, err := f.uc.UpdateProgress(context.Background(), ride.ID, driverID, 55.79, 37.67, ts)

	require.NoError(t, err)
	assert.False(t, snapshot.Stale)
	assert.Greater(t, snapshot.ProgressPct, 30.0)
	assert.Less(t, snapshot.ProgressPct, 70.0)
	assert.Greater(t, snapshot.CompletedDistanceKm, 0.0)
	assert.Equal(t, ts, *ride.LastProgressAt)
}

func TestUpdateProgress_MonotonicUnderGPSJitter(t *testing.T) {
	f := newEngineFixture(t)
	driverID := uuid.New()
	ride := inProgressRide(driverID)
	ride.ProgressPct = 80
	ride.CompletedDistanceKm = 8.5
	earlier := f.now
	ride.LastProgressAt = &earlier
	ts := f.now.Add(time.Minute)

	f.drvRepo.EXPECT().GetDriverForUpdate(gomock.Any(), gomock.Any(), driverID).
		Return(eligibleDriver(driverID), nil)
	f.rideRepo.EXPECT().GetRideForUpdate(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)
	f.rideRepo.EXPECT().UpdateRide(gomock.Any(), gomock.Any(), ride).Return(nil)
	f.presence.EXPECT().Heartbeat(gomock.Any(), driverID, gomock.Any(), gomock.Any(), ts).
		Return(&models.PresenceSnapshot{}, nil)

	// A ping from back near the origin must not move progress backwards.
	snapshot, err := f.uc.UpdateProgress(context.Background(), ride.ID, driverID, 55.7560, 37.6180, ts)

	require.NoError(t, err)
	assert.Equal(t, 80.0, snapshot.ProgressPct)
	assert.Equal(t, 8.5, snapshot.CompletedDistanceKm)
}

func TestUpdateProgress_StaleTimestampIsNoOp(t *testing.T) {
	f := newEngineFixture(t)
	driverID := uuid.New()
	ride := inProgressRide(driverID)
	ride.ProgressPct = 40
	last := f.now
	ride.LastProgressAt = &last

	f.drvRepo.EXPECT().GetDriverForUpdate(gomock.Any(), gomock.Any(), driverID).
		Return(eligibleDriver(driverID), nil)
	f.rideRepo.EXPECT().GetRideForUpdate(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)
	// No UpdateRide, no Heartbeat: the stale ping changes nothing.

	snapshot, err := f.uc.UpdateProgress(context.Background(), ride.ID, driverID, 55.80, 37.70, f.now.Add(-time.Second))

	require.NoError(t, err)
	assert.True(t, snapshot.Stale)
	assert.Equal(t, 40.0, snapshot.ProgressPct)
}

func TestUpdateProgress_RequiresInProgress(t *testing.T) {
	f := newEngineFixture(t)
	driverID := uuid.New()
	ride := assignedRide(uuid.New(), driverID)

	f.drvRepo.EXPECT().GetDriverForUpdate(gomock.Any(), gomock.Any(), driverID).
		Return(eligibleDriver(driverID), nil)
	f.rideRepo.EXPECT().GetRideForUpdate(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)

	_, err := f.uc.UpdateProgress(context.Background(), ride.ID, driverID, 55.80, 37.70, f.now)

	assert.True(t, apperrors.IsKind(err, apperrors.KindIllegalTransition))
}

func TestUpdateProgress_WrongDriver(t *testing.T) {
	f := newEngineFixture(t)
	driverID := uuid.New()
	ride := inProgressRide(uuid.New())

	f.drvRepo.EXPECT().GetDriverForUpdate(gomock.Any(), gomock.Any(), driverID).
		Return(eligibleDriver(driverID), nil)
	f.rideRepo.EXPECT().GetRideForUpdate(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)

	_, err := f.uc.UpdateProgress(context.Background(), ride.ID, driverID, 55.80, 37.70, f.now)

	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidInput))
}

func TestUpdateProgress_ProvisionalPriceNeverPersisted(t *testing.T) {
	f := newEngineFixture(t)
	driverID := uuid.New()
	ride := inProgressRide(driverID)
	ride.ProgressPct = 50
	ts := f.now.Add(time.Minute)

	f.drvRepo.EXPECT().GetDriverForUpdate(gomock.Any(), gomock.Any(), driverID).
		Return(eligibleDriver(driverID), nil)
	f.rideRepo.EXPECT().GetRideForUpdate(gomock.Any(), gomock.Any(), ride.ID).Return(ride, nil)
	f.rideRepo.EXPECT().UpdateRide(gomock.Any(), gomock.Any(), ride).
		DoAndReturn(func(_ context.Context, _ store.Tx, r *models.Ride) error {
			assert.Nil(t, r.ActualPrice)
			return nil
		})
	f.presence.EXPECT().Heartbeat(gomock.Any(), driverID, gomock.Any(), gomock.Any(), ts).
		Return(&models.PresenceSnapshot{}, nil)

	snapshot, err := f.uc.UpdateProgress(context.Background(), ride.ID, driverID, 55.79, 37.67, ts)

	require.NoError(t, err)
	assert.Greater(t, snapshot.ProvisionalPrice, int64(0))
	assert.Nil(t, ride.ActualPrice)
}
