package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/apperrors"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

var rideColumnList = []string{
	"id", "number", "rider_id", "driver_id", "origin_text", "origin_lat", "origin_lon",
	"destination_text", "destination_lat", "destination_lon", "tariff", "payment_method",
	"quoted_price", "actual_price", "progress_pct", "total_distance_km", "completed_distance_km",
	"state", "created_at", "offered_at", "assigned_at", "accepted_at", "started_at", "completed_at",
	"cancelled_at", "cancel_reason", "cancelled_by", "last_progress_at",
}

func uuidOrNil(id *uuid.UUID) interface{} {
	if id == nil {
		return nil
	}
	return id.String()
}

func rideRows(ride *models.Ride) *sqlmock.Rows {
	return sqlmock.NewRows(rideColumnList).AddRow(
		ride.ID.String(), ride.Number, ride.RiderID.String(), uuidOrNil(ride.DriverID),
		ride.OriginText, ride.OriginLat, ride.OriginLon,
		ride.DestinationText, ride.DestinationLat, ride.DestinationLon,
		ride.Tariff, ride.PaymentMethod, ride.QuotedPrice, ride.ActualPrice,
		ride.ProgressPct, ride.TotalDistanceKm, ride.CompletedDistanceKm,
		ride.State, ride.CreatedAt, ride.OfferedAt, ride.AssignedAt,
		ride.AcceptedAt, ride.StartedAt, ride.CompletedAt, ride.CancelledAt,
		ride.CancelReason, ride.CancelledBy, ride.LastProgressAt,
	)
}

func sampleRide() *models.Ride {
	return &models.Ride{
		ID:              uuid.New(),
		Number:          "RQ1A2B3C",
		RiderID:         uuid.New(),
		OriginText:      "Lenina 1",
		DestinationText: "Kirova 15",
		Tariff:          models.TariffEconomy,
		PaymentMethod:   models.PaymentMethodCash,
		QuotedPrice:     400,
		State:           models.RideStateRequested,
		CreatedAt:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestGetRide(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRideRepo()
	ride := sampleRide()

	mock.ExpectQuery(`FROM rides WHERE id = \$1`).
		WithArgs(ride.ID).
		WillReturnRows(rideRows(ride))

	got, err := repo.GetRide(context.Background(), db, ride.ID)

	require.NoError(t, err)
	assert.Equal(t, ride.ID, got.ID)
	assert.Equal(t, ride.Number, got.Number)
	assert.Equal(t, models.RideStateRequested, got.State)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRide_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRideRepo()
	id := uuid.New()

	mock.ExpectQuery(`FROM rides WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(rideColumnList))

	_, err := repo.GetRide(context.Background(), db, id)

	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestGetRideForUpdate_TakesRowLock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRideRepo()
	ride := sampleRide()

	mock.ExpectQuery(`FROM rides WHERE id = \$1 FOR UPDATE`).
		WithArgs(ride.ID).
		WillReturnRows(rideRows(ride))

	_, err := repo.GetRideForUpdate(context.Background(), db, ride.ID)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertRide(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRideRepo()
	ride := sampleRide()

	mock.ExpectExec(`INSERT INTO rides`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.InsertRide(context.Background(), db, ride))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRide_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRideRepo()
	ride := sampleRide()

	mock.ExpectExec(`UPDATE rides`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateRide(context.Background(), db, ride)

	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestActiveRideByDriver_NoneIsNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRideRepo()
	driverID := uuid.New()

	mock.ExpectQuery(`FROM rides`).
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows(rideColumnList))

	ride, err := repo.ActiveRideByDriver(context.Background(), db, driverID)

	require.NoError(t, err)
	assert.Nil(t, ride)
}

func TestInsertOffers(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRideRepo()
	rideID := uuid.New()
	driverIDs := []uuid.UUID{uuid.New(), uuid.New()}
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, driverID := range driverIDs {
		mock.ExpectExec(`INSERT INTO ride_offers`).
			WithArgs(rideID, driverID, at).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	require.NoError(t, repo.InsertOffers(context.Background(), db, rideID, driverIDs, at))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListExpiredOfferRides(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRideRepo()
	cutoff := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	a, b := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT id FROM rides`).
		WithArgs(cutoff, 100).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(a.String()).AddRow(b.String()))

	ids, err := repo.ListExpiredOfferRides(context.Background(), db, cutoff, 100)

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, ids)
}

func TestGetRider_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRideRepo()
	id := uuid.New()

	mock.ExpectQuery(`FROM riders WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "phone", "display_name", "verified", "created_at"}))

	_, err := repo.GetRider(context.Background(), db, id)

	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestInsertAuditEntry(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRideRepo()
	entry := &models.AuditEntry{
		ID:        uuid.New(),
		RideID:    uuid.New(),
		Event:     "offer_expired",
		Detail:    "reverted to requested",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec(`INSERT INTO audit_log`).
		WithArgs(entry.ID, entry.RideID, entry.Event, entry.Detail, entry.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.InsertAuditEntry(context.Background(), db, entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDriverForUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDriverRepo()
	id := uuid.New()

	rows := sqlmock.NewRows([]string{
		"id", "name", "phone", "tariff", "eligible", "balance", "activity",
		"rating", "rating_count", "created_at", "updated_at",
	}).AddRow(id.String(), "Askar", "+79990001122", "ECONOMY", true, int64(1200), 50,
		4.5, 12, time.Now(), time.Now())

	mock.ExpectQuery(`FROM drivers WHERE id = \$1 FOR UPDATE`).
		WithArgs(id).
		WillReturnRows(rows)

	driver, err := repo.GetDriverForUpdate(context.Background(), db, id)

	require.NoError(t, err)
	assert.Equal(t, id, driver.ID)
	assert.True(t, driver.Eligible)
	assert.Equal(t, int64(1200), driver.Balance)
}

func TestAdjustActivity_ClipsInSQL(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDriverRepo()
	id := uuid.New()

	mock.ExpectExec(`SET activity = LEAST\(100, GREATEST\(0, activity \+ \$2\)\)`).
		WithArgs(id, -10).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.AdjustActivity(context.Background(), db, id, -10))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustActivity_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDriverRepo()
	id := uuid.New()

	mock.ExpectExec(`UPDATE drivers`).
		WithArgs(id, 4).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.AdjustActivity(context.Background(), db, id, 4)

	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}
