package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/apperrors"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/models"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/store"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/services/rides"
)

const rideColumns = `id, number, rider_id, driver_id, origin_text, origin_lat, origin_lon,
	destination_text, destination_lat, destination_lon, tariff, payment_method,
	quoted_price, actual_price, progress_pct, total_distance_km, completed_distance_km,
	state, created_at, offered_at, assigned_at, accepted_at, started_at, completed_at,
	cancelled_at, cancel_reason, cancelled_by, last_progress_at`

// rideRepo implements the rides.RideRepo interface over sqlx
type rideRepo struct{}

// NewRideRepo creates a new ride repository
func NewRideRepo() rides.RideRepo {
	return &rideRepo{}
}

func (r *rideRepo) GetRide(ctx context.Context, tx store.Tx, id uuid.UUID) (*models.Ride, error) {
	return r.getRide(ctx, tx, id, false)
}

func (r *rideRepo) GetRideForUpdate(ctx context.Context, tx store.Tx, id uuid.UUID) (*models.Ride, error) {
	return r.getRide(ctx, tx, id, true)
}

func (r *rideRepo) getRide(ctx context.Context, tx store.Tx, id uuid.UUID, lock bool) (*models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1`
	if lock {
		query += ` FOR UPDATE`
	}

	var ride models.Ride
	err := sqlx.GetContext(ctx, tx, &ride, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.Newf(apperrors.KindNotFound, "ride %s not found", id)
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to load ride", err)
	}
	return &ride, nil
}

func (r *rideRepo) InsertRide(ctx context.Context, tx store.Tx, ride *models.Ride) error {
	query := `
		INSERT INTO rides (id, number, rider_id, origin_text, origin_lat, origin_lon,
			destination_text, destination_lat, destination_lon, tariff, payment_method,
			quoted_price, progress_pct, total_distance_km, completed_distance_km,
			state, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err := tx.ExecContext(ctx, query,
		ride.ID, ride.Number, ride.RiderID,
		ride.OriginText, ride.OriginLat, ride.OriginLon,
		ride.DestinationText, ride.DestinationLat, ride.DestinationLon,
		ride.Tariff, ride.PaymentMethod, ride.QuotedPrice,
		ride.ProgressPct, ride.TotalDistanceKm, ride.CompletedDistanceKm,
		ride.State, ride.CreatedAt)
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "failed to insert ride", err)
	}
	return nil
}

func (r *rideRepo) UpdateRide(ctx context.Context, tx store.Tx, ride *models.Ride) error {
	query := `
		UPDATE rides
		SET driver_id = $2, quoted_price = $3, actual_price = $4, progress_pct = $5,
			total_distance_km = $6, completed_distance_km = $7, state = $8,
			offered_at = $9, assigned_at = $10, accepted_at = $11, started_at = $12,
			completed_at = $13, cancelled_at = $14, cancel_reason = $15,
			cancelled_by = $16, last_progress_at = $17
		WHERE id = $1`

	result, err := tx.ExecContext(ctx, query,
		ride.ID, ride.DriverID, ride.QuotedPrice, ride.ActualPrice,
		ride.ProgressPct, ride.TotalDistanceKm, ride.CompletedDistanceKm, ride.State,
		ride.OfferedAt, ride.AssignedAt, ride.AcceptedAt, ride.StartedAt,
		ride.CompletedAt, ride.CancelledAt, ride.CancelReason, ride.CancelledBy,
		ride.LastProgressAt)
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "failed to update ride", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return apperrors.Newf(apperrors.KindNotFound, "ride %s not found", ride.ID)
	}
	return nil
}

func (r *rideRepo) ActiveRideByDriver(ctx context.Context, tx store.Tx, driverID uuid.UUID) (*models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides
		WHERE driver_id = $1 AND state IN ('ASSIGNED', 'ACCEPTED', 'IN_PROGRESS')`

	var ride models.Ride
	err := sqlx.GetContext(ctx, tx, &ride, query, driverID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to load active ride", err)
	}
	return &ride, nil
}

func (r *rideRepo) InsertOffers(ctx context.Context, tx store.Tx, rideID uuid.UUID, driverIDs []uuid.UUID, at time.Time) error {
	query := `INSERT INTO ride_offers (ride_id, driver_id, offered_at) VALUES ($1, $2, $3)`
	for _, driverID := range driverIDs {
		if _, err := tx.ExecContext(ctx, query, rideID, driverID, at); err != nil {
			return apperrors.Wrap(apperrors.KindInternal, "failed to insert ride offer", err)
		}
	}
	return nil
}

func (r *rideRepo) ListExpiredOfferRides(ctx context.Context, tx store.Tx, cutoff time.Time, limit int) ([]uuid.UUID, error) {
	// SKIP LOCKED keeps the sweep from blocking behind a concurrent
	// assignment; the skipped ride is revisited on the next tick.
	query := `SELECT id FROM rides
		WHERE state = 'OFFERED' AND offered_at < $1
		ORDER BY offered_at
		LIMIT $2
		FOR UPDATE SKIP LOCKED`

	var ids []uuid.UUID
	if err := sqlx.SelectContext(ctx, tx, &ids, query, cutoff, limit); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to list expired offers", err)
	}
	return ids, nil
}

func (r *rideRepo) GetRider(ctx context.Context, tx store.Tx, id uuid.UUID) (*models.Rider, error) {
	query := `SELECT id, phone, display_name, verified, created_at FROM riders WHERE id = $1`

	var rider models.Rider
	err := sqlx.GetContext(ctx, tx, &rider, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.Newf(apperrors.KindNotFound, "rider %s not found", id)
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to load rider", err)
	}
	return &rider, nil
}

func (r *rideRepo) InsertAuditEntry(ctx context.Context, tx store.Tx, entry *models.AuditEntry) error {
	query := `INSERT INTO audit_log (id, ride_id, event, detail, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := tx.ExecContext(ctx, query,
		entry.ID, entry.RideID, entry.Event, entry.Detail, entry.CreatedAt)
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "failed to insert audit entry", err)
	}
	return nil
}
