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
	"github.com/isikjon/taxi.wazir-fastapi-sub000/services/billing/mocks"
)

func newSettlementFixture(t *testing.T) (*settlementUC, *mocks.MockBillingRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := &models.Config{
		Dispatch: models.DispatchConfig{
			MinPaymentPct:    0.10,
			ActivityComplete: 2,
		},
	}
	repo := mocks.NewMockBillingRepo(ctrl)
	uc := NewSettlementUC(cfg, repo).(*settlementUC)
	uc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return uc, repo
}

func settledRide(driverID uuid.UUID, quoted int64, progressPct float64) *models.Ride {
	return &models.Ride{
		ID:          uuid.New(),
		Number:      "RQ1A2B3C",
		DriverID:    &driverID,
		QuotedPrice: quoted,
		ProgressPct: progressPct,
		State:       models.RideStateCompleted,
	}
}

func TestSettleRide_FullPaysQuoted(t *testing.T) {
	uc, repo := newSettlementFixture(t)
	driverID := uuid.New()
	ride := settledRide(driverID, 400, 80)

	repo.EXPECT().InsertTransaction(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ store.Tx, txn *models.BalanceTransaction) error {
			assert.Equal(t, int64(400), txn.Amount)
			assert.Equal(t, models.TransactionKindPayout, txn.Kind)
			assert.Equal(t, models.TransactionStatusCompleted, txn.Status)
			assert.Equal(t, ride.ID, *txn.RideID)
			assert.Equal(t, driverID, txn.DriverID)
			return nil
		})
	repo.EXPECT().ApplyDriverSettlement(gomock.Any(), gomock.Any(), driverID, int64(400), 2).Return(nil)
	repo.EXPECT().RecordDriverRating(gomock.Any(), gomock.Any(), driverID, 5.0).Return(nil)

	payout, err := uc.SettleRide(context.Background(), nil, ride, models.CompletionFull, 5)

	require.NoError(t, err)
	assert.Equal(t, int64(400), payout.Amount)
	require.NotNil(t, ride.ActualPrice)
	assert.Equal(t, int64(400), *ride.ActualPrice)
}

func TestSettleRide_PartialPaysProgressShare(t *testing.T) {
	uc, repo := newSettlementFixture(t)
	driverID := uuid.New()
	ride := settledRide(driverID, 1000, 35)

	repo.EXPECT().InsertTransaction(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().ApplyDriverSettlement(gomock.Any(), gomock.Any(), driverID, int64(350), 2).Return(nil)

	payout, err := uc.SettleRide(context.Background(), nil, ride, models.CompletionPartial, 0)

	require.NoError(t, err)
	assert.Equal(t, int64(350), payout.Amount)
	assert.Equal(t, int64(350), *ride.ActualPrice)
}

func TestSettleRide_PartialFloorsAtMinimum(t *testing.T) {
	uc, repo := newSettlementFixture(t)
	driverID := uuid.New()
	ride := settledRide(driverID, 500, 3)

	repo.EXPECT().InsertTransaction(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().ApplyDriverSettlement(gomock.Any(), gomock.Any(), driverID, int64(50), 2).Return(nil)

	payout, err := uc.SettleRide(context.Background(), nil, ride, models.CompletionPartial, 0)

	require.NoError(t, err)
	assert.Equal(t, int64(50), payout.Amount)
}

func TestSettleRide_NoRatingSkipsRatingUpdate(t *testing.T) {
	uc, repo := newSettlementFixture(t)
	driverID := uuid.New()
	ride := settledRide(driverID, 400, 100)

	repo.EXPECT().InsertTransaction(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().ApplyDriverSettlement(gomock.Any(), gomock.Any(), driverID, int64(400), 2).Return(nil)
	// No RecordDriverRating expectation: rating 0 means "not rated".

	_, err := uc.SettleRide(context.Background(), nil, ride, models.CompletionFull, 0)

	require.NoError(t, err)
}

func TestSettleRide_NoDriver(t *testing.T) {
	uc, _ := newSettlementFixture(t)
	ride := settledRide(uuid.New(), 400, 100)
	ride.DriverID = nil

	_, err := uc.SettleRide(context.Background(), nil, ride, models.CompletionFull, 0)

	assert.True(t, apperrors.IsKind(err, apperrors.KindInternal))
}
