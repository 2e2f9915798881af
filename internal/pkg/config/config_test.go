package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchDefaults(t *testing.T) {
	cfg := loadConfigFromEnv()

	assert.Equal(t, 30, cfg.Dispatch.OfferTimeoutSec)
	assert.Equal(t, 5, cfg.Dispatch.MaxOffers)
	assert.InDelta(t, 0.10, cfg.Dispatch.MinPaymentPct, 1e-9)
	assert.Equal(t, 4, cfg.Dispatch.ActivityAccept)
	assert.Equal(t, 10, cfg.Dispatch.ActivityDecline)
	assert.Equal(t, 2, cfg.Dispatch.ActivityComplete)
	assert.Equal(t, 60, cfg.Dispatch.PresenceTTLSec)
	assert.InDelta(t, 10.0, cfg.Dispatch.ProximityRadiusKm, 1e-9)
	assert.Equal(t, 3, cfg.Dispatch.TransactionRetries)
}

func TestGetEnvAsInt_Invalid(t *testing.T) {
	t.Setenv("DISPATCH_MAX_OFFERS", "not-a-number")
	assert.Equal(t, 5, GetEnvAsInt("DISPATCH_MAX_OFFERS", 5))
}

func TestGetEnvOverride(t *testing.T) {
	t.Setenv("DISPATCH_MAX_OFFERS", "8")
	cfg := loadConfigFromEnv()
	assert.Equal(t, 8, cfg.Dispatch.MaxOffers)
}
