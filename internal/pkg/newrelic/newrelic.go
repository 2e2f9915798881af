package newrelic

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/logger"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/models"
)

const echoContextKey = "newrelic_txn"

// InitNewRelic initializes the New Relic application based on configuration.
// Returns nil when disabled; all helpers tolerate a nil transaction.
func InitNewRelic(configs *models.Config) *newrelic.Application {
	if !configs.NewRelic.Enabled || configs.NewRelic.LicenseKey == "" {
		logger.Info("New Relic is disabled or license key not provided")
		return nil
	}

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(configs.NewRelic.AppName),
		newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogDecoratingEnabled(true),
	)
	if err != nil {
		logger.Warn("Failed to initialize New Relic, continuing without New Relic",
			logger.Err(err))
		return nil
	}

	logger.Info("New Relic enabled", logger.String("app_name", configs.NewRelic.AppName))
	return nrApp
}

// Middleware starts a New Relic transaction per request and stores it in both
// the echo context and the request context.
func Middleware(nrApp *newrelic.Application) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if nrApp == nil {
				return next(c)
			}

			txn := nrApp.StartTransaction(c.Request().Method + " " + c.Path())
			defer txn.End()

			txn.SetWebRequestHTTP(c.Request())
			c.Set(echoContextKey, txn)
			c.SetRequest(c.Request().WithContext(newrelic.NewContext(c.Request().Context(), txn)))

			return next(c)
		}
	}
}

// FromEchoContext returns the transaction stored by Middleware, or nil
func FromEchoContext(c echo.Context) *newrelic.Transaction {
	if txn, ok := c.Get(echoContextKey).(*newrelic.Transaction); ok {
		return txn
	}
	return nil
}

// SetTransactionName renames the transaction; no-op on nil
func SetTransactionName(txn *newrelic.Transaction, name string) {
	if txn != nil {
		txn.SetName(name)
	}
}

// NoticeTransactionError records an error against the transaction; no-op on nil
func NoticeTransactionError(txn *newrelic.Transaction, err error) {
	if txn != nil && err != nil {
		txn.NoticeError(err)
	}
}

// AddTransactionAttribute attaches a custom attribute; no-op on nil
func AddTransactionAttribute(txn *newrelic.Transaction, key string, value interface{}) {
	if txn != nil {
		txn.AddAttribute(key, value)
	}
}
