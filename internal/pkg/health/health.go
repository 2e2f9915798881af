package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nats-io/nats.go"

	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/database"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/logger"
)

// Checker probes one dependency
type Checker interface {
	Check(ctx context.Context) error
}

// CheckerFunc adapts a function to the Checker interface
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) Check(ctx context.Context) error {
	return f(ctx)
}

// Service aggregates named dependency checkers
type Service struct {
	zl       *logger.ZapLogger
	checkers map[string]Checker
}

// NewService creates a health service
func NewService(zl *logger.ZapLogger) *Service {
	return &Service{
		zl:       zl,
		checkers: make(map[string]Checker),
	}
}

// AddChecker registers a named dependency checker
func (s *Service) AddChecker(name string, c Checker) {
	s.checkers[name] = c
}

// Status is the aggregate health report
type Status struct {
	Status     string            `json:"status"`
	App        string            `json:"app"`
	Version    string            `json:"version,omitempty"`
	Components map[string]string `json:"components"`
	CheckedAt  time.Time         `json:"checked_at"`
}

// Check runs all checkers with a shared timeout
func (s *Service) Check(ctx context.Context, app, version string) Status {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := Status{
		Status:     "ok",
		App:        app,
		Version:    version,
		Components: make(map[string]string, len(s.checkers)),
		CheckedAt:  time.Now().UTC(),
	}

	for name, checker := range s.checkers {
		if err := checker.Check(ctx); err != nil {
			status.Status = "degraded"
			status.Components[name] = err.Error()
			s.zl.Warn("Health check failed",
				logger.String("component", name),
				logger.Err(err))
			continue
		}
		status.Components[name] = "ok"
	}

	return status
}

// NewPostgresChecker probes the database connection
func NewPostgresChecker(client *database.PostgresClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.GetDB().PingContext(ctx)
	})
}

// NewRedisChecker probes the redis connection
func NewRedisChecker(client *database.RedisClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.GetClient().Ping(ctx).Err()
	})
}

// NewNATSChecker probes the NATS connection
func NewNATSChecker(conn *nats.Conn) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		if conn == nil || !conn.IsConnected() {
			return nats.ErrConnectionClosed
		}
		return nil
	})
}

// RegisterEndpoints registers /health and /health/ready
func RegisterEndpoints(e *echo.Echo, app, version string, s *Service) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "app": app})
	})
	e.GET("/health/ready", func(c echo.Context) error {
		status := s.Check(c.Request().Context(), app, version)
		code := http.StatusOK
		if status.Status != "ok" {
			code = http.StatusServiceUnavailable
		}
		return c.JSON(code, status)
	})
}
