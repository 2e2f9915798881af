package middleware

import (
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/jwt"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/logger"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/pkg/models"
	"github.com/isikjon/taxi.wazir-fastapi-sub000/internal/utils"
)

const (
	// APIKeyHeader carries the service key for internal routes
	APIKeyHeader = "X-API-Key"
)

// Middleware bundles the route guards configured at startup
type Middleware struct {
	cfg *models.Config
}

// New creates the middleware bundle
func New(cfg *models.Config) *Middleware {
	return &Middleware{cfg: cfg}
}

// APIKeyHandler validates the API key for internal service-to-service routes
func (m *Middleware) APIKeyHandler() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}

			if m.cfg.APIKey.DispatchService == "" || !strings.EqualFold(apiKey, m.cfg.APIKey.DispatchService) {
				return utils.UnauthorizedResponse(c, "Invalid API key")
			}

			return next(c)
		}
	}
}

// JWTHandler validates dispatcher console tokens and requires the given role
func (m *Middleware) JWTHandler(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(auth, "Bearer ") {
				return utils.UnauthorizedResponse(c, "Bearer token is required")
			}

			claims, err := jwtpkg.ValidateToken(m.cfg.JWT, strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}
			if requiredRole != "" && claims.Role != requiredRole {
				return c.JSON(http.StatusForbidden, utils.ErrorResponse{
					Success: false,
					Message: "Insufficient role",
					Code:    http.StatusForbidden,
				})
			}

			c.Set("user_id", claims.UserID)
			c.Set("user_role", claims.Role)
			return next(c)
		}
	}
}

// RequestIDMiddleware assigns a request id when the client did not send one
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			return next(c)
		}
	}
}

// PanicRecoveryMiddleware converts panics into 500 responses with a stack log
func PanicRecoveryMiddleware(zl *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					zl.Error("Panic recovered in HTTP handler",
						logger.Any("panic", r),
						logger.String("path", c.Request().URL.Path),
						logger.String("stack", string(debug.Stack())))
					err = c.JSON(http.StatusInternalServerError, utils.ErrorResponse{
						Success: false,
						Message: "Internal server error",
						Code:    http.StatusInternalServerError,
					})
				}
			}()
			return next(c)
		}
	}
}
