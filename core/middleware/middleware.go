package middleware

import (
	"context"
	"time"

	"court-reservation-api/core/constants"
	"court-reservation-api/core/controller"
	"court-reservation-api/core/errors"
	"court-reservation-api/core/logger"
	"court-reservation-api/core/metrics"
	"court-reservation-api/core/utils"

	"github.com/labstack/echo/v4"
)

// TokenValidator checks a bearer token, including the logout blacklist.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*utils.TokenClaims, *errors.AppError)
}

type Middleware struct {
	validator TokenValidator
	metrics   metrics.Metrics
}

func NewMiddleware(validator TokenValidator, m metrics.Metrics) *Middleware {
	if m == nil {
		m = metrics.Nop{}
	}
	return &Middleware{validator: validator, metrics: m}
}

func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := utils.GetTokenFromHeader(c)
			if err != nil {
				code := errors.ErrInvalidTokenFormat
				if err == utils.ErrMissingToken {
					code = errors.ErrMissingAuthorizationHeader
				}
				return controller.NewErrorResponse(401, code, err.Error())
			}

			claims, appErr := m.validator.ValidateToken(c.Request().Context(), token)
			if appErr != nil {
				return controller.NewErrorResponse(controller.StatusFor(appErr.Code), appErr.Code, appErr.Message)
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}

// RequireRole must run after AuthMiddleware.
func (m *Middleware) RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := utils.GetTokenData(c)
			if claims == nil {
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "unauthorized")
			}
			for _, r := range roles {
				if claims.Role == r {
					return next(c)
				}
			}
			return controller.NewErrorResponse(403, errors.ErrForbidden, "insufficient role")
		}
	}
}

// RequestLogger logs each request and records its latency.
func (m *Middleware) RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			elapsed := time.Since(start)
			m.metrics.ObserveRequest(req.Method, c.Path(), res.Status, elapsed.Seconds())

			logger.Info("HTTP:Request",
				"request_id", res.Header().Get(echo.HeaderXRequestID),
				"method", req.Method,
				"path", req.URL.Path,
				"status", res.Status,
				"latency_ms", elapsed.Milliseconds(),
			)
			return nil
		}
	}
}
