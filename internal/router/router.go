package router

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"itda/internal/auth"
	apperrors "itda/internal/errors"
	"itda/internal/handler"
	"itda/internal/metrics"
	"itda/internal/validation"
)

// Deps bundles what Register needs to build the route table.
type Deps struct {
	Logger         *slog.Logger
	Verifier       *auth.JWTService
	Metrics        *metrics.Metrics
	AuthHandler    *handler.AuthHandler
	ListingHandler *handler.ListingHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, deps Deps) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e.HTTPErrorHandler = errorHandler(e)
	e.Validator = &CustomValidator{}

	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("10M"))
	if deps.Metrics != nil {
		e.Use(deps.Metrics.Middleware())
		e.GET("/metrics", deps.Metrics.Handler())
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	api.GET("/health", handler.Health)

	// Public routes
	api.POST("/auth/register", deps.AuthHandler.Register)
	api.POST("/auth/login", deps.AuthHandler.Login)
	api.GET("/properties", deps.ListingHandler.Search)

	// Secured routes (require JWT authentication)
	secured := api.Group("", auth.Middleware(deps.Verifier))
	secured.GET("/auth/me", deps.AuthHandler.Me)
	secured.PUT("/auth/verify-broker", deps.AuthHandler.VerifyBroker)
	secured.GET("/properties/my/listings", deps.ListingHandler.ListMine)
	secured.POST("/properties", deps.ListingHandler.Create)
	secured.PUT("/properties/:id", deps.ListingHandler.Update)
	secured.DELETE("/properties/:id", deps.ListingHandler.Delete)

	api.GET("/properties/:id", deps.ListingHandler.Get)
}

// requestLogger emits one structured line per request.
func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				if v.Status >= http.StatusInternalServerError {
					level = slog.LevelError
				}
			}
			logger.LogAttrs(context.Background(), level, "request", attrs...)
			return nil
		},
	})
}

// errorHandler gives echo's own errors (unknown route, bad method, body too
// large) the same {message, code} shape as domain errors.
func errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if he, ok := err.(*echo.HTTPError); ok {
			if msg, ok := he.Message.(string); ok {
				err = &echo.HTTPError{
					Code: he.Code,
					Message: apperrors.ErrorResponse{
						Message: msg,
						Code:    statusCode(he.Code),
					},
					Internal: he.Internal,
				}
			}
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}

func statusCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case http.StatusTooManyRequests:
		return "TOO_MANY_REQUESTS"
	default:
		if status >= http.StatusInternalServerError {
			return "INTERNAL_ERROR"
		}
		return "ERROR"
	}
}

// CustomValidator wraps validator for Echo and reports every invalid field.
type CustomValidator struct{}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return validation.Struct(i)
}
