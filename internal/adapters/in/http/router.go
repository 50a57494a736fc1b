package http

import (
	"net/http"
	"strconv"
	"time"

	"dronedelivery/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// RouterConfig tunes the middleware chain.
type RouterConfig struct {
	// RateLimit is the sustained number of requests per second allowed per client.
	// Zero disables rate limiting.
	RateLimit float64
	RateBurst int
}

// NewRouter builds the echo instance with middleware and every route registered.
func NewRouter(s *Server, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(PrometheusMiddleware())
	if cfg.RateLimit > 0 {
		e.Use(middleware.RateLimiterWithConfig(rateLimiterConfig(cfg)))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	RegisterRoutes(e, s)
	return e
}

// RegisterRoutes attaches the API routes of s to e.
func RegisterRoutes(e *echo.Echo, s *Server) {
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders/:id", s.GetOrder)
	e.POST("/orders/:id/complete", s.CompleteOrder)
	e.POST("/orders/:id/assign-drone", s.AssignDrone)
	e.GET("/customer/:customerId/orders", s.ListCustomerOrders)

	e.GET("/restaurant/:restaurantId/orders", s.ListRestaurantOrders)
	e.GET("/restaurant/:restaurantId/drones", s.ListAvailableDrones)
	e.POST("/restaurant/orders/:id/accept", s.AcceptOrder)
	e.POST("/restaurant/orders/:id/status", s.UpdateOrderStatus)
	e.POST("/restaurant/orders/:id/assign-drone", s.AssignDrone)

	e.POST("/payments/mock/:id", s.MockPayment)

	e.GET("/admin/drones", s.ListDrones)
	e.POST("/admin/drones", s.CreateDrone)
	e.GET("/admin/drones/:id", s.GetDrone)
	e.POST("/admin/drones/:id/status", s.SetDroneStatus)
	e.POST("/admin/assign-drone", s.AttachDrone)
	e.POST("/admin/restaurants", s.RegisterRestaurant)

	e.GET("/ws/orders/:id", s.TrackOrder)
}

func rateLimiterConfig(cfg RouterConfig) middleware.RateLimiterConfig {
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = int(cfg.RateLimit)
	}

	deny := func(c echo.Context, _ string, _ error) error {
		return c.JSON(http.StatusTooManyRequests, Error{
			Code:    http.StatusTooManyRequests,
			Message: "rate limit exceeded",
		})
	}

	return middleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/health" || c.Path() == "/metrics"
		},
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(cfg.RateLimit),
				Burst:     burst,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return deny(c, "", err)
		},
		DenyHandler: deny,
	}
}

// PrometheusMiddleware records the count and latency of every request by route.
func PrometheusMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			metrics.ObserveHTTPRequest(
				c.Request().Method,
				path,
				strconv.Itoa(c.Response().Status),
				time.Since(start).Seconds(),
			)
			return nil
		}
	}
}
