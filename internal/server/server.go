package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	eventsHttp "analytics-service/internal/events/adapters/http/fiber"
	metricsHttp "analytics-service/internal/metrics/adapters/http/fiber"
	reportsHttp "analytics-service/internal/reports/adapters/http/fiber"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

const (
	ServiceName = "analytics-service"
	Version     = "1.0.0"
)

// Deps holds everything the router needs.
type Deps struct {
	AllowOrigins []string
	Logger       *log.Logger

	Events  *eventsHttp.EventHandler
	Metrics *metricsHttp.MetricsHandler
	Reports *reportsHttp.ReportHandler
	Status  *StatusHandler
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// New builds the Fiber app with middleware and every route.
func New(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      ServiceName,
		ErrorHandler: errorHandler(d.Logger),
	})

	useMiddleware(app, d)

	app.Get("/health", d.Status.Health)

	api := app.Group("/api")
	api.Get("/test", d.Status.Test)

	api.Post("/events", d.Events.CreateEvent)
	api.Post("/events/bulk", d.Events.BulkCreateEvents)
	api.Get("/events", d.Events.ListEvents)

	api.Get("/metrics", d.Metrics.GetMetrics)
	api.Get("/metrics/:name", d.Metrics.GetMetric)
	api.Get("/dashboard", d.Metrics.GetDashboard)

	api.Post("/reports/generate", d.Reports.GenerateReport)

	app.Get("/docs/*", fiberSwagger.WrapHandler)

	return app
}

// useMiddleware registers the request logger outside the panic recovery so a
// recovered panic is still logged with status 500.
func useMiddleware(app *fiber.App, d Deps) {
	app.Use(requestLogger(d.Logger))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(d.AllowOrigins, ","),
		AllowCredentials: true,
	}))
}

func errorHandler(logger *log.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := http.StatusInternalServerError
		code := "internal_server_error"
		message := "Internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
			message = fe.Message
			switch status {
			case http.StatusNotFound:
				code = "not_found"
			case http.StatusMethodNotAllowed:
				code = "method_not_allowed"
			default:
				if status < http.StatusInternalServerError {
					code = "bad_request"
				}
			}
		}

		if status >= http.StatusInternalServerError {
			logger.WithError(err).WithField("path", c.Path()).Error("http.unhandled_error")
			message = "Internal server error"
		}

		return c.Status(status).JSON(errorResponse{
			Success: false,
			Error:   code,
			Message: message,
		})
	}
}

func requestLogger(logger *log.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		} else if err != nil {
			status = http.StatusInternalServerError
		}

		fields := log.Fields{
			"method":      c.Method(),
			"path":        c.Path(),
			"status":      status,
			"duration_ms": float64(time.Since(start)) / float64(time.Millisecond),
		}
		if route := c.Route(); route != nil {
			fields["route"] = route.Path
		}

		logger.WithFields(fields).Info("http.request")
		return err
	}
}
