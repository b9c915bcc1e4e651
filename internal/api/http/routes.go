package httpapi

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/eventclima/eventclima/internal/climate"
	"github.com/eventclima/eventclima/internal/metrics"
)

var validate = validator.New()

// Fixed user-facing messages; internal error detail is never leaked.
const (
	msgNoData      = "No hay datos históricos."
	msgServerError = "Ocurrió un error en el servidor."
)

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *climate.Service) {
	app.Post("/api/historical_averages", func(c *fiber.Ctx) error {
		var req averagesRequest
		if err := c.BodyParser(&req); err != nil {
			metrics.QueriesTotal.WithLabelValues("invalid").Inc()
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		if err := validate.Struct(req); err != nil {
			metrics.QueriesTotal.WithLabelValues("invalid").Inc()
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			metrics.QueriesTotal.WithLabelValues("invalid").Inc()
			return fiber.NewError(fiber.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
		}

		result, err := service.HistoricalOutlook(c.Context(), climate.Query{
			Lat:          *req.Lat,
			Lon:          *req.Lon,
			Date:         date,
			Title:        req.Title,
			LocationName: req.LocationName,
		})
		if err != nil {
			if errors.Is(err, climate.ErrNoHistoricalData) {
				metrics.QueriesTotal.WithLabelValues("not_found").Inc()
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": msgNoData,
				})
			}
			log.Printf("httpapi: historical averages query failed: %v", err)
			metrics.QueriesTotal.WithLabelValues("error").Inc()
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": msgServerError,
			})
		}

		metrics.QueriesTotal.WithLabelValues("ok").Inc()
		return c.JSON(result)
	})

	app.Get("/api/history", func(c *fiber.Ctx) error {
		return c.JSON(service.History())
	})
}

// averagesRequest holds the body of a historical-outlook query. Coordinates
// are pointers so that 0 (equator / prime meridian) passes the required rule.
type averagesRequest struct {
	Lat          *float64 `json:"lat" validate:"required,latitude"`
	Lon          *float64 `json:"lon" validate:"required,longitude"`
	Date         string   `json:"date" validate:"required"`
	Title        string   `json:"title"`
	LocationName string   `json:"locationName"`
}
