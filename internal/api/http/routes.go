package httpapi

import (
	"errors"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/weatherly-app/weatherly/internal/store"
	"github.com/weatherly-app/weatherly/internal/weather"
)

var validate = validator.New()

// Options tunes handler behavior.
type Options struct {
	// OfflineMode serves generated forecasts for catalog cities instead
	// of calling upstream. Demo/development only.
	OfflineMode bool
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service, prefs *store.Prefs, opts Options) {
	api := app.Group("/api")

	api.Get("/weather", func(c *fiber.Ctx) error {
		query := c.Query("q")

		if opts.OfflineMode {
			if city, ok := weather.FindCity(query); ok {
				return c.JSON(weather.GenerateForecast(city, time.Now()))
			}
		}

		vm, err := service.GetForecast(c.Context(), query)
		if err != nil {
			return toFiberError(err)
		}
		return c.JSON(vm)
	})

	api.Get("/search", func(c *fiber.Ctx) error {
		results, err := service.Search(c.Context(), c.Query("q"))
		if err != nil {
			return toFiberError(err)
		}
		return c.JSON(fiber.Map{"results": results})
	})

	api.Get("/mock", func(c *fiber.Ctx) error {
		query := c.Query("q")
		if query == "" {
			return fiber.NewError(fiber.StatusBadRequest, "missing query parameter")
		}
		city, ok := weather.FindCity(query)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "unknown city")
		}
		return c.JSON(weather.GenerateForecast(city, time.Now()))
	})

	api.Get("/cities", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"cities": weather.Cities})
	})

	api.Get("/recent", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"recent": prefs.RecentSearches()})
	})

	api.Post("/recent", func(c *fiber.Ctx) error {
		city, err := parseCityBody(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		updated, err := prefs.AddRecent(city)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to save recent searches")
		}
		return c.JSON(fiber.Map{"recent": updated})
	})

	api.Delete("/recent/:name", func(c *fiber.Ctx) error {
		name, err := url.PathUnescape(c.Params("name"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid city name")
		}
		updated, err := prefs.RemoveRecent(name)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to save recent searches")
		}
		return c.JSON(fiber.Map{"recent": updated})
	})

	api.Get("/favorites", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"favorites": prefs.Favorites()})
	})

	api.Post("/favorites/toggle", func(c *fiber.Ctx) error {
		city, err := parseCityBody(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		updated, err := prefs.ToggleFavorite(city)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to save favorites")
		}
		return c.JSON(fiber.Map{"favorites": updated})
	})

	api.Get("/last-city", func(c *fiber.Ctx) error {
		city, ok := prefs.LastCity()
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "no last city saved")
		}
		return c.JSON(city)
	})

	api.Put("/last-city", func(c *fiber.Ctx) error {
		city, err := parseCityBody(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := prefs.SaveLastCity(city); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to save last city")
		}
		return c.JSON(city)
	})
}

// parseCityBody binds and validates a city payload.
func parseCityBody(c *fiber.Ctx) (weather.City, error) {
	var city weather.City
	if err := c.BodyParser(&city); err != nil {
		return city, err
	}
	if err := validate.Struct(city); err != nil {
		return city, err
	}
	return city, nil
}

// toFiberError maps service-layer failures onto HTTP responses, keeping
// the status code the service decided on.
func toFiberError(err error) error {
	var werr *weather.Error
	if errors.As(err, &werr) {
		return fiber.NewError(werr.Status, werr.Message)
	}
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}
