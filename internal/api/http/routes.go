package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/laveehere/wanderbot/internal/travel"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *travel.Service) {
	v1 := app.Group("/api/v1")

	v1.Post("/chat", func(c *fiber.Ctx) error {
		var req chatRequest
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		reply := service.HandleMessage(c.UserContext(), req.SessionID, req.Message)
		return c.JSON(reply)
	})

	v1.Get("/weather", func(c *fiber.Ctx) error {
		city, err := parseCityQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		snapshot := service.Weather(c.UserContext(), city)
		return c.JSON(snapshot)
	})

	v1.Get("/places", func(c *fiber.Ctx) error {
		var req placesQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		places, live := service.Places(c.UserContext(), req.City, travel.Category(req.Category))
		return c.JSON(fiber.Map{
			"city":     req.City,
			"category": req.Category,
			"live":     live,
			"places":   places,
		})
	})

	v1.Get("/news", func(c *fiber.Ctx) error {
		city, err := parseCityQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		articles, live := service.News(c.UserContext(), city)
		return c.JSON(fiber.Map{
			"city":     city,
			"live":     live,
			"articles": articles,
		})
	})

	v1.Get("/stats", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"cities":    service.Cities(),
			"liveCalls": service.Stats(),
		})
	})
}

// chatRequest is the body of POST /chat. SessionID is optional; a new
// session is created when it is absent.
type chatRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message" validate:"required,min=1,max=500"`
}

func (r *chatRequest) bind(c *fiber.Ctx) error {
	if err := c.BodyParser(r); err != nil {
		return errors.New("invalid request body")
	}
	return validate.Struct(r)
}

// cityQuery holds the city query parameter shared by the GET endpoints.
type cityQuery struct {
	City string `validate:"required"`
}

func parseCityQuery(c *fiber.Ctx) (string, error) {
	q := cityQuery{City: c.Query("city")}
	if err := validate.Struct(q); err != nil {
		return "", err
	}
	return q.City, nil
}

// placesQuery holds query parameters for the places endpoint.
type placesQuery struct {
	City     string `validate:"required"`
	Category string `validate:"required,oneof=food culture shopping places local"`
}

func (p *placesQuery) bind(c *fiber.Ctx) error {
	p.City = c.Query("city")
	p.Category = c.Query("category", string(travel.CategoryPlaces))
	return validate.Struct(p)
}
