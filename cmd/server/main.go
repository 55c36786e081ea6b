package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/schedbench/schedgen/internal/generator"
)

// generateRequest mirrors the CLI surface: instance sizes plus the seed.
type generateRequest struct {
	Courses     int   `json:"courses"`
	Instructors int   `json:"instructors"`
	Rooms       int   `json:"rooms"`
	Students    int   `json:"students"`
	Weeks       int   `json:"weeks"`
	Seed        int64 `json:"seed"`
}

func main() {
	// Missing .env is fine; the port then falls back to the default.
	_ = godotenv.Load()

	app := fiber.New(fiber.Config{AppName: "schedgen"})
	app.Use(logger.New())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/api/scenarios", func(c *fiber.Ctx) error {
		return c.JSON(generator.PresetScenarios())
	})

	app.Post("/api/generate", handleGenerate)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Fatal(app.Listen(":" + port))
}

func handleGenerate(c *fiber.Ctx) error {
	request := generateRequest{
		Courses:     50,
		Instructors: 30,
		Rooms:       20,
		Students:    1000,
		Weeks:       14,
		Seed:        42,
	}
	if err := c.BodyParser(&request); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	instance, warnings, err := generator.New(request.Seed).Generate(generator.Params{
		Courses:     request.Courses,
		Instructors: request.Instructors,
		Rooms:       request.Rooms,
		Students:    request.Students,
		Weeks:       request.Weeks,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"instance": instance,
		"warnings": warnings,
	})
}
