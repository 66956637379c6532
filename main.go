// @title SEC Platform API
// @version 1.0
// @description REST backend for the continuing-education platform: institutions, classes, resources, comments, users and file attachments.
// @host localhost:8000
// @BasePath /

package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/swagger"

	_ "sec-platform/docs"

	"sec-platform/bootstrap"
	"sec-platform/config"
	"sec-platform/database"
	"sec-platform/internal/middleware"
	"sec-platform/internal/routes"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	client, err := database.ConnectMongo(cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	defer database.Disconnect(client)

	db := client.Database(cfg.MongoDB)

	if err := bootstrap.EnsureUserIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	routes.SetupAuthRoutes(app, db, cfg.JWTSecret)

	app.Use(middleware.JWTUidOnly(cfg.JWTSecret))

	routes.SetupUserRoutes(app, db)
	routes.SetupInstitutionRoutes(app, db)
	routes.SetupResourceRoutes(app, db)

	log.Fatal(app.Listen(":" + cfg.Port))
}
