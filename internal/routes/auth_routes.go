package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"sec-platform/internal/controllers"
	"sec-platform/internal/repository"
)

func SetupAuthRoutes(app *fiber.App, db *mongo.Database, jwtSecret string) {
	h := &controllers.AuthHandler{
		Repo:      repository.NewUserRepository(db),
		JWTSecret: jwtSecret,
	}

	auth := app.Group("/api/v1/auth")

	auth.Post("/sign-up", h.SignUp)
	auth.Post("/sign-in", h.SignIn)
}
