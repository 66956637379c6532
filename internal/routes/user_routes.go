package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"sec-platform/internal/controllers"
	"sec-platform/internal/repository"
)

func SetupUserRoutes(app *fiber.App, db *mongo.Database) {
	h := &controllers.UserHandler{Repo: repository.NewUserRepository(db)}

	users := app.Group("/api/v1/users")

	users.Post("/", h.Create)
	users.Get("/", h.List)
	users.Get("/:id", h.Get)
	users.Put("/:id", h.Update)
	users.Delete("/:id", h.Delete)
}
