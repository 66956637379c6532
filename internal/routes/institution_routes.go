package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"sec-platform/internal/controllers"
	"sec-platform/internal/repository"
)

func SetupInstitutionRoutes(app *fiber.App, db *mongo.Database) {
	instHandler := &controllers.InstitutionHandler{Repo: repository.NewInstitutionRepository(db)}
	classHandler := &controllers.ClassHandler{Repo: repository.NewClassRepository(db)}

	institutions := app.Group("/api/v1/institutions")

	institutions.Post("/", instHandler.Create)
	institutions.Get("/", instHandler.List)
	institutions.Get("/:institutionId", instHandler.Get)
	institutions.Put("/:institutionId", instHandler.Update)
	institutions.Delete("/:institutionId", instHandler.Delete)

	institutions.Post("/:institutionId/classes", classHandler.Create)
	institutions.Get("/:institutionId/classes", classHandler.List)
	institutions.Get("/:institutionId/classes/:classId", classHandler.Get)
	institutions.Put("/:institutionId/classes/:classId", classHandler.Update)
	institutions.Delete("/:institutionId/classes/:classId", classHandler.Delete)
}
