package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"sec-platform/internal/controllers"
	"sec-platform/internal/repository"
)

func SetupResourceRoutes(app *fiber.App, db *mongo.Database) {
	resourceRepo := repository.NewResourceRepository(db)
	resourceHandler := &controllers.ResourceHandler{Repo: resourceRepo}
	commentHandler := &controllers.CommentHandler{Repo: repository.NewCommentRepository(db)}
	fileHandler := &controllers.FileHandler{
		Resources: resourceRepo,
		Files:     repository.NewFileRepository(db),
	}

	classes := app.Group("/api/v1/institutions/:institutionId/classes/:classId")

	classes.Post("/resources", resourceHandler.Create)
	classes.Get("/resources", resourceHandler.List)
	classes.Get("/resources/:resourceId", resourceHandler.Get)
	classes.Put("/resources/:resourceId", resourceHandler.Update)
	classes.Delete("/resources/:resourceId", resourceHandler.Delete)

	classes.Post("/resources/:resourceId/files", fileHandler.Upload)
	classes.Get("/resources/:resourceId/files", fileHandler.List)
	classes.Get("/resources/:resourceId/files/:fileId", fileHandler.Download)

	classes.Post("/resources/:resourceId/comments", commentHandler.Create)
	classes.Get("/resources/:resourceId/comments", commentHandler.List)
	classes.Get("/resources/:resourceId/comments/:commentId", commentHandler.Get)
	classes.Put("/resources/:resourceId/comments/:commentId", commentHandler.Update)
	classes.Delete("/resources/:resourceId/comments/:commentId", commentHandler.Delete)
}
