package routes

import (
	"port-app/config"
	"port-app/controllers"
	"port-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	userController := controllers.NewUserController(db)

	api := app.Group(config.MAIN_ROUTES+"/users", middleware.AuthMiddleware, middleware.RequireRole("admin"))
	api.Get("/", userController.GetAll)
	api.Post("/", userController.Create)
	api.Put("/:id", userController.Update)
	api.Delete("/:id", userController.Delete)
}
