package routes

import (
	"port-app/config"
	"port-app/controllers"
	"port-app/middleware"
	"port-app/realtime"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCustomsRoutes(app *fiber.App, db *gorm.DB, hub *realtime.Hub) {
	customsController := controllers.NewCustomsController(db, hub)

	api := app.Group(config.MAIN_ROUTES+"/customs", middleware.AuthMiddleware, middleware.RequireRole("customs", "logistics"))
	api.Post("/check/:vessel_id", customsController.Check)
	api.Post("/bulk-edit", customsController.BulkEdit)
}
