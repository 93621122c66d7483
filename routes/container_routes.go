package routes

import (
	"port-app/config"
	"port-app/controllers"
	"port-app/middleware"
	"port-app/realtime"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupContainerRoutes(app *fiber.App, db *gorm.DB, hub *realtime.Hub) {
	containerController := controllers.NewContainerController(db, hub)

	api := app.Group(config.MAIN_ROUTES+"/containers", middleware.AuthMiddleware)
	api.Get("/vessel/:vessel_id", containerController.GetByVessel)
	api.Post("/import/:vessel_id", middleware.RequireRole("logistics"), containerController.ImportExcel)
	api.Put("/:id", middleware.RequireRole("logistics", "customs"), containerController.Update)
	api.Delete("/:id", middleware.RequireRole("logistics"), containerController.Delete)
}
