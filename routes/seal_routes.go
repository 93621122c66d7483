package routes

import (
	"port-app/config"
	"port-app/controllers"
	"port-app/middleware"
	"port-app/realtime"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSealRoutes(app *fiber.App, db *gorm.DB, hub *realtime.Hub) {
	sealController := controllers.NewSealController(db, hub)

	api := app.Group(config.MAIN_ROUTES+"/seals", middleware.AuthMiddleware)
	api.Get("/vessel/:vessel_id", sealController.GetByVessel)
	api.Post("/", middleware.RequireRole("logistics"), sealController.CreateBatch)
	api.Delete("/:id", middleware.RequireRole("logistics"), sealController.Delete)
}
