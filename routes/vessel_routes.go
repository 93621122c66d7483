package routes

import (
	"port-app/config"
	"port-app/controllers"
	"port-app/middleware"
	"port-app/realtime"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupVesselRoutes(app *fiber.App, db *gorm.DB, hub *realtime.Hub) {
	vesselController := controllers.NewVesselController(db, hub)

	api := app.Group(config.MAIN_ROUTES+"/vessels", middleware.AuthMiddleware)
	api.Get("/", vesselController.GetAll)
	api.Get("/:id", vesselController.GetByID)
	api.Post("/", middleware.RequireRole("logistics"), vesselController.Create)
	api.Put("/:id", middleware.RequireRole("logistics"), vesselController.Update)
	api.Post("/:id/export-plan", middleware.RequireRole("logistics"), vesselController.PromoteExportPlan)
	api.Delete("/:id", middleware.RequireRole("logistics"), vesselController.Delete)
}
