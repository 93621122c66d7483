package routes

import (
	"port-app/config"
	"port-app/controllers"
	"port-app/middleware"
	"port-app/realtime"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupTallyRoutes(app *fiber.App, db *gorm.DB, hub *realtime.Hub) {
	// One controller instance: the save guard lives on it.
	tallyController := controllers.NewTallyController(db, hub)

	api := app.Group(config.MAIN_ROUTES+"/tally", middleware.AuthMiddleware)
	api.Post("/save", middleware.RequireRole("inspector"), tallyController.Save)
	api.Get("/vessel/:vessel_id", tallyController.GetByVessel)
	api.Get("/report/:report_no", tallyController.GetByReportNo)
}
