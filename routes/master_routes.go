package routes

import (
	"port-app/config"
	"port-app/controllers"
	"port-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupVehicleRoutes(app *fiber.App, db *gorm.DB) {
	vehicleController := controllers.NewVehicleController(db)

	api := app.Group(config.MAIN_ROUTES+"/vehicles", middleware.AuthMiddleware)
	api.Get("/", vehicleController.GetAll)
	api.Post("/", middleware.RequireRole("dispatch", "logistics"), vehicleController.Create)
	api.Put("/:id", middleware.RequireRole("dispatch", "logistics"), vehicleController.Update)
	api.Delete("/:id", middleware.RequireRole("dispatch", "logistics"), vehicleController.Delete)
}

func SetupPriceRoutes(app *fiber.App, db *gorm.DB) {
	priceController := controllers.NewPriceController(db)

	api := app.Group(config.MAIN_ROUTES+"/prices", middleware.AuthMiddleware)
	api.Get("/", priceController.GetAll)
	api.Post("/", middleware.RequireRole("logistics"), priceController.Create)
	api.Put("/:id", middleware.RequireRole("logistics"), priceController.Update)
	api.Delete("/:id", middleware.RequireRole("logistics"), priceController.Delete)
}

func SetupConsigneeRoutes(app *fiber.App, db *gorm.DB) {
	consigneeController := controllers.NewConsigneeController(db)

	api := app.Group(config.MAIN_ROUTES+"/consignees", middleware.AuthMiddleware)
	api.Get("/", consigneeController.GetAll)
	api.Post("/", middleware.RequireRole("logistics"), consigneeController.Create)
	api.Put("/:id", middleware.RequireRole("logistics"), consigneeController.Update)
	api.Delete("/:id", middleware.RequireRole("logistics"), consigneeController.Delete)
}

func SetupMemberRoutes(app *fiber.App, db *gorm.DB) {
	memberController := controllers.NewMemberController(db)

	api := app.Group(config.MAIN_ROUTES+"/members", middleware.AuthMiddleware)
	api.Get("/", memberController.GetAll)
	api.Post("/", middleware.RequireRole("dispatch"), memberController.Create)
	api.Put("/:id", middleware.RequireRole("dispatch"), memberController.Update)
	api.Delete("/:id", middleware.RequireRole("dispatch"), memberController.Delete)
}
