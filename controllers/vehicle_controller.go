package controllers

import (
	"port-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type VehicleController struct {
	DB *gorm.DB
}

func NewVehicleController(db *gorm.DB) *VehicleController {
	return &VehicleController{DB: db}
}

type VehicleInput struct {
	PlateNo    string `json:"plate_no" validate:"required"`
	Category   string `json:"category" validate:"required,oneof=TRUCK FLATBED"`
	Driver     string `json:"driver"`
	IsExternal bool   `json:"is_external"`
}

func (c *VehicleController) GetAll(ctx *fiber.Ctx) error {
	var vehicles []models.TransportVehicle
	if err := c.DB.Order("plate_no").Find(&vehicles).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"vehicles": vehicles}})
}

func (c *VehicleController) Create(ctx *fiber.Ctx) error {
	var input VehicleInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	vehicle := models.TransportVehicle{
		PlateNo:    input.PlateNo,
		Category:   input.Category,
		Driver:     input.Driver,
		IsExternal: input.IsExternal,
		CreatedBy:  userIDFromCtx(ctx),
	}
	if err := c.DB.Create(&vehicle).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Vehicle created successfully", "data": vehicle})
}

func (c *VehicleController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var vehicle models.TransportVehicle
	if err := ctx.BodyParser(&vehicle); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	vehicle.UpdatedBy = userIDFromCtx(ctx)

	if err := c.DB.Model(&models.TransportVehicle{}).Where("id = ?", id).Updates(vehicle).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Vehicle updated successfully"})
}

func (c *VehicleController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := c.DB.Delete(&models.TransportVehicle{}, id).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Vehicle deleted successfully"})
}
