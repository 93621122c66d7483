package controllers

import (
	"port-app/realtime"
	"port-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SealController struct {
	DB  *gorm.DB
	Hub *realtime.Hub
}

func NewSealController(db *gorm.DB, hub *realtime.Hub) *SealController {
	return &SealController{DB: db, Hub: hub}
}

func (c *SealController) GetByVessel(ctx *fiber.Ctx) error {
	vesselID, err := ctx.ParamsInt("vessel_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vessel ID"})
	}

	repo := repositories.NewSealRepository(c.DB)
	seals, err := repo.GetByVessel(int64(vesselID))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"seals": seals}})
}

type SealBatchInput struct {
	VesselID int64    `json:"vessel_id" validate:"required"`
	Serials  []string `json:"serials" validate:"required,min=1"`
}

func (c *SealController) CreateBatch(ctx *fiber.Ctx) error {
	var input SealBatchInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewSealRepository(c.DB)
	created, err := repo.CreateBatch(input.VesselID, input.Serials)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Hub.Publish("export_seals")

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"created": created}})
}

func (c *SealController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewSealRepository(c.DB)
	if err := repo.Delete(int64(id)); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Hub.Publish("export_seals")

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Seal deleted successfully"})
}
