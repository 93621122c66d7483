package controllers

import (
	"errors"

	"port-app/models"
	"port-app/realtime"
	"port-app/repositories"
	"port-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type VesselController struct {
	DB  *gorm.DB
	Hub *realtime.Hub
}

func NewVesselController(db *gorm.DB, hub *realtime.Hub) *VesselController {
	return &VesselController{DB: db, Hub: hub}
}

type VesselInput struct {
	Name     string `json:"name" validate:"required"`
	VoyageNo string `json:"voyage_no" validate:"required"`
	Eta      string `json:"eta"`
	Remarks  string `json:"remarks"`
}

func (c *VesselController) GetAll(ctx *fiber.Ctx) error {
	repo := repositories.NewVesselRepository(c.DB)
	vessels, err := repo.GetAll()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"vessels": vessels}})
}

func (c *VesselController) GetByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewVesselRepository(c.DB)
	vessel, err := repo.GetByID(int64(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vessel not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": vessel})
}

func (c *VesselController) Create(ctx *fiber.Ctx) error {
	var input VesselInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	vessel := models.Vessel{
		Name:      input.Name,
		VoyageNo:  input.VoyageNo,
		Eta:       input.Eta,
		Remarks:   input.Remarks,
		CreatedBy: userIDFromCtx(ctx),
	}

	repo := repositories.NewVesselRepository(c.DB)
	if err := repo.Create(&vessel); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	utils.InsertLog(c.DB, models.ActivityLog{
		Actor: userNameFromCtx(ctx), Action: "create", Entity: "vessels",
	})
	c.Hub.Publish("vessels")

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Vessel created successfully", "data": vessel})
}

func (c *VesselController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var vessel models.Vessel
	if err := ctx.BodyParser(&vessel); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	vessel.UpdatedBy = userIDFromCtx(ctx)

	if err := c.DB.Model(&models.Vessel{}).Where("id = ?", id).Updates(vessel).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Hub.Publish("vessels")

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Vessel updated successfully"})
}

type ExportPlanInput struct {
	PlanExportWeight float64 `json:"plan_export_weight" validate:"required"`
	PlanExportDate   string  `json:"plan_export_date" validate:"required"`
}

// PromoteExportPlan switches a vessel into export-plan state.
func (c *VesselController) PromoteExportPlan(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input ExportPlanInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewVesselRepository(c.DB)
	if err := repo.PromoteExportPlan(int64(id), input.PlanExportWeight, input.PlanExportDate); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Hub.Publish("vessels")

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Vessel promoted to export plan"})
}

func (c *VesselController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewVesselRepository(c.DB)
	if err := repo.Delete(int64(id)); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Hub.Publish("vessels")

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Vessel deleted successfully"})
}
