package controllers

import (
	"errors"
	"log"

	"port-app/models"
	"port-app/realtime"
	"port-app/repositories"
	"port-app/services/customs"
	"port-app/services/notify"
	"port-app/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CustomsController struct {
	DB  *gorm.DB
	Hub *realtime.Hub
}

func NewCustomsController(db *gorm.DB, hub *realtime.Hub) *CustomsController {
	return &CustomsController{DB: db, Hub: hub}
}

type CustomsGridInput struct {
	Entries []customs.Entry `json:"entries"`
	// The completeness pass is a confirmation step: the first call
	// returns the missing-field list, the retry with Confirmed saves
	// anyway.
	Confirmed bool `json:"confirmed"`
}

// Check runs the discrepancy validation and persists the grid. Findings
// never block the save; they decide the reported outcome and which
// containers get flagged ISSUE.
func (c *CustomsController) Check(ctx *fiber.Ctx) error {
	vesselID, err := ctx.ParamsInt("vessel_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vessel ID"})
	}

	var vessel models.Vessel
	if err := c.DB.First(&vessel, vesselID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vessel not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input CustomsGridInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if len(input.Entries) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Empty customs grid"})
	}

	if !input.Confirmed {
		if missing := customs.MissingFields(input.Entries); len(missing) > 0 {
			return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{
				"needs_confirmation": true,
				"missing":            missing,
			}})
		}
	}

	repo := repositories.NewContainerRepository(c.DB)
	recorded, err := repo.GetByVessel(int64(vesselID))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	outcome := customs.Check(input.Entries, recorded)

	if err := repo.SaveCustomsGrid(int64(vesselID), input.Entries, outcome.Flagged); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	utils.InsertLog(c.DB, models.ActivityLog{
		Actor: userNameFromCtx(ctx), Action: "customs_check", Entity: "containers",
	})
	c.Hub.Publish("containers")

	if outcome.HasMismatch {
		if err := notify.SendDiscrepancyAlert(vessel.Name, outcome); err != nil {
			log.Printf("Failed to send discrepancy alert for %s: %v", vessel.Name, err)
		}
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": outcome})
}

type BulkEditInput struct {
	Entries  []customs.Entry  `json:"entries"`
	Selected []int            `json:"selected"`
	Edit     customs.BulkEdit `json:"edit"`
}

// BulkEdit applies one field edit to the selected grid rows and returns
// the updated grid. Per-unit fields collapse the selection to the
// focused row.
func (c *CustomsController) BulkEdit(ctx *fiber.Ctx) error {
	var input BulkEditInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	touched := customs.ApplyBulkEdit(input.Entries, input.Selected, input.Edit)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{
		"entries": input.Entries,
		"touched": touched,
	}})
}
