package controllers

import (
	"errors"

	"port-app/models"
	"port-app/realtime"
	"port-app/repositories"
	"port-app/services/importer"
	"port-app/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ContainerController struct {
	DB  *gorm.DB
	Hub *realtime.Hub
}

func NewContainerController(db *gorm.DB, hub *realtime.Hub) *ContainerController {
	return &ContainerController{DB: db, Hub: hub}
}

func (c *ContainerController) GetByVessel(ctx *fiber.Ctx) error {
	vesselID, err := ctx.ParamsInt("vessel_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vessel ID"})
	}

	repo := repositories.NewContainerRepository(c.DB)
	containers, err := repo.GetByVessel(int64(vesselID))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"containers": containers}})
}

// ImportExcel uploads a manifest sheet and reconciles it into the
// vessel's container set. Re-imported container numbers update the
// existing rows; vessel totals are recomputed and persisted with the
// batch.
func (c *ContainerController) ImportExcel(ctx *fiber.Ctx) error {
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

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing file upload"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	defer file.Close()

	xl, err := excelize.OpenReader(file)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot read Excel file"})
	}
	defer xl.Close()

	sheets := xl.GetSheetList()
	if len(sheets) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Excel file has no sheets"})
	}
	grid, err := xl.GetRows(sheets[0])
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewContainerRepository(c.DB)
	existing, err := repo.GetByVessel(int64(vesselID))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := importer.Reconcile(grid, existing, int64(vesselID))
	if err != nil {
		if errors.Is(err, importer.ErrNoData) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No valid data rows found in sheet"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := repo.SaveImportBatch(int64(vesselID), result.Containers, result.TotalPkgs, result.TotalWeight); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	utils.InsertLog(c.DB, models.ActivityLog{
		Actor: userNameFromCtx(ctx), Action: "import", Entity: "containers",
		Detail: fileHeader.Filename,
	})
	c.Hub.Publish("containers")
	c.Hub.Publish("vessels")

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{
		"inserted":     result.Inserted,
		"updated":      result.Updated,
		"total_pkgs":   result.TotalPkgs,
		"total_weight": result.TotalWeight,
	}})
}

func (c *ContainerController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var container models.Container
	if err := ctx.BodyParser(&container); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	container.UpdatedBy = userIDFromCtx(ctx)

	if err := c.DB.Model(&models.Container{}).Where("id = ?", id).Updates(container).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Hub.Publish("containers")

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Container updated successfully"})
}

func (c *ContainerController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewContainerRepository(c.DB)
	if err := repo.Delete(int64(id)); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Hub.Publish("containers")

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Container deleted successfully"})
}
