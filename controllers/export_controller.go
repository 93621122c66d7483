package controllers

import (
	"bytes"
	"errors"
	"fmt"

	"port-app/exports"
	"port-app/models"
	"port-app/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ExportController struct {
	DB *gorm.DB
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{DB: db}
}

// Manifest streams the vessel's container list as an xlsx download.
func (c *ExportController) Manifest(ctx *fiber.Ctx) error {
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

	repo := repositories.NewContainerRepository(c.DB)
	containers, err := repo.GetByVessel(int64(vesselID))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var buf bytes.Buffer
	if err := exports.WriteManifestExcel(&buf, &vessel, containers); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="manifest_%s_%s.xlsx"`, vessel.Name, vessel.VoyageNo))
	return ctx.Send(buf.Bytes())
}

// TallyPDF streams one tally sub-report as a printable PDF.
func (c *ExportController) TallyPDF(ctx *fiber.Ctx) error {
	reportNo := ctx.Params("report_no")

	repo := repositories.NewTallyRepository(c.DB)
	report, err := repo.GetByReportNo(reportNo)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Report not found"})
	}

	var buf bytes.Buffer
	if err := exports.WriteTallyPDF(&buf, report); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Set("Content-Type", "application/pdf")
	ctx.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, reportNo))
	return ctx.Send(buf.Bytes())
}

// WorkOrdersPDF streams the work orders of one report as a PDF.
func (c *ExportController) WorkOrdersPDF(ctx *fiber.Ctx) error {
	reportNo := ctx.Params("report_no")

	repo := repositories.NewWorkOrderRepository(c.DB)
	orders, err := repo.GetByReportNo(reportNo)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if len(orders) == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No work orders for this report"})
	}

	var buf bytes.Buffer
	if err := exports.WriteWorkOrdersPDF(&buf, reportNo, orders); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Set("Content-Type", "application/pdf")
	ctx.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="workorders_%s.pdf"`, reportNo))
	return ctx.Send(buf.Bytes())
}
