package controllers

import (
	"sync/atomic"

	"port-app/models"
	"port-app/realtime"
	"port-app/repositories"
	"port-app/services/tally"
	"port-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TallyController struct {
	DB  *gorm.DB
	Hub *realtime.Hub

	// At most one save in flight; a second attempt is dropped, not
	// queued.
	saving atomic.Bool
}

func NewTallyController(db *gorm.DB, hub *realtime.Hub) *TallyController {
	return &TallyController{DB: db, Hub: hub}
}

type TallySaveInput struct {
	VesselID        int64                     `json:"vessel_id" validate:"required"`
	Mode            string                    `json:"mode" validate:"required,oneof=NHAP XUAT"`
	WorkDate        string                    `json:"work_date" validate:"required"`
	Shift           string                    `json:"shift"`
	IsDraft         bool                      `json:"is_draft"`
	HandlingMethod  string                    `json:"handling_method"`
	VehicleCategory string                    `json:"vehicle_category"`
	LaborCount      int                       `json:"labor_count"`
	MechanicalCount int                       `json:"mechanical_count"`
	Remarks         string                    `json:"remarks"`
	Items           []models.TallyItem        `json:"items" validate:"required,min=1"`
	Mechanical      []models.MechanicalDetail `json:"mechanical_details"`
	// Edit-and-resave: report numbers this save replaces.
	ReplaceReportNos []string `json:"replace_report_nos"`
}

// Save splits the submitted tally into sub-reports and, for final saves,
// runs the full pipeline (seals, container sync, work orders). The
// response carries the per-stage results.
func (c *TallyController) Save(ctx *fiber.Ctx) error {
	if !c.saving.CompareAndSwap(false, true) {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A tally save is already in progress"})
	}
	defer c.saving.Store(false)

	var input TallySaveInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var vessel models.Vessel
	if err := c.DB.First(&vessel, input.VesselID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vessel not found"})
	}

	report := models.TallyReport{
		Mode:              input.Mode,
		VesselID:          input.VesselID,
		Vessel:            vessel.Name,
		IsDraft:           input.IsDraft,
		WorkDate:          input.WorkDate,
		Shift:             input.Shift,
		InspectorName:     userNameFromCtx(ctx),
		HandlingMethod:    input.HandlingMethod,
		VehicleCategory:   input.VehicleCategory,
		LaborCount:        input.LaborCount,
		MechanicalCount:   input.MechanicalCount,
		Remarks:           input.Remarks,
		Items:             input.Items,
		MechanicalDetails: input.Mechanical,
	}

	finalizer := tally.NewFinalizer(repositories.NewTallyRepository(c.DB))
	result := finalizer.Run(tally.SaveRequest{
		Report:           report,
		KnownFlatbeds:    c.knownFlatbeds(),
		ReplaceReportNos: input.ReplaceReportNos,
	})

	c.Hub.Publish("tally_reports")
	if !input.IsDraft {
		c.Hub.Publish("work_orders")
		c.Hub.Publish("containers")
		if input.Mode == models.ModeExport {
			c.Hub.Publish("export_seals")
		}
	}

	utils.InsertLog(c.DB, models.ActivityLog{
		Actor: userNameFromCtx(ctx), Action: "tally_save", Entity: "tally_reports",
	})

	if !result.Completed {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Tally save did not complete", "data": result,
		})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": result})
}

func (c *TallyController) GetByVessel(ctx *fiber.Ctx) error {
	vesselID, err := ctx.ParamsInt("vessel_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vessel ID"})
	}

	repo := repositories.NewTallyRepository(c.DB)
	reports, err := repo.GetByVessel(int64(vesselID))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"reports": reports}})
}

func (c *TallyController) GetByReportNo(ctx *fiber.Ctx) error {
	reportNo := ctx.Params("report_no")

	repo := repositories.NewTallyRepository(c.DB)
	report, err := repo.GetByReportNo(reportNo)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Report not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": report})
}

// knownFlatbeds lists registered flatbed plate numbers so tally items
// naming them split into the flatbed bucket even without a slash.
func (c *TallyController) knownFlatbeds() map[string]bool {
	var plates []string
	c.DB.Model(&models.TransportVehicle{}).
		Where("category = ?", "FLATBED").
		Pluck("plate_no", &plates)

	flatbeds := make(map[string]bool, len(plates))
	for _, p := range plates {
		flatbeds[p] = true
	}
	return flatbeds
}
