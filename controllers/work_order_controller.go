package controllers

import (
	"port-app/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type WorkOrderController struct {
	DB *gorm.DB
}

func NewWorkOrderController(db *gorm.DB) *WorkOrderController {
	return &WorkOrderController{DB: db}
}

func (c *WorkOrderController) GetAll(ctx *fiber.Ctx) error {
	repo := repositories.NewWorkOrderRepository(c.DB)
	orders, err := repo.GetAll()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"work_orders": orders}})
}

func (c *WorkOrderController) GetByReportNo(ctx *fiber.Ctx) error {
	repo := repositories.NewWorkOrderRepository(c.DB)
	orders, err := repo.GetByReportNo(ctx.Params("report_no"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"work_orders": orders}})
}

func (c *WorkOrderController) GetByVessel(ctx *fiber.Ctx) error {
	vesselID, err := ctx.ParamsInt("vessel_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vessel ID"})
	}
	repo := repositories.NewWorkOrderRepository(c.DB)
	orders, err := repo.GetByVessel(int64(vesselID))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"work_orders": orders}})
}
