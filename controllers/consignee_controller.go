package controllers

import (
	"port-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ConsigneeController struct {
	DB *gorm.DB
}

func NewConsigneeController(db *gorm.DB) *ConsigneeController {
	return &ConsigneeController{DB: db}
}

type ConsigneeInput struct {
	Code    string `json:"code" validate:"required"`
	Name    string `json:"name" validate:"required"`
	TaxCode string `json:"tax_code"`
	Address string `json:"address"`
	Contact string `json:"contact"`
}

func (c *ConsigneeController) GetAll(ctx *fiber.Ctx) error {
	var consignees []models.Consignee
	if err := c.DB.Order("code").Find(&consignees).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"consignees": consignees}})
}

func (c *ConsigneeController) Create(ctx *fiber.Ctx) error {
	var input ConsigneeInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	consignee := models.Consignee{
		Code:      input.Code,
		Name:      input.Name,
		TaxCode:   input.TaxCode,
		Address:   input.Address,
		Contact:   input.Contact,
		CreatedBy: userIDFromCtx(ctx),
	}
	if err := c.DB.Create(&consignee).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Consignee created successfully", "data": consignee})
}

func (c *ConsigneeController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var consignee models.Consignee
	if err := ctx.BodyParser(&consignee); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	consignee.UpdatedBy = userIDFromCtx(ctx)

	if err := c.DB.Model(&models.Consignee{}).Where("id = ?", id).Updates(consignee).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Consignee updated successfully"})
}

func (c *ConsigneeController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := c.DB.Delete(&models.Consignee{}, id).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Consignee deleted successfully"})
}
