package controllers

import (
	"port-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PriceController struct {
	DB *gorm.DB
}

func NewPriceController(db *gorm.DB) *PriceController {
	return &PriceController{DB: db}
}

type PriceInput struct {
	Code      string  `json:"code" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Unit      string  `json:"unit" validate:"required"`
	Price     float64 `json:"price" validate:"required"`
	DebitCode string  `json:"debit_code"`
	DebitName string  `json:"debit_name"`
}

func (c *PriceController) GetAll(ctx *fiber.Ctx) error {
	var prices []models.ServicePrice
	if err := c.DB.Order("code").Find(&prices).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"prices": prices}})
}

func (c *PriceController) Create(ctx *fiber.Ctx) error {
	var input PriceInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	price := models.ServicePrice{
		Code:      input.Code,
		Name:      input.Name,
		Unit:      input.Unit,
		Price:     input.Price,
		DebitCode: input.DebitCode,
		DebitName: input.DebitName,
		CreatedBy: userIDFromCtx(ctx),
	}
	if err := c.DB.Create(&price).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Service price created successfully", "data": price})
}

func (c *PriceController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var price models.ServicePrice
	if err := ctx.BodyParser(&price); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	price.UpdatedBy = userIDFromCtx(ctx)

	if err := c.DB.Model(&models.ServicePrice{}).Where("id = ?", id).Updates(price).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Service price updated successfully"})
}

func (c *PriceController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := c.DB.Delete(&models.ServicePrice{}, id).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Service price deleted successfully"})
}
