package controllers

import (
	"port-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MemberController struct {
	DB *gorm.DB
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db}
}

type MemberInput struct {
	Name     string `json:"name" validate:"required"`
	Team     string `json:"team"`
	Role     string `json:"role" validate:"required,oneof=LABOR MECHANICAL DRIVER"`
	Phone    string `json:"phone"`
	IsActive *bool  `json:"is_active"`
}

func (c *MemberController) GetAll(ctx *fiber.Ctx) error {
	var members []models.ResourceMember
	query := c.DB.Order("team, name")
	if ctx.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&members).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"members": members}})
}

func (c *MemberController) Create(ctx *fiber.Ctx) error {
	var input MemberInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	member := models.ResourceMember{
		Name:      input.Name,
		Team:      input.Team,
		Role:      input.Role,
		Phone:     input.Phone,
		IsActive:  true,
		CreatedBy: userIDFromCtx(ctx),
	}
	if input.IsActive != nil {
		member.IsActive = *input.IsActive
	}
	if err := c.DB.Create(&member).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Member created successfully", "data": member})
}

func (c *MemberController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var member models.ResourceMember
	if err := ctx.BodyParser(&member); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	member.UpdatedBy = userIDFromCtx(ctx)

	if err := c.DB.Model(&models.ResourceMember{}).Where("id = ?", id).Updates(member).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Member updated successfully"})
}

func (c *MemberController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := c.DB.Delete(&models.ResourceMember{}, id).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Member deleted successfully"})
}
