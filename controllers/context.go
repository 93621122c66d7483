package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func userIDFromCtx(ctx *fiber.Ctx) int {
	id, _ := ctx.Locals("userID").(string)
	v, err := strconv.Atoi(id)
	if err != nil {
		return 0
	}
	return v
}

func userNameFromCtx(ctx *fiber.Ctx) string {
	name, _ := ctx.Locals("userName").(string)
	return name
}
