package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse задаёт единый формат ошибки API.
type ErrorResponse struct {
	OK    bool   `json:"ok" example:"false"`
	Error string `json:"error" example:"Missing userId"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{OK: false, Error: message})
}
