package handlers

import "github.com/gofiber/fiber/v2"

// PageHandler serves the single-page client shell.
type PageHandler struct {
	APIBase string
}

func (h *PageHandler) Index(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Title":   "Meno",
		"APIBase": h.APIBase,
	})
}
