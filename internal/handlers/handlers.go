package handlers

import (
	"html"

	"github.com/gofiber/fiber/v3"
)

// htmxError returns an error message as HTML that HTMX will display.
// Uses 200 status so HTMX processes the swap (HTMX ignores non-2xx by default).
func htmxError(c fiber.Ctx, message string) error {
	return c.SendString(
		`<div class="mt-2 rounded-xl bg-red-50 px-3 py-2 text-xs text-red-600">` + html.EscapeString(message) + `</div>`,
	)
}
