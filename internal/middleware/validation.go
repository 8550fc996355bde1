package middleware

import (
	"strconv"

	"trivia-api/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// Locals keys under which validated parameters are stored.
const (
	LocalPage = "validated_page"
	LocalID   = "validated_id"
)

// ValidatePage parses the optional "page" query parameter (default 1) and
// stores it in Locals. Anything that is not a positive integer is a bad request;
// a page too large to have an offset can never hold questions and is not found.
func ValidatePage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := 1
		if raw := c.Query("page"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			// Atoi clamps out of range input, so huge pages land here too.
			if parsed > domain.MaxPage {
				return domain.NewNotFoundError("page is beyond the last page", domain.ErrNotFound).
					WithContext("page", raw)
			}
			if err != nil || parsed < 1 {
				return domain.NewBadRequestError("page must be a positive integer", err).
					WithContext("page", raw)
			}
			page = parsed
		}

		c.Locals(LocalPage, page)
		return c.Next()
	}
}

// ValidateIDParam parses the named path parameter as an int64 id and stores it
// under LocalID.
func ValidateIDParam(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Params(name)
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domain.NewBadRequestError(name+" must be an integer", err).
				WithContext(name, raw)
		}

		c.Locals(LocalID, id)
		return c.Next()
	}
}

// PageFrom returns the page stored by ValidatePage, or 1.
func PageFrom(c *fiber.Ctx) int {
	if page, ok := c.Locals(LocalPage).(int); ok {
		return page
	}
	return 1
}

// IDFrom returns the id stored by ValidateIDParam.
func IDFrom(c *fiber.Ctx) (int64, bool) {
	id, ok := c.Locals(LocalID).(int64)
	return id, ok
}
