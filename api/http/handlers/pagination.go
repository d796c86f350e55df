package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// parseLimitOffset reads ?limit and ?offset. A missing or malformed limit
// falls back to defLimit, a too large one is capped at maxPageLimit.
// Offsets below zero become zero.
func parseLimitOffset(c *fiber.Ctx, defLimit int) (limit, offset int) {
	limit = defLimit
	if n, ok := queryInt(c, "limit"); ok && n > 0 {
		limit = min(n, maxPageLimit)
	}
	if n, ok := queryInt(c, "offset"); ok && n > 0 {
		offset = n
	}
	return limit, offset
}

func queryInt(c *fiber.Ctx, key string) (int, bool) {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	return n, err == nil
}
