package handlers

import "github.com/gofiber/fiber/v2"

// HeaderSessionID names the header carrying the caller's opaque cart
// session key. Identity is an external input here; nothing verifies it.
const HeaderSessionID = "X-Session-ID"

// defaultSessionID is used for callers that send no session header. All
// such callers share one cart, which reproduces the single-session
// behavior of the original storefront.
const defaultSessionID = "default"

func sessionID(c *fiber.Ctx) string {
	if id := c.Get(HeaderSessionID); id != "" {
		return id
	}
	return defaultSessionID
}
