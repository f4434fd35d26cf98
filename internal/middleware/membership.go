package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/groupup/groupup-backend/internal/httpx"
	"github.com/groupup/groupup-backend/internal/service"
)

// RequireMember guards routes under /:groupId that any member may
// call. Admin checks stay in the services, next to the transition
// rules they protect.
func RequireMember(membership *service.MembershipService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		groupID, err := strconv.ParseUint(c.Params("groupId"), 10, 32)
		if err != nil {
			return httpx.BadRequest(c, "Invalid group ID")
		}
		userID, ok := c.Locals("userID").(uint)
		if !ok {
			return httpx.Unauthorized(c, "Missing access token")
		}
		isMember, err := membership.IsMember(uint(groupID), userID)
		if err != nil {
			return httpx.Internal(c)
		}
		if !isMember {
			return httpx.Forbidden(c, "Not a member of this group")
		}
		return c.Next()
	}
}
