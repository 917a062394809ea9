package controller

import (
	"github.com/gofiber/fiber/v2"

	navigation "sekolahku_backend/internals/features/users/navigation"
	helper "sekolahku_backend/internals/helpers"
)

/* ======================= NAVIGATION ======================= */
// GET /api/navigation: pohon menu sidebar sesuai role user yang login.
func GetNavigation(c *fiber.Ctx) error {
	role, err := helper.GetRoleFromLocals(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", navigation.NavItemsFor(role))
}

// GET /api/home-route: landing page default setelah login.
func GetHomeRoute(c *fiber.Ctx) error {
	role, err := helper.GetRoleFromLocals(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", fiber.Map{"home_route": navigation.HomeRouteFor(role)})
}
