package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/users/navigation"
)

func TestHomeRouteForAdmin(t *testing.T) {
	require.Equal(t, "/ms/dashboard", navigation.HomeRouteFor(constants.RoleAdmin))
}

func TestHomeRouteForStaff(t *testing.T) {
	require.Equal(t, "/ms/dashboard-siswa", navigation.HomeRouteFor(constants.RoleStaff))
}

func TestHomeRouteUnknownRoleFallsBackToSiswa(t *testing.T) {
	require.Equal(t, "/ms/dashboard-siswa", navigation.HomeRouteFor(999))
	require.Equal(t, "/ms/dashboard-siswa", navigation.HomeRouteFor(0))
}

func TestHomeRouteIdempotent(t *testing.T) {
	for _, role := range []int{constants.RoleAdmin, constants.RoleStaff, 999} {
		require.Equal(t, navigation.HomeRouteFor(role), navigation.HomeRouteFor(role))
	}
}

func TestAdminNavTopLevelTitles(t *testing.T) {
	items := navigation.NavItemsFor(constants.RoleAdmin)

	titles := make([]string, 0, len(items))
	for _, it := range items {
		titles = append(titles, it.Title)
	}
	require.Equal(t, []string{"Dashboards", "Master Data", "Setting"}, titles)
}

func TestUnknownRoleGetsFallbackTree(t *testing.T) {
	items := navigation.NavItemsFor(999)

	require.Len(t, items, 1)
	require.Equal(t, "Admin", items[0].Title)
	require.Len(t, items[0].Children, 1)
	require.Equal(t, "Data Admin", items[0].Children[0].Title)
	require.Equal(t, "/ms/admin", items[0].Children[0].Path)
}

func TestNavItemsStructurallyIdenticalAcrossCalls(t *testing.T) {
	for _, role := range []int{
		constants.RoleAdmin,
		constants.RoleBendahara,
		constants.RoleStaff,
		constants.RoleSiswa,
		999,
	} {
		require.Equal(t, navigation.NavItemsFor(role), navigation.NavItemsFor(role))
	}
}

func TestEveryRoleHasANonEmptyTree(t *testing.T) {
	for _, role := range constants.AllRoles {
		require.NotEmpty(t, navigation.NavItemsFor(role))
	}
}
