// file: internals/features/users/navigation/navigation.go
package navigation

import (
	"sekolahku_backend/internals/constants"
)

/* ==========================
   Types
========================== */

// NavItem satu node menu. Children kosong = leaf yang bisa diklik.
type NavItem struct {
	Title    string    `json:"title"`
	Icon     string    `json:"icon,omitempty"`
	Path     string    `json:"path,omitempty"`
	Children []NavItem `json:"children,omitempty"`
}

/* ==========================
   Home-route resolver
========================== */

const (
	homeAdmin = "/ms/dashboard"
	homeSiswa = "/ms/dashboard-siswa"
)

// HomeRouteFor memetakan kode role ke landing path. Hanya admin dan
// staff/guru yang dibedakan; role lain jatuh ke area siswa.
func HomeRouteFor(role int) string {
	switch role {
	case constants.RoleAdmin:
		return homeAdmin
	case constants.RoleStaff:
		return homeSiswa
	default:
		return homeSiswa
	}
}

/* ==========================
   Navigation builder
========================== */

// NavItemsFor mengembalikan menu statis per role. Murni: tanpa side
// effect, hasil identik untuk role yang sama. Menu ini TIDAK dicek ke
// permission map: visibilitas menu dan akses halaman memang dipisah
// (guard tetap bisa menolak link yang tampil).
func NavItemsFor(role int) []NavItem {
	switch role {
	case constants.RoleAdmin:
		return adminNav()
	case constants.RoleBendahara:
		return bendaharaNav()
	case constants.RoleStaff:
		return staffNav()
	case constants.RoleSiswa:
		return siswaNav()
	default:
		return fallbackNav()
	}
}

func adminNav() []NavItem {
	return []NavItem{
		{
			Title: "Dashboards",
			Icon:  "tabler:smart-home",
			Children: []NavItem{
				{Title: "CRM", Path: homeAdmin},
			},
		},
		{
			Title: "Master Data",
			Icon:  "tabler:database",
			Children: []NavItem{
				{Title: "Data Admin", Path: "/ms/admin"},
				{Title: "Data Siswa", Path: "/ms/siswa"},
				{Title: "Data Anggota", Path: "/ms/anggota"},
				{Title: "Data Jurusan", Path: "/ms/jurusan"},
				{Title: "Data Kelas", Path: "/ms/kelas"},
				{Title: "Data Bulan", Path: "/ms/bulan"},
				{Title: "PPDB", Path: "/ms/ppdb"},
			},
		},
		{
			Title: "Setting",
			Icon:  "tabler:settings",
			Children: []NavItem{
				{Title: "Payment Setting", Path: "/ms/payment-setting"},
				{Title: "Hak Akses", Path: "/ms/permission"},
			},
		},
	}
}

func bendaharaNav() []NavItem {
	return []NavItem{
		{
			Title: "Dashboards",
			Icon:  "tabler:smart-home",
			Children: []NavItem{
				{Title: "CRM", Path: homeAdmin},
			},
		},
		{
			Title: "Pembayaran",
			Icon:  "tabler:cash",
			Children: []NavItem{
				{Title: "Tagihan SPP", Path: "/ms/spp"},
				{Title: "Pembayaran", Path: "/ms/payment"},
			},
		},
	}
}

func staffNav() []NavItem {
	return []NavItem{
		{
			Title: "Dashboards",
			Icon:  "tabler:smart-home",
			Children: []NavItem{
				{Title: "Dashboard", Path: homeSiswa},
			},
		},
		{
			Title: "Master Data",
			Icon:  "tabler:database",
			Children: []NavItem{
				{Title: "Data Siswa", Path: "/ms/siswa"},
				{Title: "Data Kelas", Path: "/ms/kelas"},
			},
		},
	}
}

func siswaNav() []NavItem {
	return []NavItem{
		{
			Title: "Dashboards",
			Icon:  "tabler:smart-home",
			Children: []NavItem{
				{Title: "Dashboard", Path: homeSiswa},
			},
		},
		{
			Title: "Pembayaran",
			Icon:  "tabler:cash",
			Children: []NavItem{
				{Title: "Tagihan Saya", Path: "/ms/tagihan"},
				{Title: "Riwayat Pembayaran", Path: "/ms/payment-history"},
			},
		},
	}
}

// Role tak dikenal: menu minimal satu item.
func fallbackNav() []NavItem {
	return []NavItem{
		{
			Title: "Admin",
			Children: []NavItem{
				{Title: "Data Admin", Path: "/ms/admin"},
			},
		},
	}
}
