package constants

import "fmt"

// Kode role numerik (dipakai di JWT claim, cookie userData, dan permission map).
const (
	RoleAdmin     = 150 // admin sekolah
	RoleBendahara = 160 // bendahara / keuangan
	RoleStaff     = 170 // staff / guru
	RoleSiswa     = 200 // siswa
)

// Nama role untuk response (role_name di userData).
var RoleNames = map[int]string{
	RoleAdmin:     "Admin",
	RoleBendahara: "Bendahara",
	RoleStaff:     "Staff",
	RoleSiswa:     "Siswa",
}

func RoleName(code int) string {
	if n, ok := RoleNames[code]; ok {
		return n
	}
	return "Siswa"
}

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess   = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyStaffCanAccess    = "❌ Hanya staff, bendahara, atau admin yang boleh mengakses fitur %s."
	ErrOnlyNonSiswaCanAccess = "❌ Hanya role selain siswa yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorNonSiswa(feature string) string {
	return fmt.Sprintf(ErrOnlyNonSiswaCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []int{
		RoleAdmin,
		RoleBendahara,
		RoleStaff,
		RoleSiswa,
	}

	NonSiswaRoles = []int{
		RoleAdmin,
		RoleBendahara,
		RoleStaff,
	}

	StaffAndAbove = []int{
		RoleStaff,
		RoleBendahara,
		RoleAdmin,
	}

	AdminOnly = []int{
		RoleAdmin,
	}

	FinanceRoles = []int{
		RoleBendahara,
		RoleAdmin,
	}
)
