package constants

import "fmt"

const (
	RoleAdmin = "ADMIN"
	RoleOPD   = "OPD"

	StatusAktif      = "AKTIF"
	StatusTidakAktif = "TIDAK_AKTIF"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyUsersCanAccess  = "Hanya admin atau OPD yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorUser(feature string) string {
	return fmt.Sprintf(ErrOnlyUsersCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles  = []string{RoleAdmin, RoleOPD}
	AdminOnly = []string{RoleAdmin}

	AllStatuses = []string{StatusAktif, StatusTidakAktif}
)

func IsValidRole(r string) bool {
	return r == RoleAdmin || r == RoleOPD
}

func IsValidStatus(s string) bool {
	return s == StatusAktif || s == StatusTidakAktif
}
