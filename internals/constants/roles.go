package constants

import "fmt"

// Role yang dikenal sistem
const (
	RoleUser   = "user"
	RoleMentor = "mentor"
	RoleAdmin  = "admin"
)

// Template pesan error role / premium
const (
	ErrOnlyAdminsCanAccess  = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyMentorsCanAccess = "❌ Hanya mentor yang boleh mengakses fitur %s."
	ErrPremiumOnly          = "❌ Fitur %s hanya untuk akun premium (VIP)."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorMentor(feature string) string {
	return fmt.Sprintf(ErrOnlyMentorsCanAccess, feature)
}

func PremiumError(feature string) string {
	return fmt.Sprintf(ErrPremiumOnly, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleMentor,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	MentorAndAdmin = []string{
		RoleMentor,
		RoleAdmin,
	}
)
