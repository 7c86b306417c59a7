package constants

const (
	RoleStudent = "student"
	RoleMentor  = "mentor"
	RoleAdmin   = "admin"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var AdminOnly = []string{
	RoleAdmin,
}

// AllRoles are the values accepted in users.user_role. The column is set
// by operators, not by any endpoint, so models normalise against this.
var AllRoles = []string{RoleStudent, RoleMentor, RoleAdmin}
