package constants

const (
	RoleStudent = "student"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

// ==========================
// Grouped role slices
// ==========================

var (
	StudentOnly  = []string{RoleStudent}
	ManagerAndUp = []string{RoleManager, RoleAdmin}
	AdminOnly    = []string{RoleAdmin}
)
