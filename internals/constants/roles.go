package constants

// ==========================
// ✅ Roles
// ==========================
const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
	RoleEmployee   = "employee"
	RoleStudent    = "student"
)

var (
	AllRoles = []string{
		RoleSuperadmin,
		RoleAdmin,
		RoleEmployee,
		RoleStudent,
	}

	AdminAndAbove = []string{
		RoleSuperadmin,
		RoleAdmin,
	}

	StaffRoles = []string{
		RoleSuperadmin,
		RoleAdmin,
		RoleEmployee,
	}
)

// ==========================
// ✅ Employee permissions (kolom di employee_permissions)
// ==========================
const (
	PermStudents   = "can_students"
	PermAttendance = "can_attendance"
	PermExams      = "can_exams"
	PermFees       = "can_fees"
	PermTimetable  = "can_timetable"
	PermMessages   = "can_messages"
)
