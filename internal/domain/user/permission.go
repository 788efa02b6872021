package user

type Permission string

const (
	// Own attendance: check-in, check-out, status
	PermissionAttendanceSelf Permission = "attendance.self"

	// Reporting
	PermissionAttendanceViewAll Permission = "attendance.view_all"
	PermissionAttendanceExport  Permission = "attendance.export"

	// User Management
	PermissionUserManage Permission = "user.manage"
)

// RolePermissions maps roles to their permissions. Roles do not inherit from each other.
var RolePermissions = map[Role][]Permission{
	RoleEmployee: {
		PermissionAttendanceSelf,
	},
	RoleHR: {
		PermissionAttendanceSelf,
		PermissionAttendanceViewAll,
		PermissionAttendanceExport,
		PermissionUserManage,
	},
	RoleAdmin: {
		PermissionAttendanceSelf,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
