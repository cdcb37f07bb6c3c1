package constants

// Permission tags granted to staff accounts. Section guards check presence of
// the tag; the access level decides whether mutations are allowed.
const (
	PermRoomManagement    = "room_management"
	PermStudentManagement = "student_management"
	PermAttendance        = "attendance"
	PermLeaveManagement   = "leave_management"
	PermComplaints        = "complaints"
	PermElectricity       = "electricity"
	PermMenuManagement    = "menu_management"
	PermPolls             = "polls"
	PermAnnouncements     = "announcements"
	PermSecurity          = "security"
	PermPreregistration   = "preregistration"
)

// Access levels per permission tag.
const (
	AccessView = "view"
	AccessFull = "full"
)

var AllPermissions = []string{
	PermRoomManagement, PermStudentManagement, PermAttendance,
	PermLeaveManagement, PermComplaints, PermElectricity,
	PermMenuManagement, PermPolls, PermAnnouncements,
	PermSecurity, PermPreregistration,
}

func IsValidPermission(p string) bool {
	for _, known := range AllPermissions {
		if known == p {
			return true
		}
	}
	return false
}

func IsValidAccessLevel(level string) bool {
	return level == AccessView || level == AccessFull
}
