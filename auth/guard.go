package auth

import "github.com/patiponrmutl/SchoolMS/models"

// Action is a guarded operation. All role checks go through the one
// permission table below so endpoints cannot drift apart.
type Action string

const (
	ManageStudents    Action = "students.manage"
	TakeAttendance    Action = "attendance.take"
	PostAnnouncements Action = "announcements.post"
)

var permissions = map[Action]map[models.Role]struct{}{
	ManageStudents:    roleSet(models.RoleAdmin, models.RoleTeacher),
	TakeAttendance:    roleSet(models.RoleAdmin, models.RoleTeacher),
	PostAnnouncements: roleSet(models.RoleAdmin, models.RoleTeacher),
}

func roleSet(roles ...models.Role) map[models.Role]struct{} {
	s := make(map[models.Role]struct{}, len(roles))
	for _, r := range roles {
		s[r] = struct{}{}
	}
	return s
}

// Allowed reports whether role may perform action. Unknown actions are
// denied. Reads need only a resolved identity and never consult the
// table.
func Allowed(role models.Role, action Action) bool {
	set, ok := permissions[action]
	if !ok {
		return false
	}
	_, ok = set[role]
	return ok
}
