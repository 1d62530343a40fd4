// Package policy holds the pure access decisions for the course domain.
// Functions here take already-loaded entities and return allow/deny; they
// never touch the database, so callers must resolve existence first.
package policy

import "github.com/akozyreva/coursehub/internal/model"

// HasRole reports whether the user satisfies a role gate.
// Admins pass every gate.
func HasRole(u *model.User, role model.Role) bool {
	if u == nil {
		return false
	}
	if u.Role == model.RoleAdmin {
		return true
	}
	return u.Role == role
}

// CanCreateCourse: only teachers own courses.
func CanCreateCourse(u *model.User) bool {
	return u != nil && u.IsTeacher()
}

// CanManageCourse: only the owner may update, delete, or add content to a
// course. Other teachers are strangers here.
func CanManageCourse(u *model.User, c *model.Course) bool {
	return u != nil && c != nil && c.OwnerID == u.ID
}

// CanViewCourseContent: enrolled students see course content; the owner is
// implicitly enrolled.
func CanViewCourseContent(u *model.User, c *model.Course, enrolled bool) bool {
	if u == nil || c == nil {
		return false
	}
	return enrolled || c.OwnerID == u.ID
}

// CanSubmitHomework: submissions come from students only.
func CanSubmitHomework(u *model.User) bool {
	return u != nil && u.Role == model.RoleStudent
}

// CanGradeSubmission: grading is reserved for the owner of the course the
// submission's homework belongs to. courseOwnerID is resolved by the caller
// through the homework -> theme -> course chain.
func CanGradeSubmission(u *model.User, courseOwnerID uint) bool {
	return u != nil && u.ID == courseOwnerID
}

// CanCreateHomeworkOnTheme: homework may only hang off themes flagged as
// carrying an assignment.
func CanCreateHomeworkOnTheme(t *model.Theme) bool {
	return t != nil && t.IsHomework
}
