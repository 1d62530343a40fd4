package service

import (
	"errors"
	"testing"

	"github.com/akozyreva/coursehub/internal/apperr"
	"github.com/akozyreva/coursehub/internal/dto"
	"github.com/akozyreva/coursehub/internal/model"
	"gorm.io/gorm"
)

func TestCreateCourseTeacherOnly(t *testing.T) {
	env := newTestEnv()
	teacher := env.addUser("alice", model.RoleTeacher)
	student := env.addUser("bob", model.RoleStudent)
	admin := env.addUser("root", model.RoleAdmin)

	course, err := env.courseService.Create(teacher, dto.CourseCreateDTO{Name: "Algebra", Description: "intro"})
	if err != nil {
		t.Fatalf("teacher create: %v", err)
	}
	if course.OwnerID != teacher.ID {
		t.Errorf("owner = %d, want %d", course.OwnerID, teacher.ID)
	}

	if _, err := env.courseService.Create(student, dto.CourseCreateDTO{Name: "Nope"}); apperr.KindOf(err) != apperr.KindForbidden {
		t.Errorf("student create: kind = %v, want forbidden", apperr.KindOf(err))
	}
	// Course authorship stays with teachers; admins manage the catalog, not courses.
	if _, err := env.courseService.Create(admin, dto.CourseCreateDTO{Name: "Nope"}); apperr.KindOf(err) != apperr.KindForbidden {
		t.Errorf("admin create: kind = %v, want forbidden", apperr.KindOf(err))
	}
}

func TestUpdateCourseOwnerOnly(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser("alice", model.RoleTeacher)
	other := env.addUser("dave", model.RoleTeacher)
	course := env.addCourse(owner, "Algebra")

	name := "Algebra II"
	updated, err := env.courseService.Update(owner, course.ID, dto.CourseUpdateDTO{Name: &name})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Name != "Algebra II" {
		t.Errorf("name = %q, want %q", updated.Name, "Algebra II")
	}

	if _, err := env.courseService.Update(other, course.ID, dto.CourseUpdateDTO{Name: &name}); apperr.KindOf(err) != apperr.KindForbidden {
		t.Errorf("other teacher update: kind = %v, want forbidden", apperr.KindOf(err))
	}
	if _, err := env.courseService.Update(owner, 999, dto.CourseUpdateDTO{Name: &name}); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("missing course update: kind = %v, want not found", apperr.KindOf(err))
	}
}

func TestDeleteCourse(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser("alice", model.RoleTeacher)
	other := env.addUser("dave", model.RoleTeacher)
	course := env.addCourse(owner, "Algebra")

	if err := env.courseService.Delete(other, course.ID); apperr.KindOf(err) != apperr.KindForbidden {
		t.Errorf("other teacher delete: kind = %v, want forbidden", apperr.KindOf(err))
	}
	if err := env.courseService.Delete(owner, course.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if _, err := env.courseService.Get(course.ID); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("get after delete: kind = %v, want not found", apperr.KindOf(err))
	}
	if err := env.courseService.Delete(owner, course.ID); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("repeat delete: kind = %v, want not found", apperr.KindOf(err))
	}
}

func TestDeleteCourseCascades(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser("alice", model.RoleTeacher)
	student := env.addUser("bob", model.RoleStudent)
	course := env.addCourse(owner, "Algebra")
	theme := env.addTheme(course, "Week 1", true)
	homework := env.addHomework(theme, "hw1", nil)
	env.enroll(student, course)

	submission, err := env.homeworkService.Submit(student, homework.ID, dto.SubmissionCreateDTO{Answer: "x"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := env.courseService.Delete(owner, course.ID); err != nil {
		t.Fatalf("delete course: %v", err)
	}

	// Themes, homeworks and submissions all go with the course.
	if _, err := env.themes.FindByID(theme.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("theme survived course deletion: %v", err)
	}
	if _, err := env.homeworks.FindByID(homework.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("homework survived course deletion: %v", err)
	}
	if _, err := env.submissions.FindByID(submission.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("submission survived course deletion: %v", err)
	}
	enrolled, err := env.enrollments.Exists(student.ID, course.ID)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if enrolled {
		t.Error("enrollment survived course deletion")
	}
}

func TestGetCourseIncludesThemesInOrder(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser("alice", model.RoleTeacher)
	course := env.addCourse(owner, "Algebra")
	env.addTheme(course, "Week 1", false)
	env.addTheme(course, "Week 2", true)

	detail, err := env.courseService.Get(course.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(detail.Themes) != 2 {
		t.Fatalf("themes = %d, want 2", len(detail.Themes))
	}
	if detail.Themes[0].Name != "Week 1" || detail.Themes[1].Name != "Week 2" {
		t.Errorf("theme order = %q, %q", detail.Themes[0].Name, detail.Themes[1].Name)
	}
	if !detail.Themes[1].IsHomework {
		t.Error("second theme lost its homework flag")
	}
}

func TestListThemesAccess(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser("alice", model.RoleTeacher)
	enrolled := env.addUser("bob", model.RoleStudent)
	outsider := env.addUser("carol", model.RoleStudent)
	course := env.addCourse(owner, "Algebra")
	env.addTheme(course, "Week 1", false)
	env.enroll(enrolled, course)

	if _, err := env.courseService.ListThemes(owner, course.ID); err != nil {
		t.Errorf("owner list: %v", err)
	}
	if _, err := env.courseService.ListThemes(enrolled, course.ID); err != nil {
		t.Errorf("enrolled list: %v", err)
	}
	if _, err := env.courseService.ListThemes(outsider, course.ID); apperr.KindOf(err) != apperr.KindForbidden {
		t.Errorf("outsider list: kind = %v, want forbidden", apperr.KindOf(err))
	}
}

func TestCompleteThemeRules(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser("alice", model.RoleTeacher)
	enrolled := env.addUser("bob", model.RoleStudent)
	outsider := env.addUser("carol", model.RoleStudent)
	course := env.addCourse(owner, "Algebra")
	theme := env.addTheme(course, "Week 1", false)
	env.enroll(enrolled, course)

	if err := env.courseService.CompleteTheme(enrolled, theme.ID); err != nil {
		t.Errorf("enrolled complete: %v", err)
	}
	if err := env.courseService.CompleteTheme(outsider, theme.ID); apperr.KindOf(err) != apperr.KindForbidden {
		t.Errorf("outsider complete: kind = %v, want forbidden", apperr.KindOf(err))
	}
	if err := env.courseService.CompleteTheme(owner, theme.ID); apperr.KindOf(err) != apperr.KindForbidden {
		t.Errorf("teacher complete: kind = %v, want forbidden", apperr.KindOf(err))
	}
	if err := env.courseService.CompleteTheme(enrolled, 999); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("missing theme: kind = %v, want not found", apperr.KindOf(err))
	}
}

func TestThemeUpdateAndDelete(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser("alice", model.RoleTeacher)
	other := env.addUser("dave", model.RoleTeacher)
	course := env.addCourse(owner, "Algebra")
	theme := env.addTheme(course, "Week 1", false)

	flag := true
	updated, err := env.courseService.UpdateTheme(owner, theme.ID, dto.ThemeUpdateDTO{IsHomework: &flag})
	if err != nil {
		t.Fatalf("update theme: %v", err)
	}
	if !updated.IsHomework {
		t.Error("homework flag not set")
	}

	if err := env.courseService.DeleteTheme(other, theme.ID); apperr.KindOf(err) != apperr.KindForbidden {
		t.Errorf("other teacher delete: kind = %v, want forbidden", apperr.KindOf(err))
	}
	if err := env.courseService.DeleteTheme(owner, theme.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if _, err := env.courseService.UpdateTheme(owner, theme.ID, dto.ThemeUpdateDTO{}); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("update after delete: kind = %v, want not found", apperr.KindOf(err))
	}
}
