package service

import (
	"testing"

	"github.com/akozyreva/coursehub/internal/apperr"
	"github.com/akozyreva/coursehub/internal/model"
)

func TestEnrollIsIdempotent(t *testing.T) {
	env := newTestEnv()
	teacher := env.addUser("alice", model.RoleTeacher)
	student := env.addUser("bob", model.RoleStudent)
	course := env.addCourse(teacher, "Algebra")

	already, err := env.enrollmentService.Enroll(student, course.ID)
	if err != nil {
		t.Fatalf("first enroll: %v", err)
	}
	if already {
		t.Error("first enroll reported already=true")
	}

	already, err = env.enrollmentService.Enroll(student, course.ID)
	if err != nil {
		t.Fatalf("second enroll: %v", err)
	}
	if !already {
		t.Error("second enroll reported already=false")
	}

	courses, err := env.enrollmentService.ListCoursesFor(student)
	if err != nil {
		t.Fatalf("list courses: %v", err)
	}
	if len(courses) != 1 {
		t.Errorf("enrolled courses = %d, want 1", len(courses))
	}
}

func TestEnrollErrors(t *testing.T) {
	env := newTestEnv()
	teacher := env.addUser("alice", model.RoleTeacher)
	student := env.addUser("bob", model.RoleStudent)
	course := env.addCourse(teacher, "Algebra")

	if _, err := env.enrollmentService.Enroll(student, 999); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("missing course: kind = %v, want not found", apperr.KindOf(err))
	}
	if _, err := env.enrollmentService.Enroll(teacher, course.ID); apperr.KindOf(err) != apperr.KindForbidden {
		t.Errorf("teacher enroll: kind = %v, want forbidden", apperr.KindOf(err))
	}
}

func TestListCoursesForBranchesOnRole(t *testing.T) {
	env := newTestEnv()
	alice := env.addUser("alice", model.RoleTeacher)
	dave := env.addUser("dave", model.RoleTeacher)
	student := env.addUser("bob", model.RoleStudent)

	first := env.addCourse(alice, "Algebra")
	env.addCourse(dave, "Biology")
	third := env.addCourse(alice, "Calculus")
	env.enroll(student, first)
	env.enroll(student, third)

	owned, err := env.enrollmentService.ListCoursesFor(alice)
	if err != nil {
		t.Fatalf("teacher list: %v", err)
	}
	if len(owned) != 2 || owned[0].Name != "Algebra" || owned[1].Name != "Calculus" {
		t.Errorf("owned = %+v, want Algebra then Calculus", owned)
	}

	enrolled, err := env.enrollmentService.ListCoursesFor(student)
	if err != nil {
		t.Fatalf("student list: %v", err)
	}
	if len(enrolled) != 2 || enrolled[0].ID != first.ID || enrolled[1].ID != third.ID {
		t.Errorf("enrolled = %+v, want ids %d then %d", enrolled, first.ID, third.ID)
	}
}

func TestProgressComputation(t *testing.T) {
	env := newTestEnv()
	teacher := env.addUser("alice", model.RoleTeacher)
	student := env.addUser("bob", model.RoleStudent)
	course := env.addCourse(teacher, "Algebra")
	themeA := env.addTheme(course, "Week 1", false)
	env.addTheme(course, "Week 2", false)
	env.addTheme(course, "Week 3", false)
	env.enroll(student, course)

	if err := env.courseService.CompleteTheme(student, themeA.ID); err != nil {
		t.Fatalf("complete theme: %v", err)
	}
	// Completing the same theme twice stays a single completion.
	if err := env.courseService.CompleteTheme(student, themeA.ID); err != nil {
		t.Fatalf("repeat complete: %v", err)
	}

	progress, err := env.enrollmentService.Progress(student, course.ID)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if progress.CompletedThemes != 1 || progress.TotalThemes != 3 {
		t.Errorf("progress = %d/%d, want 1/3", progress.CompletedThemes, progress.TotalThemes)
	}
	if progress.ProgressPercentage < 33.3 || progress.ProgressPercentage > 33.4 {
		t.Errorf("percentage = %f, want ~33.3", progress.ProgressPercentage)
	}
}

func TestProgressEmptyCourse(t *testing.T) {
	env := newTestEnv()
	teacher := env.addUser("alice", model.RoleTeacher)
	student := env.addUser("bob", model.RoleStudent)
	course := env.addCourse(teacher, "Empty")
	env.enroll(student, course)

	progress, err := env.enrollmentService.Progress(student, course.ID)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if progress.TotalThemes != 0 || progress.ProgressPercentage != 0 {
		t.Errorf("empty course progress = %+v, want zeroes", progress)
	}
}

func TestStudentProgressOwnerOnly(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser("alice", model.RoleTeacher)
	other := env.addUser("dave", model.RoleTeacher)
	student := env.addUser("bob", model.RoleStudent)
	course := env.addCourse(owner, "Algebra")
	env.addTheme(course, "Week 1", false)
	env.enroll(student, course)

	if _, err := env.enrollmentService.StudentProgress(owner, course.ID, student.ID); err != nil {
		t.Errorf("owner lookup: %v", err)
	}
	if _, err := env.enrollmentService.StudentProgress(other, course.ID, student.ID); apperr.KindOf(err) != apperr.KindForbidden {
		t.Errorf("non-owner: kind = %v, want forbidden", apperr.KindOf(err))
	}
	if _, err := env.enrollmentService.StudentProgress(owner, course.ID, 999); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("missing student: kind = %v, want not found", apperr.KindOf(err))
	}
}

func TestProgressRequiresEnrollment(t *testing.T) {
	env := newTestEnv()
	teacher := env.addUser("alice", model.RoleTeacher)
	outsider := env.addUser("carol", model.RoleStudent)
	course := env.addCourse(teacher, "Algebra")

	if _, err := env.enrollmentService.Progress(outsider, course.ID); apperr.KindOf(err) != apperr.KindForbidden {
		t.Errorf("outsider progress: kind = %v, want forbidden", apperr.KindOf(err))
	}
}
