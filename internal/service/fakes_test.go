package service

import (
	"sort"

	"github.com/akozyreva/coursehub/internal/model"
	"github.com/akozyreva/coursehub/internal/repository"
	"gorm.io/gorm"
)

// memStore is a shared in-memory backing store for the fake repositories so
// that cross-entity lookups (theme -> course, submission -> course owner)
// behave like the preloading queries the real repositories run.
type memStore struct {
	users       map[uint]*model.User
	courses     map[uint]*model.Course
	themes      map[uint]*model.Theme
	homeworks   map[uint]*model.Homework
	submissions map[uint]*model.Submission
	enrollments map[[2]uint]bool
	progress    map[[2]uint]*model.ThemeProgress

	nextID uint
}

func newMemStore() *memStore {
	return &memStore{
		users:       map[uint]*model.User{},
		courses:     map[uint]*model.Course{},
		themes:      map[uint]*model.Theme{},
		homeworks:   map[uint]*model.Homework{},
		submissions: map[uint]*model.Submission{},
		enrollments: map[[2]uint]bool{},
		progress:    map[[2]uint]*model.ThemeProgress{},
	}
}

func (s *memStore) id() uint {
	s.nextID++
	return s.nextID
}

// The delete helpers mirror the OnDelete:CASCADE constraints: removing a
// parent row takes its children with it.
func (s *memStore) deleteHomeworkCascade(homeworkID uint) {
	for id, submission := range s.submissions {
		if submission.HomeworkID == homeworkID {
			delete(s.submissions, id)
		}
	}
	delete(s.homeworks, homeworkID)
}

func (s *memStore) deleteThemeCascade(themeID uint) {
	for id, homework := range s.homeworks {
		if homework.ThemeID == themeID {
			s.deleteHomeworkCascade(id)
		}
	}
	for key := range s.progress {
		if key[1] == themeID {
			delete(s.progress, key)
		}
	}
	delete(s.themes, themeID)
}

func (s *memStore) deleteCourseCascade(courseID uint) {
	for id, theme := range s.themes {
		if theme.CourseID == courseID {
			s.deleteThemeCascade(id)
		}
	}
	for key := range s.enrollments {
		if key[1] == courseID {
			delete(s.enrollments, key)
		}
	}
	delete(s.courses, courseID)
}

type fakeUserRepo struct{ store *memStore }

func (r *fakeUserRepo) Create(user *model.User) error {
	user.ID = r.store.id()
	r.store.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	user, ok := r.store.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, user := range r.store.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) ListByRole(role model.Role, offset, limit int) ([]model.User, error) {
	var users []model.User
	for _, user := range r.store.users {
		if user.Role == role {
			users = append(users, *user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return paginate(users, offset, limit), nil
}

type fakeCourseRepo struct{ store *memStore }

func (r *fakeCourseRepo) Create(course *model.Course) error {
	course.ID = r.store.id()
	r.store.courses[course.ID] = course
	return nil
}

func (r *fakeCourseRepo) FindByID(id uint) (*model.Course, error) {
	course, ok := r.store.courses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *course
	return &copied, nil
}

func (r *fakeCourseRepo) FindByIDWithThemes(id uint) (*model.Course, error) {
	course, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	for _, theme := range r.store.themes {
		if theme.CourseID == id {
			course.Themes = append(course.Themes, *theme)
		}
	}
	sort.Slice(course.Themes, func(i, j int) bool { return course.Themes[i].ID < course.Themes[j].ID })
	return course, nil
}

func (r *fakeCourseRepo) Update(course *model.Course) error {
	r.store.courses[course.ID] = course
	return nil
}

func (r *fakeCourseRepo) Delete(course *model.Course) error {
	r.store.deleteCourseCascade(course.ID)
	return nil
}

func (r *fakeCourseRepo) ListByOwner(ownerID uint) ([]model.Course, error) {
	var courses []model.Course
	for _, course := range r.store.courses {
		if course.OwnerID == ownerID {
			courses = append(courses, *course)
		}
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

func (r *fakeCourseRepo) ListEnrolled(userID uint) ([]model.Course, error) {
	var courses []model.Course
	for key, ok := range r.store.enrollments {
		if !ok || key[0] != userID {
			continue
		}
		if course, found := r.store.courses[key[1]]; found {
			courses = append(courses, *course)
		}
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

type fakeEnrollmentRepo struct{ store *memStore }

func (r *fakeEnrollmentRepo) Exists(userID, courseID uint) (bool, error) {
	return r.store.enrollments[[2]uint{userID, courseID}], nil
}

func (r *fakeEnrollmentRepo) Create(enrollment *model.Enrollment) error {
	r.store.enrollments[[2]uint{enrollment.UserID, enrollment.CourseID}] = true
	return nil
}

type fakeThemeRepo struct{ store *memStore }

func (r *fakeThemeRepo) Create(theme *model.Theme) error {
	theme.ID = r.store.id()
	r.store.themes[theme.ID] = theme
	return nil
}

func (r *fakeThemeRepo) FindByID(id uint) (*model.Theme, error) {
	theme, ok := r.store.themes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *theme
	return &copied, nil
}

func (r *fakeThemeRepo) FindByIDWithCourse(id uint) (*model.Theme, error) {
	theme, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if course, ok := r.store.courses[theme.CourseID]; ok {
		theme.Course = *course
	}
	return theme, nil
}

func (r *fakeThemeRepo) ListByCourse(courseID uint) ([]model.Theme, error) {
	var themes []model.Theme
	for _, theme := range r.store.themes {
		if theme.CourseID == courseID {
			themes = append(themes, *theme)
		}
	}
	sort.Slice(themes, func(i, j int) bool { return themes[i].ID < themes[j].ID })
	return themes, nil
}

func (r *fakeThemeRepo) CountByCourse(courseID uint) (int64, error) {
	var count int64
	for _, theme := range r.store.themes {
		if theme.CourseID == courseID {
			count++
		}
	}
	return count, nil
}

func (r *fakeThemeRepo) Update(theme *model.Theme) error {
	r.store.themes[theme.ID] = theme
	return nil
}

func (r *fakeThemeRepo) Delete(theme *model.Theme) error {
	r.store.deleteThemeCascade(theme.ID)
	return nil
}

func (r *fakeThemeRepo) UpsertProgress(progress *model.ThemeProgress) error {
	key := [2]uint{progress.UserID, progress.ThemeID}
	if existing, ok := r.store.progress[key]; ok {
		existing.Completed = progress.Completed
		return nil
	}
	progress.ID = r.store.id()
	r.store.progress[key] = progress
	return nil
}

func (r *fakeThemeRepo) CountCompleted(userID, courseID uint) (int64, error) {
	var count int64
	for _, progress := range r.store.progress {
		if progress.UserID == userID && progress.CourseID == courseID && progress.Completed {
			count++
		}
	}
	return count, nil
}

type fakeHomeworkRepo struct{ store *memStore }

func (r *fakeHomeworkRepo) Create(homework *model.Homework) error {
	homework.ID = r.store.id()
	r.store.homeworks[homework.ID] = homework
	return nil
}

func (r *fakeHomeworkRepo) FindByID(id uint) (*model.Homework, error) {
	homework, ok := r.store.homeworks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *homework
	return &copied, nil
}

func (r *fakeHomeworkRepo) FindByIDWithCourse(id uint) (*model.Homework, error) {
	homework, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if theme, ok := r.store.themes[homework.ThemeID]; ok {
		homework.Theme = *theme
		if course, found := r.store.courses[theme.CourseID]; found {
			homework.Theme.Course = *course
		}
	}
	return homework, nil
}

func (r *fakeHomeworkRepo) ListByTheme(themeID uint) ([]model.Homework, error) {
	var homeworks []model.Homework
	for _, homework := range r.store.homeworks {
		if homework.ThemeID == themeID {
			homeworks = append(homeworks, *homework)
		}
	}
	sort.Slice(homeworks, func(i, j int) bool { return homeworks[i].ID < homeworks[j].ID })
	return homeworks, nil
}

func (r *fakeHomeworkRepo) Delete(homework *model.Homework) error {
	r.store.deleteHomeworkCascade(homework.ID)
	return nil
}

type fakeSubmissionRepo struct{ store *memStore }

func (r *fakeSubmissionRepo) Create(submission *model.Submission) error {
	for _, existing := range r.store.submissions {
		if existing.HomeworkID == submission.HomeworkID && existing.StudentID == submission.StudentID {
			return gorm.ErrDuplicatedKey
		}
	}
	submission.ID = r.store.id()
	r.store.submissions[submission.ID] = submission
	return nil
}

func (r *fakeSubmissionRepo) FindByID(id uint) (*model.Submission, error) {
	submission, ok := r.store.submissions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *submission
	return &copied, nil
}

func (r *fakeSubmissionRepo) FindByIDWithCourse(id uint) (*model.Submission, error) {
	submission, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if homework, ok := r.store.homeworks[submission.HomeworkID]; ok {
		submission.Homework = *homework
		if theme, found := r.store.themes[homework.ThemeID]; found {
			submission.Homework.Theme = *theme
			if course, has := r.store.courses[theme.CourseID]; has {
				submission.Homework.Theme.Course = *course
			}
		}
	}
	return submission, nil
}

func (r *fakeSubmissionRepo) FindByHomeworkAndStudent(homeworkID, studentID uint) (*model.Submission, error) {
	for _, submission := range r.store.submissions {
		if submission.HomeworkID == homeworkID && submission.StudentID == studentID {
			copied := *submission
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSubmissionRepo) ListByStudent(studentID uint, themeID *uint, skip, limit int) ([]model.Submission, error) {
	var submissions []model.Submission
	for _, submission := range r.store.submissions {
		if submission.StudentID != studentID {
			continue
		}
		if themeID != nil {
			homework, ok := r.store.homeworks[submission.HomeworkID]
			if !ok || homework.ThemeID != *themeID {
				continue
			}
		}
		submissions = append(submissions, *submission)
	}
	sort.Slice(submissions, func(i, j int) bool { return submissions[i].ID < submissions[j].ID })
	return paginate(submissions, skip, limit), nil
}

func (r *fakeSubmissionRepo) ListForReview(filter repository.HomeworkFilter) ([]model.Submission, error) {
	var submissions []model.Submission
	for _, submission := range r.store.submissions {
		homework, ok := r.store.homeworks[submission.HomeworkID]
		if !ok {
			continue
		}
		theme, ok := r.store.themes[homework.ThemeID]
		if !ok {
			continue
		}
		course, ok := r.store.courses[theme.CourseID]
		if !ok {
			continue
		}
		if filter.TeacherID != nil && course.OwnerID != *filter.TeacherID {
			continue
		}
		if filter.CourseID != nil && course.ID != *filter.CourseID {
			continue
		}
		if filter.ThemeID != nil && theme.ID != *filter.ThemeID {
			continue
		}
		if filter.Status != nil && submission.Status != *filter.Status {
			continue
		}
		if filter.StudentID != nil && submission.StudentID != *filter.StudentID {
			continue
		}
		submissions = append(submissions, *submission)
	}
	sort.Slice(submissions, func(i, j int) bool { return submissions[i].ID < submissions[j].ID })
	return paginate(submissions, filter.Skip, filter.Limit), nil
}

func (r *fakeSubmissionRepo) Update(submission *model.Submission) error {
	if _, ok := r.store.submissions[submission.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *submission
	r.store.submissions[submission.ID] = &copied
	return nil
}

func paginate[T any](items []T, skip, limit int) []T {
	if skip >= len(items) {
		return nil
	}
	items = items[skip:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// testEnv wires every service over a shared store, mirroring the fx graph.
type testEnv struct {
	store *memStore

	users       *fakeUserRepo
	courses     *fakeCourseRepo
	enrollments *fakeEnrollmentRepo
	themes      *fakeThemeRepo
	homeworks   *fakeHomeworkRepo
	submissions *fakeSubmissionRepo

	courseService     CourseService
	enrollmentService EnrollmentService
	homeworkService   HomeworkService
}

func newTestEnv() *testEnv {
	store := newMemStore()
	env := &testEnv{
		store:       store,
		users:       &fakeUserRepo{store: store},
		courses:     &fakeCourseRepo{store: store},
		enrollments: &fakeEnrollmentRepo{store: store},
		themes:      &fakeThemeRepo{store: store},
		homeworks:   &fakeHomeworkRepo{store: store},
		submissions: &fakeSubmissionRepo{store: store},
	}
	env.courseService = NewCourseService(env.courses, env.themes, env.enrollments)
	env.enrollmentService = NewEnrollmentService(env.courses, env.themes, env.enrollments, env.users)
	env.homeworkService = NewHomeworkService(env.themes, env.homeworks, env.submissions, env.enrollments)
	return env
}

func (e *testEnv) addUser(name string, role model.Role) *model.User {
	user := &model.User{FullName: name, Email: name + "@example.com", Role: role}
	e.users.Create(user)
	return user
}

func (e *testEnv) addCourse(owner *model.User, name string) *model.Course {
	course := &model.Course{OwnerID: owner.ID, Name: name}
	e.courses.Create(course)
	return course
}

func (e *testEnv) addTheme(course *model.Course, name string, isHomework bool) *model.Theme {
	theme := &model.Theme{CourseID: course.ID, Name: name, IsHomework: isHomework}
	e.themes.Create(theme)
	return theme
}

func (e *testEnv) addHomework(theme *model.Theme, title string, maxScore *int) *model.Homework {
	homework := &model.Homework{ThemeID: theme.ID, Title: title, Text: "do it", MaxScore: maxScore}
	e.homeworks.Create(homework)
	return homework
}

func (e *testEnv) enroll(student *model.User, course *model.Course) {
	e.enrollments.Create(&model.Enrollment{UserID: student.ID, CourseID: course.ID})
}
