package services

import (
	"context"
	"errors"

	"github.com/ecetin/collegehub/internal/app/models"
	"github.com/ecetin/collegehub/internal/app/repositories"
	"github.com/ecetin/collegehub/internal/pkg/apperrors"
	"github.com/ecetin/collegehub/internal/pkg/llm"
)

// In-memory fakes for the repository interfaces, shared by the service
// tests in this package.

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[int64]*models.User), nextID: 1}
	for _, u := range users {
		r.users[u.ID] = u
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
	}
	return r
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *models.User) (int64, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	id := r.nextID
	r.nextID++
	stored := *user
	stored.ID = id
	r.users[id] = &stored
	return id, nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) GetAllUsers(_ context.Context) ([]*models.User, error) {
	var out []*models.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) DeleteUser(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeCourseRepo struct {
	courses map[int64]*models.Course
}

func newFakeCourseRepo(courses ...*models.Course) *fakeCourseRepo {
	r := &fakeCourseRepo{courses: make(map[int64]*models.Course)}
	for _, c := range courses {
		r.courses[c.ID] = c
	}
	return r
}

func (r *fakeCourseRepo) CreateCourse(_ context.Context, course *models.Course) (int64, error) {
	id := int64(len(r.courses) + 1)
	stored := *course
	stored.ID = id
	r.courses[id] = &stored
	return id, nil
}

func (r *fakeCourseRepo) GetCourseByID(_ context.Context, id int64) (*models.Course, error) {
	if c, ok := r.courses[id]; ok {
		return c, nil
	}
	return nil, apperrors.ErrCourseNotFound
}

func (r *fakeCourseRepo) GetAllCourses(_ context.Context) ([]*models.Course, error) {
	out := make([]*models.Course, 0, len(r.courses))
	for id := int64(1); id <= int64(len(r.courses))+100; id++ {
		if c, ok := r.courses[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCourseRepo) UpdateCourse(_ context.Context, course *models.Course) error {
	if _, ok := r.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	r.courses[course.ID] = course
	return nil
}

func (r *fakeCourseRepo) DeleteCourse(_ context.Context, id int64) error {
	if _, ok := r.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(r.courses, id)
	return nil
}

type fakeMarksRepo struct {
	rows []*models.InternalMarks
}

func (r *fakeMarksRepo) SaveMarks(_ context.Context, marks *models.InternalMarks) error {
	for _, row := range r.rows {
		if row.StudentID == marks.StudentID && row.CourseID == marks.CourseID {
			row.Internal1 = marks.Internal1
			row.Internal2 = marks.Internal2
			row.Internal3 = marks.Internal3
			marks.ID = row.ID
			return nil
		}
	}
	marks.ID = int64(len(r.rows) + 1)
	stored := *marks
	r.rows = append(r.rows, &stored)
	return nil
}

func (r *fakeMarksRepo) GetMarksByStudent(_ context.Context, studentID int64) ([]*models.InternalMarks, error) {
	var out []*models.InternalMarks
	for _, row := range r.rows {
		if row.StudentID == studentID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeMarksRepo) GetMarksByCourse(_ context.Context, courseID int64) ([]*models.InternalMarks, error) {
	var out []*models.InternalMarks
	for _, row := range r.rows {
		if row.CourseID == courseID {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeEnrollmentRepo struct {
	rows []*models.Enrollment
}

func (r *fakeEnrollmentRepo) CreateEnrollment(_ context.Context, studentID, courseID int64) (int64, error) {
	for _, row := range r.rows {
		if row.StudentID == studentID && row.CourseID == courseID {
			return 0, apperrors.ErrAlreadyEnrolled
		}
	}
	id := int64(len(r.rows) + 1)
	r.rows = append(r.rows, &models.Enrollment{ID: id, StudentID: studentID, CourseID: courseID})
	return id, nil
}

func (r *fakeEnrollmentRepo) GetEnrollmentsByStudent(_ context.Context, studentID int64) ([]*models.Enrollment, error) {
	var out []*models.Enrollment
	for _, row := range r.rows {
		if row.StudentID == studentID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeEnrollmentRepo) DeleteEnrollment(_ context.Context, id int64) error {
	for i, row := range r.rows {
		if row.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return apperrors.NewResourceNotFoundError("enrollment not found")
}

type fakeConversationRepo struct {
	rows []*models.Conversation
}

func (r *fakeConversationRepo) AppendConversation(_ context.Context, conv *models.Conversation) error {
	conv.ID = int64(len(r.rows) + 1)
	stored := *conv
	r.rows = append(r.rows, &stored)
	return nil
}

func (r *fakeConversationRepo) GetConversationsByUser(_ context.Context, userID int64) ([]*models.Conversation, error) {
	var out []*models.Conversation
	for _, row := range r.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeConversationRepo) GetRecentConversations(_ context.Context, userID int64, limit int) ([]*models.Conversation, error) {
	all, _ := r.GetConversationsByUser(context.Background(), userID)
	if len(all) > limit {
		all = all[len(all)-limit:]
	}
	return all, nil
}

type fakeConfigRepo struct {
	values map[string]string
}

func (r *fakeConfigRepo) GetValue(_ context.Context, key string) (*models.SystemConfig, error) {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	if v, ok := r.values[key]; ok {
		return &models.SystemConfig{Key: key, Value: v}, nil
	}
	return nil, apperrors.ErrResourceNotFound
}

func (r *fakeConfigRepo) SetValue(_ context.Context, key, value string) (*models.SystemConfig, error) {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	r.values[key] = value
	return &models.SystemConfig{Key: key, Value: value}, nil
}

// fakeProvider records the last completion call and returns a fixed reply
type fakeProvider struct {
	reply            string
	err              error
	lastSystemPrompt string
	lastHistory      []llm.Turn
	lastUserPrompt   string
	calls            int
}

func (p *fakeProvider) Complete(_ context.Context, systemPrompt string, history []llm.Turn, userPrompt string) (string, error) {
	p.calls++
	p.lastSystemPrompt = systemPrompt
	p.lastHistory = history
	p.lastUserPrompt = userPrompt
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

func (p *fakeProvider) Close() error { return nil }

var errProviderDown = errors.New("connection refused")

// Interface conformance checks for the fakes
var (
	_ repositories.IUserRepository         = (*fakeUserRepo)(nil)
	_ repositories.ICourseRepository       = (*fakeCourseRepo)(nil)
	_ repositories.IMarksRepository        = (*fakeMarksRepo)(nil)
	_ repositories.IEnrollmentRepository   = (*fakeEnrollmentRepo)(nil)
	_ repositories.IConversationRepository = (*fakeConversationRepo)(nil)
	_ repositories.ISystemConfigRepository = (*fakeConfigRepo)(nil)
	_ llm.CompletionProvider               = (*fakeProvider)(nil)
)
