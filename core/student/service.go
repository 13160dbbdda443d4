package student

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var (
	// errors
	ErrNotFound    = errors.New("student not found")
	ErrPhoneExists = errors.New("a student with this phone number already exists")
)

type (
	Repository interface {
		CreateStudent(ctx context.Context, st Student) (Student, error)
		GetStudentByID(ctx context.Context, id string) (Student, error)
		GetStudentByPhone(ctx context.Context, phone string) (Student, error)
		// QueryAllStudents returns all students, newest first.
		QueryAllStudents(ctx context.Context) ([]Student, error)
		UpdateStudent(ctx context.Context, id string, up UpdateStudent) (Student, error)
		DeleteStudent(ctx context.Context, id string) error
		// EnrollStudentInCourse enrolls the student in the course and bumps the
		// course's enrollment counter. It is idempotent: enrolling an already
		// enrolled student returns the student unchanged.
		EnrollStudentInCourse(ctx context.Context, studentID, courseID string) (Student, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Login registers the student on first contact and is a no-op on subsequent
// logins with the same phone, except that a changed name is updated in place.
func (svc *Service) Login(ctx context.Context, ns NewStudent) (Student, error) {
	st, err := svc.repo.GetStudentByPhone(ctx, ns.Phone)
	if err != nil {
		if errors.Cause(err) == ErrNotFound {
			return svc.Create(ctx, ns)
		}
		return Student{}, err
	}
	if st.Name != ns.Name {
		return svc.repo.UpdateStudent(ctx, st.ID, UpdateStudent{Name: ns.Name})
	}
	return st, nil
}

func (svc *Service) Create(ctx context.Context, ns NewStudent) (Student, error) {
	st := Student{
		Name:            ns.Name,
		Phone:           ns.Phone,
		EnrolledCourses: []string{},
		Certificates:    []string{},
		CreatedAt:       time.Now().UTC(),
	}
	return svc.repo.CreateStudent(ctx, st)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Student, error) {
	return svc.repo.GetStudentByID(ctx, id)
}

func (svc *Service) GetByPhone(ctx context.Context, phone string) (Student, error) {
	return svc.repo.GetStudentByPhone(ctx, phone)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Student, error) {
	return svc.repo.QueryAllStudents(ctx)
}

func (svc *Service) Update(ctx context.Context, id string, up UpdateStudent) (Student, error) {
	return svc.repo.UpdateStudent(ctx, id, up)
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteStudent(ctx, id)
}

func (svc *Service) Enroll(ctx context.Context, studentID, courseID string) (Student, error) {
	return svc.repo.EnrollStudentInCourse(ctx, studentID, courseID)
}
