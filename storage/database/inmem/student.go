package inmemdb

import (
	"context"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"github.com/Bshaarr/Morox-platform/core/course"
	"github.com/Bshaarr/Morox-platform/core/student"
)

type studentRepository struct {
	db *DB
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) *studentRepository {
	return &studentRepository{db: db}
}

// copy returns a detached copy so callers cannot alias the stored record.
func (repo *studentRepository) copy(st *student.Student) student.Student {
	cp := *st
	// append to a zero-length slice so empty lists stay [] and not null
	cp.EnrolledCourses = append(make([]string, 0, len(st.EnrolledCourses)), st.EnrolledCourses...)
	cp.Certificates = append(make([]string, 0, len(st.Certificates)), st.Certificates...)
	return cp
}

func (repo *studentRepository) CreateStudent(_ context.Context, st student.Student) (student.Student, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	// mimics the relational backend's unique constraint on phone
	for _, existing := range repo.db.students {
		if existing.Phone == st.Phone {
			return student.Student{}, student.ErrPhoneExists
		}
	}

	st.ID = uuid.New().String()
	if st.EnrolledCourses == nil {
		st.EnrolledCourses = []string{}
	}
	if st.Certificates == nil {
		st.Certificates = []string{}
	}
	repo.db.students[st.ID] = &st
	return repo.copy(&st), nil
}

func (repo *studentRepository) GetStudentByID(_ context.Context, id string) (student.Student, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if st, ok := repo.db.students[id]; ok {
		return repo.copy(st), nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) GetStudentByPhone(_ context.Context, phone string) (student.Student, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	for _, st := range repo.db.students {
		if st.Phone == phone {
			return repo.copy(st), nil
		}
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) QueryAllStudents(_ context.Context) ([]student.Student, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	students := make([]student.Student, 0, len(repo.db.students))
	for _, st := range repo.db.students {
		students = append(students, repo.copy(st))
	}
	sort.Slice(students, func(i, j int) bool { return students[i].CreatedAt.After(students[j].CreatedAt) })
	return students, nil
}

func (repo *studentRepository) UpdateStudent(_ context.Context, id string, up student.UpdateStudent) (student.Student, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	st, ok := repo.db.students[id]
	if !ok {
		return student.Student{}, student.ErrNotFound
	}

	// only save set fields
	if up.Phone != "" && up.Phone != st.Phone {
		for _, existing := range repo.db.students {
			if existing.Phone == up.Phone {
				return student.Student{}, student.ErrPhoneExists
			}
		}
		st.Phone = up.Phone
	}
	if up.Name != "" {
		st.Name = up.Name
	}
	return repo.copy(st), nil
}

func (repo *studentRepository) DeleteStudent(_ context.Context, id string) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if _, ok := repo.db.students[id]; !ok {
		return student.ErrNotFound
	}
	delete(repo.db.students, id)
	return nil
}

func (repo *studentRepository) EnrollStudentInCourse(_ context.Context, studentID, courseID string) (student.Student, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	st, ok := repo.db.students[studentID]
	if !ok {
		return student.Student{}, student.ErrNotFound
	}
	crs, ok := repo.db.courses[courseID]
	if !ok {
		return student.Student{}, course.ErrNotFound
	}

	if st.IsEnrolledIn(courseID) {
		return repo.copy(st), nil
	}

	st.EnrolledCourses = append(st.EnrolledCourses, courseID)
	crs.EnrollmentCount = strconv.Itoa(crs.Enrollments() + 1)
	return repo.copy(st), nil
}
