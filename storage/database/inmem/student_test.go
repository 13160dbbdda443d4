package inmemdb

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Bshaarr/Morox-platform/core/course"
	"github.com/Bshaarr/Morox-platform/core/student"
)

func setupStudents(t *testing.T) (*studentRepository, *courseRepository) {
	db, err := Open()
	if err != nil {
		t.Fatalf("setupStudents() failed: %v", err)
	}
	return NewStudentRepository(db), NewCourseRepository(db)
}

func createStudent(t *testing.T, repo *studentRepository, name, phone string, createdAt ...time.Time) student.Student {
	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	st, err := repo.CreateStudent(context.Background(), student.Student{
		Name:            name,
		Phone:           phone,
		EnrolledCourses: []string{},
		Certificates:    []string{},
		CreatedAt:       tstamp,
	})
	if err != nil {
		t.Fatalf("createStudent() failed: %v", err)
	}
	return st
}

func createCourse(t *testing.T, repo *courseRepository, title string, createdAt ...time.Time) course.Course {
	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	crs, err := repo.CreateCourse(context.Background(), course.Course{
		Title:           title,
		Description:     "desc",
		Category:        course.CategoryAISkills,
		Duration:        "4 weeks",
		Icon:            "robot",
		IsActive:        true,
		EnrollmentCount: "0",
		CreatedAt:       tstamp,
	})
	if err != nil {
		t.Fatalf("createCourse() failed: %v", err)
	}
	return crs
}

func Test_studentRepository_CRUD(t *testing.T) {
	repo, _ := setupStudents(t)
	ctx := context.Background()

	st := createStudent(t, repo, "Aya", "+243970000001")
	assert.NotEmpty(t, st.ID)
	assert.NotNil(t, st.EnrolledCourses)
	assert.NotNil(t, st.Certificates)

	got, err := repo.GetStudentByID(ctx, st.ID)
	assert.NoError(t, err)
	assert.Equal(t, st, got)

	got, err = repo.GetStudentByPhone(ctx, st.Phone)
	assert.NoError(t, err)
	assert.Equal(t, st.ID, got.ID)

	_, err = repo.GetStudentByID(ctx, "nope")
	assert.Equal(t, student.ErrNotFound, err)
	_, err = repo.GetStudentByPhone(ctx, "+243999999999")
	assert.Equal(t, student.ErrNotFound, err)

	// phone is unique
	_, err = repo.CreateStudent(ctx, student.Student{Name: "Imposter", Phone: st.Phone})
	assert.Equal(t, student.ErrPhoneExists, err)

	up, err := repo.UpdateStudent(ctx, st.ID, student.UpdateStudent{Name: "Aya M."})
	assert.NoError(t, err)
	assert.Equal(t, "Aya M.", up.Name)
	assert.Equal(t, st.Phone, up.Phone)

	_, err = repo.UpdateStudent(ctx, "nope", student.UpdateStudent{Name: "x"})
	assert.Equal(t, student.ErrNotFound, err)

	assert.NoError(t, repo.DeleteStudent(ctx, st.ID))
	assert.Equal(t, student.ErrNotFound, repo.DeleteStudent(ctx, st.ID))
}

func Test_studentRepository_QueryAllStudents_newestFirst(t *testing.T) {
	repo, _ := setupStudents(t)

	now := time.Now()
	st1 := createStudent(t, repo, "One", "+243970000001", now.Add(1*time.Hour))
	st2 := createStudent(t, repo, "Two", "+243970000002", now.Add(2*time.Hour))
	st3 := createStudent(t, repo, "Three", "+243970000003", now.Add(3*time.Hour))

	students, err := repo.QueryAllStudents(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []student.Student{st3, st2, st1}, students)
}

func Test_studentRepository_EnrollStudentInCourse(t *testing.T) {
	repo, courseRepo := setupStudents(t)
	ctx := context.Background()

	st := createStudent(t, repo, "Aya", "+243970000001")
	crs := createCourse(t, courseRepo, "Intro")

	_, err := repo.EnrollStudentInCourse(ctx, "nope", crs.ID)
	assert.Equal(t, student.ErrNotFound, err)
	_, err = repo.EnrollStudentInCourse(ctx, st.ID, "nope")
	assert.Equal(t, course.ErrNotFound, err)

	got, err := repo.EnrollStudentInCourse(ctx, st.ID, crs.ID)
	assert.NoError(t, err)
	assert.Equal(t, []string{crs.ID}, got.EnrolledCourses)

	// enrolling again is a no-op
	got, err = repo.EnrollStudentInCourse(ctx, st.ID, crs.ID)
	assert.NoError(t, err)
	assert.Equal(t, []string{crs.ID}, got.EnrolledCourses)

	crs, err = courseRepo.GetCourseByID(ctx, crs.ID)
	assert.NoError(t, err)
	assert.Equal(t, "1", crs.EnrollmentCount)
}

func Test_studentRepository_EnrollStudentInCourse_concurrent(t *testing.T) {
	repo, courseRepo := setupStudents(t)
	ctx := context.Background()

	crs := createCourse(t, courseRepo, "Intro")

	n := 20
	students := make([]student.Student, 0, n)
	for i := 0; i < n; i++ {
		students = append(students, createStudent(t, repo, "S"+strconv.Itoa(i), "+2439700000"+strconv.Itoa(10+i)))
	}

	var wg sync.WaitGroup
	for _, st := range students {
		wg.Add(2)
		// each student enrolls twice concurrently
		go func(id string) {
			defer wg.Done()
			_, _ = repo.EnrollStudentInCourse(ctx, id, crs.ID)
		}(st.ID)
		go func(id string) {
			defer wg.Done()
			_, _ = repo.EnrollStudentInCourse(ctx, id, crs.ID)
		}(st.ID)
	}
	wg.Wait()

	crs, err := courseRepo.GetCourseByID(ctx, crs.ID)
	assert.NoError(t, err)
	assert.Equal(t, strconv.Itoa(n), crs.EnrollmentCount)

	for _, st := range students {
		got, err := repo.GetStudentByID(ctx, st.ID)
		assert.NoError(t, err)
		assert.Equal(t, []string{crs.ID}, got.EnrolledCourses)
	}
}
