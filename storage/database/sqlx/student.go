package sqlxrepos

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Bshaarr/Morox-platform/core/course"
	"github.com/Bshaarr/Morox-platform/core/student"
)

type studentRepository struct {
	db *sqlx.DB
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *sqlx.DB) *studentRepository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) CreateStudent(ctx context.Context, st student.Student) (student.Student, error) {
	st.ID = uuid.New().String()

	var row studentRow
	err := repo.db.QueryRowxContext(ctx,
		`INSERT INTO students (id, name, phone, enrolled_courses, certificates, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING *`,
		st.ID, st.Name, st.Phone, jsonList(st.EnrolledCourses), jsonList(st.Certificates), st.CreatedAt,
	).StructScan(&row)
	if err != nil {
		return student.Student{}, trapUniqueViolation(err, student.ErrPhoneExists, "inserting student")
	}
	return row.domain(), nil
}

func (repo *studentRepository) GetStudentByID(ctx context.Context, id string) (student.Student, error) {
	var row studentRow
	if err := repo.db.GetContext(ctx, &row, `SELECT * FROM students WHERE id = $1`, id); err != nil {
		return student.Student{}, trapNoRows(err, student.ErrNotFound, "getting student")
	}
	return row.domain(), nil
}

func (repo *studentRepository) GetStudentByPhone(ctx context.Context, phone string) (student.Student, error) {
	var row studentRow
	if err := repo.db.GetContext(ctx, &row, `SELECT * FROM students WHERE phone = $1`, phone); err != nil {
		return student.Student{}, trapNoRows(err, student.ErrNotFound, "getting student by phone")
	}
	return row.domain(), nil
}

func (repo *studentRepository) QueryAllStudents(ctx context.Context) ([]student.Student, error) {
	var rows []studentRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM students ORDER BY created_at DESC`); err != nil {
		return nil, errors.Wrap(err, "querying students")
	}
	students := make([]student.Student, 0, len(rows))
	for _, row := range rows {
		students = append(students, row.domain())
	}
	return students, nil
}

func (repo *studentRepository) UpdateStudent(ctx context.Context, id string, up student.UpdateStudent) (student.Student, error) {
	sets := make([]string, 0, 2)
	args := make([]interface{}, 0, 3)
	if up.Name != "" {
		args = append(args, up.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if up.Phone != "" {
		args = append(args, up.Phone)
		sets = append(sets, fmt.Sprintf("phone = $%d", len(args)))
	}
	if len(sets) == 0 {
		return repo.GetStudentByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE students SET %s WHERE id = $%d RETURNING *`,
		strings.Join(sets, ", "), len(args),
	)

	var row studentRow
	if err := repo.db.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if err == sql.ErrNoRows {
			return student.Student{}, student.ErrNotFound
		}
		return student.Student{}, trapUniqueViolation(err, student.ErrPhoneExists, "updating student")
	}
	return row.domain(), nil
}

func (repo *studentRepository) DeleteStudent(ctx context.Context, id string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "deleting student")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "deleting student")
	}
	if n == 0 {
		return student.ErrNotFound
	}
	return nil
}

// EnrollStudentInCourse locks both rows, appends the course id to the
// student's enrollment list unless already present, and bumps the course's
// counter by one. The row locks serialize concurrent enrollments of the same
// pair; both writes commit together or not at all.
func (repo *studentRepository) EnrollStudentInCourse(ctx context.Context, studentID, courseID string) (student.Student, error) {
	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return student.Student{}, errors.Wrap(err, "beginning enrollment")
	}
	defer func() { _ = tx.Rollback() }()

	var st studentRow
	if err = tx.GetContext(ctx, &st, `SELECT * FROM students WHERE id = $1 FOR UPDATE`, studentID); err != nil {
		return student.Student{}, trapNoRows(err, student.ErrNotFound, "getting student")
	}
	var crs courseRow
	if err = tx.GetContext(ctx, &crs, `SELECT * FROM courses WHERE id = $1 FOR UPDATE`, courseID); err != nil {
		return student.Student{}, trapNoRows(err, course.ErrNotFound, "getting course")
	}

	if st.domain().IsEnrolledIn(courseID) {
		return st.domain(), nil
	}

	if err = tx.QueryRowxContext(ctx,
		`UPDATE students SET enrolled_courses = enrolled_courses || to_jsonb($2::text)
		 WHERE id = $1 AND NOT enrolled_courses @> to_jsonb($2::text) RETURNING *`,
		studentID, courseID,
	).StructScan(&st); err != nil {
		return student.Student{}, errors.Wrap(err, "enrolling student")
	}
	if _, err = tx.ExecContext(ctx,
		`UPDATE courses SET enrollment_count = ((enrollment_count)::int + 1)::text WHERE id = $1`,
		courseID,
	); err != nil {
		return student.Student{}, errors.Wrap(err, "bumping enrollment count")
	}

	if err = tx.Commit(); err != nil {
		return student.Student{}, errors.Wrap(err, "committing enrollment")
	}
	return st.domain(), nil
}
