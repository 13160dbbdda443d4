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
)

type courseRepository struct {
	db *sqlx.DB
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *sqlx.DB) *courseRepository {
	return &courseRepository{db: db}
}

func (repo *courseRepository) CreateCourse(ctx context.Context, crs course.Course) (course.Course, error) {
	crs.ID = uuid.New().String()

	var row courseRow
	err := repo.db.QueryRowxContext(ctx,
		`INSERT INTO courses (id, title, description, detailed_description, category, duration, icon, is_active, enrollment_count, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING *`,
		crs.ID, crs.Title, crs.Description, crs.DetailedDescription, crs.Category,
		crs.Duration, crs.Icon, crs.IsActive, crs.EnrollmentCount, crs.CreatedAt,
	).StructScan(&row)
	if err != nil {
		return course.Course{}, errors.Wrap(err, "inserting course")
	}
	return row.domain(), nil
}

func (repo *courseRepository) GetCourseByID(ctx context.Context, id string) (course.Course, error) {
	var row courseRow
	if err := repo.db.GetContext(ctx, &row, `SELECT * FROM courses WHERE id = $1`, id); err != nil {
		return course.Course{}, trapNoRows(err, course.ErrNotFound, "getting course")
	}
	return row.domain(), nil
}

func (repo *courseRepository) QueryAllCourses(ctx context.Context) ([]course.Course, error) {
	var rows []courseRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM courses ORDER BY created_at DESC`); err != nil {
		return nil, errors.Wrap(err, "querying courses")
	}
	courses := make([]course.Course, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, row.domain())
	}
	return courses, nil
}

func (repo *courseRepository) CountCourses(ctx context.Context) (int, error) {
	var count int
	if err := repo.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM courses`); err != nil {
		return 0, errors.Wrap(err, "counting courses")
	}
	return count, nil
}

func (repo *courseRepository) UpdateCourse(ctx context.Context, id string, up course.UpdateCourse) (course.Course, error) {
	sets := make([]string, 0, 7)
	args := make([]interface{}, 0, 8)
	set := func(column string, val interface{}) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if up.Title != "" {
		set("title", up.Title)
	}
	if up.Description != "" {
		set("description", up.Description)
	}
	if up.DetailedDescription != "" {
		set("detailed_description", up.DetailedDescription)
	}
	if up.Category != "" {
		set("category", up.Category)
	}
	if up.Duration != "" {
		set("duration", up.Duration)
	}
	if up.Icon != "" {
		set("icon", up.Icon)
	}
	if up.IsActive != nil {
		set("is_active", *up.IsActive)
	}
	if len(sets) == 0 {
		return repo.GetCourseByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE courses SET %s WHERE id = $%d RETURNING *`,
		strings.Join(sets, ", "), len(args),
	)

	var row courseRow
	if err := repo.db.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if err == sql.ErrNoRows {
			return course.Course{}, course.ErrNotFound
		}
		return course.Course{}, errors.Wrap(err, "updating course")
	}
	return row.domain(), nil
}

func (repo *courseRepository) DeleteCourse(ctx context.Context, id string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "deleting course")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "deleting course")
	}
	if n == 0 {
		return course.ErrNotFound
	}
	return nil
}
