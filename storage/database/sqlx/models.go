// Package sqlxrepos implements the storage contracts against PostgreSQL via
// sqlx. Each repository maps operations to single parameterized queries; rows
// are scanned into package-local structs and converted to domain records.
package sqlxrepos

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/Bshaarr/Morox-platform/core/admin"
	"github.com/Bshaarr/Morox-platform/core/announcement"
	"github.com/Bshaarr/Morox-platform/core/certificate"
	"github.com/Bshaarr/Morox-platform/core/course"
	"github.com/Bshaarr/Morox-platform/core/student"
)

// jsonList maps a jsonb array column to a string slice.
type jsonList []string

func (l jsonList) Value() (driver.Value, error) {
	if l == nil {
		l = jsonList{}
	}
	return json.Marshal(l)
}

func (l *jsonList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = jsonList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.Errorf("unsupported jsonb source %T", src)
}

type studentRow struct {
	ID              string    `db:"id"`
	Name            string    `db:"name"`
	Phone           string    `db:"phone"`
	EnrolledCourses jsonList  `db:"enrolled_courses"`
	Certificates    jsonList  `db:"certificates"`
	CreatedAt       time.Time `db:"created_at"`
}

func (r studentRow) domain() student.Student {
	return student.Student{
		ID:              r.ID,
		Name:            r.Name,
		Phone:           r.Phone,
		EnrolledCourses: r.EnrolledCourses,
		Certificates:    r.Certificates,
		CreatedAt:       r.CreatedAt.UTC(),
	}
}

type courseRow struct {
	ID                  string    `db:"id"`
	Title               string    `db:"title"`
	Description         string    `db:"description"`
	DetailedDescription string    `db:"detailed_description"`
	Category            string    `db:"category"`
	Duration            string    `db:"duration"`
	Icon                string    `db:"icon"`
	IsActive            bool      `db:"is_active"`
	EnrollmentCount     string    `db:"enrollment_count"`
	CreatedAt           time.Time `db:"created_at"`
}

func (r courseRow) domain() course.Course {
	return course.Course{
		ID:                  r.ID,
		Title:               r.Title,
		Description:         r.Description,
		DetailedDescription: r.DetailedDescription,
		Category:            r.Category,
		Duration:            r.Duration,
		Icon:                r.Icon,
		IsActive:            r.IsActive,
		EnrollmentCount:     r.EnrollmentCount,
		CreatedAt:           r.CreatedAt.UTC(),
	}
}

type certificateRow struct {
	ID               string    `db:"id"`
	StudentID        string    `db:"student_id"`
	CourseID         string    `db:"course_id"`
	IssueDate        time.Time `db:"issue_date"`
	CertificateURL   string    `db:"certificate_url"`
	VerificationCode string    `db:"verification_code"`
}

func (r certificateRow) domain() certificate.Certificate {
	return certificate.Certificate{
		ID:               r.ID,
		StudentID:        r.StudentID,
		CourseID:         r.CourseID,
		IssueDate:        r.IssueDate.UTC(),
		CertificateURL:   r.CertificateURL,
		VerificationCode: r.VerificationCode,
	}
}

type announcementRow struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}

func (r announcementRow) domain() announcement.Announcement {
	return announcement.Announcement{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

type adminRow struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	PasswordHash []byte    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r adminRow) domain() admin.Admin {
	return admin.Admin{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt.UTC(),
	}
}
