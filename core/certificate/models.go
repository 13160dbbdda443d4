package certificate

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Bshaarr/Morox-platform/core"
	"github.com/Bshaarr/Morox-platform/core/course"
	"github.com/Bshaarr/Morox-platform/core/student"
)

type Certificate struct {
	ID               string    `json:"id"`
	StudentID        string    `json:"student_id"`
	CourseID         string    `json:"course_id"`
	IssueDate        time.Time `json:"issue_date"` // UTC
	CertificateURL   string    `json:"certificate_url"`
	VerificationCode string    `json:"verification_code"`
}

// NewCertificate contains information needed to issue a new Certificate.
type NewCertificate struct {
	StudentID string `json:"student_id" validate:"required"`
	CourseID  string `json:"course_id" validate:"required"`
}

func (nc *NewCertificate) Validate(validate *validator.Validate) error {
	nc.StudentID = core.CleanString(nc.StudentID)
	nc.CourseID = core.CleanString(nc.CourseID)
	return validate.Struct(nc)
}

// Verification is the public verification result: the certificate together
// with the student and course it refers to.
type Verification struct {
	Certificate Certificate     `json:"certificate"`
	Student     student.Student `json:"student"`
	Course      course.Course   `json:"course"`
	IsValid     bool            `json:"is_valid"`
}
