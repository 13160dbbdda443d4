package student

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Bshaarr/Morox-platform/core"
)

type Student struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	EnrolledCourses []string  `json:"enrolled_courses"`
	Certificates    []string  `json:"certificates"`
	CreatedAt       time.Time `json:"created_at"` // UTC
}

// IsEnrolledIn reports whether the student is already enrolled in the given course.
func (s Student) IsEnrolledIn(courseID string) bool {
	for _, id := range s.EnrolledCourses {
		if id == courseID {
			return true
		}
	}
	return false
}

// NewStudent contains information needed to register a new Student.
// The phone number doubles as the login key.
type NewStudent struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required,phone"`
}

func (ns *NewStudent) Validate(validate *validator.Validate) error {
	ns.Name = core.CleanString(ns.Name)
	ns.Phone = core.CleanString(ns.Phone)
	return validate.Struct(ns)
}

// UpdateStudent defines what information may be provided to modify an existing
// Student. Empty fields are left untouched.
type UpdateStudent struct {
	Name  string `json:"name"`
	Phone string `json:"phone" validate:"omitempty,phone"`
}

func (us *UpdateStudent) Validate(validate *validator.Validate) error {
	us.Name = core.CleanString(us.Name)
	us.Phone = core.CleanString(us.Phone)
	return validate.Struct(us)
}
