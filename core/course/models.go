package course

import (
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Bshaarr/Morox-platform/core"
)

// Categories
const (
	CategoryAISkills  = "ai-skills"
	CategoryAcademic  = "academic"
	CategorySpecialty = "specialty"
)

type Course struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	DetailedDescription string    `json:"detailed_description,omitempty"`
	Category            string    `json:"category"`
	Duration            string    `json:"duration"`
	Icon                string    `json:"icon"`
	IsActive            bool      `json:"is_active"`
	EnrollmentCount     string    `json:"enrollment_count"`
	CreatedAt           time.Time `json:"created_at"` // UTC
}

// Enrollments parses the textual enrollment counter. A malformed counter
// reads as zero.
func (c Course) Enrollments() int {
	n, _ := strconv.Atoi(c.EnrollmentCount)
	return n
}

// NewCourse contains information needed to create a new Course.
type NewCourse struct {
	Title               string `json:"title" validate:"required"`
	Description         string `json:"description" validate:"required"`
	DetailedDescription string `json:"detailed_description"`
	Category            string `json:"category" validate:"required,oneof=ai-skills academic specialty"`
	Duration            string `json:"duration" validate:"required"`
	Icon                string `json:"icon" validate:"required"`
}

func (nc *NewCourse) Validate(validate *validator.Validate) error {
	nc.Title = core.CleanString(nc.Title)
	nc.Description = core.CleanString(nc.Description)
	nc.DetailedDescription = core.CleanString(nc.DetailedDescription)
	nc.Category = core.CleanString(nc.Category, true /* lower */)
	nc.Duration = core.CleanString(nc.Duration)
	nc.Icon = core.CleanString(nc.Icon)
	return validate.Struct(nc)
}

// UpdateCourse defines what information may be provided to modify an existing
// Course. Empty fields are left untouched; the enrollment counter is owned by
// the enrollment flow and cannot be set here.
type UpdateCourse struct {
	Title               string `json:"title"`
	Description         string `json:"description"`
	DetailedDescription string `json:"detailed_description"`
	Category            string `json:"category" validate:"omitempty,oneof=ai-skills academic specialty"`
	Duration            string `json:"duration"`
	Icon                string `json:"icon"`
	IsActive            *bool  `json:"is_active"`
}

func (uc *UpdateCourse) Validate(validate *validator.Validate) error {
	uc.Title = core.CleanString(uc.Title)
	uc.Description = core.CleanString(uc.Description)
	uc.DetailedDescription = core.CleanString(uc.DetailedDescription)
	uc.Category = core.CleanString(uc.Category, true /* lower */)
	uc.Duration = core.CleanString(uc.Duration)
	uc.Icon = core.CleanString(uc.Icon)
	return validate.Struct(uc)
}
