package course

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var (
	// errors
	ErrNotFound = errors.New("course not found")
)

type (
	Repository interface {
		CreateCourse(ctx context.Context, crs Course) (Course, error)
		GetCourseByID(ctx context.Context, id string) (Course, error)
		// QueryAllCourses returns all courses, newest first.
		QueryAllCourses(ctx context.Context) ([]Course, error)
		CountCourses(ctx context.Context) (int, error)
		UpdateCourse(ctx context.Context, id string, up UpdateCourse) (Course, error)
		DeleteCourse(ctx context.Context, id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nc NewCourse) (Course, error) {
	crs := Course{
		Title:               nc.Title,
		Description:         nc.Description,
		DetailedDescription: nc.DetailedDescription,
		Category:            nc.Category,
		Duration:            nc.Duration,
		Icon:                nc.Icon,
		IsActive:            true,
		EnrollmentCount:     "0",
		CreatedAt:           time.Now().UTC(),
	}
	return svc.repo.CreateCourse(ctx, crs)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Course, error) {
	return svc.repo.GetCourseByID(ctx, id)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Course, error) {
	return svc.repo.QueryAllCourses(ctx)
}

func (svc *Service) Update(ctx context.Context, id string, up UpdateCourse) (Course, error) {
	return svc.repo.UpdateCourse(ctx, id, up)
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteCourse(ctx, id)
}

// Seed inserts the default course catalog when the store holds no courses yet.
// It is idempotent and safe to call on every startup.
func (svc *Service) Seed(ctx context.Context) error {
	count, err := svc.repo.CountCourses(ctx)
	if err != nil {
		return errors.Wrap(err, "counting courses")
	}
	if count > 0 {
		return nil
	}
	for _, nc := range DefaultCourses {
		if _, err := svc.Create(ctx, nc); err != nil {
			return errors.Wrapf(err, "seeding course %q", nc.Title)
		}
	}
	return nil
}
