package echoapi

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Bshaarr/Morox-platform/core/certificate"
	"github.com/Bshaarr/Morox-platform/core/course"
	"github.com/Bshaarr/Morox-platform/core/student"
)

type statisticsApi struct {
	studentSvc *student.Service
	courseSvc  *course.Service
	certSvc    *certificate.Service
}

func registerStatisticsAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	studentSvc *student.Service,
	courseSvc *course.Service,
	certSvc *certificate.Service,
) {
	api := statisticsApi{studentSvc: studentSvc, courseSvc: courseSvc, certSvc: certSvc}
	g.GET("/statistics", api.retrieve, jwt, adminMiddleware())
}

type StatisticsResponse struct {
	TotalStudents     int               `json:"total_students"`
	TotalCourses      int               `json:"total_courses"`
	ActiveCourses     int               `json:"active_courses"`
	TotalCertificates int               `json:"total_certificates"`
	TotalEnrollments  int               `json:"total_enrollments"`
	RecentStudents    []student.Student `json:"recent_students"`
	PopularCourses    []course.Course   `json:"popular_courses"`
}

func (api *statisticsApi) retrieve(ctx echo.Context) error {
	rctx := ctx.Request().Context()

	students, err := api.studentSvc.QueryAll(rctx)
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	courses, err := api.courseSvc.QueryAll(rctx)
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	certs, err := api.certSvc.QueryAll(rctx)
	if err != nil {
		return errors.Wrap(err, "querying certificates")
	}

	res := StatisticsResponse{
		TotalStudents:     len(students),
		TotalCourses:      len(courses),
		TotalCertificates: len(certs),
		RecentStudents:    []student.Student{},
		PopularCourses:    []course.Course{},
	}
	for _, crs := range courses {
		if crs.IsActive {
			res.ActiveCourses++
		}
		res.TotalEnrollments += crs.Enrollments()
	}

	// students come back newest first
	for _, st := range students {
		if len(res.RecentStudents) == 5 {
			break
		}
		res.RecentStudents = append(res.RecentStudents, st)
	}

	byEnrollments := make([]course.Course, len(courses))
	copy(byEnrollments, courses)
	sort.SliceStable(byEnrollments, func(i, j int) bool {
		return byEnrollments[i].Enrollments() > byEnrollments[j].Enrollments()
	})
	for _, crs := range byEnrollments {
		if len(res.PopularCourses) == 5 {
			break
		}
		res.PopularCourses = append(res.PopularCourses, crs)
	}

	return ctx.JSON(http.StatusOK, res)
}
