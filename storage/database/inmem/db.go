// Package inmemdb implements the storage contracts with process-local maps.
// Data does not survive a restart; it is the default backend when no database
// is configured, and the repository double used in tests.
package inmemdb

import (
	"sync"

	"github.com/Bshaarr/Morox-platform/core/admin"
	"github.com/Bshaarr/Morox-platform/core/announcement"
	"github.com/Bshaarr/Morox-platform/core/certificate"
	"github.com/Bshaarr/Morox-platform/core/course"
	"github.com/Bshaarr/Morox-platform/core/student"
)

// DB holds one map per entity. A single store-wide mutex guards them all so
// that enrollment, which touches students and courses together, is atomic.
type DB struct {
	mu sync.RWMutex

	students      map[string]*student.Student
	courses       map[string]*course.Course
	certificates  map[string]*certificate.Certificate
	announcements map[string]*announcement.Announcement
	admins        map[string]*admin.Admin
}

func Open() (*DB, error) {
	db := &DB{
		students:      make(map[string]*student.Student),
		courses:       make(map[string]*course.Course),
		certificates:  make(map[string]*certificate.Certificate),
		announcements: make(map[string]*announcement.Announcement),
		admins:        make(map[string]*admin.Admin),
	}
	return db, nil
}
