package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/Bshaarr/Morox-platform/apps/api/echo"
	"github.com/Bshaarr/Morox-platform/core"
	"github.com/Bshaarr/Morox-platform/core/admin"
	"github.com/Bshaarr/Morox-platform/core/announcement"
	"github.com/Bshaarr/Morox-platform/core/certificate"
	"github.com/Bshaarr/Morox-platform/core/course"
	"github.com/Bshaarr/Morox-platform/core/student"
	emailsvc "github.com/Bshaarr/Morox-platform/services/email"
	logsvc "github.com/Bshaarr/Morox-platform/services/logger"
	"github.com/Bshaarr/Morox-platform/storage/database"
	inmemdb "github.com/Bshaarr/Morox-platform/storage/database/inmem"
	sqlxrepos "github.com/Bshaarr/Morox-platform/storage/database/sqlx"
)

type repositories struct {
	student      student.Repository
	course       course.Repository
	certificate  certificate.Repository
	announcement announcement.Repository
	admin        admin.Repository
	close        func() error
}

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// set up the storage backend
	repos, err := setUpRepositories(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up storage: %v", err), err)
	}
	defer func() {
		if err = repos.close(); err != nil {
			logger.Error(fmt.Sprintf("closing storage: %v", err), err)
		}
	}()

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}
	studentSvc := student.NewService(repos.student)
	courseSvc := course.NewService(repos.course)
	certSvc := certificate.NewService(repos.certificate, repos.student, repos.course, mailSvc, conf)
	annSvc := announcement.NewService(repos.announcement)
	adminSvc := admin.NewService(repos.admin)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)

	// seed the course catalog on first start
	if err = courseSvc.Seed(context.Background()); err != nil {
		logger.Fatal(fmt.Sprintf("seeding courses: %v", err), err)
	}

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		&echoapi.Options{
			Conf:            conf,
			Logger:          logger,
			Validate:        validate,
			Translator:      translator,
			StudentSvc:      studentSvc,
			CourseSvc:       courseSvc,
			CertificateSvc:  certSvc,
			AnnouncementSvc: annSvc,
			AdminSvc:        adminSvc,
		},
	)

	go server.Start()

	// =========================================================================
	// Shutdown

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	sig := <-shutdown
	logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

	// give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
	defer cancel()

	if err = server.Stop(ctx); err != nil {
		logger.Fatal(fmt.Sprintf("could not stop server gracefully: %v", err), err)
	}
}

// setUpRepositories resolves the storage backend once at startup: a set
// DATABASE_URL selects the relational backend, otherwise everything is kept
// in memory.
func setUpRepositories(conf *core.Config) (*repositories, error) {
	if conf.Database.URL == "" {
		db, err := inmemdb.Open()
		if err != nil {
			return nil, err
		}
		return &repositories{
			student:      inmemdb.NewStudentRepository(db),
			course:       inmemdb.NewCourseRepository(db),
			certificate:  inmemdb.NewCertificateRepository(db),
			announcement: inmemdb.NewAnnouncementRepository(db),
			admin:        inmemdb.NewAdminRepository(db),
			close:        func() error { return nil },
		}, nil
	}

	db, err := database.Open(conf)
	if err != nil {
		return nil, err
	}
	if err = database.EnsureSchema(context.Background(), db); err != nil {
		return nil, err
	}
	return &repositories{
		student:      sqlxrepos.NewStudentRepository(db),
		course:       sqlxrepos.NewCourseRepository(db),
		certificate:  sqlxrepos.NewCertificateRepository(db),
		announcement: sqlxrepos.NewAnnouncementRepository(db),
		admin:        sqlxrepos.NewAdminRepository(db),
		close:        db.Close,
	}, nil
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
