package certificate_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Bshaarr/Morox-platform/core"
	"github.com/Bshaarr/Morox-platform/core/certificate"
	"github.com/Bshaarr/Morox-platform/core/course"
	"github.com/Bshaarr/Morox-platform/core/student"
	inmemdb "github.com/Bshaarr/Morox-platform/storage/database/inmem"
)

type fakeEmailService struct {
	sent []*core.EmailMessage
}

var _ core.EmailService = (*fakeEmailService)(nil)

func (svc *fakeEmailService) SendMessages(messages ...*core.EmailMessage) {
	svc.sent = append(svc.sent, messages...)
}

func setup(t *testing.T) (*certificate.Service, student.Repository, course.Repository, *fakeEmailService) {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	studentRepo := inmemdb.NewStudentRepository(db)
	courseRepo := inmemdb.NewCourseRepository(db)
	mailSvc := new(fakeEmailService)
	conf := &core.Config{AdminEmail: "admin@test.cd"}
	svc := certificate.NewService(inmemdb.NewCertificateRepository(db), studentRepo, courseRepo, mailSvc, conf)
	return svc, studentRepo, courseRepo, mailSvc
}

func Test_Service_IssueAndVerify(t *testing.T) {
	svc, studentRepo, courseRepo, mailSvc := setup(t)
	ctx := context.Background()

	st, err := studentRepo.CreateStudent(ctx, student.Student{Name: "Aya", Phone: "+243970000001"})
	assert.NoError(t, err)
	crs, err := courseRepo.CreateCourse(ctx, course.Course{Title: "Intro", EnrollmentCount: "0"})
	assert.NoError(t, err)

	_, err = svc.Issue(ctx, certificate.NewCertificate{StudentID: "nope", CourseID: crs.ID})
	assert.Equal(t, student.ErrNotFound, err)
	_, err = svc.Issue(ctx, certificate.NewCertificate{StudentID: st.ID, CourseID: "nope"})
	assert.Equal(t, course.ErrNotFound, err)

	cert, err := svc.Issue(ctx, certificate.NewCertificate{StudentID: st.ID, CourseID: crs.ID})
	assert.NoError(t, err)
	assert.NotEmpty(t, cert.ID)
	assert.NotEmpty(t, cert.VerificationCode)
	assert.Equal(t, "/certificates/"+cert.VerificationCode+".pdf", cert.CertificateURL)
	assert.False(t, cert.IssueDate.IsZero())

	// the admin is notified
	if assert.Len(t, mailSvc.sent, 1) {
		msg := mailSvc.sent[0]
		assert.Equal(t, "admin@test.cd", msg.To[0].Address)
		assert.True(t, strings.Contains(msg.Body, cert.VerificationCode))
	}

	// codes are unique across issues
	cert2, err := svc.Issue(ctx, certificate.NewCertificate{StudentID: st.ID, CourseID: crs.ID})
	assert.NoError(t, err)
	assert.NotEqual(t, cert.VerificationCode, cert2.VerificationCode)

	verif, err := svc.Verify(ctx, cert.VerificationCode)
	assert.NoError(t, err)
	assert.True(t, verif.IsValid)
	assert.Equal(t, cert.ID, verif.Certificate.ID)
	assert.Equal(t, st.ID, verif.Student.ID)
	assert.Equal(t, crs.ID, verif.Course.ID)

	_, err = svc.Verify(ctx, "nope")
	assert.Equal(t, certificate.ErrNotFound, err)
}

func Test_Service_Issue_noAdminEmail(t *testing.T) {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	studentRepo := inmemdb.NewStudentRepository(db)
	courseRepo := inmemdb.NewCourseRepository(db)
	mailSvc := new(fakeEmailService)
	svc := certificate.NewService(inmemdb.NewCertificateRepository(db), studentRepo, courseRepo, mailSvc, new(core.Config))

	ctx := context.Background()
	st, _ := studentRepo.CreateStudent(ctx, student.Student{Name: "Aya", Phone: "+243970000001"})
	crs, _ := courseRepo.CreateCourse(ctx, course.Course{Title: "Intro", EnrollmentCount: "0"})

	_, err = svc.Issue(ctx, certificate.NewCertificate{StudentID: st.ID, CourseID: crs.ID})
	assert.NoError(t, err)
	assert.Empty(t, mailSvc.sent)
}
