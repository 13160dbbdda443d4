package certificate

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/mail"
	"time"

	"github.com/pkg/errors"

	"github.com/Bshaarr/Morox-platform/core"
	"github.com/Bshaarr/Morox-platform/core/course"
	"github.com/Bshaarr/Morox-platform/core/student"
)

var (
	// errors
	ErrNotFound   = errors.New("certificate not found")
	ErrCodeExists = errors.New("a certificate with this verification code already exists")
)

type (
	Repository interface {
		CreateCertificate(ctx context.Context, cert Certificate) (Certificate, error)
		// QueryAllCertificates returns all certificates, newest issued first.
		QueryAllCertificates(ctx context.Context) ([]Certificate, error)
		GetCertificateByCode(ctx context.Context, code string) (Certificate, error)
		DeleteCertificate(ctx context.Context, id string) error
	}

	Service struct {
		repo        Repository
		studentRepo student.Repository
		courseRepo  course.Repository
		mailSvc     core.EmailService
		adminEmail  string
	}
)

func NewService(
	repo Repository,
	studentRepo student.Repository,
	courseRepo course.Repository,
	mailSvc core.EmailService,
	conf *core.Config,
) *Service {
	return &Service{
		repo:        repo,
		studentRepo: studentRepo,
		courseRepo:  courseRepo,
		mailSvc:     mailSvc,
		adminEmail:  conf.AdminEmail,
	}
}

// Issue creates a certificate for the given student and course with a freshly
// generated verification code, and notifies the platform admin.
func (svc *Service) Issue(ctx context.Context, nc NewCertificate) (Certificate, error) {
	st, err := svc.studentRepo.GetStudentByID(ctx, nc.StudentID)
	if err != nil {
		return Certificate{}, err
	}
	crs, err := svc.courseRepo.GetCourseByID(ctx, nc.CourseID)
	if err != nil {
		return Certificate{}, err
	}

	code, err := generateVerificationCode()
	if err != nil {
		return Certificate{}, errors.Wrap(err, "generating verification code")
	}
	cert := Certificate{
		StudentID:        st.ID,
		CourseID:         crs.ID,
		IssueDate:        time.Now().UTC(),
		CertificateURL:   "/certificates/" + code + ".pdf",
		VerificationCode: code,
	}
	cert, err = svc.repo.CreateCertificate(ctx, cert)
	if err != nil {
		return Certificate{}, err
	}

	svc.notifyAdmin(cert, st, crs)
	return cert, nil
}

func (svc *Service) QueryAll(ctx context.Context) ([]Certificate, error) {
	return svc.repo.QueryAllCertificates(ctx)
}

// Verify looks up a certificate by its public verification code and resolves
// the student and course it refers to.
func (svc *Service) Verify(ctx context.Context, code string) (Verification, error) {
	cert, err := svc.repo.GetCertificateByCode(ctx, core.CleanString(code))
	if err != nil {
		return Verification{}, err
	}

	res := Verification{Certificate: cert, IsValid: true}
	if res.Student, err = svc.studentRepo.GetStudentByID(ctx, cert.StudentID); err != nil {
		return Verification{}, err
	}
	if res.Course, err = svc.courseRepo.GetCourseByID(ctx, cert.CourseID); err != nil {
		return Verification{}, err
	}
	return res, nil
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteCertificate(ctx, id)
}

func (svc *Service) notifyAdmin(cert Certificate, st student.Student, crs course.Course) {
	if svc.adminEmail == "" {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Address: svc.adminEmail}},
		Subject: "Certificate issued",
		Body: fmt.Sprintf(
			"Certificate %s was issued to %s (%s) for course %q.",
			cert.VerificationCode, st.Name, st.Phone, crs.Title,
		),
	})
}

// generateVerificationCode returns a random, practically unique public token.
func generateVerificationCode() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
