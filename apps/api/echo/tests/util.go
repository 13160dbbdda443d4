package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	. "github.com/Bshaarr/Morox-platform/apps/api/echo"
	"github.com/Bshaarr/Morox-platform/core"
	"github.com/Bshaarr/Morox-platform/core/admin"
	"github.com/Bshaarr/Morox-platform/core/announcement"
	"github.com/Bshaarr/Morox-platform/core/certificate"
	"github.com/Bshaarr/Morox-platform/core/course"
	"github.com/Bshaarr/Morox-platform/core/student"
	emailsvc "github.com/Bshaarr/Morox-platform/services/email"
	inmemdb "github.com/Bshaarr/Morox-platform/storage/database/inmem"
)

var errMissingToken = httpErr{Error: "missing or malformed jwt"}

type testEnv struct {
	conf   *core.Config
	server Server

	studentRepo student.Repository
	courseRepo  course.Repository
	certRepo    certificate.Repository
	annRepo     announcement.Repository
	adminRepo   admin.Repository

	studentSvc *student.Service
	courseSvc  *course.Service
	certSvc    *certificate.Service
	annSvc     *announcement.Service
	adminSvc   *admin.Service
}

type nopLogger struct{}

func (nopLogger) Enable(bool)                  {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func setup(t *testing.T) *testEnv {
	conf := &core.Config{
		TestMode:           true,
		AppName:            "Morox",
		AdminEmail:         "admin@test.cd",
		SecretKey:          []byte("secret"),
		JWTExpirationDelta: 10 * time.Minute,
		Server:             core.ServerConfig{ReadTimeout: 5 * time.Second, WriteTimeout: 10 * time.Second},
	}

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}

	env := &testEnv{
		conf:        conf,
		studentRepo: inmemdb.NewStudentRepository(db),
		courseRepo:  inmemdb.NewCourseRepository(db),
		certRepo:    inmemdb.NewCertificateRepository(db),
		annRepo:     inmemdb.NewAnnouncementRepository(db),
		adminRepo:   inmemdb.NewAdminRepository(db),
	}

	mailSvc := emailsvc.NewConsoleServiceMock(conf)
	env.studentSvc = student.NewService(env.studentRepo)
	env.courseSvc = course.NewService(env.courseRepo)
	env.certSvc = certificate.NewService(env.certRepo, env.studentRepo, env.courseRepo, mailSvc, conf)
	env.annSvc = announcement.NewService(env.annRepo)
	env.adminSvc = admin.NewService(env.adminRepo)

	validate := validator.New()
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	core.InitValidators(validate, translator)

	env.server = NewServer(
		&Options{
			Conf:            conf,
			Logger:          nopLogger{},
			Validate:        validate,
			Translator:      translator,
			DisableReqLogs:  true,
			StudentSvc:      env.studentSvc,
			CourseSvc:       env.courseSvc,
			CertificateSvc:  env.certSvc,
			AnnouncementSvc: env.annSvc,
			AdminSvc:        env.adminSvc,
		},
	)
	return env
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func (env *testEnv) getAdminToken(t *testing.T, username string) string {
	adm, err := env.adminSvc.Create(context.Background(), admin.NewAdmin{Username: username, Password: "s3cr3tpwd"})
	if err != nil {
		t.Fatalf("getAdminToken() failed: %v", err)
	}
	token, err := GenerateToken(env.conf, GetAdminClaims(env.conf, adm))
	if err != nil {
		t.Fatalf("getAdminToken() failed: %v", err)
	}
	return token
}

func (env *testEnv) getNonAdminToken(t *testing.T) string {
	claims := &Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   "visitor",
			ExpiresAt: time.Now().Add(env.conf.JWTExpirationDelta).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token, err := GenerateToken(env.conf, claims)
	if err != nil {
		t.Fatalf("getNonAdminToken() failed: %v", err)
	}
	return token
}

func courseFixture(title string) course.NewCourse {
	return course.NewCourse{
		Title:       title,
		Description: "desc",
		Category:    course.CategoryAISkills,
		Duration:    "4 weeks",
		Icon:        "robot",
	}
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
