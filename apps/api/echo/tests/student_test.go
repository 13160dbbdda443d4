package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Bshaarr/Morox-platform/core/student"
)

func Test_studentApi_login(t *testing.T) {
	env := setup(t)

	// validation errors
	req, rec := newRequest(http.MethodPost, "/v1/students/login", []byte(`{}`))
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req, rec = newRequest(http.MethodPost, "/v1/students/login", []byte(`{"name":"Aya","phone":"nope"}`))
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// first login registers
	req, rec = newRequest(http.MethodPost, "/v1/students/login", []byte(`{"name":"Aya","phone":"+243970000001"}`))
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var st student.Student
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.NotEmpty(t, st.ID)
	assert.Equal(t, "Aya", st.Name)
	assert.Equal(t, []string{}, st.EnrolledCourses)
	// empty lists must serialize as [] and not null
	assert.Contains(t, rec.Body.String(), `"enrolled_courses":[]`)
	assert.Contains(t, rec.Body.String(), `"certificates":[]`)

	// same phone logs into the same account
	req, rec = newRequest(http.MethodPost, "/v1/students/login", []byte(`{"name":"Aya","phone":"+243970000001"}`))
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var again student.Student
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &again))
	assert.Equal(t, st.ID, again.ID)

	students, err := env.studentSvc.QueryAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, students, 1)
}

func Test_studentApi_query(t *testing.T) {
	env := setup(t)
	ctx := context.Background()

	now := time.Now()
	st1, _ := env.studentRepo.CreateStudent(ctx, student.Student{Name: "One", Phone: "+243970000001", CreatedAt: now.Add(1 * time.Hour).UTC()})
	st2, _ := env.studentRepo.CreateStudent(ctx, student.Student{Name: "Two", Phone: "+243970000002", CreatedAt: now.Add(2 * time.Hour).UTC()})

	adminToken := env.getAdminToken(t, "boss")

	tests := []httpTest{
		{name: "Auth required", path: "/v1/students", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "Admin required", path: "/v1/students", token: env.getNonAdminToken(t), wantCode: http.StatusForbidden,
			wantData: marchallObj(t, httpErr{Error: "permission denied"}),
		},
		{
			name: "Get all (newest first)", path: "/v1/students", token: adminToken, wantCode: http.StatusOK,
			wantData: marchallList(t, st2, st1),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, tt.path, tt.token)
			env.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_studentApi_enroll(t *testing.T) {
	env := setup(t)
	ctx := context.Background()

	st, _ := env.studentRepo.CreateStudent(ctx, student.Student{Name: "Aya", Phone: "+243970000001"})
	crs, err := env.courseSvc.Create(ctx, courseFixture("Intro"))
	assert.NoError(t, err)

	// unknown student / course
	req, rec := newRequest(http.MethodPost, "/v1/students/nope/enroll/"+crs.ID)
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req, rec = newRequest(http.MethodPost, "/v1/students/"+st.ID+"/enroll/nope")
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// enroll, then enroll again: same result, counted once
	for i := 0; i < 2; i++ {
		req, rec = newRequest(http.MethodPost, "/v1/students/"+st.ID+"/enroll/"+crs.ID)
		env.server.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)

		var got student.Student
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, []string{crs.ID}, got.EnrolledCourses)
	}

	crs, err = env.courseSvc.GetByID(ctx, crs.ID)
	assert.NoError(t, err)
	assert.Equal(t, "1", crs.EnrollmentCount)
}

func Test_studentApi_updateAndDestroy(t *testing.T) {
	env := setup(t)
	ctx := context.Background()

	st, _ := env.studentRepo.CreateStudent(ctx, student.Student{Name: "Aya", Phone: "+243970000001"})
	adminToken := env.getAdminToken(t, "boss")

	req, rec := newAuthRequest(http.MethodPut, "/v1/students/"+st.ID, adminToken, []byte(`{"name":"Aya M."}`))
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var got student.Student
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Aya M.", got.Name)
	assert.Equal(t, st.Phone, got.Phone)

	req, rec = newAuthRequest(http.MethodDelete, "/v1/students/"+st.ID, adminToken)
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req, rec = newAuthRequest(http.MethodDelete, "/v1/students/"+st.ID, adminToken)
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
