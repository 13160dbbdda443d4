package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Bshaarr/Morox-platform/core/course"
)

func Test_courseApi_query_public(t *testing.T) {
	env := setup(t)
	ctx := context.Background()

	assert.NoError(t, env.courseSvc.Seed(ctx))

	req, rec := newRequest(http.MethodGet, "/v1/courses")
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var courses []course.Course
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &courses))
	assert.Len(t, courses, len(course.DefaultCourses))

	req, rec = newRequest(http.MethodGet, "/v1/courses/"+courses[0].ID)
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req, rec = newRequest(http.MethodGet, "/v1/courses/nope")
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_courseApi_create(t *testing.T) {
	env := setup(t)
	adminToken := env.getAdminToken(t, "boss")

	body := marchallObj(t, courseFixture("Prompt basics"))

	tests := []httpTest{
		{name: "Auth required", body: body, wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "Admin required", body: body, token: env.getNonAdminToken(t), wantCode: http.StatusForbidden,
			wantData: marchallObj(t, httpErr{Error: "permission denied"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, "/v1/courses", tt.token, tt.body)
			env.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	// bad category
	req, rec := newAuthRequest(http.MethodPost, "/v1/courses", adminToken,
		[]byte(`{"title":"T","description":"D","category":"lol","duration":"4 weeks","icon":"robot"}`))
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req, rec = newAuthRequest(http.MethodPost, "/v1/courses", adminToken, body)
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var crs course.Course
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &crs))
	assert.NotEmpty(t, crs.ID)
	assert.True(t, crs.IsActive)
	assert.Equal(t, "0", crs.EnrollmentCount)
}

func Test_courseApi_updateAndDestroy(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	adminToken := env.getAdminToken(t, "boss")

	crs, err := env.courseSvc.Create(ctx, courseFixture("Intro"))
	assert.NoError(t, err)

	req, rec := newAuthRequest(http.MethodPut, "/v1/courses/"+crs.ID, adminToken, []byte(`{"is_active":false}`))
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var got course.Course
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.False(t, got.IsActive)
	assert.Equal(t, crs.Title, got.Title)

	req, rec = newAuthRequest(http.MethodPut, "/v1/courses/nope", adminToken, []byte(`{"title":"X"}`))
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req, rec = newAuthRequest(http.MethodDelete, "/v1/courses/"+crs.ID, adminToken)
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req, rec = newAuthRequest(http.MethodDelete, "/v1/courses/"+crs.ID, adminToken)
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
