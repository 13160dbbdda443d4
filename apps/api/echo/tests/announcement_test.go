package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Bshaarr/Morox-platform/core/announcement"
)

func Test_announcementApi(t *testing.T) {
	env := setup(t)
	adminToken := env.getAdminToken(t, "boss")

	body := marchallObj(t, announcement.NewAnnouncement{Title: "New intake", Content: "Registration opens Monday."})

	req, rec := newRequest(http.MethodPost, "/v1/announcements", body)
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req, rec = newAuthRequest(http.MethodPost, "/v1/announcements", adminToken, body)
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var ann announcement.Announcement
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ann))
	assert.NotEmpty(t, ann.ID)
	assert.True(t, ann.IsActive)

	// announcements are public
	req, rec = newRequest(http.MethodGet, "/v1/announcements")
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var anns []announcement.Announcement
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &anns))
	assert.Len(t, anns, 1)

	req, rec = newAuthRequest(http.MethodPut, "/v1/announcements/"+ann.ID, adminToken, []byte(`{"is_active":false}`))
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var got announcement.Announcement
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.False(t, got.IsActive)
	assert.Equal(t, ann.Title, got.Title)

	req, rec = newAuthRequest(http.MethodDelete, "/v1/announcements/"+ann.ID, adminToken)
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req, rec = newAuthRequest(http.MethodDelete, "/v1/announcements/"+ann.ID, adminToken)
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
