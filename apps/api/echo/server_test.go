package echoapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/Bshaarr/Morox-platform/core"
)

func Test_requestTimeoutMiddleware(t *testing.T) {
	timeout := 50 * time.Millisecond

	app := echo.New()
	app.Use(requestTimeoutMiddleware(timeout))
	app.GET("/", func(ctx echo.Context) error {
		deadline, ok := ctx.Request().Context().Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(timeout), deadline, 20*time.Millisecond)
		return ctx.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func Test_setup_serverTimeouts(t *testing.T) {
	conf := &core.Config{
		TestMode:  true,
		SecretKey: []byte("secret"),
		Server:    core.ServerConfig{ReadTimeout: 5 * time.Second, WriteTimeout: 10 * time.Second},
	}
	s := NewServer(&Options{Conf: conf, DisableReqLogs: true}).(*server)
	assert.Equal(t, conf.Server.ReadTimeout, s.app.Server.ReadTimeout)
	assert.Equal(t, conf.Server.WriteTimeout, s.app.Server.WriteTimeout)
}
