package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/inkwell-cms/inkwell/internal/auth"
	"github.com/inkwell-cms/inkwell/internal/config"
	"github.com/inkwell-cms/inkwell/internal/db/models"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open sqlite in-memory db")

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.Setting{}))

	cfg := &config.Config{
		Webserver: config.Webserver{URL: "http://localhost", Port: 3000},
		Auth:      config.Auth{AdminToken: auth.DefaultAdminToken},
	}

	return New(cfg, db)
}

func TestCheckAlive(t *testing.T) {
	s := newTestService(t)

	resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, CheckAlivePath, nil), -1)
	require.NoError(t, err)

	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// during the shutdown drain the endpoint turns unhealthy
	s.alive.Store(false)

	resp2, err := s.App.Test(httptest.NewRequest(http.MethodGet, CheckAlivePath, nil), -1)
	require.NoError(t, err)

	defer func() {
		_ = resp2.Body.Close()
	}()

	assert.Equal(t, http.StatusServiceUnavailable, resp2.StatusCode)
}

func TestUnknownAPIPathIsJSON404(t *testing.T) {
	s := newTestService(t)

	for _, target := range []string{"/api/unknown", "/api/posts/1/comments"} {
		resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
		require.NoError(t, err)

		raw, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.JSONEq(t, `{"error":"Not found"}`, string(raw))
	}
}

func TestStaticAdminConsoleIsServed(t *testing.T) {
	s := newTestService(t)

	for _, target := range []string{"/", "/index.html", "/admin.js", "/style.css"} {
		resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
		require.NoError(t, err)
		_ = resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode, "expected %s to be served", target)
	}
}

func TestMissingStaticAssetIs404(t *testing.T) {
	s := newTestService(t)

	resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, "/no-such-asset.png", nil), -1)
	require.NoError(t, err)

	defer func() {
		_ = resp.Body.Close()
	}()

	raw, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Not Found", string(raw))
}

func TestAPIRoutesAreWired(t *testing.T) {
	s := newTestService(t)

	// login rejects unknown credentials through the real wiring
	req := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"username":"nobody","password":"nothing"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.App.Test(req, -1)
	require.NoError(t, err)

	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
