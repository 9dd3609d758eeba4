package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticTokenVerifier(t *testing.T) {
	v := StaticTokenVerifier{Token: DefaultAdminToken}

	assert.True(t, v.VerifyToken(DefaultAdminToken))
	assert.False(t, v.VerifyToken("wrong"))
	assert.False(t, v.VerifyToken(""))
	assert.False(t, v.VerifyToken(DefaultAdminToken+" "))
}

func TestRequireToken(t *testing.T) {
	app := fiber.New()

	reached := false
	app.Post("/guarded", RequireToken(StaticTokenVerifier{Token: DefaultAdminToken}), func(c *fiber.Ctx) error {
		reached = true
		return c.JSON(fiber.Map{"success": true})
	})

	testCases := []struct {
		name           string
		header         string
		expectedStatus int
		expectReached  bool
	}{
		{
			name:           "no header",
			header:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong token",
			header:         "Bearer wrong-token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing bearer prefix",
			header:         DefaultAdminToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "lowercase scheme",
			header:         "bearer " + DefaultAdminToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "valid token",
			header:         "Bearer " + DefaultAdminToken,
			expectedStatus: http.StatusOK,
			expectReached:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reached = false

			req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)

			defer func() {
				_ = resp.Body.Close()
			}()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode)
			assert.Equal(t, tc.expectReached, reached)

			if tc.expectedStatus == http.StatusUnauthorized {
				body, _ := io.ReadAll(resp.Body)
				assert.JSONEq(t, `{"error":"Unauthorized"}`, string(body))
			}
		})
	}
}
