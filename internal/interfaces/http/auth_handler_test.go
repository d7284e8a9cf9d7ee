package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/garments-tracker-api/internal/application/auth"
	apphttp "github.com/jhoicas/garments-tracker-api/internal/interfaces/http"
)

func buildAuthApp(secureCookies bool) *fiber.App {
	uc := auth.NewUseCase(auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})
	handler := apphttp.NewAuthHandler(uc, secureCookies)

	app := fiber.New()
	app.Post("/jwt", handler.IssueToken)
	app.Post("/logout", handler.Logout)
	return app
}

func findCookie(t *testing.T, resp *http.Response, name string) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestIssueToken_EmiteCookieHTTPOnly(t *testing.T) {
	app := buildAuthApp(true)

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"ana@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cookie := findCookie(t, resp, apphttp.CookieToken)
	require.NotNil(t, cookie, "la credencial debe viajar en la cookie")
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly, "la cookie nunca es accesible desde JS")
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
	assert.Equal(t, testExpMin*60, cookie.MaxAge, "la cookie vive lo mismo que el token")
}

func TestIssueToken_EnDevelopmentBajaALax(t *testing.T) {
	app := buildAuthApp(false)

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"ana@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	cookie := findCookie(t, resp, apphttp.CookieToken)
	require.NotNil(t, cookie)
	assert.False(t, cookie.Secure, "en development no hay TLS")
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestIssueToken_SinEmail_Retorna400(t *testing.T) {
	app := buildAuthApp(true)

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogout_DescartaLaCookie(t *testing.T) {
	app := buildAuthApp(true)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cookie := findCookie(t, resp, apphttp.CookieToken)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.MaxAge < 0 || !cookie.Expires.IsZero(),
		"la cookie debe expirar de inmediato")
}
