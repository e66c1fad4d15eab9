package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/prevlav/cumplimiento-api/internal/interfaces/http"
	"github.com/prevlav/cumplimiento-api/pkg/jwt"
)

const testSecret = "secreto-de-pruebas"

// buildTestApp arma una app mínima con el middleware de auth y dos rutas:
// una solo autenticada y otra que exige el permiso de registrar donativos.
func buildTestApp() *fiber.App {
	app := fiber.New()

	protegida := app.Group("/api", apphttp.AuthMiddleware(testSecret))
	protegida.Get("/perfil", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"worker_id": apphttp.GetWorkerID(c),
			"rol":       apphttp.GetRol(c),
		})
	})
	protegida.Post("/donativos",
		apphttp.RequirePermission("create:donations"),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusCreated) },
	)

	return app
}

func tokenForRole(t *testing.T, rol string) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, "trab_1", rol, "cumplimiento-osc", 15)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeaderDevuelve401(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, http.MethodGet, "/api/perfil", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalidoDevuelve401(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/perfil", nil)
	req.Header.Set("Authorization", "Basic abc123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenConFirmaIncorrecta(t *testing.T) {
	app := buildTestApp()

	ajeno, err := jwt.Generate("otro-secreto", "trab_1", "admin", "cumplimiento-osc", 15)
	require.NoError(t, err)

	resp := doRequest(t, app, http.MethodGet, "/api/perfil", ajeno)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenValidoPropagaLocals(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, http.MethodGet, "/api/perfil", tokenForRole(t, "gestor"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequirePermission
// ──────────────────────────────────────────────────────────────────────────────

func TestRequirePermission_AdminPasa(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, http.MethodPost, "/api/donativos", tokenForRole(t, "admin"))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestRequirePermission_GestorPasa(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, http.MethodPost, "/api/donativos", tokenForRole(t, "gestor"))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestRequirePermission_VisualizadorRecibe403(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, http.MethodPost, "/api/donativos", tokenForRole(t, "visualizador"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequirePermission_RolDesconocidoOperaComoVisualizador(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, http.MethodPost, "/api/donativos", tokenForRole(t, "superusuario"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un rol corrupto en el token jamás obtiene permisos de escritura")
}
