package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/prevlav/cumplimiento-api/internal/application/dto"
	"github.com/prevlav/cumplimiento-api/internal/domain/entity"
	"github.com/prevlav/cumplimiento-api/pkg/jwt"
)

// Locals keys para WorkerID y Rol en Fiber.
const (
	LocalWorkerID = "worker_id"
	LocalRol      = "rol"
)

// AuthMiddleware valida el Bearer Token JWT y extrae WorkerID y Rol a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		workerID, rol, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalWorkerID, workerID)
		c.Locals(LocalRol, rol)
		return c.Next()
	}
}

// RequirePermission exige que el rol del token incluya el permiso. El permiso
// se deriva de la tabla estática del dominio: un rol desconocido en el token
// opera como visualizador.
func RequirePermission(permiso string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		w := entity.Worker{Rol: GetRol(c)}
		if !w.HasPermission(permiso) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "permiso insuficiente: " + permiso})
		}
		return c.Next()
	}
}

// GetWorkerID devuelve el WorkerID del contexto (después del middleware de auth).
func GetWorkerID(c *fiber.Ctx) string {
	v := c.Locals(LocalWorkerID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRol devuelve el rol del contexto (después del middleware de auth).
func GetRol(c *fiber.Ctx) string {
	v := c.Locals(LocalRol)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
