package entity

import "time"

// Worker representa a un miembro del personal del órgano supervisor.
// Los permisos se derivan únicamente del rol mediante una tabla estática;
// no hay overrides por usuario.
type Worker struct {
	ID        string
	Rol       string
	Email     string
	CreatedAt time.Time
}

// rolePermissions tabla estática rol -> permisos. El comodín "*" de admin se
// resuelve por atajo en HasPermission, pero se conserva aquí como documentación
// del contrato.
var rolePermissions = map[string][]string{
	RolAdmin:        {"*"},
	RolGestor:       {"read:donations", "create:donations", "read:avisos", "create:avisos"},
	RolContador:     {"read:donations", "read:reports"},
	RolVisualizador: {"read:avisos", "read:donations:public"},
}

// Role normaliza el rol almacenado. Un rol desconocido cae a "visualizador":
// ante datos corruptos se otorga el mínimo privilegio, nunca uno elevado.
func (w *Worker) Role() string {
	switch w.Rol {
	case RolAdmin, RolGestor, RolContador, RolVisualizador:
		return w.Rol
	}
	return RolVisualizador
}

// HasPermission reporta si el rol del trabajador incluye el permiso.
// admin tiene todos los permisos sin consultar la tabla.
func (w *Worker) HasPermission(permiso string) bool {
	rol := w.Role()
	if rol == RolAdmin {
		return true
	}
	for _, p := range rolePermissions[rol] {
		if p == permiso {
			return true
		}
	}
	return false
}

// CanManageDonations reporta si puede registrar donativos.
func (w *Worker) CanManageDonations() bool {
	return w.HasPermission("create:donations") || w.Role() == RolAdmin
}

// CanViewReports reporta si puede consultar reportes.
func (w *Worker) CanViewReports() bool {
	return w.HasPermission("read:reports") || w.Role() == RolAdmin
}
