package dto

// RegisterWorkerRequest alta de un trabajador del órgano supervisor.
type RegisterWorkerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Rol      string `json:"rol"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT más la proyección del trabajador.
type LoginResponse struct {
	Token      string         `json:"token"`
	Trabajador WorkerResponse `json:"trabajador"`
}

// WorkerPermissions resumen de permisos derivados del rol.
// Las claves camelCase las espera así el portal.
type WorkerPermissions struct {
	ManageDonations bool `json:"manageDonations"`
	ViewReports     bool `json:"viewReports"`
}

// WorkerResponse proyección de un trabajador; el rol ya viene normalizado.
type WorkerResponse struct {
	ID          string            `json:"id"`
	Email       string            `json:"email"`
	Rol         string            `json:"rol"`
	Permissions WorkerPermissions `json:"permissions"`
}
