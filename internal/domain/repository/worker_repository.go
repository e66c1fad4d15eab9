package repository

import "github.com/prevlav/cumplimiento-api/internal/domain/entity"

// WorkerRepository define el puerto de persistencia para Worker.
// El hash de contraseña se maneja aparte del modelo de dominio para que la
// proyección del trabajador nunca lo arrastre.
type WorkerRepository interface {
	Create(worker *entity.Worker, passwordHash string) error
	GetByID(id string) (*entity.Worker, error)
	GetByEmail(email string) (*entity.Worker, error)
	// GetPasswordHash devuelve el hash bcrypt del trabajador, "" si no existe.
	GetPasswordHash(id string) (string, error)
	List(limit, offset int) ([]*entity.Worker, error)
}
