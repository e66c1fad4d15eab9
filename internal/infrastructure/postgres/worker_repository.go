package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/prevlav/cumplimiento-api/internal/domain"
	"github.com/prevlav/cumplimiento-api/internal/domain/entity"
	"github.com/prevlav/cumplimiento-api/internal/domain/repository"
)

var _ repository.WorkerRepository = (*WorkerRepo)(nil)

// WorkerRepo implementación de WorkerRepository (usable con pool o tx).
// El hash bcrypt vive en su columna y nunca sale en la entidad.
type WorkerRepo struct {
	q Querier
}

// NewWorkerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWorkerRepository(q Querier) *WorkerRepo {
	return &WorkerRepo{q: q}
}

// Create persiste un trabajador con su hash de contraseña.
func (r *WorkerRepo) Create(worker *entity.Worker, passwordHash string) error {
	query := `
		INSERT INTO trabajadores (id, rol, email, password_hash, created_at)
		VALUES ($1, $2, LOWER($3), $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		worker.ID, worker.Rol, worker.Email, passwordHash, worker.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert trabajador: %w", err)
	}
	return nil
}

// GetByID obtiene un trabajador por ID.
func (r *WorkerRepo) GetByID(id string) (*entity.Worker, error) {
	query := `SELECT id, rol, email, created_at FROM trabajadores WHERE id = $1`
	var w entity.Worker
	err := r.q.QueryRow(context.Background(), query, id).Scan(&w.ID, &w.Rol, &w.Email, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get trabajador: %w", err)
	}
	return &w, nil
}

// GetByEmail obtiene un trabajador por email (insensible a mayúsculas).
func (r *WorkerRepo) GetByEmail(email string) (*entity.Worker, error) {
	query := `SELECT id, rol, email, created_at FROM trabajadores WHERE email = LOWER($1)`
	var w entity.Worker
	err := r.q.QueryRow(context.Background(), query, email).Scan(&w.ID, &w.Rol, &w.Email, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get trabajador por email: %w", err)
	}
	return &w, nil
}

// GetPasswordHash devuelve el hash bcrypt del trabajador, "" si no existe.
func (r *WorkerRepo) GetPasswordHash(id string) (string, error) {
	var hash string
	err := r.q.QueryRow(context.Background(),
		`SELECT password_hash FROM trabajadores WHERE id = $1`, id).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get password hash: %w", err)
	}
	return hash, nil
}

// List lista trabajadores con paginación, más recientes primero.
func (r *WorkerRepo) List(limit, offset int) ([]*entity.Worker, error) {
	query := `
		SELECT id, rol, email, created_at
		FROM trabajadores ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list trabajadores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Worker
	for rows.Next() {
		var w entity.Worker
		if err := rows.Scan(&w.ID, &w.Rol, &w.Email, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan trabajador: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}
