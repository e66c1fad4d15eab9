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

var _ repository.DonorRepository = (*DonorRepo)(nil)

// DonorRepo implementación de DonorRepository (usable con pool o tx).
type DonorRepo struct {
	q Querier
}

// NewDonorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDonorRepository(q Querier) *DonorRepo {
	return &DonorRepo{q: q}
}

// Create persiste un donante.
func (r *DonorRepo) Create(donor *entity.Donor) error {
	query := `
		INSERT INTO donantes (id, nombre, rfc, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		donor.ID, donor.Nombre, donor.RFC, donor.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert donante: %w", err)
	}
	return nil
}

// GetByID obtiene un donante por ID.
func (r *DonorRepo) GetByID(id string) (*entity.Donor, error) {
	query := `SELECT id, nombre, rfc, created_at FROM donantes WHERE id = $1`
	var d entity.Donor
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.Nombre, &d.RFC, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get donante: %w", err)
	}
	return &d, nil
}

// GetByRFC obtiene un donante por RFC.
func (r *DonorRepo) GetByRFC(rfc string) (*entity.Donor, error) {
	query := `SELECT id, nombre, rfc, created_at FROM donantes WHERE rfc = $1`
	var d entity.Donor
	err := r.q.QueryRow(context.Background(), query, rfc).Scan(
		&d.ID, &d.Nombre, &d.RFC, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get donante por rfc: %w", err)
	}
	return &d, nil
}

// List lista donantes con paginación, más recientes primero.
func (r *DonorRepo) List(limit, offset int) ([]*entity.Donor, error) {
	query := `
		SELECT id, nombre, rfc, created_at
		FROM donantes ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list donantes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Donor
	for rows.Next() {
		var d entity.Donor
		if err := rows.Scan(&d.ID, &d.Nombre, &d.RFC, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan donante: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Count cuenta los donantes registrados.
func (r *DonorRepo) Count() (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM donantes`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count donantes: %w", err)
	}
	return n, nil
}
