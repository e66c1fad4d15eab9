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

var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

// OrganizationRepo implementación de OrganizationRepository (usable con pool o tx).
type OrganizationRepo struct {
	q Querier
}

// NewOrganizationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrganizationRepository(q Querier) *OrganizationRepo {
	return &OrganizationRepo{q: q}
}

// Create persiste una OSC.
func (r *OrganizationRepo) Create(org *entity.Organization) error {
	query := `
		INSERT INTO organizaciones
			(id, nombre, tipo, rfc, representante, telefono, email, direccion, actividades, financiamiento, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		org.ID, org.Nombre, org.Tipo, org.RFC, org.Representante,
		org.Telefono, org.Email, org.Direccion, org.Actividades, org.Financiamiento, org.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert organizacion: %w", err)
	}
	return nil
}

// GetByID obtiene una OSC por ID.
func (r *OrganizationRepo) GetByID(id string) (*entity.Organization, error) {
	return r.getBy("id", id)
}

// GetByRFC obtiene una OSC por RFC.
func (r *OrganizationRepo) GetByRFC(rfc string) (*entity.Organization, error) {
	return r.getBy("rfc", rfc)
}

func (r *OrganizationRepo) getBy(col, val string) (*entity.Organization, error) {
	query := fmt.Sprintf(`
		SELECT id, nombre, tipo, rfc, representante, telefono, email, direccion, actividades, financiamiento, created_at
		FROM organizaciones WHERE %s = $1`, col)
	var o entity.Organization
	err := r.q.QueryRow(context.Background(), query, val).Scan(
		&o.ID, &o.Nombre, &o.Tipo, &o.RFC, &o.Representante,
		&o.Telefono, &o.Email, &o.Direccion, &o.Actividades, &o.Financiamiento, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organizacion: %w", err)
	}
	return &o, nil
}

// List lista OSCs con paginación, más recientes primero.
func (r *OrganizationRepo) List(limit, offset int) ([]*entity.Organization, error) {
	query := `
		SELECT id, nombre, tipo, rfc, representante, telefono, email, direccion, actividades, financiamiento, created_at
		FROM organizaciones ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list organizaciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Organization
	for rows.Next() {
		var o entity.Organization
		if err := rows.Scan(
			&o.ID, &o.Nombre, &o.Tipo, &o.RFC, &o.Representante,
			&o.Telefono, &o.Email, &o.Direccion, &o.Actividades, &o.Financiamiento, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan organizacion: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Count cuenta las OSCs registradas.
func (r *OrganizationRepo) Count() (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM organizaciones`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count organizaciones: %w", err)
	}
	return n, nil
}
