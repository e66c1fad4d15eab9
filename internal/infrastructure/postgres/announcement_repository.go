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

var _ repository.AnnouncementRepository = (*AnnouncementRepo)(nil)

// AnnouncementRepo implementación de AnnouncementRepository (usable con pool o tx).
type AnnouncementRepo struct {
	q Querier
}

// NewAnnouncementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAnnouncementRepository(q Querier) *AnnouncementRepo {
	return &AnnouncementRepo{q: q}
}

// Create persiste un aviso.
func (r *AnnouncementRepo) Create(aviso *entity.Announcement) error {
	query := `
		INSERT INTO avisos (id, titulo, mensaje, remitente, id_organizacion, estado, fecha, urgencia, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		aviso.ID, aviso.Titulo, aviso.Mensaje, aviso.Remitente, aviso.OrganizationID,
		aviso.Estado, aviso.Fecha, aviso.Urgencia, aviso.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert aviso: %w", err)
	}
	return nil
}

// GetByID obtiene un aviso por ID.
func (r *AnnouncementRepo) GetByID(id string) (*entity.Announcement, error) {
	query := `
		SELECT id, titulo, mensaje, remitente, id_organizacion, estado, fecha, urgencia, created_at
		FROM avisos WHERE id = $1`
	var a entity.Announcement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Titulo, &a.Mensaje, &a.Remitente, &a.OrganizationID,
		&a.Estado, &a.Fecha, &a.Urgencia, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get aviso: %w", err)
	}
	return &a, nil
}

// List lista avisos, más recientes primero. Con orgID devuelve los dirigidos
// a esa OSC más los comunicados generales (sin destinatario).
func (r *AnnouncementRepo) List(orgID *string, limit, offset int) ([]*entity.Announcement, error) {
	query := `
		SELECT id, titulo, mensaje, remitente, id_organizacion, estado, fecha, urgencia, created_at
		FROM avisos
		WHERE $1::text IS NULL OR id_organizacion IS NULL OR id_organizacion = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list avisos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Announcement
	for rows.Next() {
		var a entity.Announcement
		if err := rows.Scan(
			&a.ID, &a.Titulo, &a.Mensaje, &a.Remitente, &a.OrganizationID,
			&a.Estado, &a.Fecha, &a.Urgencia, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan aviso: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// UpdateEstado actualiza el estado de un aviso.
func (r *AnnouncementRepo) UpdateEstado(id, estado string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE avisos SET estado = $2 WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("update estado aviso: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
