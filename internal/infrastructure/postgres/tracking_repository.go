package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/prevlav/cumplimiento-api/internal/domain"
	"github.com/prevlav/cumplimiento-api/internal/domain/entity"
	"github.com/prevlav/cumplimiento-api/internal/domain/repository"
)

var _ repository.TrackingRepository = (*TrackingRepo)(nil)

// TrackingRepo implementación de TrackingRepository (usable con pool o tx).
type TrackingRepo struct {
	q Querier
}

// NewTrackingRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTrackingRepository(q Querier) *TrackingRepo {
	return &TrackingRepo{q: q}
}

// Create persiste un seguimiento.
func (r *TrackingRepo) Create(seguimiento *entity.DonationTracking) error {
	query := `
		INSERT INTO seguimientos
			(id, id_donativo, id_donante, fecha_inicio_periodo, acumulacion, limite_identificacion, limite_aviso, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		seguimiento.ID, seguimiento.DonationID, seguimiento.DonorID, seguimiento.FechaInicioPeriodo,
		seguimiento.Acumulacion, seguimiento.LimiteIdentificacion, seguimiento.LimiteAviso, seguimiento.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert seguimiento: %w", err)
	}
	return nil
}

// Update actualiza acumulación, banderas y último donativo de un seguimiento.
func (r *TrackingRepo) Update(seguimiento *entity.DonationTracking) error {
	query := `
		UPDATE seguimientos
		SET id_donativo = $2, acumulacion = $3, limite_identificacion = $4, limite_aviso = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		seguimiento.ID, seguimiento.DonationID, seguimiento.Acumulacion,
		seguimiento.LimiteIdentificacion, seguimiento.LimiteAviso,
	)
	if err != nil {
		return fmt.Errorf("update seguimiento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

const trackingSelect = `
	SELECT s.id, s.id_donativo, s.id_donante, s.fecha_inicio_periodo, s.acumulacion,
	       s.limite_identificacion, s.limite_aviso, s.created_at,
	       don.id, don.nombre, don.rfc, don.created_at,
	       d.id, d.cantidad, d.id_cuenta_banco, d.id_donante, d.created_at
	FROM seguimientos s
	LEFT JOIN donantes don ON don.id = s.id_donante
	LEFT JOIN donativos d ON d.id = s.id_donativo`

// GetByID obtiene un seguimiento por ID con relaciones.
func (r *TrackingRepo) GetByID(id string) (*entity.DonationTracking, error) {
	row := r.q.QueryRow(context.Background(), trackingSelect+` WHERE s.id = $1`, id)
	t, err := scanTracking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get seguimiento: %w", err)
	}
	return t, nil
}

// GetOpenByDonor devuelve el seguimiento más reciente del donante. Dentro de
// una transacción de registro, el FOR UPDATE serializa acumulaciones
// concurrentes del mismo donante.
func (r *TrackingRepo) GetOpenByDonor(donorID string) (*entity.DonationTracking, error) {
	query := `
		SELECT id, id_donativo, id_donante, fecha_inicio_periodo, acumulacion,
		       limite_identificacion, limite_aviso, created_at
		FROM seguimientos WHERE id_donante = $1
		ORDER BY created_at DESC LIMIT 1
		FOR UPDATE`
	var t entity.DonationTracking
	err := r.q.QueryRow(context.Background(), query, donorID).Scan(
		&t.ID, &t.DonationID, &t.DonorID, &t.FechaInicioPeriodo, &t.Acumulacion,
		&t.LimiteIdentificacion, &t.LimiteAviso, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get seguimiento abierto: %w", err)
	}
	return &t, nil
}

// ListByDonor lista los seguimientos de un donante, más recientes primero.
func (r *TrackingRepo) ListByDonor(donorID string) ([]*entity.DonationTracking, error) {
	query := trackingSelect + ` WHERE s.id_donante = $1 ORDER BY s.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, donorID)
	if err != nil {
		return nil, fmt.Errorf("list seguimientos por donante: %w", err)
	}
	defer rows.Close()
	return scanTrackings(rows)
}

// List lista seguimientos con paginación, más recientes primero.
func (r *TrackingRepo) List(limit, offset int) ([]*entity.DonationTracking, error) {
	query := trackingSelect + ` ORDER BY s.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list seguimientos: %w", err)
	}
	defer rows.Close()
	return scanTrackings(rows)
}

// CountWithAviso cuenta los seguimientos con bandera de aviso activa.
func (r *TrackingRepo) CountWithAviso() (int64, error) {
	var n int64
	query := `SELECT COUNT(*) FROM seguimientos WHERE limite_aviso = TRUE`
	if err := r.q.QueryRow(context.Background(), query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count seguimientos con aviso: %w", err)
	}
	return n, nil
}

func scanTracking(row pgx.Row) (*entity.DonationTracking, error) {
	var t entity.DonationTracking
	var donID, donNombre, donRFC *string
	var donCreated *time.Time
	var dID *string
	var dCantidad decimal.NullDecimal
	var dCuentaID, dDonorID *string
	var dCreated *time.Time
	err := row.Scan(
		&t.ID, &t.DonationID, &t.DonorID, &t.FechaInicioPeriodo, &t.Acumulacion,
		&t.LimiteIdentificacion, &t.LimiteAviso, &t.CreatedAt,
		&donID, &donNombre, &donRFC, &donCreated,
		&dID, &dCantidad, &dCuentaID, &dDonorID, &dCreated,
	)
	if err != nil {
		return nil, err
	}
	if donID != nil {
		t.Donor = &entity.Donor{ID: *donID, Nombre: *donNombre, RFC: *donRFC, CreatedAt: *donCreated}
	}
	if dID != nil {
		t.Donation = &entity.Donation{
			ID: *dID, Cantidad: dCantidad.Decimal, BankAccountID: dCuentaID,
			DonorID: dDonorID, CreatedAt: *dCreated,
		}
	}
	return &t, nil
}

func scanTrackings(rows pgx.Rows) ([]*entity.DonationTracking, error) {
	var list []*entity.DonationTracking
	for rows.Next() {
		t, err := scanTracking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan seguimiento: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
