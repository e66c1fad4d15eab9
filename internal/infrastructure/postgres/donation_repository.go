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

var _ repository.DonationRepository = (*DonationRepo)(nil)

// DonationRepo implementación de DonationRepository (usable con pool o tx).
// Las lecturas hacen LEFT JOIN a donante y cuenta para devolver el donativo
// con sus relaciones adjuntas.
type DonationRepo struct {
	q Querier
}

// NewDonationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDonationRepository(q Querier) *DonationRepo {
	return &DonationRepo{q: q}
}

// Create persiste un donativo.
func (r *DonationRepo) Create(donativo *entity.Donation) error {
	query := `
		INSERT INTO donativos (id, cantidad, id_cuenta_banco, id_donante, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		donativo.ID, donativo.Cantidad, donativo.BankAccountID, donativo.DonorID, donativo.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert donativo: %w", err)
	}
	return nil
}

const donationSelect = `
	SELECT d.id, d.cantidad, d.id_cuenta_banco, d.id_donante, d.created_at,
	       don.id, don.nombre, don.rfc, don.created_at,
	       c.id, c.clabe, c.num_cuenta, c.banco, c.id_donante, c.created_at
	FROM donativos d
	LEFT JOIN donantes don ON don.id = d.id_donante
	LEFT JOIN cuentas_banco c ON c.id = d.id_cuenta_banco`

// GetByID obtiene un donativo por ID con relaciones.
func (r *DonationRepo) GetByID(id string) (*entity.Donation, error) {
	row := r.q.QueryRow(context.Background(), donationSelect+` WHERE d.id = $1`, id)
	d, err := scanDonation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get donativo: %w", err)
	}
	return d, nil
}

// List lista donativos con paginación, más recientes primero.
func (r *DonationRepo) List(limit, offset int) ([]*entity.Donation, error) {
	query := donationSelect + ` ORDER BY d.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list donativos: %w", err)
	}
	defer rows.Close()
	return scanDonations(rows)
}

// ListByDonor lista los donativos de un donante con paginación.
func (r *DonationRepo) ListByDonor(donorID string, limit, offset int) ([]*entity.Donation, error) {
	query := donationSelect + ` WHERE d.id_donante = $1 ORDER BY d.created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, donorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list donativos por donante: %w", err)
	}
	defer rows.Close()
	return scanDonations(rows)
}

// CountAndSum devuelve total de donativos y suma de cantidades.
func (r *DonationRepo) CountAndSum() (int64, decimal.Decimal, error) {
	var n int64
	var sum decimal.Decimal
	query := `SELECT COUNT(*), COALESCE(SUM(cantidad), 0) FROM donativos`
	err := r.q.QueryRow(context.Background(), query).Scan(&n, &sum)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("count/sum donativos: %w", err)
	}
	return n, sum, nil
}

func scanDonation(row pgx.Row) (*entity.Donation, error) {
	var d entity.Donation
	var donID, donNombre, donRFC *string
	var donCreated *time.Time
	var cID, cCLABE, cNum, cBanco, cDonorID *string
	var cCreated *time.Time
	err := row.Scan(
		&d.ID, &d.Cantidad, &d.BankAccountID, &d.DonorID, &d.CreatedAt,
		&donID, &donNombre, &donRFC, &donCreated,
		&cID, &cCLABE, &cNum, &cBanco, &cDonorID, &cCreated,
	)
	if err != nil {
		return nil, err
	}
	if donID != nil {
		d.Donor = &entity.Donor{ID: *donID, Nombre: *donNombre, RFC: *donRFC, CreatedAt: *donCreated}
	}
	if cID != nil {
		d.BankAccount = &entity.BankAccount{
			ID: *cID, CLABE: *cCLABE, NumCuenta: *cNum, Banco: *cBanco,
			DonorID: cDonorID, CreatedAt: *cCreated,
		}
	}
	return &d, nil
}

func scanDonations(rows pgx.Rows) ([]*entity.Donation, error) {
	var list []*entity.Donation
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan donativo: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
