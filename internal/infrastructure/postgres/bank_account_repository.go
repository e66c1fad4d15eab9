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

var _ repository.BankAccountRepository = (*BankAccountRepo)(nil)

// BankAccountRepo implementación de BankAccountRepository (usable con pool o tx).
type BankAccountRepo struct {
	q Querier
}

// NewBankAccountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBankAccountRepository(q Querier) *BankAccountRepo {
	return &BankAccountRepo{q: q}
}

// Create persiste una cuenta bancaria.
func (r *BankAccountRepo) Create(cuenta *entity.BankAccount) error {
	query := `
		INSERT INTO cuentas_banco (id, clabe, num_cuenta, banco, id_donante, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		cuenta.ID, cuenta.CLABE, cuenta.NumCuenta, cuenta.Banco, cuenta.DonorID, cuenta.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cuenta: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID.
func (r *BankAccountRepo) GetByID(id string) (*entity.BankAccount, error) {
	query := `
		SELECT id, clabe, num_cuenta, banco, id_donante, created_at
		FROM cuentas_banco WHERE id = $1`
	var c entity.BankAccount
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.CLABE, &c.NumCuenta, &c.Banco, &c.DonorID, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cuenta: %w", err)
	}
	return &c, nil
}

// ListByDonor lista las cuentas de un donante.
func (r *BankAccountRepo) ListByDonor(donorID string) ([]*entity.BankAccount, error) {
	query := `
		SELECT id, clabe, num_cuenta, banco, id_donante, created_at
		FROM cuentas_banco WHERE id_donante = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, donorID)
	if err != nil {
		return nil, fmt.Errorf("list cuentas por donante: %w", err)
	}
	defer rows.Close()
	return scanCuentas(rows)
}

// List lista cuentas con paginación, más recientes primero.
func (r *BankAccountRepo) List(limit, offset int) ([]*entity.BankAccount, error) {
	query := `
		SELECT id, clabe, num_cuenta, banco, id_donante, created_at
		FROM cuentas_banco ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list cuentas: %w", err)
	}
	defer rows.Close()
	return scanCuentas(rows)
}

func scanCuentas(rows pgx.Rows) ([]*entity.BankAccount, error) {
	var list []*entity.BankAccount
	for rows.Next() {
		var c entity.BankAccount
		if err := rows.Scan(&c.ID, &c.CLABE, &c.NumCuenta, &c.Banco, &c.DonorID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cuenta: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
