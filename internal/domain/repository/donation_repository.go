package repository

import (
	"github.com/shopspring/decimal"

	"github.com/prevlav/cumplimiento-api/internal/domain/entity"
)

// DonationRepository define el puerto de persistencia para Donation.
type DonationRepository interface {
	Create(donativo *entity.Donation) error
	GetByID(id string) (*entity.Donation, error)
	List(limit, offset int) ([]*entity.Donation, error)
	ListByDonor(donorID string, limit, offset int) ([]*entity.Donation, error)
	// CountAndSum devuelve el número total de donativos y la suma de cantidades
	// (para el dashboard del portal).
	CountAndSum() (int64, decimal.Decimal, error)
}
