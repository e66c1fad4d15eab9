package repository

import "github.com/prevlav/cumplimiento-api/internal/domain/entity"

// DonorRepository define el puerto de persistencia para Donor.
type DonorRepository interface {
	Create(donor *entity.Donor) error
	GetByID(id string) (*entity.Donor, error)
	GetByRFC(rfc string) (*entity.Donor, error)
	List(limit, offset int) ([]*entity.Donor, error)
	Count() (int64, error)
}
