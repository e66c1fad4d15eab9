package repository

import "github.com/prevlav/cumplimiento-api/internal/domain/entity"

// OrganizationRepository define el puerto de persistencia para Organization.
type OrganizationRepository interface {
	Create(org *entity.Organization) error
	GetByID(id string) (*entity.Organization, error)
	GetByRFC(rfc string) (*entity.Organization, error)
	List(limit, offset int) ([]*entity.Organization, error)
	Count() (int64, error)
}
