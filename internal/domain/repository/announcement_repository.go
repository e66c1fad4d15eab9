package repository

import "github.com/prevlav/cumplimiento-api/internal/domain/entity"

// AnnouncementRepository define el puerto de persistencia para Announcement.
type AnnouncementRepository interface {
	Create(aviso *entity.Announcement) error
	GetByID(id string) (*entity.Announcement, error)
	// List filtra por organización cuando orgID no es nil.
	List(orgID *string, limit, offset int) ([]*entity.Announcement, error)
	UpdateEstado(id, estado string) error
}
