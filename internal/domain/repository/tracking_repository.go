package repository

import "github.com/prevlav/cumplimiento-api/internal/domain/entity"

// TrackingRepository define el puerto de persistencia para DonationTracking.
type TrackingRepository interface {
	Create(seguimiento *entity.DonationTracking) error
	Update(seguimiento *entity.DonationTracking) error
	GetByID(id string) (*entity.DonationTracking, error)
	// GetOpenByDonor devuelve el seguimiento más reciente del donante
	// (el periodo potencialmente abierto), o nil si no existe ninguno.
	GetOpenByDonor(donorID string) (*entity.DonationTracking, error)
	ListByDonor(donorID string) ([]*entity.DonationTracking, error)
	List(limit, offset int) ([]*entity.DonationTracking, error)
	// CountWithAviso cuenta los seguimientos con bandera de aviso activa.
	CountWithAviso() (int64, error)
}
