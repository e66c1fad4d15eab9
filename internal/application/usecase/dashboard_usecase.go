package usecase

import (
	"github.com/prevlav/cumplimiento-api/internal/application/dto"
	"github.com/prevlav/cumplimiento-api/internal/domain/repository"
	"github.com/prevlav/cumplimiento-api/pkg/moneda"
)

// DashboardUseCase agrega los contadores de la página de inicio del portal.
type DashboardUseCase struct {
	donationRepo repository.DonationRepository
	donorRepo    repository.DonorRepository
	orgRepo      repository.OrganizationRepository
	trackingRepo repository.TrackingRepository
}

// NewDashboardUseCase construye el caso de uso con los repositorios de lectura.
func NewDashboardUseCase(
	donationRepo repository.DonationRepository,
	donorRepo repository.DonorRepository,
	orgRepo repository.OrganizationRepository,
	trackingRepo repository.TrackingRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		donationRepo: donationRepo,
		donorRepo:    donorRepo,
		orgRepo:      orgRepo,
		trackingRepo: trackingRepo,
	}
}

// Get devuelve los agregados del portal: totales de donativos, donantes,
// OSCs y seguimientos con aviso pendiente.
func (uc *DashboardUseCase) Get() (*dto.DashboardResponse, error) {
	count, sum, err := uc.donationRepo.CountAndSum()
	if err != nil {
		return nil, err
	}
	donantes, err := uc.donorRepo.Count()
	if err != nil {
		return nil, err
	}
	organizaciones, err := uc.orgRepo.Count()
	if err != nil {
		return nil, err
	}
	avisos, err := uc.trackingRepo.CountWithAviso()
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		TotalDonativos:   count,
		MontoTotal:       moneda.MXN(sum),
		Donantes:         donantes,
		Organizaciones:   organizaciones,
		AvisosPendientes: avisos,
	}, nil
}
