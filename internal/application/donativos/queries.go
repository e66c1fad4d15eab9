package donativos

import (
	"github.com/prevlav/cumplimiento-api/internal/application/dto"
	"github.com/prevlav/cumplimiento-api/internal/domain/repository"
)

// DonationQueryUseCase consultas de lectura sobre donativos. Los
// repositorios devuelven los donativos con sus relaciones ya adjuntas.
type DonationQueryUseCase struct {
	repo repository.DonationRepository
}

// NewDonationQueryUseCase construye el caso de uso.
func NewDonationQueryUseCase(repo repository.DonationRepository) *DonationQueryUseCase {
	return &DonationQueryUseCase{repo: repo}
}

// GetByID obtiene un donativo por ID.
func (uc *DonationQueryUseCase) GetByID(id string) (*dto.DonationResponse, error) {
	d, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	return ToDonationResponse(d), nil
}

// List lista donativos con paginación.
func (uc *DonationQueryUseCase) List(limit, offset int) (*dto.DonationListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DonationResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *ToDonationResponse(d))
	}
	return &dto.DonationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListByDonor lista los donativos de un donante.
func (uc *DonationQueryUseCase) ListByDonor(donorID string, limit, offset int) (*dto.DonationListResponse, error) {
	list, err := uc.repo.ListByDonor(donorID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DonationResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *ToDonationResponse(d))
	}
	return &dto.DonationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// TrackingQueryUseCase consultas de lectura sobre seguimientos PLD.
type TrackingQueryUseCase struct {
	repo repository.TrackingRepository
}

// NewTrackingQueryUseCase construye el caso de uso.
func NewTrackingQueryUseCase(repo repository.TrackingRepository) *TrackingQueryUseCase {
	return &TrackingQueryUseCase{repo: repo}
}

// GetByID obtiene un seguimiento por ID.
func (uc *TrackingQueryUseCase) GetByID(id string) (*dto.TrackingResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	return ToTrackingResponse(t), nil
}

// List lista seguimientos con paginación.
func (uc *TrackingQueryUseCase) List(limit, offset int) (*dto.TrackingListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TrackingResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *ToTrackingResponse(t))
	}
	return &dto.TrackingListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListByDonor lista los seguimientos de un donante (el periodo abierto y los
// periodos vencidos anteriores).
func (uc *TrackingQueryUseCase) ListByDonor(donorID string) (*dto.TrackingListResponse, error) {
	list, err := uc.repo.ListByDonor(donorID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TrackingResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *ToTrackingResponse(t))
	}
	return &dto.TrackingListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: len(items), Offset: 0},
	}, nil
}
