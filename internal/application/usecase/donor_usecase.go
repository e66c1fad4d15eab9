package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/prevlav/cumplimiento-api/internal/application/dto"
	"github.com/prevlav/cumplimiento-api/internal/domain"
	"github.com/prevlav/cumplimiento-api/internal/domain/entity"
	"github.com/prevlav/cumplimiento-api/internal/domain/repository"
)

// DonorUseCase casos de uso para donantes.
type DonorUseCase struct {
	repo repository.DonorRepository
}

// NewDonorUseCase construye el caso de uso con el puerto de persistencia.
func NewDonorUseCase(repo repository.DonorRepository) *DonorUseCase {
	return &DonorUseCase{repo: repo}
}

// Create registra un donante. Un RFC malformado no rechaza el alta (política
// del dominio: validar es un predicado, no una excepción); un RFC repetido sí
// devuelve domain.ErrDuplicate.
func (uc *DonorUseCase) Create(in dto.CreateDonorRequest) (*dto.DonorResponse, error) {
	if in.RFC != "" {
		existing, _ := uc.repo.GetByRFC(in.RFC)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	donor := &entity.Donor{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		RFC:       in.RFC,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(donor); err != nil {
		return nil, err
	}
	return entityToDonorResponse(donor), nil
}

// GetByID obtiene un donante por ID.
func (uc *DonorUseCase) GetByID(id string) (*dto.DonorResponse, error) {
	donor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if donor == nil {
		return nil, nil
	}
	return entityToDonorResponse(donor), nil
}

// List lista donantes con paginación.
func (uc *DonorUseCase) List(limit, offset int) (*dto.DonorListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DonorResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *entityToDonorResponse(d))
	}
	return &dto.DonorListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func entityToDonorResponse(d *entity.Donor) *dto.DonorResponse {
	if d == nil {
		return nil
	}
	return &dto.DonorResponse{
		ID:     d.ID,
		Nombre: d.Nombre,
		RFC:    d.RFC,
	}
}
