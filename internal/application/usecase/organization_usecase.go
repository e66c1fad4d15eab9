package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/prevlav/cumplimiento-api/internal/application/dto"
	"github.com/prevlav/cumplimiento-api/internal/domain"
	"github.com/prevlav/cumplimiento-api/internal/domain/entity"
	"github.com/prevlav/cumplimiento-api/internal/domain/repository"
)

// OrganizationUseCase casos de uso para OSCs supervisadas.
type OrganizationUseCase struct {
	repo repository.OrganizationRepository
}

// NewOrganizationUseCase construye el caso de uso.
func NewOrganizationUseCase(repo repository.OrganizationRepository) *OrganizationUseCase {
	return &OrganizationUseCase{repo: repo}
}

// Create registra una OSC. Devuelve domain.ErrDuplicate si el RFC ya existe.
// El perfil es inmutable después del alta; no hay Update.
func (uc *OrganizationUseCase) Create(in dto.CreateOrganizationRequest) (*dto.OrganizationResponse, error) {
	if in.RFC != "" {
		existing, _ := uc.repo.GetByRFC(in.RFC)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	org := &entity.Organization{
		ID:             uuid.New().String(),
		Nombre:         in.Nombre,
		Tipo:           in.Tipo,
		RFC:            in.RFC,
		Representante:  in.Representante,
		Telefono:       in.Telefono,
		Email:          in.Email,
		Direccion:      in.Direccion,
		Actividades:    in.Actividades,
		Financiamiento: in.Financiamiento,
		CreatedAt:      time.Now(),
	}
	if err := uc.repo.Create(org); err != nil {
		return nil, err
	}
	return entityToOrganizationResponse(org), nil
}

// GetByID obtiene una OSC por ID.
func (uc *OrganizationUseCase) GetByID(id string) (*dto.OrganizationResponse, error) {
	org, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, nil
	}
	return entityToOrganizationResponse(org), nil
}

// GetContactInfo devuelve la proyección de contacto de una OSC.
func (uc *OrganizationUseCase) GetContactInfo(id string) (*entity.ContactInfo, error) {
	org, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, nil
	}
	contacto := org.GetContactInfo()
	return &contacto, nil
}

// List lista OSCs con paginación.
func (uc *OrganizationUseCase) List(limit, offset int) (*dto.OrganizationListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrganizationResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *entityToOrganizationResponse(o))
	}
	return &dto.OrganizationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func entityToOrganizationResponse(o *entity.Organization) *dto.OrganizationResponse {
	if o == nil {
		return nil
	}
	return &dto.OrganizationResponse{
		ID:            o.ID,
		Nombre:        o.Nombre,
		Tipo:          o.Tipo,
		RFC:           o.RFC,
		Representante: o.Representante,
		Contacto:      o.GetContactInfo(),
	}
}
