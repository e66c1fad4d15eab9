package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/prevlav/cumplimiento-api/internal/application/dto"
	"github.com/prevlav/cumplimiento-api/internal/domain"
	"github.com/prevlav/cumplimiento-api/internal/domain/entity"
	"github.com/prevlav/cumplimiento-api/internal/domain/repository"
)

// AnnouncementUseCase casos de uso para avisos (comunicados a OSCs).
type AnnouncementUseCase struct {
	repo    repository.AnnouncementRepository
	orgRepo repository.OrganizationRepository
}

// NewAnnouncementUseCase construye el caso de uso.
func NewAnnouncementUseCase(repo repository.AnnouncementRepository, orgRepo repository.OrganizationRepository) *AnnouncementUseCase {
	return &AnnouncementUseCase{repo: repo, orgRepo: orgRepo}
}

// Create crea un aviso. Urgencia y estado se almacenan tal como llegan (el
// modelo los normaliza al leer); un estado vacío inicia en "enviado". Una OSC
// destino inexistente sí es error de integridad.
func (uc *AnnouncementUseCase) Create(in dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	if in.OrganizationID != nil && *in.OrganizationID != "" {
		org, err := uc.orgRepo.GetByID(*in.OrganizationID)
		if err != nil {
			return nil, err
		}
		if org == nil {
			return nil, domain.ErrNotFound
		}
	}
	estado := in.Estado
	if estado == "" {
		estado = entity.AvisoEnviado
	}
	aviso := &entity.Announcement{
		ID:             uuid.New().String(),
		Titulo:         in.Titulo,
		Mensaje:        in.Mensaje,
		Remitente:      in.Remitente,
		OrganizationID: in.OrganizationID,
		Estado:         estado,
		Fecha:          in.Fecha,
		Urgencia:       in.Urgencia,
		CreatedAt:      time.Now(),
	}
	if err := uc.repo.Create(aviso); err != nil {
		return nil, err
	}
	return entityToAnnouncementResponse(aviso), nil
}

// GetByID obtiene un aviso por ID.
func (uc *AnnouncementUseCase) GetByID(id string) (*dto.AnnouncementResponse, error) {
	aviso, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if aviso == nil {
		return nil, nil
	}
	return entityToAnnouncementResponse(aviso), nil
}

// List lista avisos, opcionalmente filtrados por OSC.
func (uc *AnnouncementUseCase) List(orgID *string, limit, offset int) (*dto.AnnouncementListResponse, error) {
	list, err := uc.repo.List(orgID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AnnouncementResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *entityToAnnouncementResponse(a))
	}
	return &dto.AnnouncementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateEstado aplica una transición de estado dirigida por el portal
// (enviado -> recibido -> leido -> archivado). El orden no se impone, pero el
// valor sí debe pertenecer al vocabulario: aquí es entrada de API, no dato
// almacenado que tolerar.
func (uc *AnnouncementUseCase) UpdateEstado(id, estado string) (*dto.AnnouncementResponse, error) {
	switch estado {
	case entity.AvisoEnviado, entity.AvisoRecibido, entity.AvisoLeido, entity.AvisoArchivado:
	default:
		return nil, domain.ErrInvalidInput
	}
	aviso, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if aviso == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.UpdateEstado(id, estado); err != nil {
		return nil, err
	}
	aviso.Estado = estado
	return entityToAnnouncementResponse(aviso), nil
}

func entityToAnnouncementResponse(a *entity.Announcement) *dto.AnnouncementResponse {
	if a == nil {
		return nil
	}
	return &dto.AnnouncementResponse{
		ID:        a.ID,
		Titulo:    a.Titulo,
		Mensaje:   a.Mensaje,
		Remitente: a.Remitente,
		Urgencia:  a.UrgencyLevel(),
		Fecha:     a.FormattedDate(),
		Estado:    a.Status(),
		Preview:   a.Preview(entity.PreviewLength),
	}
}
