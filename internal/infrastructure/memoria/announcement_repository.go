package memoria

import (
	"github.com/prevlav/cumplimiento-api/internal/domain"
	"github.com/prevlav/cumplimiento-api/internal/domain/entity"
	"github.com/prevlav/cumplimiento-api/internal/domain/repository"
)

// AnnouncementRepo implementación en memoria de repository.AnnouncementRepository.
type AnnouncementRepo struct {
	s *Store
}

var _ repository.AnnouncementRepository = (*AnnouncementRepo)(nil)

// NewAnnouncementRepo crea el repositorio sobre el store compartido.
func NewAnnouncementRepo(s *Store) *AnnouncementRepo {
	return &AnnouncementRepo{s: s}
}

func (r *AnnouncementRepo) Create(aviso *entity.Announcement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.avisos[aviso.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *aviso
	cp.Organization = nil
	r.s.avisos[aviso.ID] = &cp
	r.s.avisoOrden = append(r.s.avisoOrden, aviso.ID)
	return nil
}

func (r *AnnouncementRepo) GetByID(id string) (*entity.Announcement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.avisos[id]
	if !ok {
		return nil, nil
	}
	return r.conRelaciones(a), nil
}

// List con orgID devuelve los avisos dirigidos a esa OSC más los comunicados
// generales (sin destinatario).
func (r *AnnouncementRepo) List(orgID *string, limit, offset int) ([]*entity.Announcement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	filtrados := make([]string, 0, len(r.s.avisoOrden))
	for _, id := range r.s.avisoOrden {
		a := r.s.avisos[id]
		if orgID == nil || a.OrganizationID == nil || *a.OrganizationID == *orgID {
			filtrados = append(filtrados, id)
		}
	}
	ids := pagina(filtrados, limit, offset)
	out := make([]*entity.Announcement, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.conRelaciones(r.s.avisos[id]))
	}
	return out, nil
}

func (r *AnnouncementRepo) UpdateEstado(id, estado string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.avisos[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.Estado = estado
	return nil
}

func (r *AnnouncementRepo) conRelaciones(a *entity.Announcement) *entity.Announcement {
	cp := *a
	if cp.OrganizationID != nil {
		if o, ok := r.s.orgs[*cp.OrganizationID]; ok {
			ocp := *o
			cp.Organization = &ocp
		}
	}
	return &cp
}
