package memoria

import (
	"github.com/prevlav/cumplimiento-api/internal/domain"
	"github.com/prevlav/cumplimiento-api/internal/domain/entity"
	"github.com/prevlav/cumplimiento-api/internal/domain/repository"
)

// OrganizationRepo implementación en memoria de repository.OrganizationRepository.
type OrganizationRepo struct {
	s *Store
}

var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

// NewOrganizationRepo crea el repositorio sobre el store compartido.
func NewOrganizationRepo(s *Store) *OrganizationRepo {
	return &OrganizationRepo{s: s}
}

func (r *OrganizationRepo) Create(org *entity.Organization) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orgs[org.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *org
	r.s.orgs[org.ID] = &cp
	r.s.orgOrden = append(r.s.orgOrden, org.ID)
	return nil
}

func (r *OrganizationRepo) GetByID(id string) (*entity.Organization, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.orgs[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *OrganizationRepo) GetByRFC(rfc string) (*entity.Organization, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, id := range r.s.orgOrden {
		if o := r.s.orgs[id]; o.RFC == rfc {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *OrganizationRepo) List(limit, offset int) ([]*entity.Organization, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ids := pagina(r.s.orgOrden, limit, offset)
	out := make([]*entity.Organization, 0, len(ids))
	for _, id := range ids {
		cp := *r.s.orgs[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *OrganizationRepo) Count() (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.orgs)), nil
}
