package memoria

import (
	"github.com/prevlav/cumplimiento-api/internal/domain"
	"github.com/prevlav/cumplimiento-api/internal/domain/entity"
	"github.com/prevlav/cumplimiento-api/internal/domain/repository"
)

// DonorRepo implementación en memoria de repository.DonorRepository.
type DonorRepo struct {
	s *Store
}

var _ repository.DonorRepository = (*DonorRepo)(nil)

// NewDonorRepo crea el repositorio sobre el store compartido.
func NewDonorRepo(s *Store) *DonorRepo {
	return &DonorRepo{s: s}
}

func (r *DonorRepo) Create(donor *entity.Donor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.donors[donor.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *donor
	r.s.donors[donor.ID] = &cp
	r.s.donorOrden = append(r.s.donorOrden, donor.ID)
	return nil
}

func (r *DonorRepo) GetByID(id string) (*entity.Donor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	d, ok := r.s.donors[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *DonorRepo) GetByRFC(rfc string) (*entity.Donor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, id := range r.s.donorOrden {
		if d := r.s.donors[id]; d.RFC == rfc {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *DonorRepo) List(limit, offset int) ([]*entity.Donor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ids := pagina(r.s.donorOrden, limit, offset)
	out := make([]*entity.Donor, 0, len(ids))
	for _, id := range ids {
		cp := *r.s.donors[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *DonorRepo) Count() (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.donors)), nil
}
