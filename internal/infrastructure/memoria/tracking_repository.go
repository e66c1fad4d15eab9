package memoria

import (
	"github.com/prevlav/cumplimiento-api/internal/domain"
	"github.com/prevlav/cumplimiento-api/internal/domain/entity"
	"github.com/prevlav/cumplimiento-api/internal/domain/repository"
)

// TrackingRepo implementación en memoria de repository.TrackingRepository.
type TrackingRepo struct {
	s *Store
}

var _ repository.TrackingRepository = (*TrackingRepo)(nil)

// NewTrackingRepo crea el repositorio sobre el store compartido.
func NewTrackingRepo(s *Store) *TrackingRepo {
	return &TrackingRepo{s: s}
}

func (r *TrackingRepo) Create(seguimiento *entity.DonationTracking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.trackings[seguimiento.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *seguimiento
	cp.Donation, cp.Donor = nil, nil
	r.s.trackings[seguimiento.ID] = &cp
	r.s.trackingOrden = append(r.s.trackingOrden, seguimiento.ID)
	return nil
}

func (r *TrackingRepo) Update(seguimiento *entity.DonationTracking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.trackings[seguimiento.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *seguimiento
	cp.Donation, cp.Donor = nil, nil
	r.s.trackings[seguimiento.ID] = &cp
	return nil
}

func (r *TrackingRepo) GetByID(id string) (*entity.DonationTracking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.trackings[id]
	if !ok {
		return nil, nil
	}
	return r.conRelaciones(t), nil
}

func (r *TrackingRepo) GetOpenByDonor(donorID string) (*entity.DonationTracking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := len(r.s.trackingOrden) - 1; i >= 0; i-- {
		t := r.s.trackings[r.s.trackingOrden[i]]
		if t.DonorID != nil && *t.DonorID == donorID {
			return r.conRelaciones(t), nil
		}
	}
	return nil, nil
}

func (r *TrackingRepo) ListByDonor(donorID string) ([]*entity.DonationTracking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.DonationTracking, 0)
	for i := len(r.s.trackingOrden) - 1; i >= 0; i-- {
		t := r.s.trackings[r.s.trackingOrden[i]]
		if t.DonorID != nil && *t.DonorID == donorID {
			out = append(out, r.conRelaciones(t))
		}
	}
	return out, nil
}

func (r *TrackingRepo) List(limit, offset int) ([]*entity.DonationTracking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ids := pagina(r.s.trackingOrden, limit, offset)
	out := make([]*entity.DonationTracking, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.conRelaciones(r.s.trackings[id]))
	}
	return out, nil
}

func (r *TrackingRepo) CountWithAviso() (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, t := range r.s.trackings {
		if t.LimiteAviso != nil && *t.LimiteAviso {
			n++
		}
	}
	return n, nil
}

// conRelaciones copia el seguimiento y le adjunta donante y último donativo.
// Requiere al menos el RLock tomado.
func (r *TrackingRepo) conRelaciones(t *entity.DonationTracking) *entity.DonationTracking {
	cp := *t
	if cp.DonorID != nil {
		if d, ok := r.s.donors[*cp.DonorID]; ok {
			dcp := *d
			cp.Donor = &dcp
		}
	}
	if cp.DonationID != nil {
		if d, ok := r.s.donations[*cp.DonationID]; ok {
			dcp := *d
			cp.Donation = &dcp
		}
	}
	return &cp
}
