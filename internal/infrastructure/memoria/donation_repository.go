package memoria

import (
	"github.com/shopspring/decimal"

	"github.com/prevlav/cumplimiento-api/internal/domain"
	"github.com/prevlav/cumplimiento-api/internal/domain/entity"
	"github.com/prevlav/cumplimiento-api/internal/domain/repository"
)

// DonationRepo implementación en memoria de repository.DonationRepository.
// Las lecturas devuelven el donativo con donante y cuenta ya adjuntos.
type DonationRepo struct {
	s *Store
}

var _ repository.DonationRepository = (*DonationRepo)(nil)

// NewDonationRepo crea el repositorio sobre el store compartido.
func NewDonationRepo(s *Store) *DonationRepo {
	return &DonationRepo{s: s}
}

func (r *DonationRepo) Create(donativo *entity.Donation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.donations[donativo.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *donativo
	cp.Donor, cp.BankAccount = nil, nil
	r.s.donations[donativo.ID] = &cp
	r.s.donationOrden = append(r.s.donationOrden, donativo.ID)
	return nil
}

func (r *DonationRepo) GetByID(id string) (*entity.Donation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	d, ok := r.s.donations[id]
	if !ok {
		return nil, nil
	}
	return r.conRelaciones(d), nil
}

func (r *DonationRepo) List(limit, offset int) ([]*entity.Donation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ids := pagina(r.s.donationOrden, limit, offset)
	out := make([]*entity.Donation, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.conRelaciones(r.s.donations[id]))
	}
	return out, nil
}

func (r *DonationRepo) ListByDonor(donorID string, limit, offset int) ([]*entity.Donation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	filtrados := make([]string, 0)
	for _, id := range r.s.donationOrden {
		d := r.s.donations[id]
		if d.DonorID != nil && *d.DonorID == donorID {
			filtrados = append(filtrados, id)
		}
	}
	ids := pagina(filtrados, limit, offset)
	out := make([]*entity.Donation, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.conRelaciones(r.s.donations[id]))
	}
	return out, nil
}

func (r *DonationRepo) CountAndSum() (int64, decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sum := decimal.Zero
	for _, d := range r.s.donations {
		sum = sum.Add(d.Cantidad)
	}
	return int64(len(r.s.donations)), sum, nil
}

// conRelaciones copia el donativo y le adjunta donante y cuenta si existen.
// Requiere al menos el RLock tomado.
func (r *DonationRepo) conRelaciones(d *entity.Donation) *entity.Donation {
	cp := *d
	if cp.DonorID != nil {
		if don, ok := r.s.donors[*cp.DonorID]; ok {
			dcp := *don
			cp.Donor = &dcp
		}
	}
	if cp.BankAccountID != nil {
		if c, ok := r.s.cuentas[*cp.BankAccountID]; ok {
			ccp := *c
			cp.BankAccount = &ccp
		}
	}
	return &cp
}
