package memoria

import (
	"github.com/prevlav/cumplimiento-api/internal/domain"
	"github.com/prevlav/cumplimiento-api/internal/domain/entity"
	"github.com/prevlav/cumplimiento-api/internal/domain/repository"
)

// BankAccountRepo implementación en memoria de repository.BankAccountRepository.
type BankAccountRepo struct {
	s *Store
}

var _ repository.BankAccountRepository = (*BankAccountRepo)(nil)

// NewBankAccountRepo crea el repositorio sobre el store compartido.
func NewBankAccountRepo(s *Store) *BankAccountRepo {
	return &BankAccountRepo{s: s}
}

func (r *BankAccountRepo) Create(cuenta *entity.BankAccount) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.cuentas[cuenta.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *cuenta
	r.s.cuentas[cuenta.ID] = &cp
	r.s.cuentaOrden = append(r.s.cuentaOrden, cuenta.ID)
	return nil
}

func (r *BankAccountRepo) GetByID(id string) (*entity.BankAccount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.cuentas[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *BankAccountRepo) ListByDonor(donorID string) ([]*entity.BankAccount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.BankAccount, 0)
	for i := len(r.s.cuentaOrden) - 1; i >= 0; i-- {
		c := r.s.cuentas[r.s.cuentaOrden[i]]
		if c.DonorID != nil && *c.DonorID == donorID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *BankAccountRepo) List(limit, offset int) ([]*entity.BankAccount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ids := pagina(r.s.cuentaOrden, limit, offset)
	out := make([]*entity.BankAccount, 0, len(ids))
	for _, id := range ids {
		cp := *r.s.cuentas[id]
		out = append(out, &cp)
	}
	return out, nil
}
