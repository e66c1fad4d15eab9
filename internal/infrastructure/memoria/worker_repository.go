package memoria

import (
	"strings"

	"github.com/prevlav/cumplimiento-api/internal/domain"
	"github.com/prevlav/cumplimiento-api/internal/domain/entity"
	"github.com/prevlav/cumplimiento-api/internal/domain/repository"
)

// WorkerRepo implementación en memoria de repository.WorkerRepository.
// El hash de contraseña vive en un mapa aparte, nunca dentro de la entidad.
type WorkerRepo struct {
	s *Store
}

var _ repository.WorkerRepository = (*WorkerRepo)(nil)

// NewWorkerRepo crea el repositorio sobre el store compartido.
func NewWorkerRepo(s *Store) *WorkerRepo {
	return &WorkerRepo{s: s}
}

func (r *WorkerRepo) Create(worker *entity.Worker, passwordHash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.workers[worker.ID]; ok {
		return domain.ErrDuplicate
	}
	email := strings.ToLower(worker.Email)
	for _, w := range r.s.workers {
		if strings.ToLower(w.Email) == email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *worker
	r.s.workers[worker.ID] = &cp
	r.s.workerOrden = append(r.s.workerOrden, worker.ID)
	r.s.hashes[worker.ID] = passwordHash
	return nil
}

func (r *WorkerRepo) GetByID(id string) (*entity.Worker, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	w, ok := r.s.workers[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *WorkerRepo) GetByEmail(email string) (*entity.Worker, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	email = strings.ToLower(email)
	for _, id := range r.s.workerOrden {
		if w := r.s.workers[id]; strings.ToLower(w.Email) == email {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *WorkerRepo) GetPasswordHash(id string) (string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.hashes[id], nil
}

func (r *WorkerRepo) List(limit, offset int) ([]*entity.Worker, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ids := pagina(r.s.workerOrden, limit, offset)
	out := make([]*entity.Worker, 0, len(ids))
	for _, id := range ids {
		cp := *r.s.workers[id]
		out = append(out, &cp)
	}
	return out, nil
}
