// Package memoria implementa los puertos de repositorio sobre mapas en
// memoria protegidos por mutex. Es el driver por defecto: el portal funciona
// sin base de datos y los mismos repos sirven de dobles en las pruebas de los
// casos de uso.
package memoria

import (
	"sync"

	"github.com/prevlav/cumplimiento-api/internal/domain/entity"
)

// Store guarda todas las colecciones bajo un solo RWMutex. Los slices *Orden
// conservan el orden de inserción; las listas se recorren de atrás hacia
// adelante para devolver lo más reciente primero.
type Store struct {
	mu sync.RWMutex

	donors     map[string]*entity.Donor
	donorOrden []string

	cuentas     map[string]*entity.BankAccount
	cuentaOrden []string

	orgs     map[string]*entity.Organization
	orgOrden []string

	donations     map[string]*entity.Donation
	donationOrden []string

	trackings     map[string]*entity.DonationTracking
	trackingOrden []string

	avisos     map[string]*entity.Announcement
	avisoOrden []string

	workers     map[string]*entity.Worker
	workerOrden []string
	hashes      map[string]string
}

// NewStore crea un Store vacío.
func NewStore() *Store {
	return &Store{
		donors:    make(map[string]*entity.Donor),
		cuentas:   make(map[string]*entity.BankAccount),
		orgs:      make(map[string]*entity.Organization),
		donations: make(map[string]*entity.Donation),
		trackings: make(map[string]*entity.DonationTracking),
		avisos:    make(map[string]*entity.Announcement),
		workers:   make(map[string]*entity.Worker),
		hashes:    make(map[string]string),
	}
}

// pagina aplica offset/limit sobre ids recorridos de atrás hacia adelante.
// limit <= 0 significa sin tope.
func pagina(orden []string, limit, offset int) []string {
	out := make([]string, 0, len(orden))
	for i := len(orden) - 1; i >= 0; i-- {
		out = append(out, orden[i])
	}
	if offset > 0 {
		if offset >= len(out) {
			return nil
		}
		out = out[offset:]
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}
