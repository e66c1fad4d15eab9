package memoria

import (
	"context"
	"sync"

	"github.com/prevlav/cumplimiento-api/internal/domain/repository"
)

// TxRunner serializa las "transacciones" del driver en memoria con un mutex
// propio: dos registros concurrentes del mismo donante leerían el mismo
// acumulado y uno pisaría al otro. No hay rollback; el registro de donativos
// escribe el donativo primero y la acumulación después, de modo que un fallo
// a medias deja a lo sumo un donativo sin acumular, nunca una acumulación
// fantasma.
type TxRunner struct {
	txMu      sync.Mutex
	donRepo   *DonationRepo
	trackRepo *TrackingRepo
}

// NewTxRunner crea el runner sobre los repos del store compartido.
func NewTxRunner(donRepo *DonationRepo, trackRepo *TrackingRepo) *TxRunner {
	return &TxRunner{donRepo: donRepo, trackRepo: trackRepo}
}

// Run ejecuta fn bajo el mutex de transacción.
func (t *TxRunner) Run(ctx context.Context, fn func(
	donRepo repository.DonationRepository,
	trackRepo repository.TrackingRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.txMu.Lock()
	defer t.txMu.Unlock()
	return fn(t.donRepo, t.trackRepo)
}
