package donativos_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prevlav/cumplimiento-api/internal/application/donativos"
	"github.com/prevlav/cumplimiento-api/internal/domain"
	"github.com/prevlav/cumplimiento-api/internal/domain/entity"
	"github.com/prevlav/cumplimiento-api/internal/infrastructure/memoria"
	"github.com/prevlav/cumplimiento-api/internal/infrastructure/sat"
)

func seguimientoConAviso(t *testing.T, store *memoria.Store, conUmbral bool) (*memoria.TrackingRepo, string) {
	t.Helper()

	donorRepo := memoria.NewDonorRepo(store)
	trackRepo := memoria.NewTrackingRepo(store)

	donor := &entity.Donor{ID: "don_1", Nombre: "María López", RFC: "LOMA800101AB1"}
	require.NoError(t, donorRepo.Create(donor))

	inicio := time.Now().AddDate(0, -1, 0)
	seg := &entity.DonationTracking{
		ID:                 "seg_1",
		DonorID:            &donor.ID,
		FechaInicioPeriodo: &inicio,
		Acumulacion:        decimal.RequireFromString("400000"),
		LimiteAviso:        &conUmbral,
		CreatedAt:          time.Now(),
	}
	require.NoError(t, trackRepo.Create(seg))
	return trackRepo, seg.ID
}

func TestAvisoSAT_GeneraXMLCuandoHayUmbral(t *testing.T) {
	trackRepo, segID := seguimientoConAviso(t, memoria.NewStore(), true)
	uc := donativos.NewAvisoSATUseCase(trackRepo, sat.NewAvisoBuilder("OSC123456AB1"))

	out, err := uc.Generate(segID)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<referencia_aviso>seg_1</referencia_aviso>")
	assert.Contains(t, string(out), "María López")
}

func TestAvisoSAT_UmbralNoAlcanzadoEsConflicto(t *testing.T) {
	trackRepo, segID := seguimientoConAviso(t, memoria.NewStore(), false)
	uc := donativos.NewAvisoSATUseCase(trackRepo, sat.NewAvisoBuilder("OSC123456AB1"))

	_, err := uc.Generate(segID)
	assert.ErrorIs(t, err, domain.ErrConflict,
		"presentar un aviso que no corresponde es tan grave como omitir uno")
}

func TestAvisoSAT_SeguimientoInexistente(t *testing.T) {
	trackRepo := memoria.NewTrackingRepo(memoria.NewStore())
	uc := donativos.NewAvisoSATUseCase(trackRepo, sat.NewAvisoBuilder("OSC123456AB1"))

	_, err := uc.Generate("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
