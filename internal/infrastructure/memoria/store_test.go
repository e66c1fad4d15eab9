package memoria_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prevlav/cumplimiento-api/internal/domain"
	"github.com/prevlav/cumplimiento-api/internal/domain/entity"
	"github.com/prevlav/cumplimiento-api/internal/infrastructure/memoria"
)

// ──────────────────────────────────────────────────────────────────────────────
// Orden y paginación
// ──────────────────────────────────────────────────────────────────────────────

func TestDonorRepo_ListaDelMasRecienteAlMasViejo(t *testing.T) {
	repo := memoria.NewDonorRepo(memoria.NewStore())
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(&entity.Donor{ID: id, Nombre: id}))
	}

	out, err := repo.List(10, 0)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "c", out[0].ID, "el último insertado sale primero")
	assert.Equal(t, "a", out[2].ID)
}

func TestDonorRepo_Paginacion(t *testing.T) {
	repo := memoria.NewDonorRepo(memoria.NewStore())
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, repo.Create(&entity.Donor{ID: id}))
	}

	out, err := repo.List(2, 1)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "c", out[0].ID)
	assert.Equal(t, "b", out[1].ID)

	fuera, err := repo.List(2, 10)
	require.NoError(t, err)
	assert.Empty(t, fuera, "offset más allá del final devuelve lista vacía")
}

func TestDonorRepo_IDDuplicado(t *testing.T) {
	repo := memoria.NewDonorRepo(memoria.NewStore())
	require.NoError(t, repo.Create(&entity.Donor{ID: "a"}))
	assert.ErrorIs(t, repo.Create(&entity.Donor{ID: "a"}), domain.ErrDuplicate)
}

func TestDonorRepo_GetByIDDevuelveCopia(t *testing.T) {
	repo := memoria.NewDonorRepo(memoria.NewStore())
	require.NoError(t, repo.Create(&entity.Donor{ID: "a", Nombre: "Original"}))

	leido, err := repo.GetByID("a")
	require.NoError(t, err)
	leido.Nombre = "Mutado"

	otraVez, err := repo.GetByID("a")
	require.NoError(t, err)
	assert.Equal(t, "Original", otraVez.Nombre,
		"mutar lo leído no toca lo almacenado")
}

func TestDonorRepo_Inexistente(t *testing.T) {
	repo := memoria.NewDonorRepo(memoria.NewStore())
	d, err := repo.GetByID("nada")
	assert.NoError(t, err)
	assert.Nil(t, d, "inexistente es (nil, nil), no un error")
}

// ──────────────────────────────────────────────────────────────────────────────
// Relaciones adjuntas
// ──────────────────────────────────────────────────────────────────────────────

func TestDonationRepo_AdjuntaRelaciones(t *testing.T) {
	store := memoria.NewStore()
	donorRepo := memoria.NewDonorRepo(store)
	cuentaRepo := memoria.NewBankAccountRepo(store)
	donRepo := memoria.NewDonationRepo(store)

	require.NoError(t, donorRepo.Create(&entity.Donor{ID: "don_1", Nombre: "Ana"}))
	require.NoError(t, cuentaRepo.Create(&entity.BankAccount{ID: "cta_1", CLABE: "012345678901234567"}))

	donorID, cuentaID := "don_1", "cta_1"
	require.NoError(t, donRepo.Create(&entity.Donation{
		ID:            "dtv_1",
		Cantidad:      decimal.RequireFromString("100"),
		DonorID:       &donorID,
		BankAccountID: &cuentaID,
	}))

	leido, err := donRepo.GetByID("dtv_1")
	require.NoError(t, err)
	require.NotNil(t, leido.Donor)
	require.NotNil(t, leido.BankAccount)
	assert.Equal(t, "Ana", leido.Donor.Nombre)
	assert.Equal(t, "BBVA", leido.BankAccount.BankName())
}

// ──────────────────────────────────────────────────────────────────────────────
// Seguimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestTrackingRepo_GetOpenByDonorDevuelveElMasReciente(t *testing.T) {
	store := memoria.NewStore()
	repo := memoria.NewTrackingRepo(store)
	donorID := "don_1"

	inicio := time.Now().AddDate(0, -9, 0)
	require.NoError(t, repo.Create(&entity.DonationTracking{
		ID: "seg_viejo", DonorID: &donorID, FechaInicioPeriodo: &inicio,
	}))
	reciente := time.Now().AddDate(0, -1, 0)
	require.NoError(t, repo.Create(&entity.DonationTracking{
		ID: "seg_nuevo", DonorID: &donorID, FechaInicioPeriodo: &reciente,
	}))

	abierto, err := repo.GetOpenByDonor(donorID)
	require.NoError(t, err)
	require.NotNil(t, abierto)
	assert.Equal(t, "seg_nuevo", abierto.ID)
}

func TestTrackingRepo_UpdateInexistente(t *testing.T) {
	repo := memoria.NewTrackingRepo(memoria.NewStore())
	err := repo.Update(&entity.DonationTracking{ID: "nada"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Avisos (comunicados)
// ──────────────────────────────────────────────────────────────────────────────

func TestAnnouncementRepo_FiltroPorOSCIncluyeGenerales(t *testing.T) {
	repo := memoria.NewAnnouncementRepo(memoria.NewStore())
	osc1, osc2 := "osc_1", "osc_2"

	require.NoError(t, repo.Create(&entity.Announcement{ID: "av_general", Titulo: "General"}))
	require.NoError(t, repo.Create(&entity.Announcement{ID: "av_osc1", OrganizationID: &osc1}))
	require.NoError(t, repo.Create(&entity.Announcement{ID: "av_osc2", OrganizationID: &osc2}))

	out, err := repo.List(&osc1, 10, 0)
	require.NoError(t, err)
	require.Len(t, out, 2, "los dirigidos a la OSC más los generales")
	ids := []string{out[0].ID, out[1].ID}
	assert.Contains(t, ids, "av_general")
	assert.Contains(t, ids, "av_osc1")
	assert.NotContains(t, ids, "av_osc2")
}

func TestAnnouncementRepo_SinFiltroDevuelveTodos(t *testing.T) {
	repo := memoria.NewAnnouncementRepo(memoria.NewStore())
	osc := "osc_1"
	require.NoError(t, repo.Create(&entity.Announcement{ID: "a"}))
	require.NoError(t, repo.Create(&entity.Announcement{ID: "b", OrganizationID: &osc}))

	out, err := repo.List(nil, 10, 0)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestAnnouncementRepo_UpdateEstado(t *testing.T) {
	repo := memoria.NewAnnouncementRepo(memoria.NewStore())
	require.NoError(t, repo.Create(&entity.Announcement{ID: "a", Estado: entity.AvisoEnviado}))

	require.NoError(t, repo.UpdateEstado("a", entity.AvisoLeido))
	leido, err := repo.GetByID("a")
	require.NoError(t, err)
	assert.Equal(t, entity.AvisoLeido, leido.Estado)

	assert.ErrorIs(t, repo.UpdateEstado("nada", entity.AvisoLeido), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Trabajadores
// ──────────────────────────────────────────────────────────────────────────────

func TestWorkerRepo_EmailUnicoSinDistinguirMayusculas(t *testing.T) {
	repo := memoria.NewWorkerRepo(memoria.NewStore())
	require.NoError(t, repo.Create(&entity.Worker{ID: "w1", Email: "Ana@osc.mx", Rol: entity.RolGestor}, "hash1"))

	err := repo.Create(&entity.Worker{ID: "w2", Email: "ana@OSC.mx", Rol: entity.RolGestor}, "hash2")
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestWorkerRepo_GetByEmailIgnoraMayusculas(t *testing.T) {
	repo := memoria.NewWorkerRepo(memoria.NewStore())
	require.NoError(t, repo.Create(&entity.Worker{ID: "w1", Email: "Ana@osc.mx"}, "hash1"))

	w, err := repo.GetByEmail("ANA@osc.MX")
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.Equal(t, "w1", w.ID)
}

func TestWorkerRepo_HashSeparadoDeLaEntidad(t *testing.T) {
	repo := memoria.NewWorkerRepo(memoria.NewStore())
	require.NoError(t, repo.Create(&entity.Worker{ID: "w1", Email: "a@osc.mx"}, "bcrypt$abc"))

	hash, err := repo.GetPasswordHash("w1")
	require.NoError(t, err)
	assert.Equal(t, "bcrypt$abc", hash)
}
