package donativos_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prevlav/cumplimiento-api/internal/application/donativos"
	"github.com/prevlav/cumplimiento-api/internal/application/dto"
	"github.com/prevlav/cumplimiento-api/internal/domain"
	"github.com/prevlav/cumplimiento-api/internal/domain/entity"
	"github.com/prevlav/cumplimiento-api/internal/infrastructure/memoria"
	"github.com/prevlav/cumplimiento-api/pkg/logger"
)

// fixture arma el caso de uso sobre el driver en memoria con umbrales bajos
// para poder cruzarlos con montos pequeños.
type fixture struct {
	uc        *donativos.RegisterDonationUseCase
	donors    *memoria.DonorRepo
	cuentas   *memoria.BankAccountRepo
	trackings *memoria.TrackingRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memoria.NewStore()
	donRepo := memoria.NewDonationRepo(store)
	trackRepo := memoria.NewTrackingRepo(store)
	donorRepo := memoria.NewDonorRepo(store)
	cuentaRepo := memoria.NewBankAccountRepo(store)

	cfg := donativos.PLDConfig{
		LimiteIdentificacion: decimal.RequireFromString("1000"),
		LimiteAviso:          decimal.RequireFromString("2000"),
		PeriodoMeses:         6,
	}
	log := logger.New(logger.Config{Env: "production", Level: "error"})

	uc := donativos.NewRegisterDonationUseCase(
		memoria.NewTxRunner(donRepo, trackRepo), donorRepo, cuentaRepo, cfg, log,
	)
	return &fixture{uc: uc, donors: donorRepo, cuentas: cuentaRepo, trackings: trackRepo}
}

func (f *fixture) conDonante(t *testing.T, nombre string) string {
	t.Helper()
	d := &entity.Donor{ID: "don_" + nombre, Nombre: nombre, RFC: "GODE561231GR8", CreatedAt: time.Now()}
	require.NoError(t, f.donors.Create(d))
	return d.ID
}

func monto(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Validación de entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CantidadNoPositiva(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Register(context.Background(), dto.CreateDonationRequest{Cantidad: monto("0")})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = f.uc.Register(context.Background(), dto.CreateDonationRequest{Cantidad: monto("-50")})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestRegister_DonanteInexistente(t *testing.T) {
	f := newFixture(t)
	id := "no-existe"

	_, err := f.uc.Register(context.Background(), dto.CreateDonationRequest{
		Cantidad: monto("100"),
		DonorID:  &id,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_CuentaInexistente(t *testing.T) {
	f := newFixture(t)
	id := "no-existe"

	_, err := f.uc.Register(context.Background(), dto.CreateDonationRequest{
		Cantidad:      monto("100"),
		BankAccountID: &id,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Donativos anónimos
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_AnonimoNoAbreSeguimiento(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Register(context.Background(), dto.CreateDonationRequest{Cantidad: monto("5000")})
	require.NoError(t, err)

	assert.Nil(t, resp.Seguimiento, "un donativo anónimo no acumula aunque rebase los umbrales")
	assert.True(t, resp.Donativo.Anonymous)
	assert.Equal(t, "Donación Anónima", resp.Donativo.Donante)
	assert.Equal(t, "$5,000.00", resp.Donativo.Cantidad)
}

// ──────────────────────────────────────────────────────────────────────────────
// Acumulación y umbrales
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_AcumulaEnElMismoPeriodo(t *testing.T) {
	f := newFixture(t)
	donorID := f.conDonante(t, "María")

	primero, err := f.uc.Register(context.Background(), dto.CreateDonationRequest{
		Cantidad: monto("600"), DonorID: &donorID,
	})
	require.NoError(t, err)
	require.NotNil(t, primero.Seguimiento)
	assert.Equal(t, "$600.00", primero.Seguimiento.Acumulado)
	assert.False(t, primero.Seguimiento.Limites.Identificacion)
	assert.False(t, primero.Seguimiento.Limites.Aviso)

	segundo, err := f.uc.Register(context.Background(), dto.CreateDonationRequest{
		Cantidad: monto("500"), DonorID: &donorID,
	})
	require.NoError(t, err)
	require.NotNil(t, segundo.Seguimiento)

	assert.Equal(t, primero.Seguimiento.ID, segundo.Seguimiento.ID,
		"dentro del periodo se reutiliza el mismo seguimiento")
	assert.Equal(t, "$1,100.00", segundo.Seguimiento.Acumulado)
	assert.True(t, segundo.Seguimiento.Limites.Identificacion,
		"1,100 alcanza el umbral de identificación de 1,000")
	assert.False(t, segundo.Seguimiento.Limites.Aviso)
}

func TestRegister_CruzaUmbralDeAviso(t *testing.T) {
	f := newFixture(t)
	donorID := f.conDonante(t, "Pedro")

	_, err := f.uc.Register(context.Background(), dto.CreateDonationRequest{
		Cantidad: monto("1500"), DonorID: &donorID,
	})
	require.NoError(t, err)

	resp, err := f.uc.Register(context.Background(), dto.CreateDonationRequest{
		Cantidad: monto("500"), DonorID: &donorID,
	})
	require.NoError(t, err)

	assert.Equal(t, "$2,000.00", resp.Seguimiento.Acumulado)
	assert.True(t, resp.Seguimiento.Limites.Aviso,
		"alcanzar el umbral exacto ya obliga al aviso")
}

func TestRegister_UmbralExactoDeIdentificacion(t *testing.T) {
	f := newFixture(t)
	donorID := f.conDonante(t, "Lucía")

	resp, err := f.uc.Register(context.Background(), dto.CreateDonationRequest{
		Cantidad: monto("1000"), DonorID: &donorID,
	})
	require.NoError(t, err)
	assert.True(t, resp.Seguimiento.Limites.Identificacion)
}

func TestRegister_PeriodoVencidoAbreNuevoSeguimiento(t *testing.T) {
	f := newFixture(t)
	donorID := f.conDonante(t, "Jorge")

	// Seguimiento con periodo iniciado hace ocho meses: ya venció.
	inicio := time.Now().AddDate(0, -8, 0)
	viejo := &entity.DonationTracking{
		ID:                 "seg_viejo",
		DonorID:            &donorID,
		FechaInicioPeriodo: &inicio,
		Acumulacion:        monto("1900"),
		CreatedAt:          inicio,
	}
	require.NoError(t, f.trackings.Create(viejo))

	resp, err := f.uc.Register(context.Background(), dto.CreateDonationRequest{
		Cantidad: monto("300"), DonorID: &donorID,
	})
	require.NoError(t, err)

	assert.NotEqual(t, viejo.ID, resp.Seguimiento.ID, "el periodo vencido no se reutiliza")
	assert.Equal(t, "$300.00", resp.Seguimiento.Acumulado,
		"el nuevo periodo arranca en cero, sin arrastrar lo acumulado")
	assert.False(t, resp.Seguimiento.Limites.Identificacion)
}

func TestRegister_DonantesNoSeMezclan(t *testing.T) {
	f := newFixture(t)
	ana := f.conDonante(t, "Ana")
	luis := f.conDonante(t, "Luis")

	_, err := f.uc.Register(context.Background(), dto.CreateDonationRequest{
		Cantidad: monto("900"), DonorID: &ana,
	})
	require.NoError(t, err)

	resp, err := f.uc.Register(context.Background(), dto.CreateDonationRequest{
		Cantidad: monto("900"), DonorID: &luis,
	})
	require.NoError(t, err)

	assert.Equal(t, "$900.00", resp.Seguimiento.Acumulado,
		"cada donante acumula por separado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Proyección
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_ProyeccionDelDonativo(t *testing.T) {
	f := newFixture(t)
	donorID := f.conDonante(t, "Carmen")

	resp, err := f.uc.Register(context.Background(), dto.CreateDonationRequest{
		Cantidad: monto("1234.5"), DonorID: &donorID,
	})
	require.NoError(t, err)

	assert.Equal(t, "$1,234.50", resp.Donativo.Cantidad)
	assert.Equal(t, "Carmen", resp.Donativo.Donante)
	assert.False(t, resp.Donativo.Anonymous)
	assert.NotEmpty(t, resp.Donativo.ID)
	assert.Equal(t, time.Now().Format("02/01/2006"), resp.Donativo.Fecha)
}
