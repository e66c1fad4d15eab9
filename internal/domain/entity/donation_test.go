package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/prevlav/cumplimiento-api/internal/domain/entity"
)

func TestIsAnonymous(t *testing.T) {
	vacio := ""
	id := "don_1"

	assert.True(t, (&entity.Donation{DonorID: nil}).IsAnonymous())
	assert.True(t, (&entity.Donation{DonorID: &vacio}).IsAnonymous(),
		"un ID vacío cuenta como anónimo")
	assert.False(t, (&entity.Donation{DonorID: &id}).IsAnonymous())
}

func TestDonorInfo(t *testing.T) {
	id := "don_1"

	anonimo := &entity.Donation{}
	assert.Equal(t, "Donación Anónima", anonimo.DonorInfo())

	sinRelacion := &entity.Donation{DonorID: &id}
	assert.Equal(t, "Donante", sinRelacion.DonorInfo(),
		"con donante pero sin relación adjunta se usa la etiqueta genérica")

	conRelacion := (&entity.Donation{DonorID: &id}).
		WithRelations(&entity.Donor{ID: id, Nombre: "María López"}, nil)
	assert.Equal(t, "María López", conRelacion.DonorInfo())
}

func TestFormattedAmount(t *testing.T) {
	d := &entity.Donation{Cantidad: decimal.RequireFromString("1500")}
	assert.Equal(t, "$1,500.00", d.FormattedAmount())
}

func TestDisplayName_NombreVacio(t *testing.T) {
	assert.Equal(t, "Donante Anónimo", (&entity.Donor{}).DisplayName())
	assert.Equal(t, "Juan Pérez", (&entity.Donor{Nombre: "Juan Pérez"}).DisplayName())
}
