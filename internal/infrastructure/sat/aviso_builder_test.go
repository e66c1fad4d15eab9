package sat_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prevlav/cumplimiento-api/internal/domain/entity"
	"github.com/prevlav/cumplimiento-api/internal/infrastructure/sat"
)

func seguimientoDePrueba() *entity.DonationTracking {
	inicio := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)
	donorID := "don_1"
	return &entity.DonationTracking{
		ID:                 "seg_1",
		DonorID:            &donorID,
		FechaInicioPeriodo: &inicio,
		Acumulacion:        decimal.RequireFromString("400000"),
		Donor:              &entity.Donor{ID: donorID, Nombre: "María López", RFC: "LOMA800101AB1"},
	}
}

func TestBuildAvisoXML_EstructuraDelDocumento(t *testing.T) {
	builder := sat.NewAvisoBuilder("OSC123456AB1")

	out, err := builder.BuildAvisoXML(seguimientoDePrueba())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	raiz := doc.Root()
	require.NotNil(t, raiz)
	assert.Equal(t, "archivo", raiz.Tag)
	assert.Equal(t, "http://www.uif.shcp.gob.mx/recepcion/don", raiz.SelectAttrValue("xmlns", ""))

	assert.Equal(t, "OSC123456AB1", textoEn(t, doc, "//sujeto_obligado/clave_sujeto_obligado"))
	assert.Equal(t, "DON", textoEn(t, doc, "//sujeto_obligado/clave_actividad"))
	assert.Equal(t, "seg_1", textoEn(t, doc, "//aviso/referencia_aviso"))
	assert.Equal(t, "María López", textoEn(t, doc, "//persona_fisica/nombre"))
	assert.Equal(t, "LOMA800101AB1", textoEn(t, doc, "//persona_fisica/rfc"))
	assert.Equal(t, "10/02/2024", textoEn(t, doc, "//datos_operacion/fecha_inicio_periodo"))
	assert.Equal(t, "400000.00", textoEn(t, doc, "//datos_operacion/monto_acumulado"))
	assert.Equal(t, "MXN", textoEn(t, doc, "//datos_operacion/moneda"))
}

func TestBuildAvisoXML_UltimoDonativoOpcional(t *testing.T) {
	builder := sat.NewAvisoBuilder("OSC123456AB1")

	seg := seguimientoDePrueba()
	seg.Donation = &entity.Donation{
		ID:        "folio_99",
		Cantidad:  decimal.RequireFromString("25000"),
		CreatedAt: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
	}

	out, err := builder.BuildAvisoXML(seg)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	assert.Equal(t, "folio_99", textoEn(t, doc, "//ultimo_donativo/folio"))
	assert.Equal(t, "25000.00", textoEn(t, doc, "//ultimo_donativo/monto"))
	assert.Equal(t, "01/05/2024", textoEn(t, doc, "//ultimo_donativo/fecha"))
}

func TestBuildAvisoXML_SinDonativoOmiteElBloque(t *testing.T) {
	builder := sat.NewAvisoBuilder("OSC123456AB1")

	out, err := builder.BuildAvisoXML(seguimientoDePrueba())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	assert.Nil(t, doc.FindElement("//ultimo_donativo"))
}

func TestBuildAvisoXML_DonanteSinRFCOmiteElElemento(t *testing.T) {
	builder := sat.NewAvisoBuilder("OSC123456AB1")

	seg := seguimientoDePrueba()
	seg.Donor.RFC = ""

	out, err := builder.BuildAvisoXML(seg)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	assert.Nil(t, doc.FindElement("//persona_fisica/rfc"))
}

func TestBuildAvisoXML_SinDonanteFalla(t *testing.T) {
	builder := sat.NewAvisoBuilder("OSC123456AB1")

	seg := seguimientoDePrueba()
	seg.Donor = nil

	_, err := builder.BuildAvisoXML(seg)
	assert.Error(t, err, "un aviso sin donante identificado no es presentable")
}

func textoEn(t *testing.T, doc *etree.Document, ruta string) string {
	t.Helper()
	el := doc.FindElement(ruta)
	require.NotNil(t, el, "elemento %s no encontrado", ruta)
	return el.Text()
}
