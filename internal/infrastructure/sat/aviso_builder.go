// Package sat construye el XML del aviso de actividad vulnerable que el
// portal presenta ante el SAT cuando la acumulación de un donante rebasa el
// umbral de aviso (Art. 17 fracc. XIII y Art. 23 LFPIORPI).
package sat

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/prevlav/cumplimiento-api/internal/application/donativos"
	"github.com/prevlav/cumplimiento-api/internal/domain/entity"
	"github.com/prevlav/cumplimiento-api/pkg/fechas"
)

// AvisoBuilder implementa donativos.AvisoXMLBuilder con etree.
type AvisoBuilder struct {
	rfcObligado string // RFC de la OSC que presenta el aviso
}

var _ donativos.AvisoXMLBuilder = (*AvisoBuilder)(nil)

// NewAvisoBuilder construye el builder; rfcObligado identifica al sujeto
// obligado en el encabezado del aviso.
func NewAvisoBuilder(rfcObligado string) *AvisoBuilder {
	return &AvisoBuilder{rfcObligado: rfcObligado}
}

// BuildAvisoXML arma el documento del aviso. El seguimiento debe traer el
// donante adjunto; un aviso sin donante identificado no es presentable.
func (b *AvisoBuilder) BuildAvisoXML(seguimiento *entity.DonationTracking) ([]byte, error) {
	if seguimiento.Donor == nil {
		return nil, fmt.Errorf("aviso: seguimiento %s sin donante identificado", seguimiento.ID)
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	archivo := doc.CreateElement("archivo")
	archivo.CreateAttr("xmlns", "http://www.uif.shcp.gob.mx/recepcion/don")

	informe := archivo.CreateElement("informe")
	sujeto := informe.CreateElement("sujeto_obligado")
	sujeto.CreateElement("clave_sujeto_obligado").SetText(b.rfcObligado)
	sujeto.CreateElement("clave_actividad").SetText("DON")

	aviso := informe.CreateElement("aviso")
	aviso.CreateElement("referencia_aviso").SetText(seguimiento.ID)
	aviso.CreateElement("prioridad").SetText("1")

	persona := aviso.CreateElement("persona_aviso")
	fisica := persona.CreateElement("persona_fisica")
	fisica.CreateElement("nombre").SetText(seguimiento.Donor.DisplayName())
	if seguimiento.Donor.RFC != "" {
		fisica.CreateElement("rfc").SetText(seguimiento.Donor.RFC)
	}

	operaciones := aviso.CreateElement("detalle_operaciones")
	datos := operaciones.CreateElement("datos_operacion")
	if seguimiento.FechaInicioPeriodo != nil {
		datos.CreateElement("fecha_inicio_periodo").SetText(fechas.Corta(*seguimiento.FechaInicioPeriodo))
	}
	datos.CreateElement("monto_acumulado").SetText(seguimiento.Acumulacion.StringFixed(2))
	datos.CreateElement("moneda").SetText("MXN")
	if seguimiento.Donation != nil {
		ultimo := datos.CreateElement("ultimo_donativo")
		ultimo.CreateElement("folio").SetText(seguimiento.Donation.ID)
		ultimo.CreateElement("monto").SetText(seguimiento.Donation.Cantidad.StringFixed(2))
		ultimo.CreateElement("fecha").SetText(fechas.Corta(seguimiento.Donation.CreatedAt))
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("aviso: serializar XML: %w", err)
	}
	return out, nil
}
