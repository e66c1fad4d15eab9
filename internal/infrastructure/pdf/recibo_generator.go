// Package pdf implementa la constancia de donativo en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Portal de Cumplimiento  │  Folio + Fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DONANTE: Nombre + RFC (o Donación Anónima)                 │
//	│  CUENTA: Banco + CLABE enmascarada                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MONTO RECIBIDO (formateado MXN)                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con folio + leyenda LFPIORPI                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/prevlav/cumplimiento-api/internal/application/donativos"
	"github.com/prevlav/cumplimiento-api/internal/domain/entity"
	"github.com/prevlav/cumplimiento-api/pkg/fechas"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReciboGenerator implementa donativos.ReciboPDFGenerator usando Maroto v2.
type ReciboGenerator struct {
	nombrePortal string
}

var _ donativos.ReciboPDFGenerator = (*ReciboGenerator)(nil)

// NewReciboGenerator construye el generador; nombrePortal encabeza la constancia.
func NewReciboGenerator(nombrePortal string) *ReciboGenerator {
	return &ReciboGenerator{nombrePortal: nombrePortal}
}

// GenerateReceiptPDF genera la constancia y devuelve sus bytes.
func (g *ReciboGenerator) GenerateReceiptPDF(_ context.Context, donativo *entity.Donation) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Constancia de Donativo", true).
		WithAuthor(g.nombrePortal, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(donativo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(donanteRow(donativo))
	if donativo.BankAccount != nil {
		m.AddRows(cuentaRow(donativo.BankAccount))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(montoRow(donativo))
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(donativo) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar constancia: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del portal (izq) y folio + fecha (der).
func (g *ReciboGenerator) headerRow(donativo *entity.Donation) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.nombrePortal, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Constancia de recepción de donativo", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FOLIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(donativo.ID, props.Text{
				Size: 7, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fechas.Corta(donativo.CreatedAt), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// donanteRow: identidad del donante o leyenda de anonimato.
func donanteRow(donativo *entity.Donation) core.Row {
	nombre := donativo.DonorInfo()
	detalle := "Donativo recibido sin identificación del donante"
	if donativo.Donor != nil {
		detalle = "RFC: " + nonEmpty(donativo.Donor.RFC, "—")
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("DONANTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(detalle, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// cuentaRow: cuenta receptora con CLABE enmascarada; nunca se imprime completa.
func cuentaRow(cuenta *entity.BankAccount) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CUENTA RECEPTORA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Banco: %s   |   CLABE: %s",
				nonEmpty(cuenta.BankName(), "—"),
				cuenta.MaskedCLABE(),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// montoRow: el monto en grande, centrado.
func montoRow(donativo *entity.Donation) core.Row {
	return row.New(20).Add(
		col.New(12).Add(
			text.New("MONTO RECIBIDO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center,
				Color: colorPrimary, Top: 2,
			}),
			text.New(donativo.FormattedAmount()+" MXN", props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Center, Top: 8,
			}),
		),
	)
}

// footerRows: QR con el folio + leyenda legal.
func footerRows(donativo *entity.Donation) []core.Row {
	return []core.Row{
		row.New(40).Add(
			col.New(4).Add(code.NewQr(donativo.ID, props.Rect{
				Percent: 90,
				Center:  true,
			})),
			col.New(8).Add(
				text.New("Escanea el código QR para consultar\neste donativo en el portal.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New("CONSTANCIA DE DONATIVO", props.Text{
					Style: fontstyle.Bold, Size: 10, Top: 20,
					Left: 3, Color: colorPrimary,
				}),
			),
		),
		row.New(8).Add(col.New(12).Add(
			text.New(
				"La recepción de donativos es actividad vulnerable conforme al "+
					"Art. 17 fracc. XIII de la LFPIORPI. Conserve esta constancia "+
					"como soporte de la operación.",
				props.Text{Size: 6.5, Color: colorGray, Top: 2},
			),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
