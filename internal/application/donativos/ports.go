// Package donativos contiene los casos de uso del ciclo de donativos:
// registro con acumulación PLD transaccional, consultas, constancia PDF y
// aviso XML para el SAT.
package donativos

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/prevlav/cumplimiento-api/internal/domain/entity"
	"github.com/prevlav/cumplimiento-api/internal/domain/repository"
)

// PLDConfig umbrales en pesos y ventana de acumulación que usa el registro
// de donativos. Los arma main desde la configuración de la app.
type PLDConfig struct {
	LimiteIdentificacion decimal.Decimal
	LimiteAviso          decimal.Decimal
	PeriodoMeses         int
}

// TxRunner ejecuta fn con los repositorios de donativo y seguimiento atados a
// la misma transacción. El donativo y su acumulación deben confirmarse
// juntos: una carrera sobre la acumulación es exactamente lo que los umbrales
// PLD no pueden tolerar.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		donRepo repository.DonationRepository,
		trackRepo repository.TrackingRepository,
	) error) error
}

// ReciboPDFGenerator genera la constancia PDF de un donativo.
type ReciboPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, donativo *entity.Donation) ([]byte, error)
}

// AvisoXMLBuilder construye el XML del aviso al SAT para un seguimiento que
// alcanzó el umbral. Las relaciones (donante, donativo) deben venir adjuntas.
type AvisoXMLBuilder interface {
	BuildAvisoXML(seguimiento *entity.DonationTracking) ([]byte, error)
}
