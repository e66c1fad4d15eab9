package donativos

import (
	"context"

	"github.com/prevlav/cumplimiento-api/internal/domain"
	"github.com/prevlav/cumplimiento-api/internal/domain/repository"
)

// ReciboUseCase genera la constancia PDF de un donativo.
type ReciboUseCase struct {
	repo repository.DonationRepository
	pdf  ReciboPDFGenerator
}

// NewReciboUseCase construye el caso de uso.
func NewReciboUseCase(repo repository.DonationRepository, pdf ReciboPDFGenerator) *ReciboUseCase {
	return &ReciboUseCase{repo: repo, pdf: pdf}
}

// Generate busca el donativo y produce el PDF de su constancia.
func (uc *ReciboUseCase) Generate(ctx context.Context, donationID string) ([]byte, error) {
	d, err := uc.repo.GetByID(donationID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdf.GenerateReceiptPDF(ctx, d)
}
