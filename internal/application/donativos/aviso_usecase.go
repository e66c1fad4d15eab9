package donativos

import (
	"github.com/prevlav/cumplimiento-api/internal/domain"
	"github.com/prevlav/cumplimiento-api/internal/domain/repository"
)

// AvisoSATUseCase produce el XML del aviso al SAT para un seguimiento que
// rebasó el umbral de aviso.
type AvisoSATUseCase struct {
	repo repository.TrackingRepository
	xml  AvisoXMLBuilder
}

// NewAvisoSATUseCase construye el caso de uso.
func NewAvisoSATUseCase(repo repository.TrackingRepository, xml AvisoXMLBuilder) *AvisoSATUseCase {
	return &AvisoSATUseCase{repo: repo, xml: xml}
}

// Generate busca el seguimiento y construye el aviso. Devuelve
// domain.ErrConflict si la acumulación aún no alcanza el umbral de aviso:
// presentar un aviso que no corresponde es tan grave como omitir uno.
func (uc *AvisoSATUseCase) Generate(trackingID string) ([]byte, error) {
	t, err := uc.repo.GetByID(trackingID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if !t.HasReachedNotificationLimit() {
		return nil, domain.ErrConflict
	}
	return uc.xml.BuildAvisoXML(t)
}
