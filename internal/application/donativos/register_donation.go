package donativos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/prevlav/cumplimiento-api/internal/application/dto"
	"github.com/prevlav/cumplimiento-api/internal/domain"
	"github.com/prevlav/cumplimiento-api/internal/domain/entity"
	"github.com/prevlav/cumplimiento-api/internal/domain/pld"
	"github.com/prevlav/cumplimiento-api/internal/domain/repository"
	"github.com/prevlav/cumplimiento-api/pkg/fechas"
	"github.com/prevlav/cumplimiento-api/pkg/logger"
)

// RegisterDonationUseCase registra un donativo y, si no es anónimo, acumula
// en el seguimiento PLD del donante dentro de la misma transacción,
// derivando las banderas de umbral con pld.Evaluar.
type RegisterDonationUseCase struct {
	tx         TxRunner
	donorRepo  repository.DonorRepository
	cuentaRepo repository.BankAccountRepository
	cfg        PLDConfig
	log        *logger.Logger
}

// NewRegisterDonationUseCase construye el caso de uso.
func NewRegisterDonationUseCase(
	tx TxRunner,
	donorRepo repository.DonorRepository,
	cuentaRepo repository.BankAccountRepository,
	cfg PLDConfig,
	log *logger.Logger,
) *RegisterDonationUseCase {
	return &RegisterDonationUseCase{tx: tx, donorRepo: donorRepo, cuentaRepo: cuentaRepo, cfg: cfg, log: log}
}

// Register valida la entrada, persiste el donativo y actualiza la acumulación
// del donante. Devuelve el donativo proyectado y el estado del seguimiento
// (nil para donativos anónimos).
func (uc *RegisterDonationUseCase) Register(ctx context.Context, in dto.CreateDonationRequest) (*dto.RegisterDonationResponse, error) {
	if in.Cantidad.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	var donor *entity.Donor
	if in.DonorID != nil && *in.DonorID != "" {
		var err error
		donor, err = uc.donorRepo.GetByID(*in.DonorID)
		if err != nil {
			return nil, err
		}
		if donor == nil {
			return nil, domain.ErrNotFound
		}
	}

	var cuenta *entity.BankAccount
	if in.BankAccountID != nil && *in.BankAccountID != "" {
		var err error
		cuenta, err = uc.cuentaRepo.GetByID(*in.BankAccountID)
		if err != nil {
			return nil, err
		}
		if cuenta == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	donativo := &entity.Donation{
		ID:            uuid.New().String(),
		Cantidad:      in.Cantidad,
		BankAccountID: in.BankAccountID,
		DonorID:       in.DonorID,
		CreatedAt:     now,
	}

	var seguimiento *entity.DonationTracking
	err := uc.tx.Run(ctx, func(donRepo repository.DonationRepository, trackRepo repository.TrackingRepository) error {
		if err := donRepo.Create(donativo); err != nil {
			return err
		}
		if donor == nil {
			return nil
		}
		track, err := uc.accumulate(trackRepo, donor.ID, donativo, now)
		if err != nil {
			return err
		}
		seguimiento = track
		return nil
	})
	if err != nil {
		return nil, err
	}

	donativo.WithRelations(donor, cuenta)
	resp := &dto.RegisterDonationResponse{Donativo: *ToDonationResponse(donativo)}
	if seguimiento != nil {
		resp.Seguimiento = ToTrackingResponse(seguimiento)
	}
	return resp, nil
}

// accumulate suma el donativo al periodo abierto del donante (o abre uno
// nuevo si no existe o ya venció) y deriva las banderas de umbral.
func (uc *RegisterDonationUseCase) accumulate(
	trackRepo repository.TrackingRepository,
	donorID string,
	donativo *entity.Donation,
	now time.Time,
) (*entity.DonationTracking, error) {
	track, err := trackRepo.GetOpenByDonor(donorID)
	if err != nil {
		return nil, err
	}

	nuevo := track == nil ||
		track.FechaInicioPeriodo == nil ||
		pld.PeriodoVencido(*track.FechaInicioPeriodo, uc.cfg.PeriodoMeses, now)
	if nuevo {
		inicio := now
		track = &entity.DonationTracking{
			ID:                 uuid.New().String(),
			DonorID:            &donorID,
			FechaInicioPeriodo: &inicio,
			Acumulacion:        decimal.Zero,
			CreatedAt:          now,
		}
	}

	prevAviso := track.HasReachedNotificationLimit()
	track.Acumulacion = track.Acumulacion.Add(donativo.Cantidad)
	track.DonationID = &donativo.ID

	eval := pld.Evaluar(track.Acumulacion, pld.Limites{
		Identificacion: uc.cfg.LimiteIdentificacion,
		Aviso:          uc.cfg.LimiteAviso,
	})
	track.LimiteIdentificacion = &eval.RequiereIdentificacion
	track.LimiteAviso = &eval.RequiereAviso

	if nuevo {
		err = trackRepo.Create(track)
	} else {
		err = trackRepo.Update(track)
	}
	if err != nil {
		return nil, err
	}

	if eval.RequiereAviso && !prevAviso {
		uc.log.Warn().
			Str("id_donante", donorID).
			Str("id_seguimiento", track.ID).
			Str("acumulado", track.Acumulacion.StringFixed(2)).
			Msg("acumulación alcanzó el umbral de aviso al SAT")
	} else if eval.RequiereIdentificacion && nuevo {
		uc.log.Info().
			Str("id_donante", donorID).
			Str("id_seguimiento", track.ID).
			Msg("acumulación alcanzó el umbral de identificación")
	}

	return track, nil
}

// ToDonationResponse proyecta un donativo con cantidad formateada y etiqueta
// del donante resuelta.
func ToDonationResponse(d *entity.Donation) *dto.DonationResponse {
	if d == nil {
		return nil
	}
	return &dto.DonationResponse{
		ID:        d.ID,
		Cantidad:  d.FormattedAmount(),
		Donante:   d.DonorInfo(),
		Fecha:     fechas.Corta(d.CreatedAt),
		Anonymous: d.IsAnonymous(),
	}
}

// ToTrackingResponse proyecta un seguimiento con acumulado formateado y las
// banderas con default seguro.
func ToTrackingResponse(t *entity.DonationTracking) *dto.TrackingResponse {
	if t == nil {
		return nil
	}
	return &dto.TrackingResponse{
		ID:        t.ID,
		Acumulado: t.AccumulatedAmount(),
		Periodo:   t.PeriodStartDate(),
		Limites: dto.TrackingLimits{
			Identificacion: t.HasReachedIdentificationLimit(),
			Aviso:          t.HasReachedNotificationLimit(),
		},
	}
}
