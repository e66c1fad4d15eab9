package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/prevlav/cumplimiento-api/internal/application/dto"
	"github.com/prevlav/cumplimiento-api/internal/domain"
	"github.com/prevlav/cumplimiento-api/internal/domain/entity"
	"github.com/prevlav/cumplimiento-api/internal/domain/repository"
)

// BankAccountUseCase casos de uso para cuentas receptoras.
type BankAccountUseCase struct {
	repo      repository.BankAccountRepository
	donorRepo repository.DonorRepository
}

// NewBankAccountUseCase construye el caso de uso.
func NewBankAccountUseCase(repo repository.BankAccountRepository, donorRepo repository.DonorRepository) *BankAccountUseCase {
	return &BankAccountUseCase{repo: repo, donorRepo: donorRepo}
}

// Create registra una cuenta. Una CLABE malformada se tolera (el predicado
// queda en false); un donante inexistente sí es error porque es integridad
// referencial, no dato almacenado.
func (uc *BankAccountUseCase) Create(in dto.CreateBankAccountRequest) (*dto.BankAccountResponse, error) {
	if in.DonorID != nil && *in.DonorID != "" {
		donor, err := uc.donorRepo.GetByID(*in.DonorID)
		if err != nil {
			return nil, err
		}
		if donor == nil {
			return nil, domain.ErrNotFound
		}
	}
	cuenta := &entity.BankAccount{
		ID:        uuid.New().String(),
		CLABE:     in.CLABE,
		NumCuenta: in.NumCuenta,
		Banco:     in.Banco,
		DonorID:   in.DonorID,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(cuenta); err != nil {
		return nil, err
	}
	return EntityToBankAccountResponse(cuenta), nil
}

// GetByID obtiene una cuenta por ID (siempre enmascarada).
func (uc *BankAccountUseCase) GetByID(id string) (*dto.BankAccountResponse, error) {
	cuenta, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cuenta == nil {
		return nil, nil
	}
	return EntityToBankAccountResponse(cuenta), nil
}

// List lista cuentas con paginación.
func (uc *BankAccountUseCase) List(limit, offset int) (*dto.BankAccountListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BankAccountResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *EntityToBankAccountResponse(c))
	}
	return &dto.BankAccountListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListByDonor lista las cuentas registradas a nombre de un donante.
func (uc *BankAccountUseCase) ListByDonor(donorID string) (*dto.BankAccountListResponse, error) {
	list, err := uc.repo.ListByDonor(donorID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BankAccountResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *EntityToBankAccountResponse(c))
	}
	return &dto.BankAccountListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: len(items), Offset: 0},
	}, nil
}

// EntityToBankAccountResponse proyecta la cuenta enmascarando CLABE y número.
// Nunca exponer los valores crudos fuera de esta función.
func EntityToBankAccountResponse(c *entity.BankAccount) *dto.BankAccountResponse {
	if c == nil {
		return nil
	}
	return &dto.BankAccountResponse{
		ID:     c.ID,
		Banco:  c.BankName(),
		CLABE:  c.MaskedCLABE(),
		Cuenta: c.MaskedAccountNumber(),
	}
}
