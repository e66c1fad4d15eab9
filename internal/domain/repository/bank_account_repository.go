package repository

import "github.com/prevlav/cumplimiento-api/internal/domain/entity"

// BankAccountRepository define el puerto de persistencia para BankAccount.
type BankAccountRepository interface {
	Create(cuenta *entity.BankAccount) error
	GetByID(id string) (*entity.BankAccount, error)
	ListByDonor(donorID string) ([]*entity.BankAccount, error)
	List(limit, offset int) ([]*entity.BankAccount, error)
}
