package repository

import (
	"lnticket/api/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Wallets interface {
	FindByID(tx *gorm.DB, walletID string) (*domain.Wallets, error)
	FindByAdminKey(tx *gorm.DB, adminKey string) (*domain.Wallets, error)
	FindByUserID(tx *gorm.DB, userID string) ([]domain.Wallets, error)
	Create(tx *gorm.DB, wallet *domain.Wallets) error
}

type Forms interface {
	Create(tx *gorm.DB, form *domain.Forms) error
	Update(tx *gorm.DB, form *domain.Forms) error
	FindByID(tx *gorm.DB, formId string) (*domain.Forms, error)
	FindByWallets(tx *gorm.DB, walletIds []string) ([]domain.Forms, error)
	Delete(tx *gorm.DB, formId string) error
	// single-row conditional increment of the running total
	AddAmountMade(tx *gorm.DB, formId string, amount decimal.Decimal) error
}

type Tickets interface {
	Create(tx *gorm.DB, ticket *domain.Tickets) error
	FindByID(tx *gorm.DB, ticketId string) (*domain.Tickets, error)
	FindByWallets(tx *gorm.DB, walletIds []string) ([]domain.Tickets, error)
	Delete(tx *gorm.DB, ticketId string) error
	// compare-and-set of the paid flag. returns false when the row was
	// already paid (or missing), the caller lost the race then.
	MarkPaid(tx *gorm.DB, ticketId string) (bool, error)
}

type Repositories struct {
	Wallets Wallets
	Forms   Forms
	Tickets Tickets
}

func New() *Repositories {
	return &Repositories{
		Wallets: InitWalletsRepo(),
		Forms:   InitFormsRepo(),
		Tickets: InitTicketsRepo(),
	}
}
