package repository

import (
	"lnticket/api/internal/domain"

	"gorm.io/gorm"
)

type WalletsRepo struct {
}

func InitWalletsRepo() *WalletsRepo {
	return &WalletsRepo{}
}

func (r *WalletsRepo) FindByID(tx *gorm.DB, walletID string) (*domain.Wallets, error) {
	var wallet domain.Wallets
	return &wallet, tx.Where(&domain.Wallets{WalletID: walletID}).First(&wallet).Error
}

func (r *WalletsRepo) FindByAdminKey(tx *gorm.DB, adminKey string) (*domain.Wallets, error) {
	var wallet domain.Wallets
	return &wallet, tx.Where(&domain.Wallets{AdminKey: adminKey}).First(&wallet).Error
}

func (r *WalletsRepo) FindByUserID(tx *gorm.DB, userID string) ([]domain.Wallets, error) {
	var wallets []domain.Wallets
	return wallets, tx.Where(&domain.Wallets{UserID: userID}).Find(&wallets).Error
}

func (r *WalletsRepo) Create(tx *gorm.DB, wallet *domain.Wallets) error {
	return tx.Create(wallet).Error
}
