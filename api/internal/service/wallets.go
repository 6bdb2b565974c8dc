package service

import (
	"lnticket/api/internal/domain"
	"lnticket/api/internal/repository"

	"gorm.io/gorm"
)

type WalletsService struct {
	repo repository.Wallets
	db   *gorm.DB
}

func NewWalletsService(db *gorm.DB, repo repository.Wallets) *WalletsService {
	return &WalletsService{repo: repo, db: db}
}

func (s *WalletsService) FindByID(tx *gorm.DB, walletID string) (*domain.Wallets, error) {
	return s.repo.FindByID(tx, walletID)
}

func (s *WalletsService) FindByAdminKey(tx *gorm.DB, adminKey string) (*domain.Wallets, error) {
	return s.repo.FindByAdminKey(tx, adminKey)
}

func (s *WalletsService) FindByUserID(tx *gorm.DB, userID string) ([]domain.Wallets, error) {
	return s.repo.FindByUserID(tx, userID)
}

func (s *WalletsService) Create(tx *gorm.DB, wallet *domain.Wallets) error {
	return s.repo.Create(tx, wallet)
}
