package repository

import (
	"lnticket/api/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FormsRepo struct {
}

func InitFormsRepo() *FormsRepo {
	return &FormsRepo{}
}

func (r *FormsRepo) Create(tx *gorm.DB, form *domain.Forms) error {
	return tx.Create(form).Error
}

func (r *FormsRepo) Update(tx *gorm.DB, form *domain.Forms) error {
	return tx.Save(form).Error
}

func (r *FormsRepo) FindByID(tx *gorm.DB, formId string) (*domain.Forms, error) {
	var form domain.Forms
	return &form, tx.Where(&domain.Forms{FormID: formId}).First(&form).Error
}

func (r *FormsRepo) FindByWallets(tx *gorm.DB, walletIds []string) ([]domain.Forms, error) {
	var forms []domain.Forms
	return forms, tx.Where("wallet IN ?", walletIds).Find(&forms).Error
}

func (r *FormsRepo) Delete(tx *gorm.DB, formId string) error {
	// tickets are not cascade-deleted, orphans stay addressable
	return tx.Where(&domain.Forms{FormID: formId}).Delete(&domain.Forms{}).Error
}

func (r *FormsRepo) AddAmountMade(tx *gorm.DB, formId string, amount decimal.Decimal) error {
	return tx.Model(&domain.Forms{}).
		Where(&domain.Forms{FormID: formId}).
		Update("amount_made", gorm.Expr("amount_made + ?", amount)).Error
}
