package repository

import (
	"lnticket/api/internal/domain"

	"gorm.io/gorm"
)

type TicketsRepo struct {
}

func InitTicketsRepo() *TicketsRepo {
	return &TicketsRepo{}
}

func (r *TicketsRepo) Create(tx *gorm.DB, ticket *domain.Tickets) error {
	return tx.Create(ticket).Error
}

func (r *TicketsRepo) FindByID(tx *gorm.DB, ticketId string) (*domain.Tickets, error) {
	var ticket domain.Tickets
	return &ticket, tx.Where(&domain.Tickets{TicketID: ticketId}).First(&ticket).Error
}

func (r *TicketsRepo) FindByWallets(tx *gorm.DB, walletIds []string) ([]domain.Tickets, error) {
	var tickets []domain.Tickets
	return tickets, tx.Where("wallet IN ?", walletIds).Find(&tickets).Error
}

func (r *TicketsRepo) Delete(tx *gorm.DB, ticketId string) error {
	return tx.Where(&domain.Tickets{TicketID: ticketId}).Delete(&domain.Tickets{}).Error
}

// paid flips false->true at most once. the WHERE clause is the
// serialization point, only one caller ever sees RowsAffected == 1.
func (r *TicketsRepo) MarkPaid(tx *gorm.DB, ticketId string) (bool, error) {
	res := tx.Model(&domain.Tickets{}).
		Where("ticket_id = ? AND paid = ?", ticketId, false).
		Update("paid", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
