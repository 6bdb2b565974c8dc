package domain

import (
	"github.com/shopspring/decimal"
)

// TicketID IS the payment hash returned by the wallet backend. the listener
// resolves paid events back to tickets through this id, keep the contract.
type Tickets struct {
	Model
	ID       uint            `gorm:"primaryKey"`
	TicketID string          `gorm:"unique;size:64;not null"`
	FormID   string          `gorm:"size:36;not null;index"`
	Email    string          `gorm:"not null"`
	Name     string          `gorm:"not null"`
	Ltext    string          `gorm:"type:text;not null"`
	Wallet   string          `gorm:"size:36;not null;index"` // denormalized from the form
	Sats     decimal.Decimal `gorm:"type:numeric"`
	Paid     bool            `gorm:"not null;default:false"`
}

type CreateTicketData struct {
	Name  string          `json:"name" validate:"required"`
	Email string          `json:"email" validate:"required,email"`
	Ltext string          `json:"ltext" validate:"required"`
	Sats  decimal.Decimal `json:"sats" validate:"required"`
}
