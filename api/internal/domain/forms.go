package domain

import (
	"github.com/shopspring/decimal"
)

type Forms struct {
	Model
	ID          uint   `gorm:"primaryKey"`
	FormID      string `gorm:"unique;size:36;not null"`
	Wallet      string `gorm:"size:36;not null;index"`
	Name        string `gorm:"not null"`
	Description string `gorm:"type:text"`
	Webhook     string `gorm:"type:text"` // webhook url. used in webhook sender service
	Pricing     PricingMode
	Amount      decimal.Decimal `gorm:"type:numeric"` // unit price in sats (per ticket or per word)
	AmountMade  decimal.Decimal `gorm:"type:numeric;default:0"`
}

type PricingMode uint8

const (
	PRICING_FLATRATE PricingMode = iota
	PRICING_PER_WORD
)

var Pricings = [...]string{"flatrate", "per_word"}

func (p PricingMode) ToString() string {
	return Pricings[p]
}

func StrToPricing(s string) PricingMode {
	for i, pricingName := range Pricings {
		if s == pricingName {
			return PricingMode(i)
		}
	}
	return PRICING_FLATRATE
}

// the mutable fields of a form. everything else (owner, aggregate, ids) only
// changes through its own code path.
type FormPatch struct {
	Name        string
	Description string
	Webhook     string
	Pricing     PricingMode
	Amount      decimal.Decimal
}

type CreateFormData struct {
	Wallet      string          `json:"wallet" validate:"required,uuid4"`
	Name        string          `json:"name" validate:"required,min=1,max=64"`
	Description string          `json:"description"`
	Webhook     string          `json:"webhook" validate:"omitempty,url"`
	Pricing     string          `json:"pricing" validate:"omitempty,oneof=flatrate per_word"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
}

// pure merge, returns a copy
func (f Forms) ApplyPatch(p FormPatch) Forms {
	f.Name = p.Name
	f.Description = p.Description
	f.Webhook = p.Webhook
	f.Pricing = p.Pricing
	f.Amount = p.Amount
	return f
}
