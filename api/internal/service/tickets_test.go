package service

import (
	"testing"

	"lnticket/api/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func TestWordCount(t *testing.T) {
	cases := []struct {
		ltext string
		want  int
	}{
		{"", 0},
		{"   ", 0},
		{"hello", 1},
		{"hello world", 2},
		{"  spaced   out\ttext\nhere ", 4},
		{"one, two, three", 3},
	}

	for _, c := range cases {
		if got := WordCount(c.ltext); got != c.want {
			t.Errorf("WordCount(%q) = %d, want %d", c.ltext, got, c.want)
		}
	}
}

type staticForms struct {
	form *domain.Forms
}

func (f *staticForms) Create(tx *gorm.DB, form *domain.Forms) error { return nil }
func (f *staticForms) Patch(tx *gorm.DB, form *domain.Forms, patch domain.FormPatch) (*domain.Forms, error) {
	return form, nil
}
func (f *staticForms) FindByID(tx *gorm.DB, formId string) (*domain.Forms, error) {
	return f.form, nil
}
func (f *staticForms) FindGlobal(formId string) (*domain.Forms, error) { return f.form, nil }
func (f *staticForms) FindByWallets(tx *gorm.DB, walletIds []string) ([]domain.Forms, error) {
	return nil, nil
}
func (f *staticForms) Delete(tx *gorm.DB, formId string) error { return nil }

// sub-1-sat submissions must be rejected before the backend is ever asked for
// an invoice
func TestSubmitZeroAmount(t *testing.T) {
	s := &TicketsService{forms: &staticForms{form: &domain.Forms{FormID: "f", Wallet: "w"}}}

	for _, sats := range []decimal.Decimal{
		decimal.Zero,
		decimal.NewFromInt(-5),
		decimal.NewFromFloat(0.9),
	} {
		_, err := s.Submit("f", domain.CreateTicketData{
			Name:  "n",
			Email: "n@example.com",
			Ltext: "some text",
			Sats:  sats,
		})
		if err != domain.ErrZeroAmount {
			t.Errorf("sats %s: got %v, want %v", sats, err, domain.ErrZeroAmount)
		}
	}
}
