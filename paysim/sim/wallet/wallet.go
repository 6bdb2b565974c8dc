// in-memory stand-in for the hosted wallet backend. holds every invoice the
// api created and flips them to paid after a configurable delay.
package wallet

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"

	"lnticket/pkg/nats/natsdomain"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

type Invoice struct {
	PaymentHash    string
	PaymentRequest string
	WalletID       string
	Amount         decimal.Decimal
	Memo           string
	Extra          natsdomain.Extra
	Paid           bool
}

type Wallet struct {
	mu       sync.Mutex
	invoices map[string]*Invoice
}

func New() *Wallet {
	return &Wallet{invoices: make(map[string]*Invoice)}
}

func (w *Wallet) CreateInvoice(req natsdomain.ReqCreateInvoice) *Invoice {
	shaBytes := sha256.Sum256([]byte(gofakeit.UUID()))
	paymentHash := hex.EncodeToString(shaBytes[:])

	inv := &Invoice{
		PaymentHash:    paymentHash,
		PaymentRequest: fakeBolt11(req.Amount),
		WalletID:       req.WalletID,
		Amount:         req.Amount,
		Memo:           req.Memo,
		Extra:          req.Extra,
	}

	w.mu.Lock()
	w.invoices[paymentHash] = inv
	w.mu.Unlock()

	return inv
}

func (w *Wallet) Find(paymentHash string) (Invoice, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	inv, ok := w.invoices[paymentHash]
	if !ok {
		return Invoice{}, false
	}
	return *inv, true
}

// marks the invoice paid, returns false if unknown or already paid
func (w *Wallet) Settle(paymentHash string) (Invoice, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	inv, ok := w.invoices[paymentHash]
	if !ok || inv.Paid {
		return Invoice{}, false
	}

	inv.Paid = true
	return *inv, true
}

// shaped like a regtest bolt11 string, not decodable
func fakeBolt11(amount decimal.Decimal) string {
	return fmt.Sprintf("lnbcrt%s0n1%s", amount.String(), gofakeit.LetterN(90))
}
