package wallet

import (
	"testing"

	"lnticket/pkg/nats/natsdomain"

	"github.com/shopspring/decimal"
)

func TestWalletLifecycle(t *testing.T) {
	w := New()

	inv := w.CreateInvoice(natsdomain.ReqCreateInvoice{
		WalletID: "wallet-1",
		Amount:   decimal.NewFromInt(42),
		Memo:     "ticket with 3 words on form-1",
		Extra:    natsdomain.Extra{Tag: "lnticket"},
	})

	if len(inv.PaymentHash) != 64 {
		t.Fatalf("payment hash length %d, want 64", len(inv.PaymentHash))
	}
	if inv.PaymentRequest == "" {
		t.Fatal("empty payment request")
	}

	found, ok := w.Find(inv.PaymentHash)
	if !ok {
		t.Fatal("invoice not found")
	}
	if found.Paid {
		t.Fatal("fresh invoice should be pending")
	}

	settled, ok := w.Settle(inv.PaymentHash)
	if !ok {
		t.Fatal("settle should succeed once")
	}
	if !settled.Paid {
		t.Fatal("settled invoice should be paid")
	}

	if _, ok := w.Settle(inv.PaymentHash); ok {
		t.Fatal("second settle should report false")
	}

	if _, ok := w.Find("unknown"); ok {
		t.Fatal("unknown hash should not be found")
	}
}
