package natsdomain

import (
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/shopspring/decimal"
)

// nats struct
type Ns struct {
	Nc *nats.Conn
	Js jetstream.JetStream
}

type ReqCreateInvoice struct {
	WalletID string          `json:"wallet_id"`
	Amount   decimal.Decimal `json:"amount"`
	Memo     string          `json:"memo"`
	Extra    Extra           `json:"extra"`
}

type ResCreateInvoice struct {
	PaymentHash    string `json:"payment_hash"`
	PaymentRequest string `json:"payment_request"`
}

type ReqGetPayment struct {
	PaymentHash string `json:"payment_hash"`
}

type ResGetPayment struct {
	PaymentHash string `json:"payment_hash"`
	Pending     bool   `json:"pending"`
	Success     bool   `json:"success"`
}

// extra is carried from invoice creation to the paid event. the tag marks
// which extension the invoice belongs to.
type Extra struct {
	Tag string `json:"tag,omitempty"`
}

// paid event published to payments.js.paid
type ApiPayment struct {
	CheckingID string          `json:"checking_id"`
	Amount     decimal.Decimal `json:"amount"`
	Memo       string          `json:"memo"`
	Extra      *Extra          `json:"extra,omitempty"`
}
