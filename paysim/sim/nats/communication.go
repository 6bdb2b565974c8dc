package nats

import (
	"sync"
	"time"

	"lnticket/pkg/nats/natsdomain"
	"lnticket/pkg/utils"

	"github.com/nats-io/nats.go"
)

func (app *App) natsCoreHandler(msg *nats.Msg) {

	switch msg.Subject {
	case natsdomain.SubjCreateInvoice.String():
		app.createInvoiceHandler(msg)
	case natsdomain.SubjGetPayment.String():
		app.getPaymentHandler(msg)
	case natsdomain.SubjPing.String():
		msg.Respond([]byte("pong"))
	}

}

func (app *App) createInvoiceHandler(msg *nats.Msg) {
	req, err := utils.Unmarshal[natsdomain.ReqCreateInvoice](msg.Data)
	if err != nil {
		msg.Respond([]byte("error: " + err.Error()))
		return
	}

	inv := app.Wallet.CreateInvoice(*req)

	app.Dlog.Log("invoice created", "payment_hash", inv.PaymentHash, "amount", inv.Amount.String(), "memo", inv.Memo, "tag", inv.Extra.Tag)

	if app.Config.Sim.SettleSeconds > 0 {
		delay := time.Duration(app.Config.Sim.SettleSeconds) * time.Second
		time.AfterFunc(delay, func() { app.settle(inv.PaymentHash) })
	}

	msg.Respond(utils.MustMarshal(natsdomain.ResCreateInvoice{
		PaymentHash:    inv.PaymentHash,
		PaymentRequest: inv.PaymentRequest,
	}))
}

func (app *App) getPaymentHandler(msg *nats.Msg) {
	req, err := utils.Unmarshal[natsdomain.ReqGetPayment](msg.Data)
	if err != nil {
		msg.Respond([]byte("error: " + err.Error()))
		return
	}

	inv, ok := app.Wallet.Find(req.PaymentHash)
	if !ok {
		msg.Respond([]byte("error:not_found"))
		return
	}

	msg.Respond(utils.MustMarshal(natsdomain.ResGetPayment{
		PaymentHash: inv.PaymentHash,
		Pending:     !inv.Paid,
		Success:     inv.Paid,
	}))
}

// flips the invoice to paid and publishes the event every extension listens
// for. the msg id dedupes redelivered publishes.
func (app *App) settle(paymentHash string) {
	inv, ok := app.Wallet.Settle(paymentHash)
	if !ok {
		return
	}

	event := natsdomain.ApiPayment{
		CheckingID: inv.PaymentHash,
		Amount:     inv.Amount,
		Memo:       inv.Memo,
	}
	if inv.Extra.Tag != "" {
		event.Extra = &natsdomain.Extra{Tag: inv.Extra.Tag}
	}

	msgId := natsdomain.NewMsgId(inv.PaymentHash, natsdomain.MsgActionPaid)

	err := app.Ns.JsPublishMsgId(natsdomain.SubjJsPaid.String(), utils.MustMarshal(event), msgId)
	if err != nil {
		app.Dlog.Log("publish paid event error", "error", err.Error(), "payment_hash", inv.PaymentHash)
		return
	}

	app.Dlog.Log("invoice paid", "payment_hash", inv.PaymentHash, "amount", inv.Amount.String())
}

const WORKERS = 10

func (app *App) Run() {

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		for i := 0; i < WORKERS; i++ {
			_, err := app.Ns.Nc.QueueSubscribe("wallet.core.*", "wallet_workers", app.natsCoreHandler)
			if err != nil {
				app.Dlog.Log("QueueSubscribe error", "error", err.Error())
				wg.Done()
				break
			}
		}
	}()
	wg.Wait()
}
