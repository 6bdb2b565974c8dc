package nats

import (
	"encoding/json"
	"fmt"

	"lnticket/api/internal/domain"
	"lnticket/pkg/nats/natsdomain"
	"lnticket/pkg/utils"

	"github.com/shopspring/decimal"
)

// checks if there is an error in the response. if there is, it returns true and the error message
func HelpersIsError(data []byte) (bool, string) {
	if len(data) < 6 {
		return false, ""
	}

	if string(data[0:6]) == "error:" {
		return true, string(data[6:])

	}
	return false, ""
}

const notFoundMsg = "not_found"

// the wallet backend answers "error:not_found" for unknown payment hashes
func HelpersIsNotFound(data []byte) bool {
	iserr, errmsg := HelpersIsError(data)
	return iserr && errmsg == notFoundMsg
}

// create invoice wrapper
//
//	walletId - wallet the payment settles into
//	amount - amount in sats
//	memo - invoice memo shown to the buyer
func (n *NatsInfra) ReqCreateInvoice(walletId string, amount decimal.Decimal, memo string, tag string) (*natsdomain.ResCreateInvoice, error) {
	data, err := json.Marshal(natsdomain.ReqCreateInvoice{WalletID: walletId, Amount: amount, Memo: memo, Extra: natsdomain.Extra{Tag: tag}})
	if err != nil {
		return nil, err
	}

	resp, err := n.Ns.ReqAndRecv(natsdomain.SubjCreateInvoice, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUpstream, err.Error())
	}

	iserr, errmsg := HelpersIsError(resp)
	if iserr {
		return nil, fmt.Errorf("%w: %s", domain.ErrUpstream, errmsg)
	}

	invoice, err := utils.Unmarshal[natsdomain.ResCreateInvoice](resp)
	if err != nil {
		return nil, err
	}

	return invoice, nil
}

func (n *NatsInfra) ReqGetPayment(paymentHash string) (*natsdomain.ResGetPayment, error) {
	reqData, err := json.Marshal(natsdomain.ReqGetPayment{PaymentHash: paymentHash})
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	resp, err := n.ReqAndRecv(natsdomain.SubjGetPayment, reqData)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUpstream, err.Error())
	}

	if HelpersIsNotFound(resp) {
		return nil, domain.ErrPaymentNotFound
	}

	isError, errmsg := HelpersIsError(resp)
	if isError {
		return nil, fmt.Errorf("%w: %s", domain.ErrUpstream, errmsg)
	}

	payment, err := utils.Unmarshal[natsdomain.ResGetPayment](resp)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return payment, nil
}
