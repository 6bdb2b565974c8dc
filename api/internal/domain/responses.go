package domain

import (
	"errors"
	"net/http"
)

const (
	ErrMsgRateLimitExceeded   = "rate limit exceeded"
	ErrMsgInternalServerError = "internal server error"
	ErrMsgBadRequest          = "bad request"
	ErrMsgParamsBadRequest    = "bad request: %s"

	ErrMsgWalletNameExists = "wallet with that name already exists"
	ErrMsgApiKeyNotFound   = "api key not found"
)

var (
	ErrInternalServerError = errors.New(ErrMsgInternalServerError)

	ErrFormNotFound    = errors.New("form does not exist")
	ErrTicketNotFound  = errors.New("ticket does not exist")
	ErrPaymentNotFound = errors.New("payment does not exist")

	ErrNotYourWallet = errors.New("not your wallet")
	ErrNotYourForm   = errors.New("not your form")
	ErrNotYourTicket = errors.New("not your ticket")

	ErrZeroAmount = errors.New("0 invoices not allowed")

	// wallet backend rejected the request. wrap with the backend message.
	ErrUpstream = errors.New("payment backend error")

	// a paid ticket whose form vanished. fatal to the settlement attempt,
	// must never kill the listener loop.
	ErrFormGone = errors.New("couldn't get form from paid ticket")
)

func GetStatusByErr(err error) (status int) {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, ErrFormNotFound),
		errors.Is(err, ErrTicketNotFound),
		errors.Is(err, ErrPaymentNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrNotYourWallet),
		errors.Is(err, ErrNotYourForm),
		errors.Is(err, ErrNotYourTicket):
		status = http.StatusForbidden
	case errors.Is(err, ErrZeroAmount):
		status = http.StatusBadRequest
	case errors.Is(err, ErrUpstream):
		status = http.StatusInternalServerError
	default:
		status = http.StatusInternalServerError
	}
	return status
}
