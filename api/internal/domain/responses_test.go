package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestGetStatusByErr(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{ErrFormNotFound, http.StatusNotFound},
		{ErrTicketNotFound, http.StatusNotFound},
		{ErrPaymentNotFound, http.StatusNotFound},
		{ErrNotYourWallet, http.StatusForbidden},
		{ErrNotYourForm, http.StatusForbidden},
		{ErrNotYourTicket, http.StatusForbidden},
		{ErrZeroAmount, http.StatusBadRequest},
		{ErrUpstream, http.StatusInternalServerError},
		{fmt.Errorf("%w: connection reset", ErrUpstream), http.StatusInternalServerError},
		{errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		if got := GetStatusByErr(c.err); got != c.want {
			t.Errorf("GetStatusByErr(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}
