package service

import (
	"testing"

	"lnticket/api/internal/config"
	"lnticket/api/internal/domain"
	"lnticket/api/internal/logger"
	"lnticket/pkg/nats/natsdomain"
	"lnticket/pkg/utils"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

func TestIsTicketPayment(t *testing.T) {
	cases := []struct {
		name    string
		payment *natsdomain.ApiPayment
		want    bool
	}{
		{"nil payment", nil, false},
		{"no extra", &natsdomain.ApiPayment{CheckingID: "x"}, false},
		{"empty tag", &natsdomain.ApiPayment{Extra: &natsdomain.Extra{}}, false},
		{"foreign tag", &natsdomain.ApiPayment{Extra: &natsdomain.Extra{Tag: "lnurlp"}}, false},
		{"our tag", &natsdomain.ApiPayment{Extra: &natsdomain.Extra{Tag: natsdomain.TagTickets}}, true},
	}

	for _, c := range cases {
		if got := IsTicketPayment(c.payment); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

type settlementRecorder struct {
	calls []string
	err   error
}

func (r *settlementRecorder) Settle(ticketId string) (*domain.Tickets, error) {
	r.calls = append(r.calls, ticketId)
	return &domain.Tickets{TicketID: ticketId, Paid: true}, r.err
}

func TestOnPaid(t *testing.T) {
	log := logger.Init(&config.Config{Prod_env: false})

	rec := &settlementRecorder{}
	s := &ListenerService{settlement: rec, l: log}

	// garbage payloads must not panic and must not settle
	s.onPaid([]byte("not json"))
	s.onPaid([]byte("{}"))
	s.onPaid(utils.MustMarshal(natsdomain.ApiPayment{
		CheckingID: gofakeit.LetterN(64),
		Amount:     decimal.NewFromInt(10),
		Extra:      &natsdomain.Extra{Tag: "lnurlp"},
	}))

	if len(rec.calls) != 0 {
		t.Fatalf("settled %d times, want 0", len(rec.calls))
	}

	hash := gofakeit.LetterN(64)
	s.onPaid(utils.MustMarshal(natsdomain.ApiPayment{
		CheckingID: hash,
		Amount:     decimal.NewFromInt(10),
		Extra:      &natsdomain.Extra{Tag: natsdomain.TagTickets},
	}))

	if len(rec.calls) != 1 || rec.calls[0] != hash {
		t.Fatalf("got calls %v, want [%s]", rec.calls, hash)
	}

	// settle errors are swallowed, the loop must survive them
	rec.err = domain.ErrTicketNotFound
	s.onPaid(utils.MustMarshal(natsdomain.ApiPayment{
		CheckingID: gofakeit.LetterN(64),
		Extra:      &natsdomain.Extra{Tag: natsdomain.TagTickets},
	}))
}
