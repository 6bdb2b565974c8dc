package service

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"lnticket/api/internal/config"
	"lnticket/api/internal/domain"
	"lnticket/api/internal/infra/postgres"
	"lnticket/api/internal/logger"
	"lnticket/api/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newTestSettlement(t *testing.T, webhookUrl string) (*SettlementService, *repository.TicketsRepo, *repository.FormsRepo, *domain.Forms, *domain.Tickets) {
	t.Helper()

	db := postgres.InitTest(postgres.TEST_CONFIG)
	log := logger.Init(&config.Config{Prod_env: false})

	ticketsRepo := repository.InitTicketsRepo()
	formsRepo := repository.InitFormsRepo()

	sender := NewWebhookSenderService(nil, log)
	s := NewSettlementService(db, ticketsRepo, formsRepo, sender, log)

	form := &domain.Forms{
		FormID:     uuid.NewString(),
		Wallet:     uuid.NewString(),
		Name:       gofakeit.LetterN(10),
		Webhook:    webhookUrl,
		Pricing:    domain.PRICING_FLATRATE,
		Amount:     decimal.NewFromInt(100),
		AmountMade: decimal.Zero,
	}
	if err := formsRepo.Create(db, form); err != nil {
		t.Fatal(err)
	}

	ticket := &domain.Tickets{
		TicketID: gofakeit.LetterN(64),
		FormID:   form.FormID,
		Email:    gofakeit.Email(),
		Name:     gofakeit.Name(),
		Ltext:    gofakeit.Sentence(12),
		Wallet:   form.Wallet,
		Sats:     decimal.NewFromInt(100),
	}
	if err := ticketsRepo.Create(db, ticket); err != nil {
		t.Fatal(err)
	}

	return s, ticketsRepo, formsRepo, form, ticket
}

func TestSettleConcurrent(t *testing.T) {
	var webhookCount atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		webhookCount.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s, _, formsRepo, form, ticket := newTestSettlement(t, srv.URL)

	const settlers = 8

	var wg sync.WaitGroup
	for i := 0; i < settlers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			settled, err := s.Settle(ticket.TicketID)
			if err != nil {
				t.Error(err)
				return
			}
			if !settled.Paid {
				t.Error("every settler must observe paid = true")
			}
		}()
	}
	wg.Wait()

	// the webhook fires async from the single winner
	time.Sleep(500 * time.Millisecond)

	if n := webhookCount.Load(); n != 1 {
		t.Fatalf("webhook fired %d times, want 1", n)
	}

	after, err := formsRepo.FindByID(s.db, form.FormID)
	if err != nil {
		t.Fatal(err)
	}

	want := form.AmountMade.Add(ticket.Sats)
	if !after.AmountMade.Equal(want) {
		t.Fatalf("amount made %s, want %s", after.AmountMade, want)
	}
}

func TestSettleIdempotent(t *testing.T) {
	var webhookCount atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		webhookCount.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s, _, formsRepo, form, ticket := newTestSettlement(t, srv.URL)

	for i := 0; i < 3; i++ {
		settled, err := s.Settle(ticket.TicketID)
		if err != nil {
			t.Fatal(err)
		}
		if !settled.Paid {
			t.Fatal("settle must report paid")
		}
	}

	time.Sleep(500 * time.Millisecond)

	if n := webhookCount.Load(); n != 1 {
		t.Fatalf("webhook fired %d times, want 1", n)
	}

	after, err := formsRepo.FindByID(s.db, form.FormID)
	if err != nil {
		t.Fatal(err)
	}

	want := form.AmountMade.Add(ticket.Sats)
	if !after.AmountMade.Equal(want) {
		t.Fatalf("amount made %s, want %s", after.AmountMade, want)
	}
}

// amount made must equal the sum of settled ticket prices
func TestSettleAggregate(t *testing.T) {
	s, ticketsRepo, formsRepo, form, first := newTestSettlement(t, "")

	prices := []int64{100, 250, 1}
	ids := []string{first.TicketID}

	// first ticket costs 100 already, add the rest
	for _, p := range prices[1:] {
		ticket := &domain.Tickets{
			TicketID: gofakeit.LetterN(64),
			FormID:   form.FormID,
			Email:    gofakeit.Email(),
			Name:     gofakeit.Name(),
			Ltext:    gofakeit.Sentence(5),
			Wallet:   form.Wallet,
			Sats:     decimal.NewFromInt(p),
		}
		if err := ticketsRepo.Create(s.db, ticket); err != nil {
			t.Fatal(err)
		}
		ids = append(ids, ticket.TicketID)
	}

	want := form.AmountMade
	for i, id := range ids {
		if _, err := s.Settle(id); err != nil {
			t.Fatal(err)
		}
		want = want.Add(decimal.NewFromInt(prices[i]))
	}

	// settling everything again must not move the total
	for _, id := range ids {
		if _, err := s.Settle(id); err != nil {
			t.Fatal(err)
		}
	}

	after, err := formsRepo.FindByID(s.db, form.FormID)
	if err != nil {
		t.Fatal(err)
	}
	if !after.AmountMade.Equal(want) {
		t.Fatalf("amount made %s, want %s", after.AmountMade, want)
	}
}

func TestSettleUnknownTicket(t *testing.T) {
	s, _, _, _, _ := newTestSettlement(t, "")

	_, err := s.Settle(gofakeit.LetterN(64))
	if err != domain.ErrTicketNotFound {
		t.Fatalf("got %v, want %v", err, domain.ErrTicketNotFound)
	}
}
