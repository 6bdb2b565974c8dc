package repository

import (
	"testing"

	"lnticket/api/internal/domain"
	"lnticket/api/internal/infra/postgres"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestMarkPaid(t *testing.T) {
	r := InitTicketsRepo()

	db := postgres.InitTest(postgres.TEST_CONFIG)

	ticket := &domain.Tickets{
		TicketID: gofakeit.LetterN(64),
		FormID:   uuid.NewString(),
		Email:    gofakeit.Email(),
		Name:     gofakeit.Name(),
		Ltext:    gofakeit.Sentence(10),
		Wallet:   uuid.NewString(),
		Sats:     decimal.NewFromInt(21),
	}

	if err := r.Create(db, ticket); err != nil {
		t.Fatal(err)
	}

	flipped, err := r.MarkPaid(db, ticket.TicketID)
	if err != nil {
		t.Fatal(err)
	}
	if !flipped {
		t.Fatal("first mark paid should flip")
	}

	// second flip must lose
	flipped, err = r.MarkPaid(db, ticket.TicketID)
	if err != nil {
		t.Fatal(err)
	}
	if flipped {
		t.Fatal("second mark paid should not flip")
	}

	found, err := r.FindByID(db, ticket.TicketID)
	if err != nil {
		t.Fatal(err)
	}
	if !found.Paid {
		t.Fatal("ticket should be paid")
	}

	flipped, err = r.MarkPaid(db, gofakeit.LetterN(64))
	if err != nil {
		t.Fatal(err)
	}
	if flipped {
		t.Fatal("unknown ticket should not flip")
	}
}
