package service

import (
	"fmt"
	"strings"
	"time"

	"lnticket/api/internal/domain"
	"lnticket/api/internal/infra/cache"
	"lnticket/api/internal/infra/nats"
	"lnticket/api/internal/infra/postgres"
	"lnticket/api/internal/logger"
	"lnticket/api/internal/repository"
	"lnticket/pkg/nats/natsdomain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TicketsService struct {
	repo       repository.Tickets
	forms      Forms
	settlement Settlement
	locker     Locker
	n          *nats.NatsInfra
	db         *gorm.DB
	l          logger.Logger

	// payment hash -> bolt11 payment request, for the qr endpoint
	requests *cache.Cache
}

const paymentRequestTTL = 24 * time.Hour

var minTicketSats = decimal.NewFromInt(1)

func NewTicketsService(db *gorm.DB, repo repository.Tickets, forms Forms, settlement Settlement, locker Locker, n *nats.NatsInfra, l logger.Logger) *TicketsService {
	return &TicketsService{repo: repo, forms: forms, settlement: settlement, locker: locker, n: n, db: db, l: l, requests: cache.InitStorage()}
}

// used only for the invoice memo
func WordCount(ltext string) int {
	return len(strings.Fields(ltext))
}

func (s *TicketsService) Submit(formId string, data domain.CreateTicketData) (*natsdomain.ResCreateInvoice, error) {
	form, err := s.forms.FindGlobal(formId)
	if err != nil {
		return nil, err
	}

	if data.Sats.LessThan(minTicketSats) {
		return nil, domain.ErrZeroAmount
	}

	nwords := WordCount(data.Ltext)
	memo := fmt.Sprintf("ticket with %d words on %s", nwords, formId)

	invoice, err := s.n.ReqCreateInvoice(form.Wallet, data.Sats, memo, natsdomain.TagTickets)
	if err != nil {
		return nil, err
	}

	// the payment hash becomes the ticket id, the listener resolves paid
	// events through it
	err = s.repo.Create(s.db, &domain.Tickets{
		TicketID: invoice.PaymentHash,
		FormID:   formId,
		Email:    data.Email,
		Name:     data.Name,
		Ltext:    data.Ltext,
		Wallet:   form.Wallet,
		Sats:     data.Sats,
		Paid:     false,
	})
	if err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}

	s.requests.Set(invoice.PaymentHash, invoice.PaymentRequest, paymentRequestTTL)

	return invoice, nil
}

// a client polling while the listener settles the same hash only costs one
// backend round trip, concurrent polls for one hash are collapsed
func (s *TicketsService) CheckPaid(paymentHash string) (bool, error) {
	ticket, err := s.FindByID(s.db, paymentHash)
	if err != nil {
		return false, err
	}

	if ticket.Paid {
		return true, nil
	}

	if s.locker.IsLocked(paymentHash) {
		return ticket.Paid, nil
	}
	s.locker.Lock(paymentHash)
	defer s.locker.Unlock(paymentHash)

	payment, err := s.n.ReqGetPayment(paymentHash)
	if err != nil {
		return false, err
	}

	if payment.Success {
		_, err := s.settlement.Settle(paymentHash)
		if err != nil {
			return false, err
		}
	}

	return payment.Success, nil
}

func (s *TicketsService) FindByID(tx *gorm.DB, ticketId string) (*domain.Tickets, error) {
	ticket, err := s.repo.FindByID(tx, ticketId)
	if err != nil {
		if postgres.IsNotFound(err) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, err
	}
	return ticket, nil
}

func (s *TicketsService) FindByWallets(tx *gorm.DB, walletIds []string) ([]domain.Tickets, error) {
	return s.repo.FindByWallets(tx, walletIds)
}

func (s *TicketsService) Delete(tx *gorm.DB, ticketId string) error {
	s.requests.Del(ticketId)
	return s.repo.Delete(tx, ticketId)
}

func (s *TicketsService) PaymentRequest(paymentHash string) (string, bool) {
	v := s.requests.Load(paymentHash)
	if v == nil {
		return "", false
	}

	request, ok := v.(string)
	return request, ok
}
