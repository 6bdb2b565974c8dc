package service

import (
	"fmt"

	"lnticket/api/internal/domain"
	"lnticket/api/internal/infra/postgres"
	"lnticket/api/internal/logger"
	"lnticket/api/internal/repository"

	"gorm.io/gorm"
)

// SettlementService owns the unpaid->paid transition. both the payment-event
// listener and the status polling path land here, possibly at the same time
// for the same ticket. the paid flag is flipped with a conditional update,
// only the caller that wins it credits the form and fires the webhook.
type SettlementService struct {
	tickets repository.Tickets
	forms   repository.Forms
	webhook WebhookSender
	db      *gorm.DB
	l       logger.Logger
}

func NewSettlementService(db *gorm.DB, tickets repository.Tickets, forms repository.Forms, webhook WebhookSender, l logger.Logger) *SettlementService {
	return &SettlementService{tickets: tickets, forms: forms, webhook: webhook, db: db, l: l}
}

func (s *SettlementService) Settle(ticketId string) (*domain.Tickets, error) {
	ticket, err := s.tickets.FindByID(s.db, ticketId)
	if err != nil {
		if postgres.IsNotFound(err) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("find ticket: %w", err)
	}

	if ticket.Paid {
		return ticket, nil
	}

	flipped, err := s.tickets.MarkPaid(s.db, ticketId)
	if err != nil {
		return nil, fmt.Errorf("mark paid: %w", err)
	}

	if !flipped {
		// lost the race, re-read and return the winner's state
		ticket, err = s.tickets.FindByID(s.db, ticketId)
		if err != nil {
			if postgres.IsNotFound(err) {
				return nil, domain.ErrTicketNotFound
			}
			return nil, fmt.Errorf("find ticket: %w", err)
		}
		return ticket, nil
	}

	ticket.Paid = true

	form, err := s.forms.FindByID(s.db, ticket.FormID)
	if err != nil {
		if postgres.IsNotFound(err) {
			s.l.TemplSettleErr(domain.ErrFormGone.Error(), ticket.TicketID, ticket.FormID)
			return nil, domain.ErrFormGone
		}
		return nil, fmt.Errorf("find form: %w", err)
	}

	err = s.forms.AddAmountMade(s.db, form.FormID, ticket.Sats)
	if err != nil {
		return nil, fmt.Errorf("add amount made: %w", err)
	}

	s.l.TemplSettleInfo("ticket settled", ticket.TicketID, form.FormID, form.AmountMade.Add(ticket.Sats))

	if form.Webhook != "" {
		notification := domain.NewWebhookNotification(ticket)
		webhook := form.Webhook
		go func() {
			if err := s.webhook.Send(webhook, ticket.TicketID, notification); err != nil {
				s.l.Debug("send webhook error: "+err.Error(), "url", webhook, "ticket_id", ticket.TicketID)
			}
		}()
	}

	return ticket, nil
}
