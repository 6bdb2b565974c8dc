package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"lnticket/api/internal/domain"
	"lnticket/api/internal/infra/nats"
	"lnticket/api/internal/logger"
	"lnticket/api/internal/repository"
	"lnticket/pkg/nats/natsdomain"
	"lnticket/pkg/utils"

	"github.com/nats-io/nats.go/jetstream"
	"gorm.io/gorm"
)

// ListenerService drains paid-payment events from the shared payments
// stream, one at a time, and routes the ones tagged for this extension into
// the settlement engine. a single durable consumer per process, registering
// again under the same name replaces the previous registration.
type ListenerService struct {
	tickets    repository.Tickets
	settlement Settlement
	n          *nats.NatsInfra
	db         *gorm.DB
	l          logger.Logger
}

func NewListenerService(tickets repository.Tickets, settlement Settlement, db *gorm.DB, n *nats.NatsInfra, l logger.Logger) *ListenerService {
	return &ListenerService{tickets: tickets, settlement: settlement, db: db, n: n, l: l}
}

// held by the host process. Stop cancels at the message-wait boundary and
// waits for the loop to drain, never mid-settlement.
type ListenerHandle struct {
	stopOnce sync.Once
	stop     func()
	done     chan struct{}
}

func (h *ListenerHandle) Stop() {
	h.stopOnce.Do(h.stop)
	<-h.done
}

func (h *ListenerHandle) Done() <-chan struct{} {
	return h.done
}

func (s *ListenerService) Start(ctx context.Context) (*ListenerHandle, error) {
	cons, err := s.n.Js.CreateOrUpdateConsumer(ctx, natsdomain.StreamPayments, jetstream.ConsumerConfig{
		Durable:       natsdomain.ConsumerTickets,
		AckPolicy:     jetstream.AckExplicitPolicy,
		FilterSubject: natsdomain.SubjJsPaid.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("create consumer: %w", err)
	}

	it, err := cons.Messages()
	if err != nil {
		return nil, fmt.Errorf("consumer messages: %w", err)
	}

	handle := &ListenerHandle{stop: it.Stop, done: make(chan struct{})}

	go func() {
		select {
		case <-ctx.Done():
			handle.stopOnce.Do(handle.stop)
		case <-handle.done:
		}
	}()

	go func() {
		defer close(handle.done)

		for {
			msg, err := it.Next()
			if err != nil {
				if errors.Is(err, jetstream.ErrMsgIteratorClosed) {
					return
				}
				s.l.TemplNatsError("payments iterator error", s.n.Nc.ConnectedUrl(), err)
				continue
			}

			s.onPaid(msg.Data())

			// acked regardless of the outcome, a poisoned event must not
			// wedge the stream
			if err := msg.Ack(); err != nil {
				s.l.TemplNatsError("payments ack error", s.n.Nc.ConnectedUrl(), err)
			}
		}
	}()

	return handle, nil
}

// per-event errors are logged and swallowed, the loop survives anything
func (s *ListenerService) onPaid(data []byte) {
	payment, err := utils.Unmarshal[natsdomain.ApiPayment](data)
	if err != nil {
		s.l.Error("unmarshal payment event error", logger.LS_SETTLEMENTS, false, "error", err.Error(), "payload", string(data))
		return
	}

	if !IsTicketPayment(payment) {
		// not a lnticket invoice
		return
	}

	_, err = s.settlement.Settle(payment.CheckingID)
	if err != nil {
		if errors.Is(err, domain.ErrTicketNotFound) {
			s.l.Error("ticket for payment not found", logger.LS_SETTLEMENTS, false, "checking_id", payment.CheckingID)
			return
		}
		s.l.TemplSettleErr("settle from payment event error: "+err.Error(), payment.CheckingID, logger.NA)
	}
}

// the payments stream is shared across extensions, only the lnticket tag is
// ours
func IsTicketPayment(p *natsdomain.ApiPayment) bool {
	return p != nil && p.Extra != nil && p.Extra.Tag == natsdomain.TagTickets
}
