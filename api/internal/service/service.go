package service

import (
	"context"

	"lnticket/api/internal/config"
	"lnticket/api/internal/domain"
	"lnticket/api/internal/infra/cache"
	"lnticket/api/internal/infra/nats"
	"lnticket/api/internal/logger"
	"lnticket/api/internal/repository"
	"lnticket/pkg/nats/natsdomain"

	"gorm.io/gorm"
)

type Wallets interface {
	FindByID(tx *gorm.DB, walletID string) (*domain.Wallets, error)
	FindByAdminKey(tx *gorm.DB, adminKey string) (*domain.Wallets, error)
	FindByUserID(tx *gorm.DB, userID string) ([]domain.Wallets, error)
	Create(tx *gorm.DB, wallet *domain.Wallets) error
}

type Forms interface {
	Create(tx *gorm.DB, form *domain.Forms) error
	Patch(tx *gorm.DB, form *domain.Forms, patch domain.FormPatch) (*domain.Forms, error)
	FindByID(tx *gorm.DB, formId string) (*domain.Forms, error)
	// tries the cache first, falls back to the database
	FindGlobal(formId string) (*domain.Forms, error)
	FindByWallets(tx *gorm.DB, walletIds []string) ([]domain.Forms, error)
	Delete(tx *gorm.DB, formId string) error
}

type Tickets interface {
	// creates the invoice at the wallet backend and inserts the unpaid
	// ticket keyed by the returned payment hash
	Submit(formId string, data domain.CreateTicketData) (*natsdomain.ResCreateInvoice, error)
	// polls the wallet backend, settles on success, returns the paid state
	CheckPaid(paymentHash string) (bool, error)
	FindByID(tx *gorm.DB, ticketId string) (*domain.Tickets, error)
	FindByWallets(tx *gorm.DB, walletIds []string) ([]domain.Tickets, error)
	Delete(tx *gorm.DB, ticketId string) error
	// payment request of a recently submitted ticket, for the qr endpoint
	PaymentRequest(paymentHash string) (string, bool)
}

type Settlement interface {
	Settle(ticketId string) (*domain.Tickets, error)
}

type Listener interface {
	Start(ctx context.Context) (*ListenerHandle, error)
}

type WebhookSender interface {
	Send(url string, ticketId string, n domain.WebhookNotification) error
	UpdateList(proxies []string)
	GetList() []string
}

type QrCodes interface {
	// generates qr code and saves it to cache
	New(content string) (string, error)
	// returns qr code from cache or generates new one
	FindOrNew(content string) (string, error)
}

type Locker interface {
	Lock(key string)
	Unlock(key string)
	IsLocked(key string) bool
}

type Services struct {
	Wallets       Wallets
	Forms         Forms
	Tickets       Tickets
	Settlement    Settlement
	Listener      Listener
	WebhookSender WebhookSender
	QrCodes       QrCodes
}

func NewServices(ns *natsdomain.Ns, db *gorm.DB, l logger.Logger, config *config.Config) *Services {
	n := &nats.NatsInfra{Ns: ns}

	walletsRepo := repository.InitWalletsRepo()
	formsRepo := repository.InitFormsRepo()
	ticketsRepo := repository.InitTicketsRepo()

	webhookSender := NewWebhookSenderService(config.ProxyList, l)

	formsService := NewFormsService(db, formsRepo, cache.InitStorage(), l)
	settlementService := NewSettlementService(db, ticketsRepo, formsRepo, webhookSender, l)
	ticketsService := NewTicketsService(db, ticketsRepo, formsService, settlementService, NewLockerService(cache.InitStorage()), n, l)

	return &Services{
		Wallets:       NewWalletsService(db, walletsRepo),
		Forms:         formsService,
		Tickets:       ticketsService,
		Settlement:    settlementService,
		Listener:      NewListenerService(ticketsRepo, settlementService, db, n, l),
		WebhookSender: webhookSender,
		QrCodes:       NewQrCodesService(),
	}
}
