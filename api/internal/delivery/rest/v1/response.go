package v1

import (
	"lnticket/api/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type responseError struct {
	Error   bool   `json:"error"`
	ErrorID string `json:"error_id"`
	Msg     string `json:"msg"`
}

// POST /tickets/:form_id
type responseTicketCreated struct {
	PaymentHash    string `json:"payment_hash"`
	PaymentRequest string `json:"payment_request"`
}

// GET /tickets/:payment_hash
type responseTicketPaid struct {
	Paid bool `json:"paid"`
}

// POST /wallet/create
type responseWalletCreated struct {
	Error    bool   `json:"error"`
	WalletID string `json:"wallet_id"`
	UserID   string `json:"user_id"`
	AdminKey string `json:"admin_key"`
}

type responseForm struct {
	ID          string          `json:"id"`
	Wallet      string          `json:"wallet"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Webhook     string          `json:"webhook,omitempty"`
	Pricing     string          `json:"pricing"`
	Amount      decimal.Decimal `json:"amount"`
	AmountMade  decimal.Decimal `json:"amountmade"`
	Time        string          `json:"time"`
}

type responseTicket struct {
	ID     string          `json:"id"`
	Form   string          `json:"form"`
	Email  string          `json:"email"`
	Name   string          `json:"name"`
	Ltext  string          `json:"ltext"`
	Wallet string          `json:"wallet"`
	Sats   decimal.Decimal `json:"sats"`
	Paid   bool            `json:"paid"`
	Time   string          `json:"time"`
}

const timeLayout = "2006-01-02 15:04:05"

func toResponseForm(f *domain.Forms) responseForm {
	return responseForm{
		ID:          f.FormID,
		Wallet:      f.Wallet,
		Name:        f.Name,
		Description: f.Description,
		Webhook:     f.Webhook,
		Pricing:     f.Pricing.ToString(),
		Amount:      f.Amount,
		AmountMade:  f.AmountMade,
		Time:        f.CreatedAt.Format(timeLayout),
	}
}

func toResponseTicket(t *domain.Tickets) responseTicket {
	return responseTicket{
		ID:     t.TicketID,
		Form:   t.FormID,
		Email:  t.Email,
		Name:   t.Name,
		Ltext:  t.Ltext,
		Wallet: t.Wallet,
		Sats:   t.Sats,
		Paid:   t.Paid,
		Time:   t.CreatedAt.Format(timeLayout),
	}
}

func responseErr(c *gin.Context, statusCode int, msg, errorID string) {
	c.AbortWithStatusJSON(statusCode, responseError{true, errorID, msg})
}
