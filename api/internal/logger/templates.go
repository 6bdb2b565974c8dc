package logger

import (
	"github.com/shopspring/decimal"
)

func (l Logger) TemplTicketErr(message string, errorId string, ticketId string, formId string, sats decimal.Decimal, uri string, ip string) string {
	l.Error(message, LS_TICKETS, true, "ticket_id", ticketId, "form_id", formId, "sats", sats.String(), "uri", uri, "error_id", errorId, "ip", ip)
	return errorId
}

func (l Logger) TemplTicketInfo(message string, errorId string, ticketId string, formId string, sats decimal.Decimal, uri string, ip string) string {
	l.Info(message, LS_TICKETS, true, "ticket_id", ticketId, "form_id", formId, "sats", sats.String(), "uri", uri, "error_id", errorId, "ip", ip)
	return errorId
}

func (l Logger) TemplSettleErr(message string, ticketId string, formId string) {
	l.Error(message, LS_SETTLEMENTS, true, "ticket_id", ticketId, "form_id", formId)
}

func (l Logger) TemplSettleInfo(message string, ticketId string, formId string, amountMade decimal.Decimal) {
	l.Info(message, LS_SETTLEMENTS, true, "ticket_id", ticketId, "form_id", formId, "amount_made", amountMade.String())
}

// use only for fatal errors
func (l Logger) TemplHTTPError(message string, ipv4 string, err error) {
	l.Fatal(message, LS_FATAL, true, "error", err.Error(), "ipv4", ipv4)
}

func (l Logger) TemplNatsError(message, natsUrl string, err error) {
	l.Error(message, LS_NATS, true, "nats_url", natsUrl, "error", err.Error())
}

func (l Logger) TemplNatsInfo(message, natsUrl string) {
	l.Info(message, LS_NATS, true, "nats_url", natsUrl, "error", "N/A")
}

func (l Logger) TemplWebhookErr(message, url string, attempts int, proxy string, payload []byte) {
	l.Error(message, LS_WEBHOOKS, true, "url", url, "attempts", attempts, "proxy", proxy, "payload", string(payload))
}
