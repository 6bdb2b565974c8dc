package domain

// webhook body POSTed to the form's configured url once the ticket settles.
// field names are the wire contract, do not rename.
type WebhookNotification struct {
	Form    string `json:"form"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Content string `json:"content"`
}

func NewWebhookNotification(ticket *Tickets) WebhookNotification {
	return WebhookNotification{
		Form:    ticket.FormID,
		Name:    ticket.Name,
		Email:   ticket.Email,
		Content: ticket.Ltext,
	}
}
