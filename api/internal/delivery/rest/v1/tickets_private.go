// PRIVATE TICKET ROUTES

package v1

import (
	"net/http"

	"lnticket/api/internal/domain"
	"lnticket/api/internal/logger"

	"github.com/gin-gonic/gin"
)

// GET /tickets
func (h *Handler) ticketsList(c *gin.Context) {
	wallet := currentWallet(c)
	var errid = logger.GenErrorId()

	tickets, err := h.services.Tickets.FindByWallets(h.db, h.walletIds(c, wallet))
	if err != nil {
		responseErr(c, http.StatusInternalServerError, domain.ErrMsgInternalServerError, errid)
		h.log.Debug("find tickets error: " + err.Error())
		return
	}

	response := make([]responseTicket, 0, len(tickets))
	for i := range tickets {
		response = append(response, toResponseTicket(&tickets[i]))
	}

	c.AbortWithStatusJSON(http.StatusOK, response)
}

// DELETE /tickets/:ticket_id
func (h *Handler) ticketDelete(c *gin.Context) {
	wallet := currentWallet(c)
	var errid = logger.GenErrorId()

	ticketId := c.Param("ticket_id")

	ticket, err := h.services.Tickets.FindByID(h.db, ticketId)
	if err != nil {
		responseErr(c, domain.GetStatusByErr(err), err.Error(), errid)
		return
	}

	if ticket.Wallet != wallet.WalletID {
		responseErr(c, http.StatusForbidden, domain.ErrNotYourTicket.Error(), "")
		return
	}

	if err := h.services.Tickets.Delete(h.db, ticketId); err != nil {
		responseErr(c, http.StatusInternalServerError, domain.ErrMsgInternalServerError, errid)
		h.log.Debug("ticket delete error: " + err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) initPrivTicketRoutes(g *gin.RouterGroup) {
	g.GET("/tickets", h.adminKeyMiddleware(), h.ticketsList)
	g.DELETE("/tickets/:ticket_id", h.adminKeyMiddleware(), h.ticketDelete)
}
