// PUBLIC TICKET ROUTES

package v1

import (
	"encoding/base64"
	"net/http"

	"lnticket/api/internal/domain"
	"lnticket/api/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// POST /tickets/:form_id
// unauthenticated, the buyer submits the form and gets a payment request back
func (h *Handler) ticketSubmit(c *gin.Context) {
	var errid = logger.GenErrorId()

	formId := c.Param("form_id")

	isRateLimited := ticketRateLimit(c.ClientIP(), DEFAULT_LIMIT)
	if isRateLimited {
		responseErr(c, http.StatusTooManyRequests, domain.ErrMsgRateLimitExceeded, "")
		return
	}

	var data domain.CreateTicketData
	if err := c.ShouldBindJSON(&data); err != nil {
		responseErr(c, http.StatusBadRequest, domain.ErrMsgBadRequest, "")
		h.log.Debug("bind json error: " + err.Error())
		return
	}

	v := validator.New()
	if err := v.Struct(data); err != nil {
		responseErr(c, http.StatusBadRequest, domain.ErrMsgBadRequest, "")
		return
	}

	invoice, err := h.services.Tickets.Submit(formId, data)
	if err != nil {
		responseErr(c, domain.GetStatusByErr(err), err.Error(), errid)
		h.log.TemplTicketErr("ticket submit error: "+err.Error(), errid, logger.NA, formId, data.Sats, c.Request.RequestURI, c.ClientIP())
		return
	}

	h.log.TemplTicketInfo("new ticket submitted", errid, invoice.PaymentHash, formId, data.Sats, c.Request.RequestURI, c.ClientIP())

	c.AbortWithStatusJSON(http.StatusCreated, responseTicketCreated{
		PaymentHash:    invoice.PaymentHash,
		PaymentRequest: invoice.PaymentRequest,
	})
}

// GET /tickets/:payment_hash
// polls the wallet backend and settles on success, safe to race the listener
func (h *Handler) ticketPaid(c *gin.Context) {
	var errid = logger.GenErrorId()

	paymentHash := c.Param("payment_hash")

	paid, err := h.services.Tickets.CheckPaid(paymentHash)
	if err != nil {
		responseErr(c, domain.GetStatusByErr(err), err.Error(), errid)
		return
	}

	c.AbortWithStatusJSON(http.StatusOK, responseTicketPaid{Paid: paid})
}

// GET /tickets/qr/:payment_hash
func (h *Handler) ticketQrCode(c *gin.Context) {
	var errid = logger.GenErrorId()

	paymentHash := c.Param("payment_hash")

	request, ok := h.services.Tickets.PaymentRequest(paymentHash)
	if !ok {
		responseErr(c, http.StatusNotFound, domain.ErrTicketNotFound.Error(), "")
		return
	}

	qrCode, err := h.services.QrCodes.FindOrNew(request)
	if err != nil {
		responseErr(c, http.StatusInternalServerError, domain.ErrMsgInternalServerError, errid)
		h.log.Debug("qr code find or new error: " + err.Error())
		return
	}

	imageData, err := base64.RawStdEncoding.DecodeString(qrCode)
	if err != nil {
		responseErr(c, http.StatusInternalServerError, domain.ErrMsgInternalServerError, errid)
		h.log.Debug("qr code decode error: " + err.Error())
		return
	}

	c.Data(http.StatusOK, "image/png", imageData)
}

func (h *Handler) initPubTicketRoutes(g *gin.RouterGroup) {
	g.POST("/tickets/:form_id", h.ticketSubmit)
	g.GET("/tickets/:payment_hash", h.ticketPaid)
	g.GET("/tickets/qr/:payment_hash", h.ticketQrCode)
}
