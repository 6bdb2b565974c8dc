// PRIVATE FORM ROUTES

package v1

import (
	"net/http"

	"lnticket/api/internal/domain"
	"lnticket/api/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GET /forms
func (h *Handler) formsList(c *gin.Context) {
	wallet := currentWallet(c)
	var errid = logger.GenErrorId()

	forms, err := h.services.Forms.FindByWallets(h.db, h.walletIds(c, wallet))
	if err != nil {
		responseErr(c, http.StatusInternalServerError, domain.ErrMsgInternalServerError, errid)
		h.log.Debug("find forms error: " + err.Error())
		return
	}

	response := make([]responseForm, 0, len(forms))
	for i := range forms {
		response = append(response, toResponseForm(&forms[i]))
	}

	c.AbortWithStatusJSON(http.StatusOK, response)
}

// POST /forms
func (h *Handler) formCreate(c *gin.Context) {
	wallet := currentWallet(c)
	var errid = logger.GenErrorId()

	var data domain.CreateFormData
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

	if data.Wallet != wallet.WalletID {
		responseErr(c, http.StatusForbidden, domain.ErrNotYourWallet.Error(), "")
		return
	}

	form := domain.Forms{
		FormID:      uuid.NewString(),
		Wallet:      data.Wallet,
		Name:        data.Name,
		Description: data.Description,
		Webhook:     data.Webhook,
		Pricing:     domain.StrToPricing(data.Pricing),
		Amount:      data.Amount,
		AmountMade:  decimal.Zero,
	}

	if err := h.services.Forms.Create(h.db, &form); err != nil {
		responseErr(c, http.StatusInternalServerError, domain.ErrMsgInternalServerError, errid)
		h.log.Debug("form create error: " + err.Error())
		return
	}

	c.AbortWithStatusJSON(http.StatusCreated, toResponseForm(&form))
}

// PUT /forms/:form_id
func (h *Handler) formUpdate(c *gin.Context) {
	wallet := currentWallet(c)
	var errid = logger.GenErrorId()

	formId := c.Param("form_id")

	var data domain.CreateFormData
	if err := c.ShouldBindJSON(&data); err != nil {
		responseErr(c, http.StatusBadRequest, domain.ErrMsgBadRequest, "")
		return
	}

	v := validator.New()
	if err := v.Struct(data); err != nil {
		responseErr(c, http.StatusBadRequest, domain.ErrMsgBadRequest, "")
		return
	}

	form, err := h.services.Forms.FindByID(h.db, formId)
	if err != nil {
		responseErr(c, domain.GetStatusByErr(err), err.Error(), errid)
		return
	}

	if form.Wallet != wallet.WalletID {
		responseErr(c, http.StatusForbidden, domain.ErrNotYourForm.Error(), "")
		return
	}

	patched, err := h.services.Forms.Patch(h.db, form, domain.FormPatch{
		Name:        data.Name,
		Description: data.Description,
		Webhook:     data.Webhook,
		Pricing:     domain.StrToPricing(data.Pricing),
		Amount:      data.Amount,
	})
	if err != nil {
		responseErr(c, http.StatusInternalServerError, domain.ErrMsgInternalServerError, errid)
		h.log.Debug("form update error: " + err.Error())
		return
	}

	c.AbortWithStatusJSON(http.StatusOK, toResponseForm(patched))
}

// DELETE /forms/:form_id
func (h *Handler) formDelete(c *gin.Context) {
	wallet := currentWallet(c)
	var errid = logger.GenErrorId()

	formId := c.Param("form_id")

	form, err := h.services.Forms.FindByID(h.db, formId)
	if err != nil {
		responseErr(c, domain.GetStatusByErr(err), err.Error(), errid)
		return
	}

	if form.Wallet != wallet.WalletID {
		responseErr(c, http.StatusForbidden, domain.ErrNotYourForm.Error(), "")
		return
	}

	if err := h.services.Forms.Delete(h.db, formId); err != nil {
		responseErr(c, http.StatusInternalServerError, domain.ErrMsgInternalServerError, errid)
		h.log.Debug("form delete error: " + err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) initFormRoutes(g *gin.RouterGroup) {
	forms := g.Group("/forms", h.adminKeyMiddleware())

	forms.GET("", h.formsList)
	forms.POST("", h.formCreate)
	forms.PUT("/:form_id", h.formUpdate)
	forms.DELETE("/:form_id", h.formDelete)
}
