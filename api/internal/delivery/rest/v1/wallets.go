package v1

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"

	"lnticket/api/internal/domain"
	"lnticket/api/internal/infra/postgres"
	"lnticket/api/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

func (h *Handler) walletInit(c *gin.Context) {
	var data struct {
		WalletName string `json:"wallet_name" validate:"required,min=1,max=32,alphanum"`
		UserID     string `json:"user_id" validate:"omitempty,uuid4"`
	}

	walletId := uuid.NewString()

	errid := logger.GenErrorId()

	if err := c.ShouldBindJSON(&data); err != nil {
		responseErr(c, http.StatusBadRequest, domain.ErrMsgBadRequest, errid)
		h.log.Debug("bind json error: " + err.Error())
		return
	}

	v := validator.New()

	if err := v.Struct(data); err != nil {
		responseErr(c, http.StatusBadRequest, domain.ErrMsgBadRequest, errid)
		return
	}

	// a fresh user id unless the caller attaches the wallet to an existing one
	userId := data.UserID
	if userId == "" {
		userId = uuid.NewString()
	}

	shaBytes := sha256.Sum256([]byte(data.WalletName + walletId))
	adminKey := hex.EncodeToString(shaBytes[:])

	wallet := &domain.Wallets{
		WalletID: walletId,
		UserID:   userId,
		Name:     data.WalletName,
		AdminKey: adminKey,
	}

	if err := h.services.Wallets.Create(h.db, wallet); err != nil {
		if postgres.IsDuplicate(err) {
			responseErr(c, http.StatusBadRequest, domain.ErrMsgWalletNameExists, "")
			return
		}

		responseErr(c, http.StatusInternalServerError, domain.ErrMsgInternalServerError, errid)
		h.log.Debug("wallet create error: " + err.Error())
		return
	}

	c.AbortWithStatusJSON(http.StatusOK, responseWalletCreated{
		Error:    false,
		WalletID: walletId,
		UserID:   userId,
		AdminKey: adminKey,
	})
}

func (h *Handler) initWalletRoutes(g *gin.RouterGroup) {
	g.POST("/wallet/create", h.walletInit)
}
