package v1

import (
	"net/http"
	"time"

	"lnticket/api/internal/domain"
	"lnticket/api/internal/infra/cache"
	"lnticket/api/internal/infra/postgres"

	"github.com/gin-gonic/gin"
)

const DEFAULT_LIMIT = 150
const EXPIRATION_SECONDS = 30

const walletCtxKey = "wallet"

// returns true if rate limit is exceeded
func ticketRateLimit(clientIP string, limit int) bool {
	var expiration = time.Second * time.Duration(EXPIRATION_SECONDS)

	count := cache.TicketRateLimitsCache.LoadOrSet(clientIP, 1, expiration)
	if count == nil {
		return true
	}

	countInt, ok := count.(int)
	if !ok {
		return true
	}

	if countInt > limit {
		return true
	}

	cache.TicketRateLimitsCache.Set(clientIP, countInt+1, expiration)
	return false
}

// resolves X-Api-Key to the caller's wallet
func (h *Handler) adminKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Request.Header.Get("X-Api-Key")
		if key == "" {
			responseErr(c, http.StatusUnauthorized, domain.ErrMsgApiKeyNotFound, "")
			c.Abort()
			return
		}

		wallet, err := h.services.Wallets.FindByAdminKey(h.db, key)
		if err != nil {
			if postgres.IsNotFound(err) {
				responseErr(c, http.StatusUnauthorized, domain.ErrMsgApiKeyNotFound, "")
			} else {
				responseErr(c, http.StatusInternalServerError, domain.ErrMsgInternalServerError, "")
			}
			c.Abort()
			return
		}

		c.Set(walletCtxKey, wallet)
		c.Next()
	}
}

func currentWallet(c *gin.Context) *domain.Wallets {
	v, ok := c.Get(walletCtxKey)
	if !ok {
		return nil
	}

	wallet, ok := v.(*domain.Wallets)
	if !ok {
		return nil
	}
	return wallet
}

// wallet ids visible to the caller. with all_wallets=true every wallet of
// the caller's user is included.
func (h *Handler) walletIds(c *gin.Context, wallet *domain.Wallets) []string {
	ids := []string{wallet.WalletID}

	if c.Query("all_wallets") != "true" {
		return ids
	}

	wallets, err := h.services.Wallets.FindByUserID(h.db, wallet.UserID)
	if err != nil {
		h.log.Debug("find wallets by user error: " + err.Error())
		return ids
	}

	ids = ids[:0]
	for _, w := range wallets {
		ids = append(ids, w.WalletID)
	}
	return ids
}
