package v1

import (
	"lnticket/api/internal/config"
	"lnticket/api/internal/infra/nats"
	"lnticket/api/internal/logger"
	"lnticket/api/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	services  *service.Services
	db        *gorm.DB
	config    *config.Config
	Natsinfra *nats.NatsInfra
	log       logger.Logger
}

func (h *Handler) InitRoutes(g *gin.RouterGroup) {
	{
		h.initWalletRoutes(g)
		h.initFormRoutes(g)

		h.initPubTicketRoutes(g)
		h.initPrivTicketRoutes(g)
	}
}

func NewHandler(services *service.Services, db *gorm.DB, config *config.Config, natsinfra *nats.NatsInfra, log logger.Logger) *Handler {
	return &Handler{
		config:    config,
		Natsinfra: natsinfra,
		log:       log,
		services:  services,
		db:        db,
	}
}
