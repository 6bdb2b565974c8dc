package nats

import (
	"lnticket/paysim/sim/config"
	"lnticket/paysim/sim/wallet"
	"lnticket/pkg/dlog"
	"lnticket/pkg/nats/natsdomain"
)

type App struct {
	Config *config.Config
	Ns     *natsdomain.Ns
	Wallet *wallet.Wallet
	Dlog   dlog.Dlog
}
