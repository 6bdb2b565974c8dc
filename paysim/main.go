// paysim answers the wallet backend subjects so the api can run without the
// real hosted platform. dev tool only.
package main

import (
	"lnticket/paysim/sim/config"
	"lnticket/paysim/sim/nats"
	"lnticket/paysim/sim/wallet"
	"lnticket/pkg/dlog"
)

func main() {
	dlog := dlog.Init()

	config := config.ReadConfig()
	ns := nats.Init(config)

	app := nats.App{
		Config: config,
		Ns:     ns,
		Wallet: wallet.New(),
		Dlog:   dlog,
	}

	dlog.Log("paysim is up", "settle_seconds", config.Sim.SettleSeconds)

	app.Run()
}
