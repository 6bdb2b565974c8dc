package main

import (
	"os"

	"lnticket/api/internal/app"
	"lnticket/api/internal/config"
	"lnticket/api/internal/infra/nats"
	"lnticket/api/internal/infra/postgres"
	"lnticket/api/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load(os.Getenv("ENVPATH"))
	if err != nil {
		panic("Can't load .env file: " + err.Error())
	}

	config := config.ReadConfig()
	config.DB = postgres.Init(config)

	log := logger.Init(config)

	natsinfra := nats.Init(config, log)

	app := &app.App{
		Config:    config,
		Db:        config.DB,
		NatsInfra: natsinfra,
		Log:       log,
	}

	app.Start()
}
