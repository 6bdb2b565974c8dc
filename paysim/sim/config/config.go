package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Prod_env bool

	Nats struct {
		TomlServers []string `toml:"servers"`
		Servers     string
	}

	Sim struct {
		// seconds until a created invoice is marked paid. 0 disables
		// auto-settle, invoices then stay pending forever.
		SettleSeconds int `toml:"settle_seconds"`
	}

	Secrets Secrets `toml:"-"`
}

type Secrets struct {
	NatsUser     string `envconfig:"NATS_USER" required:"true"`
	NatsPassword string `envconfig:"NATS_PASSWORD" required:"true"`
}

func ReadConfig() *Config {
	byte_config, err := os.ReadFile(os.Getenv("CONFIG"))
	if err != nil {
		panic(err)
	}

	var config Config
	_, err = toml.Decode(string(byte_config), &config)
	if err != nil {
		panic(err)
	}

	err = envconfig.Process("", &config.Secrets)
	if err != nil {
		panic(err)
	}

	var formatedServers string
	for _, x := range config.Nats.TomlServers {
		connectUrl := fmt.Sprintf("nats://%s:%s@%s,", config.Secrets.NatsUser, config.Secrets.NatsPassword, x)
		formatedServers += connectUrl
	}

	config.Nats.Servers = formatedServers

	if config.Prod_env {
		panic("paysim is a dev tool, refusing to start with prod_env = true")
	}

	return &config
}
