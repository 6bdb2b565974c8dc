package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"gorm.io/gorm"
)

type Config struct {
	DB *gorm.DB

	ProxyPath string   `toml:"proxy_path"` // used in webhook-sender
	ProxyList []string `toml:"-"`          // reads proxies from ProxyPath and fills it with

	Prod_env bool

	Testing struct {
		Enabled bool
	} `toml:"testing"`

	Postgres struct {
		Host     string
		User     string
		Password string
		Db_name  string
		Port     uint16
		Ssl_mode string
	}
	Nats struct {
		Servers     string
		TomlServers []string `toml:"servers"`
	}
	Api struct {
		Ipv4  string
		Proto string
	} `toml:"lnticket_web"`

	Secrets Secrets `toml:"-"`
}

// secret material comes from the environment, never from the toml file
type Secrets struct {
	NatsUser     string `envconfig:"NATS_USER" required:"true"`
	NatsPassword string `envconfig:"NATS_PASSWORD" required:"true"`

	ParseableUrl      string `envconfig:"PARSEABLE_URL"`
	ParseableUsername string `envconfig:"PARSEABLE_USERNAME"`
	ParseablePassword string `envconfig:"PARSEABLE_PASSWORD"`
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

	// webhook proxies
	config.ProxyList = GetProxyList(config.ProxyPath)

	if config.Prod_env && config.Testing.Enabled {
		panic("cannot use testing in prod")
	}

	return &config
}

// empty path means sending webhooks without a proxy
func GetProxyList(path string) []string {
	if path == "" {
		return nil
	}

	proxyList, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	proxyListArray := strings.Split(string(proxyList), "\n")
	return proxyListArray
}
