package config

import (
	"flag"

	"github.com/caarlos0/env/v6"
)

/*
адрес и порт запуска сервиса: переменная окружения ОС RUN_ADDRESS или флаг -a;
адрес подключения к базе данных: переменная окружения ОС DATABASE_URI или флаг -d;
адрес API магазина: переменная окружения ОС SHOP_API_URL или флаг -s.
*/

type ServerConfig struct {
	RunAddress          string `env:"RUN_ADDRESS"`
	DatabaseDSN         string `env:"DATABASE_URI"`
	ShopAPIURL          string `env:"SHOP_API_URL"`
	ShopAPIKey          string `env:"SHOP_API_KEY"`
	ShopAPIVersion      string `env:"SHOP_API_VERSION" envDefault:"v3"`
	SyncIntervalMinutes int    `env:"SYNC_INTERVAL_MINUTES" envDefault:"30"`
	SyncLookbackMinutes int    `env:"SYNC_LOOKBACK_MINUTES" envDefault:"60"`
	SyncTimezone        string `env:"SYNC_TIMEZONE" envDefault:"Europe/Warsaw"`
	UpdateExisting      bool   `env:"SYNC_UPDATE_EXISTING" envDefault:"true"`
}

func NewConfig() (*ServerConfig, error) {
	var params ServerConfig
	err := env.Parse(&params)
	if err != nil {
		return nil, err
	}

	var commandLineParams ServerConfig

	flag.StringVar(&commandLineParams.RunAddress, "a", "localhost:8080", "Base address to listen on")
	flag.StringVar(&commandLineParams.DatabaseDSN, "d", "postgres://postgres@localhost:5432/shopsync?sslmode=disable", "Database DSN")
	flag.StringVar(&commandLineParams.ShopAPIURL, "s", "", "Shop API base URL")
	flag.StringVar(&commandLineParams.ShopAPIKey, "k", "", "Shop API key")
	flag.Parse()

	if params.RunAddress == "" {
		params.RunAddress = commandLineParams.RunAddress
	}
	if params.DatabaseDSN == "" {
		params.DatabaseDSN = commandLineParams.DatabaseDSN
	}
	if params.ShopAPIURL == "" {
		params.ShopAPIURL = commandLineParams.ShopAPIURL
	}
	if params.ShopAPIKey == "" {
		params.ShopAPIKey = commandLineParams.ShopAPIKey
	}

	return &params, nil
}
