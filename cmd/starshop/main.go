package main

import (
	"flag"
	"log"

	"github.com/caarlos0/env/v6"
	"github.com/shopspring/decimal"

	"github.com/devkekops/starshop/internal/app/config"
	"github.com/devkekops/starshop/internal/app/server"
)

func main() {
	// price_usd serializes as a JSON number, matching the history API contract
	decimal.MarshalJSONWithoutQuotes = true

	cfg := config.Config{
		RunAddress:         "localhost:8080",
		DatabaseURI:        "postgres://localhost:5432/starshop",
		TelegramAPIAddress: "https://api.telegram.org",
		ClientTimeout:      10,
	}

	if err := env.Parse(&cfg); err != nil {
		log.Fatal(err)
		return
	}

	flag.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "run address")
	flag.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "database URI")
	flag.StringVar(&cfg.TelegramAPIAddress, "r", cfg.TelegramAPIAddress, "telegram API address")
	flag.StringVar(&cfg.TelegramBotToken, "t", cfg.TelegramBotToken, "telegram bot token")
	flag.Parse()

	log.Fatal(server.Serve(&cfg))
}
