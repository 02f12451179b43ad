// Binary bot bootstraps the futures bot: environment overrides, configuration,
// and file logging. Exchange connectivity hangs off the resolved Config.
package main

import (
	"github.com/KUBENDHIRAN-V-B/binance-futures-trading-bot/internal/config"
	"github.com/KUBENDHIRAN-V-B/binance-futures-trading-bot/internal/util"
)

func main() {
	log := util.NewLogger("info")

	if err := config.LoadEnvFile(".env"); err != nil {
		log.Warn().Err(err).Msg("bad .env file, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	botLog, logFile, err := util.NewFileLogger("info", cfg.LogFile)
	if err != nil {
		log.Fatal().Err(err).Msg("open bot log")
	}
	defer logFile.Close()

	network := "mainnet"
	if cfg.Testnet {
		network = "testnet"
	}
	botLog.Info().
		Str("network", network).
		Str("base_url", cfg.BaseURL).
		Bool("api_key_set", cfg.APIKey != nil).
		Bool("api_secret_set", cfg.APISecret != nil).
		Msg("bot configured")
}
