// Package config loads the bot's runtime configuration from the process environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Base endpoints for Binance USD-M futures. BaseURL always holds exactly one of these.
const (
	TestnetBaseURL = "https://testnet.binancefuture.com"
	MainnetBaseURL = "https://fapi.binance.com"
)

// Log output locations. Anything that tails the bot log depends on these exact paths.
const (
	LogDir      = "logs"
	logFileName = "bot.log"
)

// Config carries the credentials and endpoint selection the exchange client and
// logger consume. It is built once at startup and never mutated afterwards, so
// it may be read from any goroutine.
type Config struct {
	APIKey    *string // nil when BINANCE_API_KEY is unset
	APISecret *string // nil when BINANCE_API_SECRET is unset
	Testnet   bool
	BaseURL   string
	LogDir    string
	LogFile   string
}

// LoadEnvFile merges variables from a dotenv file at path into the process
// environment without overwriting variables that are already set. A missing
// file is not an error; whatever is already in the environment is used.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// Load reads the environment and returns the resolved configuration. It also
// ensures the log directory exists, which is the only step that can fail.
// Calling it again re-reads the environment; an already-present log directory
// is not an error.
func Load() (*Config, error) {
	cfg := &Config{
		APIKey:    lookup("BINANCE_API_KEY"),
		APISecret: lookup("BINANCE_API_SECRET"),
		LogDir:    LogDir,
		LogFile:   filepath.Join(LogDir, logFileName),
	}

	// Only the exact literal "True" selects the testnet; "true", "TRUE", "1"
	// and every other value select production. Unset defaults to "True".
	flag, ok := os.LookupEnv("TESTNET")
	if !ok {
		flag = "True"
	}
	cfg.Testnet = flag == "True"

	if cfg.Testnet {
		cfg.BaseURL = TestnetBaseURL
	} else {
		cfg.BaseURL = MainnetBaseURL
	}

	if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	return cfg, nil
}

func lookup(key string) *string {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	return &v
}
