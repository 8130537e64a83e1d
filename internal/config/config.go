// Package config loads game settings from a YAML file, .env and the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"nounquest/internal/logger"
)

// DefaultPath is read when no path is given
const DefaultPath = "config.yml"

// Config is the full game configuration
type Config struct {
	Log         logger.Config  `yaml:"log"`
	Window      WindowConfig   `yaml:"window"`
	Dialogue    DialogueConfig `yaml:"dialogue"`
	ScriptsPath string         `yaml:"scripts_path" env:"SCRIPTS_PATH"` // empty uses the built-in scripts
	Prover      ProverConfig   `yaml:"prover"`
	Chain       ChainConfig    `yaml:"chain"`
	Metrics     MetricsConfig  `yaml:"metrics"`
}

type WindowConfig struct {
	Width  int    `yaml:"width" env:"WINDOW_WIDTH" env-default:"800"`
	Height int    `yaml:"height" env:"WINDOW_HEIGHT" env-default:"600"`
	Title  string `yaml:"title" env:"WINDOW_TITLE" env-default:"Diginouns"`
}

type DialogueConfig struct {
	MaxWidth  int           `yaml:"max_width" env:"DIALOGUE_MAX_WIDTH" env-default:"60"`
	CharDelay time.Duration `yaml:"char_delay" env:"DIALOGUE_CHAR_DELAY" env-default:"50ms"`
}

type ProverConfig struct {
	URL     string        `yaml:"url" env:"PROVER_URL" env-default:"http://localhost:8090"`
	Timeout time.Duration `yaml:"timeout" env:"PROVER_TIMEOUT" env-default:"60s"`
	// Dev proves in-process with the deterministic dev prover instead of calling URL
	Dev        bool   `yaml:"dev" env:"PROVER_DEV" env-default:"false"`
	ListenAddr string `yaml:"listen_addr" env:"PROVERD_ADDR" env-default:":8090"`
}

type ChainConfig struct {
	RPCURL          string        `yaml:"rpc_url" env:"CHAIN_RPC_URL"` // empty means no wallet provider
	VerifierAddress string        `yaml:"verifier_address" env:"CHAIN_VERIFIER_ADDRESS" env-default:"0x09e82Db155798F759D6788c41cd72B047a018355"`
	Timeout         time.Duration `yaml:"timeout" env:"CHAIN_TIMEOUT" env-default:"30s"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr" env:"METRICS_ADDR"` // empty disables the /metrics listener
}

// Load reads .env, then path (YAML, overridden by env), falling back to env only
// when the file does not exist
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	if path == "" {
		path = DefaultPath
	}

	var cfg Config
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if errors.Is(err, os.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read config from env: %w", err)
		}
	} else {
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values cleanenv cannot
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Dialogue.MaxWidth < 1 {
		return fmt.Errorf("config: dialogue.max_width must be at least 1, got %d", c.Dialogue.MaxWidth)
	}
	if c.Dialogue.CharDelay < 0 {
		return fmt.Errorf("config: dialogue.char_delay must not be negative, got %s", c.Dialogue.CharDelay)
	}
	if !c.Prover.Dev {
		u, err := url.Parse(c.Prover.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("config: prover.url %q is not an absolute URL", c.Prover.URL)
		}
	}
	if !common.IsHexAddress(c.Chain.VerifierAddress) {
		return fmt.Errorf("config: chain.verifier_address %q is not a hex address", c.Chain.VerifierAddress)
	}
	return nil
}

// VerifierAddress returns the parsed verifier contract address
func (c *Config) VerifierAddress() common.Address {
	return common.HexToAddress(c.Chain.VerifierAddress)
}
