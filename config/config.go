package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration. It is an explicit value
// passed to the orchestrator at construction; nothing reads network or
// contract addresses from process-wide state, so several sessions against
// different networks can coexist in one process.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Network NetworkConfig `mapstructure:"network"`
	Wallet  WalletConfig  `mapstructure:"wallet"`
	Relayer RelayerConfig `mapstructure:"relayer"`
	Poll    PollConfig    `mapstructure:"poll"`
	History HistoryConfig `mapstructure:"history"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// NetworkConfig selects the ledger and the deployed contract pair.
type NetworkConfig struct {
	Name           string `mapstructure:"name"`
	RPCURL         string `mapstructure:"rpc_url"`
	ChainID        int64  `mapstructure:"chain_id"`
	TokenAddress   string `mapstructure:"token_address"`
	WrapperAddress string `mapstructure:"wrapper_address"`
}

type WalletConfig struct {
	PrivateKey string `mapstructure:"private_key"` // hex-encoded secp256k1 key, no 0x prefix
}

type RelayerConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type PollConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

type HistoryConfig struct {
	// WindowBlocks bounds event queries to the most recent blocks; history
	// older than the window is intentionally ignored.
	WindowBlocks uint64 `mapstructure:"window_blocks"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Validate checks the fields that have no workable defaults.
func (c *Config) Validate() error {
	if c.Network.RPCURL == "" {
		return fmt.Errorf("network.rpc_url is required")
	}
	if c.Network.ChainID == 0 {
		return fmt.Errorf("network.chain_id is required")
	}
	if c.Network.TokenAddress == "" || c.Network.WrapperAddress == "" {
		return fmt.Errorf("network.token_address and network.wrapper_address are required")
	}
	if c.Wallet.PrivateKey == "" {
		return fmt.Errorf("wallet.private_key is required")
	}
	return nil
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: CWO_.
// Nested keys use underscore: CWO_NETWORK_RPC_URL, CWO_WALLET_PRIVATE_KEY, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults: a local hardhat node with the localhost deployment.
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("network.name", "localhost")
	v.SetDefault("network.rpc_url", "http://127.0.0.1:8545")
	v.SetDefault("network.chain_id", 31337)
	v.SetDefault("network.token_address", "0xB4A13a1C25a92ABC0ae045136B12F03b90c74Bef")
	v.SetDefault("network.wrapper_address", "0x8d62ACd1Edb243fb304760c4A137e640504DBdC7")
	v.SetDefault("wallet.private_key", "")
	v.SetDefault("relayer.base_url", "http://127.0.0.1:8548")
	v.SetDefault("relayer.timeout", "30s")
	v.SetDefault("poll.interval", "15s")
	v.SetDefault("history.window_blocks", 10000)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: CWO_NETWORK_RPC_URL -> network.rpc_url
	v.SetEnvPrefix("CWO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && path != "" {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
