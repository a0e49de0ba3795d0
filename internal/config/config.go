package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/hoofledger/hoofledger/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // e.g. "5m", "1h"
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // e.g. "10m", "30m"
}

// NATSConfig holds NATS JetStream configuration for the market event feed
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// ChainConfig holds the chain gateway configuration
type ChainConfig struct {
	RPCURL         string       `mapstructure:"rpc_url"`
	PrivateKey     string       `mapstructure:"private_key"`
	NFTAddress     string       `mapstructure:"nft_address"`
	AuctionAddress string       `mapstructure:"auction_address"`
	ChainID        domain.Chain `mapstructure:"chain_id"`
}

// MissingKeysError lists every required configuration key that was absent
type MissingKeysError struct {
	Keys []string
}

func (e *MissingKeysError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", strings.Join(e.Keys, ", "))
}

func (e *MissingKeysError) Unwrap() error {
	return domain.ErrMissingConfig
}

// Validate checks that every value the chain gateway needs is present
func (c ChainConfig) Validate() error {
	var missing []string
	if strings.TrimSpace(c.RPCURL) == "" {
		missing = append(missing, "chain.rpc_url")
	}
	if strings.TrimSpace(c.PrivateKey) == "" {
		missing = append(missing, "chain.private_key")
	}
	if strings.TrimSpace(c.NFTAddress) == "" {
		missing = append(missing, "chain.nft_address")
	}
	if strings.TrimSpace(c.AuctionAddress) == "" {
		missing = append(missing, "chain.auction_address")
	}
	if c.ChainID == "" {
		missing = append(missing, "chain.chain_id")
	}
	if len(missing) > 0 {
		return &MissingKeysError{Keys: missing}
	}

	if !c.ChainID.Valid() {
		return fmt.Errorf("%w: chain.chain_id %q is not an eip155 chain", domain.ErrMissingConfig, c.ChainID)
	}

	return nil
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds

	// AllowedOrigins restricts CORS; empty allows every origin
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// WorkerConfig holds worker configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// IPFSConfig holds the IPFS HTTP API used for metadata uploads
type IPFSConfig struct {
	APIURL  string        `mapstructure:"api_url"`
	Gateway string        `mapstructure:"gateway"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// NetworkConfig registers a chain the local wallet can switch to
type NetworkConfig struct {
	ChainID domain.Chain `mapstructure:"chain_id"`
	Name    string       `mapstructure:"name"`
	RPCURL  string       `mapstructure:"rpc_url"`
}

// WalletConfig holds the local wallet used by the lister
type WalletConfig struct {
	PrivateKey string          `mapstructure:"private_key"`
	ChainID    domain.Chain    `mapstructure:"chain_id"` // chain the wallet starts on
	Networks   []NetworkConfig `mapstructure:"networks"`
}

// RecordAPIConfig points the lister at the REST facade for record persistence
type RecordAPIConfig struct {
	BaseURL string        `mapstructure:"base_url"` // empty disables record persistence
	Timeout time.Duration `mapstructure:"timeout"`
}

// RPCLimitConfig throttles calls to the chain RPC endpoint
type RPCLimitConfig struct {
	RequestsPerSecond int    `mapstructure:"requests_per_second"` // 0 disables throttling
	Burst             int    `mapstructure:"burst"`
	RedisAddr         string `mapstructure:"redis_addr"` // empty keeps the budget per process
	RedisPassword     string `mapstructure:"redis_password"`
	RedisDB           int    `mapstructure:"redis_db"`
	KeyPrefix         string `mapstructure:"key_prefix"`
}

// ListingConfig holds listing workflow configuration
type ListingConfig struct {
	CompletionDelay time.Duration `mapstructure:"completion_delay"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
	Auth       AuthConfig     `mapstructure:"auth"`
	Chain      ChainConfig    `mapstructure:"chain"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Worker     WorkerConfig   `mapstructure:"worker"`
	RPCLimit   RPCLimitConfig `mapstructure:"rpc_limit"`
}

// ListerConfig holds configuration for the listing CLI
type ListerConfig struct {
	BaseConfig `mapstructure:",squash"`
	Chain      ChainConfig     `mapstructure:"chain"`
	Wallet     WalletConfig    `mapstructure:"wallet"`
	IPFS       IPFSConfig      `mapstructure:"ipfs"`
	RecordAPI  RecordAPIConfig `mapstructure:"record_api"`
	NATS       NATSConfig      `mapstructure:"nats"`
	Listing    ListingConfig   `mapstructure:"listing"`
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3001)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 120)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("chain.chain_id", string(domain.ChainScrollSepolia))
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "MARKET_EVENTS")
	v.SetDefault("nats.connection_name", "hoofledger-api")
	v.SetDefault("worker.pool_size", 8)
	v.SetDefault("worker.queue_size", 64)
	v.SetDefault("rpc_limit.key_prefix", "hoofledger:rpc:")

	if err := readInConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadListerConfig loads configuration for the listing CLI
func LoadListerConfig(configFile string, envPath string) (*ListerConfig, error) {
	v := configureViper("lister", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("chain.chain_id", string(domain.ChainScrollSepolia))
	v.SetDefault("ipfs.api_url", "http://127.0.0.1:5001")
	v.SetDefault("ipfs.gateway", domain.DEFAULT_IPFS_GATEWAY)
	v.SetDefault("ipfs.timeout", "60s")
	v.SetDefault("record_api.timeout", "15s")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "MARKET_EVENTS")
	v.SetDefault("nats.connection_name", "hoofledger-lister")
	v.SetDefault("listing.completion_delay", "3s")

	if err := readInConfig(v); err != nil {
		return nil, err
	}

	var config ListerConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// The wallet signs with the chain key unless one is configured
	if config.Wallet.PrivateKey == "" {
		config.Wallet.PrivateKey = config.Chain.PrivateKey
	}
	if config.Wallet.ChainID == "" {
		config.Wallet.ChainID = config.Chain.ChainID
	}
	if !hasNetwork(config.Wallet.Networks, config.Chain.ChainID) && config.Chain.RPCURL != "" {
		config.Wallet.Networks = append(config.Wallet.Networks, NetworkConfig{
			ChainID: config.Chain.ChainID,
			Name:    "Scroll Sepolia",
			RPCURL:  config.Chain.RPCURL,
		})
	}

	return &config, nil
}

func hasNetwork(networks []NetworkConfig, chain domain.Chain) bool {
	for _, n := range networks {
		if n.ChainID.Equal(chain) {
			return true
		}
	}
	return false
}

// readInConfig reads the config file, falling back to environment variables when there is none
func readInConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("HOOFLEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// legacyChainEnv maps chain keys to the variable names used by existing deployments
var legacyChainEnv = map[string]string{
	"chain.rpc_url":         "SCROLL_RPC_URL",
	"chain.private_key":     "PRIVATE_KEY",
	"chain.nft_address":     "CATTLE_NFT_ADDRESS",
	"chain.auction_address": "CATTLE_AUCTION_ADDRESS",
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	commonKeys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Chain
		"chain.chain_id",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.allowed_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Worker
		"worker.pool_size",
		"worker.queue_size",
		// RPC throttling
		"rpc_limit.requests_per_second",
		"rpc_limit.burst",
		"rpc_limit.redis_addr",
		"rpc_limit.redis_password",
		"rpc_limit.redis_db",
		"rpc_limit.key_prefix",
		// Lister
		"wallet.private_key",
		"wallet.chain_id",
		"ipfs.api_url",
		"ipfs.gateway",
		"ipfs.timeout",
		"record_api.base_url",
		"record_api.timeout",
		"listing.completion_delay",
	}

	for _, key := range commonKeys {
		_ = v.BindEnv(key)
	}

	for key, legacy := range legacyChainEnv {
		envKey := "HOOFLEDGER_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		_ = v.BindEnv(key, envKey, legacy)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
