package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoofledger/hoofledger/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0600))
	return configFile
}

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: 127.0.0.1
  port: 9000
database:
  host: localhost
  user: hoof
  password: secret
  dbname: hoofledger
chain:
  rpc_url: "https://sepolia-rpc.scroll.io"
  private_key: "0xabc"
  nft_address: "0x00000000000000000000000000000000000000aa"
  auction_address: "0x00000000000000000000000000000000000000bb"
auth:
  api_keys: ["k1", "k2"]
nats:
  url: "nats://localhost:4222"
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9000, cfg.Server.Port)
				assert.Equal(t, "hoofledger", cfg.Database.DBName)
				assert.Equal(t, "https://sepolia-rpc.scroll.io", cfg.Chain.RPCURL)
				assert.Equal(t, domain.ChainScrollSepolia, cfg.Chain.ChainID)
				assert.Equal(t, []string{"k1", "k2"}, cfg.Auth.APIKeys)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.NoError(t, cfg.Chain.Validate())
			},
		},
		{
			name: "defaults",
			configFile: `
database:
  host: localhost
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 3001, cfg.Server.Port)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, "MARKET_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, 2*time.Second, cfg.NATS.ReconnectWait)
				assert.Equal(t, 8, cfg.Worker.WorkerPoolSize)
				assert.Equal(t, domain.ChainScrollSepolia, cfg.Chain.ChainID)
			},
		},
		{
			name: "invalid value",
			configFile: `
server:
  port: not-a-port
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadAPIConfig(writeConfig(t, tt.configFile), t.TempDir())
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadAPIConfig_LegacyEnvironment(t *testing.T) {
	t.Setenv("SCROLL_RPC_URL", "https://legacy-rpc.example")
	t.Setenv("PRIVATE_KEY", "0xlegacy")
	t.Setenv("CATTLE_NFT_ADDRESS", "0x00000000000000000000000000000000000000aa")
	t.Setenv("HOOFLEDGER_CHAIN_AUCTION_ADDRESS", "0x00000000000000000000000000000000000000bb")

	cfg, err := LoadAPIConfig(writeConfig(t, "debug: false\n"), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "https://legacy-rpc.example", cfg.Chain.RPCURL)
	assert.Equal(t, "0xlegacy", cfg.Chain.PrivateKey)
	assert.Equal(t, "0x00000000000000000000000000000000000000aa", cfg.Chain.NFTAddress)
	assert.Equal(t, "0x00000000000000000000000000000000000000bb", cfg.Chain.AuctionAddress)
}

func TestLoadAPIConfig_PrefixedEnvironmentWins(t *testing.T) {
	t.Setenv("SCROLL_RPC_URL", "https://legacy-rpc.example")
	t.Setenv("HOOFLEDGER_CHAIN_RPC_URL", "https://new-rpc.example")

	cfg, err := LoadAPIConfig(writeConfig(t, "debug: false\n"), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "https://new-rpc.example", cfg.Chain.RPCURL)
}

func TestLoadListerConfig(t *testing.T) {
	cfg, err := LoadListerConfig(writeConfig(t, `
chain:
  rpc_url: "https://sepolia-rpc.scroll.io"
  private_key: "0xabc"
  nft_address: "0x00000000000000000000000000000000000000aa"
  auction_address: "0x00000000000000000000000000000000000000bb"
wallet:
  chain_id: "eip155:1"
  networks:
    - chain_id: "eip155:1"
      name: "Ethereum"
      rpc_url: "https://eth.example"
record_api:
  base_url: "http://localhost:3001"
`), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "0xabc", cfg.Wallet.PrivateKey)
	assert.Equal(t, domain.ChainEthereumMainnet, cfg.Wallet.ChainID)
	require.Len(t, cfg.Wallet.Networks, 2)
	assert.Equal(t, domain.ChainScrollSepolia, cfg.Wallet.Networks[1].ChainID)
	assert.Equal(t, "https://sepolia-rpc.scroll.io", cfg.Wallet.Networks[1].RPCURL)
	assert.Equal(t, "http://127.0.0.1:5001", cfg.IPFS.APIURL)
	assert.Equal(t, 3*time.Second, cfg.Listing.CompletionDelay)
	assert.Equal(t, 15*time.Second, cfg.RecordAPI.Timeout)
}

func TestChainConfigValidate(t *testing.T) {
	valid := ChainConfig{
		RPCURL:         "https://sepolia-rpc.scroll.io",
		PrivateKey:     "0xabc",
		NFTAddress:     "0xaa",
		AuctionAddress: "0xbb",
		ChainID:        domain.ChainScrollSepolia,
	}
	assert.NoError(t, valid.Validate())

	err := ChainConfig{ChainID: domain.ChainScrollSepolia, NFTAddress: "0xaa"}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingConfig)

	var missing *MissingKeysError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"chain.rpc_url", "chain.private_key", "chain.auction_address"}, missing.Keys)
	assert.Equal(t, "missing required configuration: chain.rpc_url, chain.private_key, chain.auction_address", err.Error())

	badChain := valid
	badChain.ChainID = "tezos:mainnet"
	assert.ErrorIs(t, badChain.Validate(), domain.ErrMissingConfig)
}

func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "hoof", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=hoof sslmode=disable", cfg.DSN())
}
