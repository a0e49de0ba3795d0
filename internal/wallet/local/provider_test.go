package local

import (
	"context"
	"errors"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoofledger/hoofledger/internal/adapter"
	"github.com/hoofledger/hoofledger/internal/domain"
	"github.com/hoofledger/hoofledger/internal/logger"
	"github.com/hoofledger/hoofledger/internal/mocks"
	"github.com/hoofledger/hoofledger/internal/wallet"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// well-known hardhat account #0
const testKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

var (
	scrollSepolia = wallet.ChainParams{
		ChainID: domain.ChainScrollSepolia,
		Name:    "Scroll Sepolia",
		RPCURLs: []string{"https://sepolia-rpc.scroll.io"},
	}
	hardhat = wallet.ChainParams{
		ChainID: domain.ChainHardhatLocal,
		Name:    "Hardhat",
		RPCURLs: []string{"http://127.0.0.1:8545"},
	}
)

type testProviderMocks struct {
	ctrl   *gomock.Controller
	dialer *mocks.MockEthClientDialer
	start  *mocks.MockEthClient
}

func setupTestProvider(t *testing.T, authorized bool) (*testProviderMocks, *Provider) {
	ctrl := gomock.NewController(t)
	tm := &testProviderMocks{
		ctrl:   ctrl,
		dialer: mocks.NewMockEthClientDialer(ctrl),
		start:  mocks.NewMockEthClient(ctrl),
	}

	tm.dialer.EXPECT().Dial(gomock.Any(), hardhat.RPCURLs[0]).Return(tm.start, nil)
	tm.start.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(31337), nil)

	p, err := New(context.Background(), tm.dialer, testKey, hardhat, authorized)
	require.NoError(t, err)
	return tm, p
}

func tearDownTestProvider(tm *testProviderMocks) {
	tm.ctrl.Finish()
}

func expectedAccount(t *testing.T) string {
	key, err := crypto.HexToECDSA(testKey[2:])
	require.NoError(t, err)
	return crypto.PubkeyToAddress(key.PublicKey).Hex()
}

func nextEvent(t *testing.T, sub wallet.Subscription) wallet.Event {
	t.Helper()
	select {
	case ev := <-sub.Events():
		return ev
	case <-time.After(time.Second):
		t.Fatal("no wallet event")
		return nil
	}
}

func TestNew_RejectsMismatchedEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dialer := mocks.NewMockEthClientDialer(ctrl)
	client := mocks.NewMockEthClient(ctrl)
	dialer.EXPECT().Dial(gomock.Any(), gomock.Any()).Return(client, nil)
	client.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(1), nil)
	client.EXPECT().Close()

	_, err := New(context.Background(), dialer, testKey, hardhat, false)
	assert.ErrorContains(t, err, "reports chain id 1")
}

func TestNew_InvalidKey(t *testing.T) {
	_, err := New(context.Background(), nil, "not-a-key", hardhat, false)
	assert.Error(t, err)
}

func TestAccounts(t *testing.T) {
	tm, p := setupTestProvider(t, false)
	defer tearDownTestProvider(tm)

	sub, err := p.Subscribe()
	require.NoError(t, err)
	defer sub.Unsubscribe()

	accounts, err := p.Accounts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, accounts, "silent reconnect must not authorize")

	_, _, err = p.Signer(expectedAccount(t), hardhat.ChainID)
	assert.ErrorIs(t, err, domain.ErrNotConnected)

	accounts, err = p.RequestAccounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{expectedAccount(t)}, accounts)
	assert.Equal(t, wallet.AccountsChanged{Accounts: accounts}, nextEvent(t, sub))

	client, opts, err := p.Signer(expectedAccount(t), hardhat.ChainID)
	require.NoError(t, err)
	assert.Same(t, tm.start, client)
	assert.Equal(t, expectedAccount(t), opts.From.Hex())

	p.Revoke()
	assert.Equal(t, wallet.AccountsChanged{Accounts: []string{}}, nextEvent(t, sub))
	accounts, err = p.Accounts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestSigner_UnknownAccount(t *testing.T) {
	tm, p := setupTestProvider(t, true)
	defer tearDownTestProvider(tm)

	_, _, err := p.Signer("0x0000000000000000000000000000000000000001", hardhat.ChainID)
	assert.ErrorContains(t, err, "unknown account")
}

func TestSigner_OtherChain(t *testing.T) {
	tm, p := setupTestProvider(t, true)
	defer tearDownTestProvider(tm)

	_, _, err := p.Signer(expectedAccount(t), scrollSepolia.ChainID)
	assert.ErrorIs(t, err, domain.ErrWrongChain)
}

// currentClient returns the client the wallet signs with on chain
func currentClient(t *testing.T, p *Provider, chain domain.Chain) adapter.EthClient {
	t.Helper()
	client, _, err := p.Signer(expectedAccount(t), chain)
	require.NoError(t, err)
	return client
}

func TestSwitchChain(t *testing.T) {
	tm, p := setupTestProvider(t, true)
	defer tearDownTestProvider(tm)

	sub, err := p.Subscribe()
	require.NoError(t, err)
	defer sub.Unsubscribe()

	err = p.SwitchChain(context.Background(), scrollSepolia.ChainID)
	assert.ErrorIs(t, err, domain.ErrChainNotAdded)

	require.NoError(t, p.AddChain(context.Background(), scrollSepolia))

	scroll := mocks.NewMockEthClient(tm.ctrl)
	tm.dialer.EXPECT().Dial(gomock.Any(), scrollSepolia.RPCURLs[0]).Return(scroll, nil)
	scroll.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(534351), nil)
	tm.start.EXPECT().Close()

	require.NoError(t, p.SwitchChain(context.Background(), scrollSepolia.ChainID))
	assert.Equal(t, wallet.ChainChanged{ChainID: scrollSepolia.ChainID}, nextEvent(t, sub))

	chain, err := p.ChainID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, scrollSepolia.ChainID, chain)
	assert.Same(t, scroll, currentClient(t, p, scrollSepolia.ChainID))

	// switching to the current chain is a no-op
	require.NoError(t, p.SwitchChain(context.Background(), scrollSepolia.ChainID))
}

func TestSwitchChain_DialFailureKeepsCurrentChain(t *testing.T) {
	tm, p := setupTestProvider(t, true)
	defer tearDownTestProvider(tm)

	require.NoError(t, p.AddChain(context.Background(), scrollSepolia))
	tm.dialer.EXPECT().Dial(gomock.Any(), scrollSepolia.RPCURLs[0]).Return(nil, errors.New("connection refused"))

	err := p.SwitchChain(context.Background(), scrollSepolia.ChainID)
	assert.ErrorContains(t, err, "connection refused")

	chain, _ := p.ChainID(context.Background())
	assert.Equal(t, hardhat.ChainID, chain)
	assert.Same(t, tm.start, currentClient(t, p, hardhat.ChainID))
}

func TestAddChain_Validation(t *testing.T) {
	tm, p := setupTestProvider(t, true)
	defer tearDownTestProvider(tm)

	assert.Error(t, p.AddChain(context.Background(), wallet.ChainParams{ChainID: "tezos:mainnet", RPCURLs: []string{"x"}}))
	assert.Error(t, p.AddChain(context.Background(), wallet.ChainParams{ChainID: domain.ChainScrollSepolia}))
}

func TestClose(t *testing.T) {
	tm, p := setupTestProvider(t, true)
	defer tearDownTestProvider(tm)

	tm.start.EXPECT().Close().Times(1)
	p.Close()
	p.Close()

	_, _, err := p.Signer(expectedAccount(t), hardhat.ChainID)
	assert.ErrorContains(t, err, "closed")
}
