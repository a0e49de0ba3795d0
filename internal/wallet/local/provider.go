// Package local implements a wallet provider backed by a private key and a
// registry of chain RPC endpoints. It behaves like an injected browser wallet:
// accounts must be requested, unknown chains must be added before switching,
// and account and chain changes are emitted as events.
package local

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/event"
	"go.uber.org/zap"

	"github.com/hoofledger/hoofledger/internal/adapter"
	"github.com/hoofledger/hoofledger/internal/contracts"
	"github.com/hoofledger/hoofledger/internal/domain"
	"github.com/hoofledger/hoofledger/internal/logger"
	"github.com/hoofledger/hoofledger/internal/wallet"
)

const subscriptionBuffer = 16

var _ wallet.Provider = (*Provider)(nil)

// Provider is a wallet.Provider over a single private key
type Provider struct {
	dialer  adapter.EthClientDialer
	key     *ecdsa.PrivateKey
	account common.Address

	mu         sync.RWMutex
	networks   map[string]wallet.ChainParams
	chain      domain.Chain
	client     adapter.EthClient
	authorized bool

	feed event.FeedOf[wallet.Event]
}

// New connects the wallet to its start network. The start network is the
// only one registered; others must be added with AddChain. An authorized
// wallet answers the silent reconnect with its account.
func New(ctx context.Context, dialer adapter.EthClientDialer, privateKey string, start wallet.ChainParams, authorized bool) (*Provider, error) {
	key, err := contracts.ParsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}

	p := &Provider{
		dialer:     dialer,
		key:        key,
		account:    crypto.PubkeyToAddress(key.PublicKey),
		networks:   make(map[string]wallet.ChainParams),
		authorized: authorized,
	}
	if err := p.AddChain(ctx, start); err != nil {
		return nil, err
	}

	client, err := p.dial(ctx, start)
	if err != nil {
		return nil, err
	}
	p.client = client
	p.chain = start.ChainID

	return p, nil
}

func registryKey(chain domain.Chain) (string, error) {
	id, err := chain.EVMChainID()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// dial connects to the first RPC endpoint of params that reports the expected chain id
func (p *Provider) dial(ctx context.Context, params wallet.ChainParams) (adapter.EthClient, error) {
	lastErr := errors.New("no RPC endpoint configured")
	for _, url := range params.RPCURLs {
		client, err := p.dialer.Dial(ctx, url)
		if err != nil {
			lastErr = err
			continue
		}

		id, err := client.ChainID(ctx)
		if err != nil {
			client.Close()
			lastErr = err
			continue
		}
		if !domain.NewEVMChain(id.Uint64()).Equal(params.ChainID) {
			client.Close()
			lastErr = fmt.Errorf("endpoint reports chain id %s", id)
			continue
		}

		return client, nil
	}
	return nil, fmt.Errorf("failed to connect to %s: %w", params.ChainID, lastErr)
}

func (p *Provider) RequestAccounts(_ context.Context) ([]string, error) {
	p.mu.Lock()
	wasAuthorized := p.authorized
	p.authorized = true
	p.mu.Unlock()

	accounts := []string{p.account.Hex()}
	if !wasAuthorized {
		p.feed.Send(wallet.AccountsChanged{Accounts: accounts})
	}
	return accounts, nil
}

func (p *Provider) Accounts(_ context.Context) ([]string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.authorized {
		return []string{}, nil
	}
	return []string{p.account.Hex()}, nil
}

func (p *Provider) ChainID(_ context.Context) (domain.Chain, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.chain, nil
}

func (p *Provider) SwitchChain(ctx context.Context, chain domain.Chain) error {
	key, err := registryKey(chain)
	if err != nil {
		return err
	}

	p.mu.RLock()
	params, ok := p.networks[key]
	current := p.chain
	p.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrChainNotAdded, chain)
	}
	if current.Equal(chain) {
		return nil
	}

	client, err := p.dial(ctx, params)
	if err != nil {
		return err
	}

	p.mu.Lock()
	old := p.client
	p.client = client
	p.chain = params.ChainID
	p.mu.Unlock()
	if old != nil {
		old.Close()
	}

	logger.InfoCtx(ctx, "Wallet switched chain", zap.String("chain", string(params.ChainID)))
	p.feed.Send(wallet.ChainChanged{ChainID: params.ChainID})
	return nil
}

func (p *Provider) AddChain(_ context.Context, params wallet.ChainParams) error {
	key, err := registryKey(params.ChainID)
	if err != nil {
		return err
	}
	if len(params.RPCURLs) == 0 {
		return fmt.Errorf("chain %s has no RPC endpoint", params.ChainID)
	}

	p.mu.Lock()
	p.networks[key] = params
	p.mu.Unlock()
	return nil
}

// Revoke withdraws account access, as a user disconnecting the site from their wallet
func (p *Provider) Revoke() {
	p.mu.Lock()
	wasAuthorized := p.authorized
	p.authorized = false
	p.mu.Unlock()

	if wasAuthorized {
		p.feed.Send(wallet.AccountsChanged{Accounts: []string{}})
	}
}

func (p *Provider) Subscribe() (wallet.Subscription, error) {
	ch := make(chan wallet.Event, subscriptionBuffer)
	return &subscription{ch: ch, sub: p.feed.Subscribe(ch)}, nil
}

// Signer hands out the client and signer of chain while the wallet is on it.
// The signer is bound to the chain id, so it cannot sign for another chain.
func (p *Provider) Signer(account string, chain domain.Chain) (adapter.EthClient, *bind.TransactOpts, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.authorized {
		return nil, nil, domain.ErrNotConnected
	}
	if !strings.EqualFold(account, p.account.Hex()) {
		return nil, nil, fmt.Errorf("unknown account %s", account)
	}
	if !p.chain.Equal(chain) {
		return nil, nil, fmt.Errorf("%w: wallet is on %s, not %s", domain.ErrWrongChain, p.chain, chain)
	}
	if p.client == nil {
		return nil, nil, errors.New("wallet is closed")
	}

	chainID, err := chain.EVMChainID()
	if err != nil {
		return nil, nil, err
	}
	opts, err := contracts.NewTransactOpts(p.key, chainID)
	if err != nil {
		return nil, nil, err
	}
	return p.client, opts, nil
}

// Close disconnects from the current chain
func (p *Provider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client != nil {
		p.client.Close()
		p.client = nil
	}
}

type subscription struct {
	ch  chan wallet.Event
	sub event.Subscription
}

func (s *subscription) Events() <-chan wallet.Event {
	return s.ch
}

func (s *subscription) Unsubscribe() {
	s.sub.Unsubscribe()
}
