package wallet

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"

	"github.com/hoofledger/hoofledger/internal/adapter"
	"github.com/hoofledger/hoofledger/internal/domain"
)

// ChainParams describes a chain to register with a wallet
type ChainParams struct {
	ChainID     domain.Chain
	Name        string
	RPCURLs     []string
	ExplorerURL string
}

// Event is a notification emitted by a wallet provider
type Event interface {
	isEvent()
}

// AccountsChanged reports the accounts the wallet exposes. An empty list means
// the user revoked access.
type AccountsChanged struct {
	Accounts []string
}

// ChainChanged reports the chain the wallet is now connected to
type ChainChanged struct {
	ChainID domain.Chain
}

func (AccountsChanged) isEvent() {}
func (ChainChanged) isEvent()    {}

// Subscription delivers provider events until it is released
//
//go:generate mockgen -source=provider.go -destination=../mocks/wallet.go -package=mocks -mock_names=Provider=MockWalletProvider,Subscription=MockWalletSubscription
type Subscription interface {
	Events() <-chan Event
	Unsubscribe()
}

// Provider is the wallet a session is connected through
type Provider interface {
	// RequestAccounts asks the user for account access
	RequestAccounts(ctx context.Context) ([]string, error)

	// Accounts returns already authorized accounts without prompting
	Accounts(ctx context.Context) ([]string, error)

	ChainID(ctx context.Context) (domain.Chain, error)

	// SwitchChain returns domain.ErrChainNotAdded when the chain is not registered
	SwitchChain(ctx context.Context, chain domain.Chain) error

	AddChain(ctx context.Context, params ChainParams) error

	Subscribe() (Subscription, error)

	// Signer returns the RPC client of chain and a transaction signer for
	// account on it. It fails with domain.ErrWrongChain once the wallet is on
	// another chain.
	Signer(account string, chain domain.Chain) (adapter.EthClient, *bind.TransactOpts, error)
}
