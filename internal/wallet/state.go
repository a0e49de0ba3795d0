package wallet

import (
	"github.com/hoofledger/hoofledger/internal/contracts"
	"github.com/hoofledger/hoofledger/internal/domain"
)

// State is the connection state of a wallet session
type State int

const (
	StateDisconnected State = iota
	StateConnectedWrongChain
	StateConnectedReady
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnectedWrongChain:
		return "connected_wrong_chain"
	case StateConnectedReady:
		return "connected_ready"
	default:
		return "unknown"
	}
}

// Bindings are the contract bindings signed by the session account.
// They are only handed out while the session is ready.
type Bindings struct {
	Account string
	Chain   domain.Chain
	NFT     contracts.CattleNFT
	Auction contracts.CattleAuction
}

// Snapshot is a consistent view of a session.
// Bindings is non-nil exactly when State is StateConnectedReady.
type Snapshot struct {
	State    State
	Account  string
	Chain    domain.Chain
	Bindings *Bindings
}

// resolveState derives the session state from the wallet's account and chain
func resolveState(account string, chain, target domain.Chain) State {
	switch {
	case account == "":
		return StateDisconnected
	case chain.Equal(target):
		return StateConnectedReady
	default:
		return StateConnectedWrongChain
	}
}
