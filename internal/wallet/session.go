package wallet

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/hoofledger/hoofledger/internal/domain"
	"github.com/hoofledger/hoofledger/internal/gateway"
	"github.com/hoofledger/hoofledger/internal/logger"
)

var errSessionClosed = errors.New("wallet session closed")

// maxRebindAttempts bounds how often a transition follows a wallet that keeps
// changing chain while its bindings are built
const maxRebindAttempts = 3

// Config holds the chain and contracts a session binds to
type Config struct {
	Target         ChainParams
	NFTAddress     common.Address
	AuctionAddress common.Address
}

// Session tracks the wallet account and chain and owns the contract bindings
// derived from them. A session has a single owner; collaborators receive it
// by reference and read it through Snapshot or Bindings.
type Session struct {
	cfg      Config
	provider Provider
	notifier Notifier
	bind     gateway.BindingFactory

	// transition serializes state changes and their notifications
	transition sync.Mutex

	mu       sync.RWMutex
	snapshot Snapshot

	lifecycle sync.Mutex
	sub       Subscription
	done      chan struct{}
	wg        sync.WaitGroup
	closed    bool

	observersMu sync.Mutex
	observers   map[chan Notification]struct{}
}

// NewSession creates a disconnected session. provider may be nil when no
// wallet is available; every action then reports domain.ErrWalletNotFound.
func NewSession(cfg Config, provider Provider, notifier Notifier, bindings gateway.BindingFactory) *Session {
	if notifier == nil {
		notifier = NewLogNotifier()
	}
	if bindings == nil {
		bindings = gateway.DefaultBindings
	}
	return &Session{
		cfg:       cfg,
		provider:  provider,
		notifier:  notifier,
		bind:      bindings,
		observers: make(map[chan Notification]struct{}),
	}
}

// Start registers the wallet event listener and silently reconnects to an
// already authorized account. The listener is registered once per session.
func (s *Session) Start(ctx context.Context) error {
	if s.provider == nil {
		s.notifyWalletNotFound(ctx)
		return domain.ErrWalletNotFound
	}

	s.lifecycle.Lock()
	if s.closed {
		s.lifecycle.Unlock()
		return errSessionClosed
	}
	if s.sub == nil {
		sub, err := s.provider.Subscribe()
		if err != nil {
			s.lifecycle.Unlock()
			return fmt.Errorf("failed to subscribe to wallet events: %w", err)
		}
		s.sub = sub
		s.done = make(chan struct{})
		s.wg.Add(1)
		go s.consume(sub.Events(), s.done)
	}
	s.lifecycle.Unlock()

	accounts, err := s.provider.Accounts(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to check wallet connection", zap.Error(err))
		return nil
	}
	if len(accounts) == 0 {
		return nil
	}

	chain, err := s.provider.ChainID(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to check wallet connection", zap.Error(err))
		return nil
	}

	s.update(ctx, func(Snapshot) (string, domain.Chain) {
		return accounts[0], chain
	})
	return nil
}

// Connect requests account access from the wallet
func (s *Session) Connect(ctx context.Context) error {
	if s.provider == nil {
		s.notifyWalletNotFound(ctx)
		return domain.ErrWalletNotFound
	}

	accounts, err := s.provider.RequestAccounts(ctx)
	if err == nil && len(accounts) == 0 {
		err = domain.ErrNotConnected
	}
	if err != nil {
		s.notifyFailure(ctx, "Connection failed", "Failed to connect to wallet", err)
		return fmt.Errorf("failed to connect wallet: %w", err)
	}

	chain, err := s.provider.ChainID(ctx)
	if err != nil {
		s.notifyFailure(ctx, "Connection failed", "Failed to read the wallet network", err)
		return fmt.Errorf("failed to read wallet chain: %w", err)
	}

	s.update(ctx, func(Snapshot) (string, domain.Chain) {
		return accounts[0], chain
	})
	return nil
}

// SwitchNetwork moves the wallet to the target chain. A chain the wallet does
// not know yet is registered first and the switch is retried once.
func (s *Session) SwitchNetwork(ctx context.Context) error {
	if s.provider == nil {
		s.notifyWalletNotFound(ctx)
		return domain.ErrWalletNotFound
	}

	switch s.Snapshot().State {
	case StateDisconnected:
		return domain.ErrNotConnected
	case StateConnectedReady:
		return nil
	}

	target := s.cfg.Target
	err := s.provider.SwitchChain(ctx, target.ChainID)
	if errors.Is(err, domain.ErrChainNotAdded) {
		logger.InfoCtx(ctx, "Registering chain with wallet", zap.String("chain", string(target.ChainID)))
		if addErr := s.provider.AddChain(ctx, target); addErr != nil {
			err = fmt.Errorf("failed to add chain %s: %w", target.ChainID, addErr)
		} else {
			err = s.provider.SwitchChain(ctx, target.ChainID)
		}
	}
	if err != nil {
		s.notifyFailure(ctx, "Network switch failed", fmt.Sprintf("Could not switch to %s", target.Name), err)
		return err
	}

	chain, err := s.provider.ChainID(ctx)
	if err != nil {
		s.notifyFailure(ctx, "Network switch failed", "Failed to read the wallet network", err)
		return fmt.Errorf("failed to read wallet chain: %w", err)
	}

	s.update(ctx, func(cur Snapshot) (string, domain.Chain) {
		return cur.Account, chain
	})
	return nil
}

// Disconnect forgets the connected account
func (s *Session) Disconnect(ctx context.Context) {
	s.update(ctx, func(cur Snapshot) (string, domain.Chain) {
		return "", cur.Chain
	})
}

// Close releases the wallet event listener, drops the bindings and closes
// every notification subscription
func (s *Session) Close() {
	s.lifecycle.Lock()
	if s.closed {
		s.lifecycle.Unlock()
		return
	}
	s.closed = true
	sub, done := s.sub, s.done
	s.sub = nil
	s.lifecycle.Unlock()

	if sub != nil {
		close(done)
		sub.Unsubscribe()
		s.wg.Wait()
	}

	s.transition.Lock()
	s.mu.Lock()
	s.snapshot = Snapshot{State: StateDisconnected, Chain: s.snapshot.Chain}
	s.mu.Unlock()
	s.transition.Unlock()

	s.observersMu.Lock()
	for ch := range s.observers {
		close(ch)
	}
	s.observers = nil
	s.observersMu.Unlock()
}

// Snapshot returns the current state with its bindings
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Bindings returns the contract bindings of a ready session
func (s *Session) Bindings() (*Bindings, error) {
	snap := s.Snapshot()
	switch snap.State {
	case StateDisconnected:
		return nil, domain.ErrNotConnected
	case StateConnectedWrongChain:
		return nil, domain.ErrWrongChain
	}
	return snap.Bindings, nil
}

// Subscribe returns a channel of the session's notifications. Notifications
// are dropped for a subscriber whose buffer is full. The channel is closed by
// cancel or by Close.
func (s *Session) Subscribe(buffer int) (<-chan Notification, func()) {
	ch := make(chan Notification, buffer)

	s.observersMu.Lock()
	defer s.observersMu.Unlock()
	if s.observers == nil {
		close(ch)
		return ch, func() {}
	}
	s.observers[ch] = struct{}{}

	cancel := func() {
		s.observersMu.Lock()
		defer s.observersMu.Unlock()
		if _, ok := s.observers[ch]; ok {
			delete(s.observers, ch)
			close(ch)
		}
	}
	return ch, cancel
}

func (s *Session) consume(events <-chan Event, done <-chan struct{}) {
	defer s.wg.Done()
	ctx := context.Background()
	for {
		select {
		case <-done:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			s.handle(ctx, ev)
		}
	}
}

func (s *Session) handle(ctx context.Context, ev Event) {
	switch e := ev.(type) {
	case AccountsChanged:
		logger.DebugCtx(ctx, "Wallet accounts changed", zap.Strings("accounts", e.Accounts))
		s.update(ctx, func(cur Snapshot) (string, domain.Chain) {
			if len(e.Accounts) == 0 {
				return "", cur.Chain
			}
			// connecting takes an explicit action or the startup reconnect
			if cur.State == StateDisconnected {
				return "", cur.Chain
			}
			return e.Accounts[0], cur.Chain
		})
	case ChainChanged:
		logger.DebugCtx(ctx, "Wallet chain changed", zap.String("chain", string(e.ChainID)))
		s.update(ctx, func(cur Snapshot) (string, domain.Chain) {
			return cur.Account, e.ChainID
		})
	}
}

// update derives the next state from the current one and publishes it
// together with freshly built bindings in a single swap
func (s *Session) update(ctx context.Context, next func(cur Snapshot) (account string, chain domain.Chain)) {
	s.transition.Lock()
	defer s.transition.Unlock()

	cur := s.Snapshot()
	account, chain := next(cur)
	account = domain.NormalizeAddress(account)
	if account == cur.Account && chain == cur.Chain {
		return
	}

	snap := Snapshot{
		State:   resolveState(account, chain, s.cfg.Target.ChainID),
		Account: account,
		Chain:   chain,
	}

	if snap.State == StateConnectedReady {
		b, err := s.bindingsFor(account, chain)
		for attempt := 0; errors.Is(err, domain.ErrWrongChain) && attempt < maxRebindAttempts; attempt++ {
			// the wallet left chain before the bindings were built
			actual, chainErr := s.provider.ChainID(ctx)
			if chainErr != nil {
				err = chainErr
				break
			}
			snap.Chain = actual
			snap.State = resolveState(account, actual, s.cfg.Target.ChainID)
			if snap.State != StateConnectedReady {
				b, err = nil, nil
				break
			}
			b, err = s.bindingsFor(account, actual)
		}
		if errors.Is(err, domain.ErrWrongChain) {
			logger.WarnCtx(ctx, "Wallet chain still changing, keeping session state", zap.String("chain", string(chain)))
			return
		}
		if err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to bind contracts: %w", err), zap.String("account", account))
			s.set(Snapshot{State: StateDisconnected, Chain: snap.Chain})
			s.notifyFailure(ctx, "Connection failed", "Failed to bind the marketplace contracts", err)
			return
		}
		snap.Bindings = b
	}

	if snap.State == cur.State && snap.Account == cur.Account && snap.Chain == cur.Chain && snap.Bindings == nil {
		return
	}

	s.set(snap)
	logger.InfoCtx(ctx, "Wallet session updated",
		zap.String("from", cur.State.String()),
		zap.String("to", snap.State.String()),
		zap.String("account", snap.Account),
		zap.String("chain", string(snap.Chain)))

	if n, ok := transitionNotification(cur, snap, s.cfg.Target); ok {
		s.notify(ctx, n)
	}
}

func (s *Session) set(snap Snapshot) {
	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()
}

func (s *Session) bindingsFor(account string, chain domain.Chain) (*Bindings, error) {
	client, opts, err := s.provider.Signer(account, chain)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, errors.New("wallet has no RPC backend")
	}

	nft, auction := s.bind(client, s.cfg.NFTAddress, s.cfg.AuctionAddress, opts)
	return &Bindings{Account: account, Chain: chain, NFT: nft, Auction: auction}, nil
}

// transitionNotification describes a state change for the user
func transitionNotification(prev, next Snapshot, target ChainParams) (Notification, bool) {
	var n Notification
	switch {
	case next.State == StateDisconnected && prev.State != StateDisconnected:
		n.Kind, n.Title, n.Description = NotificationDisconnected, "Wallet disconnected", "Your wallet has been disconnected"
	case next.State == StateDisconnected:
		return n, false
	case prev.State == StateDisconnected && next.State == StateConnectedReady:
		n.Kind, n.Title = NotificationConnected, "Wallet connected"
		n.Description = "Connected to " + domain.ShortAddress(next.Account)
	case next.State == StateConnectedWrongChain && prev.State != StateConnectedWrongChain:
		n.Kind, n.Title = NotificationWrongNetwork, "Wrong network"
		n.Description = fmt.Sprintf("Please switch to %s", target.Name)
	case prev.State == StateConnectedWrongChain && next.State == StateConnectedReady:
		n.Kind, n.Title = NotificationNetworkSwitched, "Network switched"
		n.Description = "Connected to " + target.Name
	case prev.Account != next.Account:
		n.Kind, n.Title = NotificationAccountSwitched, "Account switched"
		n.Description = "Connected to " + domain.ShortAddress(next.Account)
	default:
		return n, false
	}
	return n, true
}

func (s *Session) notifyWalletNotFound(ctx context.Context) {
	s.notifyFailure(ctx, "Wallet not found", "Configure a wallet to sign marketplace transactions", domain.ErrWalletNotFound)
}

func (s *Session) notifyFailure(ctx context.Context, title, description string, err error) {
	s.notify(ctx, Notification{
		Kind:        NotificationError,
		Title:       title,
		Description: description,
		Err:         err,
	})
}

// notify shows n to the user and fans it out to subscribers
func (s *Session) notify(ctx context.Context, n Notification) {
	s.notifier.Notify(ctx, n)

	s.observersMu.Lock()
	defer s.observersMu.Unlock()
	for ch := range s.observers {
		select {
		case ch <- n:
		default:
			logger.WarnCtx(ctx, "Dropping wallet notification for slow subscriber", zap.String("kind", string(n.Kind)))
		}
	}
}
