package gateway

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hoofledger/hoofledger/internal/adapter"
	"github.com/hoofledger/hoofledger/internal/config"
	"github.com/hoofledger/hoofledger/internal/contracts"
	"github.com/hoofledger/hoofledger/internal/domain"
	"github.com/hoofledger/hoofledger/internal/logger"
	"github.com/hoofledger/hoofledger/internal/units"
)

// MintRequest are the attributes of a cattle NFT to mint
type MintRequest struct {
	Recipient string
	TokenURI  string
	Name      string
	Breed     string
	Weight    uint64
	Color     string
	Vaccines  string
	Feeding   string
}

// AuctionRequest describes an auction to create with prices in whole currency units
type AuctionRequest struct {
	TokenID         *big.Int
	StartingPrice   decimal.Decimal
	ReservePrice    decimal.Decimal
	DurationSeconds uint64
}

// AuctionResult is the outcome of a confirmed createAuction transaction
type AuctionResult struct {
	TxHash  string
	TokenID string
	EndTime *time.Time
}

// Gateway owns the RPC connection, the signing key and both contract bindings
//
//go:generate mockgen -source=gateway.go -destination=../mocks/gateway.go -package=mocks -mock_names=Gateway=MockGateway
type Gateway interface {
	// Init dials the RPC endpoint and binds both contracts. It runs once;
	// later calls return the first outcome.
	Init(ctx context.Context) error

	// Chain returns the configured target chain
	Chain() domain.Chain

	// Signer returns the address of the signing key
	Signer() (string, error)

	MintCattleNFT(ctx context.Context, req MintRequest) (*domain.MintedAsset, error)
	CreateCattleAuction(ctx context.Context, req AuctionRequest) (*AuctionResult, error)
	GetCattleData(ctx context.Context, tokenID *big.Int) (*domain.CattleData, error)
	GetAuctionData(ctx context.Context, tokenID *big.Int) (*domain.AuctionData, error)
	GetCattleOwner(ctx context.Context, tokenID *big.Int) (string, error)

	// CheckConnection reports whether the RPC endpoint answers. It never fails.
	CheckConnection(ctx context.Context) bool

	Close()
}

// BindingFactory builds contract bindings over a dialed client
type BindingFactory func(client adapter.EthClient, nft, auction common.Address, opts *bind.TransactOpts) (contracts.CattleNFT, contracts.CattleAuction)

// DefaultBindings binds the ABI implementations
func DefaultBindings(client adapter.EthClient, nft, auction common.Address, opts *bind.TransactOpts) (contracts.CattleNFT, contracts.CattleAuction) {
	return contracts.NewCattleNFT(nft, client, opts), contracts.NewCattleAuction(auction, client, opts)
}

type gateway struct {
	cfg      config.ChainConfig
	dialer   adapter.EthClientDialer
	clock    adapter.Clock
	bindings BindingFactory

	once sync.Once

	mu      sync.RWMutex
	initErr error
	client     adapter.EthClient
	transactor *bind.TransactOpts
	nft        contracts.CattleNFT
	auction    contracts.CattleAuction
}

// New creates an uninitialized gateway
func New(cfg config.ChainConfig, dialer adapter.EthClientDialer, clock adapter.Clock, bindings BindingFactory) Gateway {
	if bindings == nil {
		bindings = DefaultBindings
	}
	return &gateway{
		cfg:      cfg,
		dialer:   dialer,
		clock:    clock,
		bindings: bindings,
	}
}

func (g *gateway) Init(ctx context.Context) error {
	g.once.Do(func() {
		err := g.init(ctx)

		g.mu.Lock()
		g.initErr = err
		g.mu.Unlock()

		if err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to initialize blockchain service: %w", err))
			return
		}
		logger.InfoCtx(ctx, "Blockchain service initialized",
			zap.String("chain", string(g.cfg.ChainID)),
			zap.String("signer", g.transactor.From.Hex()),
			zap.String("nft", g.nft.Address().Hex()),
			zap.String("auction", g.auction.Address().Hex()))
	})

	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.initErr
}

func (g *gateway) init(ctx context.Context) error {
	if err := g.cfg.Validate(); err != nil {
		return err
	}

	if !common.IsHexAddress(g.cfg.NFTAddress) {
		return fmt.Errorf("%w: invalid nft contract address %q", domain.ErrMissingConfig, g.cfg.NFTAddress)
	}
	if !common.IsHexAddress(g.cfg.AuctionAddress) {
		return fmt.Errorf("%w: invalid auction contract address %q", domain.ErrMissingConfig, g.cfg.AuctionAddress)
	}

	key, err := contracts.ParsePrivateKey(g.cfg.PrivateKey)
	if err != nil {
		return err
	}

	expected, err := g.cfg.ChainID.EVMChainID()
	if err != nil {
		return err
	}

	client, err := g.dialer.Dial(ctx, g.cfg.RPCURL)
	if err != nil {
		return fmt.Errorf("failed to dial rpc: %w", err)
	}

	actual, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return fmt.Errorf("failed to get chain id: %w", err)
	}
	if actual.Cmp(expected) != 0 {
		client.Close()
		return fmt.Errorf("%w: rpc reports chain %s, configured %s", domain.ErrWrongChain, actual.String(), expected.String())
	}

	transactor, err := contracts.NewTransactOpts(key, expected)
	if err != nil {
		client.Close()
		return err
	}
	nft, auction := g.bindings(client,
		common.HexToAddress(g.cfg.NFTAddress),
		common.HexToAddress(g.cfg.AuctionAddress),
		transactor)

	g.mu.Lock()
	g.client, g.transactor, g.nft, g.auction = client, transactor, nft, auction
	g.mu.Unlock()

	return nil
}

// ready fails fast before a successful Init
func (g *gateway) ready() error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.client != nil && g.initErr == nil {
		return nil
	}
	if g.initErr != nil {
		return fmt.Errorf("%w: %w", domain.ErrNotInitialized, g.initErr)
	}
	return domain.ErrNotInitialized
}

func (g *gateway) Chain() domain.Chain {
	return g.cfg.ChainID
}

func (g *gateway) Signer() (string, error) {
	if err := g.ready(); err != nil {
		return "", err
	}
	return g.transactor.From.Hex(), nil
}

func (g *gateway) MintCattleNFT(ctx context.Context, req MintRequest) (*domain.MintedAsset, error) {
	if err := g.ready(); err != nil {
		return nil, err
	}

	if !common.IsHexAddress(req.Recipient) {
		return nil, fmt.Errorf("invalid recipient address: %q", req.Recipient)
	}

	tx, err := g.nft.MintCattle(ctx, contracts.MintParams{
		Recipient: common.HexToAddress(req.Recipient),
		TokenURI:  req.TokenURI,
		Name:      req.Name,
		Breed:     req.Breed,
		Weight:    new(big.Int).SetUint64(req.Weight),
		Color:     req.Color,
		Vaccines:  req.Vaccines,
		Feeding:   req.Feeding,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to submit mint: %w", err)
	}

	logger.InfoCtx(ctx, "Mint transaction sent", zap.String("txHash", tx.Hash().Hex()))

	receipt, err := g.nft.WaitMined(ctx, tx)
	if err != nil {
		return nil, err
	}

	tokenID, err := g.nft.MintedTokenID(receipt)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Cattle NFT minted",
		zap.String("tokenId", tokenID.String()),
		zap.String("txHash", tx.Hash().Hex()))

	return &domain.MintedAsset{
		TokenID:     tokenID.String(),
		Owner:       domain.NormalizeAddress(req.Recipient),
		MetadataURI: req.TokenURI,
		TxHash:      tx.Hash().Hex(),
	}, nil
}

func (g *gateway) CreateCattleAuction(ctx context.Context, req AuctionRequest) (*AuctionResult, error) {
	if err := g.ready(); err != nil {
		return nil, err
	}

	if req.TokenID == nil {
		return nil, errors.New("token id is required")
	}

	startingPrice, err := units.ToBaseUnits(req.StartingPrice)
	if err != nil {
		return nil, fmt.Errorf("starting price: %w", err)
	}
	reservePrice, err := units.ToBaseUnits(req.ReservePrice)
	if err != nil {
		return nil, fmt.Errorf("reserve price: %w", err)
	}

	tx, err := g.auction.CreateAuction(ctx, req.TokenID, startingPrice, reservePrice, new(big.Int).SetUint64(req.DurationSeconds))
	if err != nil {
		return nil, err
	}

	receipt, err := g.auction.WaitMined(ctx, tx)
	if err != nil {
		return nil, err
	}

	result := &AuctionResult{
		TxHash:  tx.Hash().Hex(),
		TokenID: req.TokenID.String(),
	}
	if event, ok := contracts.FindAuctionCreated(receipt, g.auction.Address()); ok && event.EndTime != nil && event.EndTime.IsInt64() {
		endTime := g.clock.Unix(event.EndTime.Int64(), 0).UTC()
		result.EndTime = &endTime
	}

	logger.InfoCtx(ctx, "Auction created",
		zap.String("tokenId", result.TokenID),
		zap.String("txHash", result.TxHash))

	return result, nil
}

func (g *gateway) GetCattleData(ctx context.Context, tokenID *big.Int) (*domain.CattleData, error) {
	if err := g.ready(); err != nil {
		return nil, err
	}

	data, err := g.nft.GetCattleData(ctx, tokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cattle data: %w", err)
	}

	var weight uint64
	if data.Weight != nil {
		if !data.Weight.IsUint64() {
			return nil, fmt.Errorf("cattle weight %s overflows uint64", data.Weight.String())
		}
		weight = data.Weight.Uint64()
	}

	return &domain.CattleData{
		Name:      data.Name,
		Breed:     data.Breed,
		Weight:    weight,
		Color:     data.Color,
		Vaccines:  data.Vaccines,
		Feeding:   data.Feeding,
		IsForSale: data.IsForSale,
	}, nil
}

func (g *gateway) GetAuctionData(ctx context.Context, tokenID *big.Int) (*domain.AuctionData, error) {
	if err := g.ready(); err != nil {
		return nil, err
	}

	auction, err := g.auction.GetAuction(ctx, tokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to get auction: %w", err)
	}

	status, err := domain.AuctionStatusFromCode(auction.Status)
	if err != nil {
		return nil, err
	}

	remaining, err := g.auction.GetTimeRemaining(ctx, tokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to get time remaining: %w", err)
	}

	data := &domain.AuctionData{
		TokenID:       bigString(auction.TokenId),
		Seller:        auction.Seller.Hex(),
		StartingPrice: units.FormatBaseUnits(auction.StartingPrice),
		ReservePrice:  units.FormatBaseUnits(auction.ReservePrice),
		HighestBid:    units.FormatBaseUnits(auction.HighestBid),
		HighestBidder: auction.HighestBidder.Hex(),
		Status:        status,
		TimeRemaining: clampUint64(remaining),
	}
	if auction.EndTime != nil && auction.EndTime.IsInt64() {
		data.EndTime = g.clock.Unix(auction.EndTime.Int64(), 0).UTC()
	}

	return data, nil
}

func (g *gateway) GetCattleOwner(ctx context.Context, tokenID *big.Int) (string, error) {
	if err := g.ready(); err != nil {
		return "", err
	}

	owner, err := g.nft.OwnerOf(ctx, tokenID)
	if err != nil {
		return "", fmt.Errorf("failed to get cattle owner: %w", err)
	}
	return owner.Hex(), nil
}

func (g *gateway) CheckConnection(ctx context.Context) bool {
	if g.ready() != nil {
		return false
	}
	if _, err := g.client.BlockNumber(ctx); err != nil {
		logger.WarnCtx(ctx, "Blockchain connection check failed", zap.Error(err))
		return false
	}
	return true
}

func (g *gateway) Close() {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.client != nil {
		g.client.Close()
	}
}

func bigString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

func clampUint64(v *big.Int) uint64 {
	switch {
	case v == nil || v.Sign() <= 0:
		return 0
	case !v.IsUint64():
		return math.MaxUint64
	default:
		return v.Uint64()
	}
}
