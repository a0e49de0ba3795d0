package contracts

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/hoofledger/hoofledger/internal/adapter"
)

// Auction mirrors the CattleAuction.Auction struct.
// Field names and order must match the ABI tuple components.
type Auction struct {
	TokenId       *big.Int //nolint:revive,stylecheck // matches the ABI component name
	Seller        common.Address
	StartingPrice *big.Int
	ReservePrice  *big.Int
	HighestBid    *big.Int
	HighestBidder common.Address
	EndTime       *big.Int
	Status        uint8
}

// CattleAuction is the typed binding of the cattle auction contract
//
//go:generate mockgen -source=auction.go -destination=../mocks/auction.go -package=mocks -mock_names=CattleAuction=MockCattleAuction
type CattleAuction interface {
	Address() common.Address
	CreateAuction(ctx context.Context, tokenID, startingPrice, reservePrice, duration *big.Int) (*types.Transaction, error)
	GetAuction(ctx context.Context, tokenID *big.Int) (*Auction, error)
	GetHighestBid(ctx context.Context, tokenID *big.Int) (*big.Int, error)
	GetHighestBidder(ctx context.Context, tokenID *big.Int) (common.Address, error)
	GetTimeRemaining(ctx context.Context, tokenID *big.Int) (*big.Int, error)

	// WaitMined waits for the transaction to be confirmed
	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
}

type cattleAuction struct {
	boundContract
}

// NewCattleAuction binds the auction contract at address. Nil opts yield a read-only binding.
func NewCattleAuction(address common.Address, client adapter.EthClient, opts *bind.TransactOpts) CattleAuction {
	return &cattleAuction{newBoundContract(address, cattleAuctionABI, client, opts)}
}

func (a *cattleAuction) Address() common.Address {
	return a.address
}

func (a *cattleAuction) CreateAuction(ctx context.Context, tokenID, startingPrice, reservePrice, duration *big.Int) (*types.Transaction, error) {
	return a.transact(ctx, "createAuction", tokenID, startingPrice, reservePrice, duration)
}

func (a *cattleAuction) GetAuction(ctx context.Context, tokenID *big.Int) (*Auction, error) {
	out, err := a.call(ctx, "getAuction", tokenID)
	if err != nil {
		return nil, err
	}
	return abi.ConvertType(out[0], new(Auction)).(*Auction), nil
}

func (a *cattleAuction) GetHighestBid(ctx context.Context, tokenID *big.Int) (*big.Int, error) {
	return a.callBigInt(ctx, "getHighestBid", tokenID)
}

func (a *cattleAuction) GetHighestBidder(ctx context.Context, tokenID *big.Int) (common.Address, error) {
	out, err := a.call(ctx, "getHighestBidder", tokenID)
	if err != nil {
		return common.Address{}, err
	}
	bidder, ok := out[0].(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("unexpected getHighestBidder result type %T", out[0])
	}
	return bidder, nil
}

func (a *cattleAuction) GetTimeRemaining(ctx context.Context, tokenID *big.Int) (*big.Int, error) {
	return a.callBigInt(ctx, "getTimeRemaining", tokenID)
}

func (a *cattleAuction) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	return a.waitMined(ctx, tx)
}

func (a *cattleAuction) callBigInt(ctx context.Context, method string, tokenID *big.Int) (*big.Int, error) {
	out, err := a.call(ctx, method, tokenID)
	if err != nil {
		return nil, err
	}
	v, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected %s result type %T", method, out[0])
	}
	return v, nil
}
