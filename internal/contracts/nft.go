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

// MintParams are the arguments of mintCattle
type MintParams struct {
	Recipient common.Address
	TokenURI  string
	Name      string
	Breed     string
	Weight    *big.Int
	Color     string
	Vaccines  string
	Feeding   string
}

// CattleData mirrors the CattleNFT.CattleData struct.
// Field names and order must match the ABI tuple components.
type CattleData struct {
	Name      string
	Breed     string
	Weight    *big.Int
	Color     string
	Vaccines  string
	Feeding   string
	IsForSale bool
}

// CattleNFT is the typed binding of the cattle NFT contract
//
//go:generate mockgen -source=nft.go -destination=../mocks/nft.go -package=mocks -mock_names=CattleNFT=MockCattleNFT
type CattleNFT interface {
	Address() common.Address
	MintCattle(ctx context.Context, params MintParams) (*types.Transaction, error)
	Approve(ctx context.Context, to common.Address, tokenID *big.Int) (*types.Transaction, error)
	SetCattleForSale(ctx context.Context, tokenID *big.Int, forSale bool) (*types.Transaction, error)
	OwnerOf(ctx context.Context, tokenID *big.Int) (common.Address, error)
	TokenURI(ctx context.Context, tokenID *big.Int) (string, error)
	GetCattleData(ctx context.Context, tokenID *big.Int) (*CattleData, error)

	// WaitMined waits for the transaction to be confirmed
	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)

	// MintedTokenID extracts the minted token id from a mint receipt
	MintedTokenID(receipt *types.Receipt) (*big.Int, error)
}

type cattleNFT struct {
	boundContract
}

// NewCattleNFT binds the NFT contract at address. Nil opts yield a read-only binding.
func NewCattleNFT(address common.Address, client adapter.EthClient, opts *bind.TransactOpts) CattleNFT {
	return &cattleNFT{newBoundContract(address, cattleNFTABI, client, opts)}
}

func (n *cattleNFT) Address() common.Address {
	return n.address
}

func (n *cattleNFT) MintCattle(ctx context.Context, p MintParams) (*types.Transaction, error) {
	weight := p.Weight
	if weight == nil {
		weight = new(big.Int)
	}
	return n.transact(ctx, "mintCattle", p.Recipient, p.TokenURI, p.Name, p.Breed, weight, p.Color, p.Vaccines, p.Feeding)
}

func (n *cattleNFT) Approve(ctx context.Context, to common.Address, tokenID *big.Int) (*types.Transaction, error) {
	return n.transact(ctx, "approve", to, tokenID)
}

func (n *cattleNFT) SetCattleForSale(ctx context.Context, tokenID *big.Int, forSale bool) (*types.Transaction, error) {
	return n.transact(ctx, "setCattleForSale", tokenID, forSale)
}

func (n *cattleNFT) OwnerOf(ctx context.Context, tokenID *big.Int) (common.Address, error) {
	out, err := n.call(ctx, "ownerOf", tokenID)
	if err != nil {
		return common.Address{}, err
	}
	owner, ok := out[0].(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("unexpected ownerOf result type %T", out[0])
	}
	return owner, nil
}

func (n *cattleNFT) TokenURI(ctx context.Context, tokenID *big.Int) (string, error) {
	out, err := n.call(ctx, "tokenURI", tokenID)
	if err != nil {
		return "", err
	}
	uri, ok := out[0].(string)
	if !ok {
		return "", fmt.Errorf("unexpected tokenURI result type %T", out[0])
	}
	return uri, nil
}

func (n *cattleNFT) GetCattleData(ctx context.Context, tokenID *big.Int) (*CattleData, error) {
	out, err := n.call(ctx, "getCattleData", tokenID)
	if err != nil {
		return nil, err
	}
	return abi.ConvertType(out[0], new(CattleData)).(*CattleData), nil
}

func (n *cattleNFT) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	return n.waitMined(ctx, tx)
}

func (n *cattleNFT) MintedTokenID(receipt *types.Receipt) (*big.Int, error) {
	return MintedTokenID(receipt, n.address)
}
