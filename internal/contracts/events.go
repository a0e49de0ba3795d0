package contracts

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/hoofledger/hoofledger/internal/domain"
)

// MintedTokenID extracts the token id assigned by a confirmed mint transaction.
// CattleMinted is preferred; an ERC-721 Transfer from the zero address is the fallback.
func MintedTokenID(receipt *types.Receipt, nftAddress common.Address) (*big.Int, error) {
	if receipt == nil {
		return nil, domain.ErrMintEventNotFound
	}

	var fromTransfer *big.Int
	for _, log := range receipt.Logs {
		if log == nil || log.Address != nftAddress || len(log.Topics) == 0 {
			continue
		}

		switch log.Topics[0] {
		case CattleMintedEventID:
			if len(log.Topics) < 2 {
				continue
			}
			return log.Topics[1].Big(), nil
		case TransferEventID:
			if fromTransfer != nil || len(log.Topics) < 4 {
				continue
			}
			if log.Topics[1] == (common.Hash{}) {
				fromTransfer = log.Topics[3].Big()
			}
		}
	}

	if fromTransfer != nil {
		return fromTransfer, nil
	}

	return nil, fmt.Errorf("%w: tx %s", domain.ErrMintEventNotFound, receipt.TxHash.Hex())
}

// AuctionCreated is the decoded AuctionCreated event
type AuctionCreated struct {
	TokenID       *big.Int
	Seller        common.Address
	StartingPrice *big.Int
	ReservePrice  *big.Int
	EndTime       *big.Int
}

// FindAuctionCreated returns the AuctionCreated event emitted by the auction contract, if any
func FindAuctionCreated(receipt *types.Receipt, auctionAddress common.Address) (*AuctionCreated, bool) {
	if receipt == nil {
		return nil, false
	}

	for _, log := range receipt.Logs {
		if log == nil || log.Address != auctionAddress || len(log.Topics) < 2 || log.Topics[0] != AuctionCreatedEventID {
			continue
		}

		values, err := cattleAuctionABI.Events["AuctionCreated"].Inputs.NonIndexed().Unpack(log.Data)
		if err != nil || len(values) != 4 {
			continue
		}

		seller, _ := values[0].(common.Address)
		startingPrice, _ := values[1].(*big.Int)
		reservePrice, _ := values[2].(*big.Int)
		endTime, _ := values[3].(*big.Int)

		return &AuctionCreated{
			TokenID:       log.Topics[1].Big(),
			Seller:        seller,
			StartingPrice: startingPrice,
			ReservePrice:  reservePrice,
			EndTime:       endTime,
		}, true
	}

	return nil, false
}
