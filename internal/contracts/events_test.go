package contracts_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoofledger/hoofledger/internal/contracts"
	"github.com/hoofledger/hoofledger/internal/domain"
)

var (
	nftAddress     = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	auctionAddress = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	ownerAddress   = common.HexToAddress("0x396343362be2A4dA1cE0C1C210945346fb82Aa49")
)

func mintedLog(address common.Address, tokenID int64) *types.Log {
	return &types.Log{
		Address: address,
		Topics:  []common.Hash{contracts.CattleMintedEventID, common.BigToHash(big.NewInt(tokenID))},
	}
}

func transferLog(address, from, to common.Address, tokenID int64) *types.Log {
	return &types.Log{
		Address: address,
		Topics: []common.Hash{
			contracts.TransferEventID,
			common.BytesToHash(from.Bytes()),
			common.BytesToHash(to.Bytes()),
			common.BigToHash(big.NewInt(tokenID)),
		},
	}
}

func TestMintedTokenID(t *testing.T) {
	tests := []struct {
		name     string
		logs     []*types.Log
		expected int64
		wantErr  bool
	}{
		{
			name:     "cattle minted event",
			logs:     []*types.Log{mintedLog(nftAddress, 7)},
			expected: 7,
		},
		{
			name: "cattle minted preferred over transfer",
			logs: []*types.Log{
				transferLog(nftAddress, common.Address{}, ownerAddress, 9),
				mintedLog(nftAddress, 7),
			},
			expected: 7,
		},
		{
			name:     "transfer from zero address fallback",
			logs:     []*types.Log{transferLog(nftAddress, common.Address{}, ownerAddress, 12)},
			expected: 12,
		},
		{
			name:    "transfer between owners is not a mint",
			logs:    []*types.Log{transferLog(nftAddress, ownerAddress, common.HexToAddress("0x01"), 12)},
			wantErr: true,
		},
		{
			name:    "event from another contract",
			logs:    []*types.Log{mintedLog(auctionAddress, 7)},
			wantErr: true,
		},
		{
			name:    "no logs",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := contracts.MintedTokenID(&types.Receipt{Logs: tt.logs}, nftAddress)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrMintEventNotFound)
				assert.Nil(t, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id.Int64())
		})
	}

	_, err := contracts.MintedTokenID(nil, nftAddress)
	assert.ErrorIs(t, err, domain.ErrMintEventNotFound)
}

func TestEventIDs(t *testing.T) {
	assert.Equal(t, "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef", contracts.TransferEventID.Hex())
	assert.NotEqual(t, contracts.CattleMintedEventID, contracts.AuctionCreatedEventID)
}
