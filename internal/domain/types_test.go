package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainEVMChainID(t *testing.T) {
	tests := []struct {
		name     string
		chain    Chain
		expected int64
		wantErr  bool
	}{
		{name: "scroll sepolia", chain: ChainScrollSepolia, expected: 534351},
		{name: "ethereum mainnet", chain: ChainEthereumMainnet, expected: 1},
		{name: "built from id", chain: NewEVMChain(31337), expected: 31337},
		{name: "tezos namespace", chain: Chain("tezos:mainnet"), wantErr: true},
		{name: "empty", chain: Chain(""), wantErr: true},
		{name: "hex reference", chain: Chain("eip155:0x1"), wantErr: true},
		{name: "zero reference", chain: Chain("eip155:0"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := tt.chain.EVMChainID()
			if tt.wantErr {
				assert.Error(t, err)
				assert.False(t, tt.chain.Valid())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id.Int64())
			assert.True(t, tt.chain.Valid())
		})
	}
}

func TestChainEqual(t *testing.T) {
	assert.True(t, ChainScrollSepolia.Equal(NewEVMChain(534351)))
	assert.True(t, Chain("eip155:01").Equal(ChainEthereumMainnet))
	assert.False(t, ChainScrollSepolia.Equal(ChainScrollMainnet))
	assert.False(t, Chain("bogus").Equal(Chain("bogus")))
}

func TestParseTokenIDs(t *testing.T) {
	ids, err := ParseTokenIDs("1, 2,,42")
	require.NoError(t, err)
	require.Len(t, ids, 3)
	assert.Equal(t, "42", ids[2].String())

	_, err = ParseTokenIDs("1,-2")
	assert.Error(t, err)

	_, err = ParseTokenID("abc")
	assert.Error(t, err)

	ids, err = ParseTokenIDs("")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestAuctionStatusFromCode(t *testing.T) {
	tests := []struct {
		code     uint8
		expected AuctionStatus
		wantErr  bool
	}{
		{code: 0, expected: AuctionStatusActive},
		{code: 1, expected: AuctionStatusEnded},
		{code: 2, expected: AuctionStatusCanceled},
		{code: 3, wantErr: true},
		{code: 255, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			status, err := AuctionStatusFromCode(tt.code)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownAuctionStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)

			code, err := status.Code()
			require.NoError(t, err)
			assert.Equal(t, tt.code, code)
		})
	}

	_, err := AuctionStatus("Paused").Code()
	assert.ErrorIs(t, err, ErrUnknownAuctionStatus)
}

func TestNormalizeAddress(t *testing.T) {
	assert.Equal(t,
		"0x396343362be2A4dA1cE0C1C210945346fb82Aa49",
		NormalizeAddress("0x396343362be2a4da1ce0c1c210945346fb82aa49"))
	assert.Equal(t, "not-hex", NormalizeAddress("not-hex"))
	assert.Equal(t, "0x3963...Aa49", ShortAddress("0x396343362be2A4dA1cE0C1C210945346fb82Aa49"))
	assert.Equal(t, "0x12", ShortAddress("0x12"))
}

func TestNewMarketEvent(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("BRT", -3*3600))
	actor := NewDID("0x396343362be2A4dA1cE0C1C210945346fb82Aa49", ChainScrollSepolia)
	e := NewMarketEvent(now, MarketEventAuctionCreated, ChainScrollSepolia, "7", "0xabc", actor)

	assert.Len(t, e.ID, 26)
	assert.Equal(t, MarketEventAuctionCreated, e.Type)
	assert.Equal(t, time.UTC, e.Timestamp.Location())
	assert.True(t, e.Timestamp.Equal(now))
	assert.Equal(t, actor, e.Actor)

	other := NewMarketEvent(now.Add(time.Second), MarketEventAuctionCreated, ChainScrollSepolia, "7", "0xabc", actor)
	assert.Less(t, e.ID, other.ID)
}
