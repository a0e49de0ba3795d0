package contracts

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoofledger/hoofledger/internal/adapter"
	"github.com/hoofledger/hoofledger/internal/domain"
)

// callClient answers CallContract from a method table
type callClient struct {
	adapter.EthClient
	abi     abi.ABI
	results map[string][]interface{}
	err     error
	calls   []string
}

func (c *callClient) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	if c.err != nil {
		return nil, c.err
	}
	method, err := c.abi.MethodById(msg.Data[:4])
	if err != nil {
		return nil, err
	}
	c.calls = append(c.calls, method.Name)
	return method.Outputs.Pack(c.results[method.Name]...)
}

// sendingClient accepts transactions and records the last one sent
type sendingClient struct {
	*callClient
	sent *types.Transaction
}

func (c *sendingClient) HeaderByNumber(context.Context, *big.Int) (*types.Header, error) {
	return &types.Header{}, nil
}

func (c *sendingClient) SuggestGasPrice(context.Context) (*big.Int, error) {
	return big.NewInt(1), nil
}

func (c *sendingClient) PendingCodeAt(context.Context, common.Address) ([]byte, error) {
	return []byte{0x60}, nil
}

func (c *sendingClient) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error) {
	return 100000, nil
}

func (c *sendingClient) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	return 0, nil
}

func (c *sendingClient) SendTransaction(_ context.Context, tx *types.Transaction) error {
	c.sent = tx
	return nil
}

var (
	testNFTAddress     = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	testAuctionAddress = common.HexToAddress("0x00000000000000000000000000000000000000bb")
)

func TestCattleNFT_GetCattleData(t *testing.T) {
	client := &callClient{abi: cattleNFTABI, results: map[string][]interface{}{
		"getCattleData": {CattleData{
			Name:      "Mimosa",
			Breed:     "Nelore",
			Weight:    big.NewInt(450),
			Color:     "Branca",
			Vaccines:  "Aftosa",
			Feeding:   "Pasto",
			IsForSale: true,
		}},
	}}

	nft := NewCattleNFT(testNFTAddress, client, nil)
	data, err := nft.GetCattleData(context.Background(), big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, "Mimosa", data.Name)
	assert.Equal(t, int64(450), data.Weight.Int64())
	assert.True(t, data.IsForSale)
	assert.Equal(t, []string{"getCattleData"}, client.calls)
}

func TestCattleNFT_OwnerOfAndTokenURI(t *testing.T) {
	owner := common.HexToAddress("0x396343362be2A4dA1cE0C1C210945346fb82Aa49")
	client := &callClient{abi: cattleNFTABI, results: map[string][]interface{}{
		"ownerOf":  {owner},
		"tokenURI": {"ipfs://bafy"},
	}}

	nft := NewCattleNFT(testNFTAddress, client, nil)
	got, err := nft.OwnerOf(context.Background(), big.NewInt(3))
	require.NoError(t, err)
	assert.Equal(t, owner, got)

	uri, err := nft.TokenURI(context.Background(), big.NewInt(3))
	require.NoError(t, err)
	assert.Equal(t, "ipfs://bafy", uri)
}

func TestCattleNFT_CallRevert(t *testing.T) {
	client := &callClient{abi: cattleNFTABI, err: errors.New("execution reverted: ERC721: invalid token ID")}

	_, err := NewCattleNFT(testNFTAddress, client, nil).OwnerOf(context.Background(), big.NewInt(99))
	assert.ErrorIs(t, err, domain.ErrTransactionReverted)
	assert.Contains(t, err.Error(), "ERC721: invalid token ID")
}

func TestCattleNFT_MintCattlePacksArguments(t *testing.T) {
	key, err := ParsePrivateKey("0x4f3edf983ac636a65a842ce7c78d9aa706d3b113bce9c46f30d7d21715b23b1d")
	require.NoError(t, err)
	opts, err := NewTransactOpts(key, big.NewInt(534351))
	require.NoError(t, err)

	client := &sendingClient{callClient: &callClient{abi: cattleNFTABI}}
	nft := NewCattleNFT(testNFTAddress, client, opts)

	recipient := common.HexToAddress("0x396343362be2A4dA1cE0C1C210945346fb82Aa49")
	_, err = nft.MintCattle(context.Background(), MintParams{
		Recipient: recipient,
		TokenURI:  "ipfs://bafy",
		Name:      "Mimosa",
		Breed:     "Nelore",
		Weight:    big.NewInt(450),
		Color:     "Branca",
		Vaccines:  "Aftosa",
		Feeding:   "Pasto",
	})
	require.NoError(t, err)
	require.NotNil(t, client.sent)
	assert.Equal(t, testNFTAddress, *client.sent.To())

	data := client.sent.Data()
	method, err := cattleNFTABI.MethodById(data[:4])
	require.NoError(t, err)
	assert.Equal(t, "mintCattle", method.Name)

	args, err := method.Inputs.Unpack(data[4:])
	require.NoError(t, err)
	assert.Equal(t, recipient, args[0])
	assert.Equal(t, "Mimosa", args[2])
	assert.Equal(t, int64(450), args[4].(*big.Int).Int64())
}

func TestCattleNFT_ReadOnlyBindingCannotTransact(t *testing.T) {
	_, err := NewCattleNFT(testNFTAddress, &callClient{abi: cattleNFTABI}, nil).Approve(context.Background(), testAuctionAddress, big.NewInt(1))
	assert.Error(t, err)
}

func TestCattleAuction_GetAuction(t *testing.T) {
	seller := common.HexToAddress("0x396343362be2A4dA1cE0C1C210945346fb82Aa49")
	client := &callClient{abi: cattleAuctionABI, results: map[string][]interface{}{
		"getAuction": {Auction{
			TokenId:       big.NewInt(7),
			Seller:        seller,
			StartingPrice: big.NewInt(1e18),
			ReservePrice:  big.NewInt(2e18),
			HighestBid:    big.NewInt(0),
			HighestBidder: common.Address{},
			EndTime:       big.NewInt(1_800_000_000),
			Status:        2,
		}},
		"getHighestBid":    {big.NewInt(5)},
		"getHighestBidder": {seller},
		"getTimeRemaining": {big.NewInt(3600)},
	}}

	auction := NewCattleAuction(testAuctionAddress, client, nil)
	ctx := context.Background()

	got, err := auction.GetAuction(ctx, big.NewInt(7))
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.TokenId.Int64())
	assert.Equal(t, seller, got.Seller)
	assert.Equal(t, uint8(2), got.Status)
	assert.Equal(t, int64(1_800_000_000), got.EndTime.Int64())

	bid, err := auction.GetHighestBid(ctx, big.NewInt(7))
	require.NoError(t, err)
	assert.Equal(t, int64(5), bid.Int64())

	bidder, err := auction.GetHighestBidder(ctx, big.NewInt(7))
	require.NoError(t, err)
	assert.Equal(t, seller, bidder)

	remaining, err := auction.GetTimeRemaining(ctx, big.NewInt(7))
	require.NoError(t, err)
	assert.Equal(t, int64(3600), remaining.Int64())
}

func TestFindAuctionCreated(t *testing.T) {
	seller := common.HexToAddress("0x396343362be2A4dA1cE0C1C210945346fb82Aa49")
	data, err := cattleAuctionABI.Events["AuctionCreated"].Inputs.NonIndexed().Pack(
		seller, big.NewInt(1e18), big.NewInt(2e18), big.NewInt(1_800_000_000))
	require.NoError(t, err)

	receipt := &types.Receipt{Logs: []*types.Log{{
		Address: testAuctionAddress,
		Topics:  []common.Hash{AuctionCreatedEventID, common.BigToHash(big.NewInt(7))},
		Data:    data,
	}}}

	event, ok := FindAuctionCreated(receipt, testAuctionAddress)
	require.True(t, ok)
	assert.Equal(t, int64(7), event.TokenID.Int64())
	assert.Equal(t, seller, event.Seller)
	assert.Equal(t, int64(1_800_000_000), event.EndTime.Int64())

	_, ok = FindAuctionCreated(receipt, testNFTAddress)
	assert.False(t, ok)
}

func TestRevertFromError(t *testing.T) {
	revert, ok := revertFromError(errors.New("execution reverted"))
	require.True(t, ok)
	assert.Equal(t, "", revert.Reason)
	assert.Equal(t, "execution reverted", revert.Error())

	_, ok = revertFromError(errors.New("connection refused"))
	assert.False(t, ok)
}
