package contracts

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const cattleNFTABIJSON = `[
{"type":"function","name":"mintCattle","stateMutability":"nonpayable","inputs":[
	{"name":"recipient","type":"address"},{"name":"tokenURI","type":"string"},{"name":"name","type":"string"},
	{"name":"breed","type":"string"},{"name":"weight","type":"uint256"},{"name":"color","type":"string"},
	{"name":"vaccines","type":"string"},{"name":"feeding","type":"string"}],
	"outputs":[{"name":"","type":"uint256"}]},
{"type":"function","name":"approve","stateMutability":"nonpayable","inputs":[
	{"name":"to","type":"address"},{"name":"tokenId","type":"uint256"}],"outputs":[]},
{"type":"function","name":"setCattleForSale","stateMutability":"nonpayable","inputs":[
	{"name":"tokenId","type":"uint256"},{"name":"isForSale","type":"bool"}],"outputs":[]},
{"type":"function","name":"ownerOf","stateMutability":"view","inputs":[
	{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"address"}]},
{"type":"function","name":"tokenURI","stateMutability":"view","inputs":[
	{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"string"}]},
{"type":"function","name":"getCattleData","stateMutability":"view","inputs":[
	{"name":"tokenId","type":"uint256"}],
	"outputs":[{"name":"","type":"tuple","internalType":"struct CattleNFT.CattleData","components":[
		{"name":"name","type":"string"},{"name":"breed","type":"string"},{"name":"weight","type":"uint256"},
		{"name":"color","type":"string"},{"name":"vaccines","type":"string"},{"name":"feeding","type":"string"},
		{"name":"isForSale","type":"bool"}]}]},
{"type":"event","name":"CattleMinted","anonymous":false,"inputs":[
	{"name":"tokenId","type":"uint256","indexed":true},{"name":"owner","type":"address","indexed":false},
	{"name":"name","type":"string","indexed":false},{"name":"breed","type":"string","indexed":false}]},
{"type":"event","name":"Transfer","anonymous":false,"inputs":[
	{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},
	{"name":"tokenId","type":"uint256","indexed":true}]}
]`

const cattleAuctionABIJSON = `[
{"type":"function","name":"createAuction","stateMutability":"nonpayable","inputs":[
	{"name":"tokenId","type":"uint256"},{"name":"startingPrice","type":"uint256"},
	{"name":"reservePrice","type":"uint256"},{"name":"duration","type":"uint256"}],"outputs":[]},
{"type":"function","name":"getAuction","stateMutability":"view","inputs":[
	{"name":"tokenId","type":"uint256"}],
	"outputs":[{"name":"","type":"tuple","internalType":"struct CattleAuction.Auction","components":[
		{"name":"tokenId","type":"uint256"},{"name":"seller","type":"address"},
		{"name":"startingPrice","type":"uint256"},{"name":"reservePrice","type":"uint256"},
		{"name":"highestBid","type":"uint256"},{"name":"highestBidder","type":"address"},
		{"name":"endTime","type":"uint256"},{"name":"status","type":"uint8"}]}]},
{"type":"function","name":"getHighestBid","stateMutability":"view","inputs":[
	{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
{"type":"function","name":"getHighestBidder","stateMutability":"view","inputs":[
	{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"address"}]},
{"type":"function","name":"getTimeRemaining","stateMutability":"view","inputs":[
	{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
{"type":"event","name":"AuctionCreated","anonymous":false,"inputs":[
	{"name":"tokenId","type":"uint256","indexed":true},{"name":"seller","type":"address","indexed":false},
	{"name":"startingPrice","type":"uint256","indexed":false},{"name":"reservePrice","type":"uint256","indexed":false},
	{"name":"endTime","type":"uint256","indexed":false}]}
]`

var (
	cattleNFTABI     = mustParseABI(cattleNFTABIJSON)
	cattleAuctionABI = mustParseABI(cattleAuctionABIJSON)

	// CattleMintedEventID is the topic of CattleMinted(uint256,address,string,string)
	CattleMintedEventID = cattleNFTABI.Events["CattleMinted"].ID

	// TransferEventID is the topic of the ERC-721 Transfer(address,address,uint256)
	TransferEventID = cattleNFTABI.Events["Transfer"].ID

	// AuctionCreatedEventID is the topic of AuctionCreated(uint256,address,uint256,uint256,uint256)
	AuctionCreatedEventID = cattleAuctionABI.Events["AuctionCreated"].ID
)

func mustParseABI(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(fmt.Sprintf("failed to parse ABI: %v", err))
	}
	return parsed
}
