package domain

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Chain represents the blockchain network identifier using CAIP-2 format
type Chain string

const (
	ChainEthereumMainnet Chain = "eip155:1"
	ChainEthereumSepolia Chain = "eip155:11155111"
	ChainScrollMainnet   Chain = "eip155:534352"
	ChainScrollSepolia   Chain = "eip155:534351"
	ChainHardhatLocal    Chain = "eip155:31337"
)

// NewEVMChain builds the CAIP-2 identifier for an EVM chain id
func NewEVMChain(chainID uint64) Chain {
	return Chain(fmt.Sprintf("eip155:%d", chainID))
}

// EVMChainID returns the numeric chain id of an eip155 chain
func (c Chain) EVMChainID() (*big.Int, error) {
	ref, ok := strings.CutPrefix(string(c), "eip155:")
	if !ok {
		return nil, fmt.Errorf("not an eip155 chain: %q", c)
	}
	id, ok := new(big.Int).SetString(ref, 10)
	if !ok || id.Sign() <= 0 {
		return nil, fmt.Errorf("invalid eip155 chain reference: %q", c)
	}
	return id, nil
}

// Valid checks that the chain is a well-formed eip155 identifier
func (c Chain) Valid() bool {
	_, err := c.EVMChainID()
	return err == nil
}

// Equal compares chains by numeric id so "eip155:0x1" style inputs never sneak through as distinct
func (c Chain) Equal(other Chain) bool {
	a, err := c.EVMChainID()
	if err != nil {
		return false
	}
	b, err := other.EVMChainID()
	if err != nil {
		return false
	}
	return a.Cmp(b) == 0
}

// CattleData is the cattle record stored by the NFT contract
type CattleData struct {
	Name      string `json:"name"`
	Breed     string `json:"breed"`
	Weight    uint64 `json:"weight"`
	Color     string `json:"color"`
	Vaccines  string `json:"vaccines"`
	Feeding   string `json:"feeding"`
	IsForSale bool   `json:"is_for_sale"`
}

// AuctionData is the on-chain auction state with prices in whole currency units
type AuctionData struct {
	TokenID       string        `json:"token_id"`
	Seller        string        `json:"seller"`
	StartingPrice string        `json:"starting_price"`
	ReservePrice  string        `json:"reserve_price"`
	HighestBid    string        `json:"highest_bid"`
	HighestBidder string        `json:"highest_bidder"`
	EndTime       time.Time     `json:"end_time"`
	Status        AuctionStatus `json:"status"`
	TimeRemaining uint64        `json:"time_remaining"`
}

// MintedAsset is an NFT created by a confirmed mint transaction
type MintedAsset struct {
	TokenID     string `json:"token_id"`
	Owner       string `json:"owner"`
	MetadataURI string `json:"metadata_uri"`
	TxHash      string `json:"tx_hash"`
}

var tokenIDPattern = regexp.MustCompile(`^[0-9]+$`)

// ParseTokenID parses a decimal token id
func ParseTokenID(s string) (*big.Int, error) {
	if !tokenIDPattern.MatchString(s) {
		return nil, fmt.Errorf("invalid token id: %q", s)
	}
	id, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid token id: %q", s)
	}
	return id, nil
}

// ParseTokenIDs parses a comma separated list of decimal token ids
func ParseTokenIDs(s string) ([]*big.Int, error) {
	var ids []*big.Int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := ParseTokenID(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// TokenIDFromUint64 is a convenience for small token ids
func TokenIDFromUint64(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// NormalizeAddress returns the EIP-55 checksummed form of a hex address
func NormalizeAddress(address string) string {
	if strings.HasPrefix(address, "0x") {
		return common.HexToAddress(address).Hex()
	}
	return address
}

// ShortAddress renders 0x1234...abcd for notifications
func ShortAddress(address string) string {
	if len(address) < 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}
