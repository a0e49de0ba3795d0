package domain

import "fmt"

// AuctionStatus is the lifecycle state of an on-chain auction
type AuctionStatus string

const (
	AuctionStatusActive   AuctionStatus = "Active"
	AuctionStatusEnded    AuctionStatus = "Ended"
	AuctionStatusCanceled AuctionStatus = "Canceled"
)

// auctionStatusByCode mirrors the declaration order of the auction contract's
// Status enum. Reordering the enum on-chain requires changing this table.
var auctionStatusByCode = [...]AuctionStatus{
	0: AuctionStatusActive,
	1: AuctionStatusEnded,
	2: AuctionStatusCanceled,
}

// AuctionStatusFromCode decodes the contract's uint8 status
func AuctionStatusFromCode(code uint8) (AuctionStatus, error) {
	if int(code) >= len(auctionStatusByCode) {
		return "", fmt.Errorf("%w: %d", ErrUnknownAuctionStatus, code)
	}
	return auctionStatusByCode[code], nil
}

// Code returns the contract enum value for the status
func (s AuctionStatus) Code() (uint8, error) {
	for code, status := range auctionStatusByCode {
		if status == s {
			return uint8(code), nil //nolint:gosec,G115 // table has three entries
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAuctionStatus, string(s))
}

func (s AuctionStatus) String() string {
	return string(s)
}
