package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hoofledger/hoofledger/internal/domain"
)

// CreateAuctionRequest is the body of POST /auctions.
// Prices are in whole currency units and accept JSON numbers or strings.
type CreateAuctionRequest struct {
	TokenID           json.Number     `json:"token_id" binding:"required,numeric"`
	StartingPrice     decimal.Decimal `json:"starting_price" binding:"required,gt=0"`
	ReservePrice      decimal.Decimal `json:"reserve_price" binding:"required,gt=0"`
	DurationInSeconds uint64          `json:"duration_in_seconds" binding:"required,min=3600"`
}

// CreateAuctionResponse is returned once the createAuction transaction is confirmed
type CreateAuctionResponse struct {
	Success         bool       `json:"success"`
	Message         string     `json:"message"`
	TransactionHash string     `json:"transaction_hash"`
	TokenID         string     `json:"token_id"`
	EndTime         *time.Time `json:"end_time,omitempty"`
}

// AuctionListItem is one entry of a batch auction read. Exactly one of Auction and Error is set.
type AuctionListItem struct {
	TokenID string              `json:"token_id"`
	Auction *domain.AuctionData `json:"auction,omitempty"`
	Error   string              `json:"error,omitempty"`
}

// AuctionListResponse is returned by GET /auctions?token_ids=
type AuctionListResponse struct {
	Auctions []AuctionListItem `json:"auctions"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status     string       `json:"status"`
	Service    string       `json:"service"`
	Blockchain bool         `json:"blockchain"`
	Chain      domain.Chain `json:"chain"`
}
