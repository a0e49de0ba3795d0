package domain

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// MarketEventType names a marketplace event published to the message broker
type MarketEventType string

const (
	MarketEventCattleMinted     MarketEventType = "cattle.minted"
	MarketEventAuctionCreated   MarketEventType = "auction.created"
	MarketEventListingCompleted MarketEventType = "listing.completed"
)

// MarketEvent is published after a confirmed marketplace transaction
type MarketEvent struct {
	ID        string          `json:"id"`
	Type      MarketEventType `json:"type"`
	Chain     Chain           `json:"chain"`
	TokenID   string          `json:"token_id"`
	TxHash    string          `json:"tx_hash"`
	Actor     DID             `json:"actor,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMarketEvent stamps a new event with a time-ordered ULID
func NewMarketEvent(now time.Time, eventType MarketEventType, chain Chain, tokenID, txHash string, actor DID) *MarketEvent {
	return &MarketEvent{
		ID:        ulid.MustNewDefault(now).String(),
		Type:      eventType,
		Chain:     chain,
		TokenID:   tokenID,
		TxHash:    txHash,
		Actor:     actor,
		Timestamp: now.UTC(),
	}
}
