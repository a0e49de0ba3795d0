package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/hoofledger/hoofledger/internal/store"
	"github.com/hoofledger/hoofledger/internal/store/schema"
)

// DateLayout is the wire format of birth dates
const DateLayout = "2006-01-02"

// CreateCattleRecordRequest is the body of POST /cattle-records
type CreateCattleRecordRequest struct {
	Name      string           `json:"name" binding:"required,max=255"`
	Breed     string           `json:"breed" binding:"max=255"`
	Color     string           `json:"color" binding:"required,max=255"`
	BirthDate string           `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Sire      string           `json:"sire" binding:"max=255"`
	Dam       string           `json:"dam" binding:"max=255"`
	Vaccines  string           `json:"vaccines" binding:"required"`
	Feeding   string           `json:"feeding" binding:"required"`
	PhotoURI  string           `json:"photo_uri" binding:"omitempty,max=2048"`
	Weight    *decimal.Decimal `json:"weight" binding:"omitempty,gte=0"`
}

// UpdateCattleRecordRequest is the body of PATCH /cattle-records/:id; absent fields are left unchanged
type UpdateCattleRecordRequest struct {
	Name      *string          `json:"name" binding:"omitempty,min=1,max=255"`
	Breed     *string          `json:"breed" binding:"omitempty,max=255"`
	Color     *string          `json:"color" binding:"omitempty,min=1,max=255"`
	BirthDate *string          `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Sire      *string          `json:"sire" binding:"omitempty,max=255"`
	Dam       *string          `json:"dam" binding:"omitempty,max=255"`
	Vaccines  *string          `json:"vaccines" binding:"omitempty,min=1"`
	Feeding   *string          `json:"feeding" binding:"omitempty,min=1"`
	PhotoURI  *string          `json:"photo_uri" binding:"omitempty,max=2048"`
	Weight    *decimal.Decimal `json:"weight" binding:"omitempty,gte=0"`
}

// MintCattleRecordRequest is the body of POST /cattle-records/:id/mint
type MintCattleRecordRequest struct {
	// Recipient defaults to the marketplace signer
	Recipient string `json:"recipient" binding:"omitempty,eth_addr"`
	TokenURI  string `json:"token_uri" binding:"required,max=2048"`
}

// CattleRecordResponse is the wire form of a cattle record
type CattleRecordResponse struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Breed      string           `json:"breed"`
	Color      string           `json:"color"`
	BirthDate  *string          `json:"birth_date"`
	Sire       string           `json:"sire"`
	Dam        string           `json:"dam"`
	Vaccines   string           `json:"vaccines"`
	Feeding    string           `json:"feeding"`
	PhotoURI   string           `json:"photo_uri"`
	Weight     *decimal.Decimal `json:"weight"`
	TokenID    *string          `json:"token_id"`
	MintTxHash *string          `json:"mint_tx_hash,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// DeleteCattleRecordResponse reports how many records were removed
type DeleteCattleRecordResponse struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deleted_count"`
}

// MintCattleRecordResponse is returned once the mint transaction is confirmed
type MintCattleRecordResponse struct {
	TokenID     string                `json:"token_id"`
	Owner       string                `json:"owner"`
	MetadataURI string                `json:"metadata_uri"`
	TxHash      string                `json:"tx_hash"`
	Record      *CattleRecordResponse `json:"record"`
}

// parseDate parses a validated YYYY-MM-DD date
func parseDate(s string) (*datatypes.Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, err
	}
	d := datatypes.Date(t)
	return &d, nil
}

// ToStoreInput converts the request into a store input
func (r CreateCattleRecordRequest) ToStoreInput() (store.CreateCattleRecordInput, error) {
	input := store.CreateCattleRecordInput{
		Name:     r.Name,
		Breed:    r.Breed,
		Color:    r.Color,
		Sire:     r.Sire,
		Dam:      r.Dam,
		Vaccines: r.Vaccines,
		Feeding:  r.Feeding,
		PhotoURI: r.PhotoURI,
		Weight:   r.Weight,
	}
	if r.BirthDate != "" {
		d, err := parseDate(r.BirthDate)
		if err != nil {
			return input, err
		}
		input.BirthDate = d
	}
	return input, nil
}

// ToStoreInput converts the request into a partial store update
func (r UpdateCattleRecordRequest) ToStoreInput() (store.UpdateCattleRecordInput, error) {
	input := store.UpdateCattleRecordInput{
		Name:     r.Name,
		Breed:    r.Breed,
		Color:    r.Color,
		Sire:     r.Sire,
		Dam:      r.Dam,
		Vaccines: r.Vaccines,
		Feeding:  r.Feeding,
		PhotoURI: r.PhotoURI,
		Weight:   r.Weight,
	}
	if r.BirthDate != nil {
		d, err := parseDate(*r.BirthDate)
		if err != nil {
			return input, err
		}
		input.BirthDate = d
	}
	return input, nil
}

// MapCattleRecordToDTO maps a schema record to its response
func MapCattleRecordToDTO(r *schema.CattleRecord) *CattleRecordResponse {
	if r == nil {
		return nil
	}

	resp := &CattleRecordResponse{
		ID:         r.ID,
		Name:       r.Name,
		Breed:      r.Breed,
		Color:      r.Color,
		Sire:       r.Sire,
		Dam:        r.Dam,
		Vaccines:   r.Vaccines,
		Feeding:    r.Feeding,
		PhotoURI:   r.PhotoURI,
		TokenID:    r.TokenID,
		MintTxHash: r.MintTxHash,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
	if r.BirthDate != nil {
		s := time.Time(*r.BirthDate).Format(DateLayout)
		resp.BirthDate = &s
	}
	if r.Weight.Valid {
		w := r.Weight.Decimal
		resp.Weight = &w
	}
	return resp
}
