package store

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/hoofledger/hoofledger/internal/store/schema"
)

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore

// Store defines the interface for cattle record persistence
type Store interface {
	// CreateCattleRecord inserts a record and returns it with its assigned id
	CreateCattleRecord(ctx context.Context, input CreateCattleRecordInput) (*schema.CattleRecord, error)
	// GetCattleRecord returns nil without error when no record has the id
	GetCattleRecord(ctx context.Context, id string) (*schema.CattleRecord, error)
	// ListCattleRecords returns every record, newest first
	ListCattleRecords(ctx context.Context) ([]schema.CattleRecord, error)
	// UpdateCattleRecord applies the non-nil fields of input.
	// Returns domain.ErrRecordNotFound when no record has the id.
	UpdateCattleRecord(ctx context.Context, id string, input UpdateCattleRecordInput) (*schema.CattleRecord, error)
	// DeleteCattleRecord removes a record and reports how many rows went away
	DeleteCattleRecord(ctx context.Context, id string) (int64, error)
	// SetCattleRecordToken links a record to the NFT minted from it
	SetCattleRecordToken(ctx context.Context, id string, tokenID string, txHash string) (*schema.CattleRecord, error)
}

// CreateCattleRecordInput holds the fields of a new cattle record
type CreateCattleRecordInput struct {
	Name      string
	Breed     string
	Color     string
	BirthDate *datatypes.Date
	Sire      string
	Dam       string
	Vaccines  string
	Feeding   string
	PhotoURI  string
	Weight    *decimal.Decimal
}

// UpdateCattleRecordInput holds a partial update; nil fields are left unchanged
type UpdateCattleRecordInput struct {
	Name      *string
	Breed     *string
	Color     *string
	BirthDate *datatypes.Date
	Sire      *string
	Dam       *string
	Vaccines  *string
	Feeding   *string
	PhotoURI  *string
	Weight    *decimal.Decimal
}

// columns returns the column assignments for the fields that are set
func (u UpdateCattleRecordInput) columns() map[string]interface{} {
	cols := map[string]interface{}{}
	set := func(column string, v *string) {
		if v != nil {
			cols[column] = *v
		}
	}
	set("name", u.Name)
	set("breed", u.Breed)
	set("color", u.Color)
	set("sire", u.Sire)
	set("dam", u.Dam)
	set("vaccines", u.Vaccines)
	set("feeding", u.Feeding)
	set("photo_uri", u.PhotoURI)
	if u.BirthDate != nil {
		cols["birth_date"] = *u.BirthDate
	}
	if u.Weight != nil {
		cols["weight"] = decimal.NewNullDecimal(*u.Weight)
	}
	return cols
}
