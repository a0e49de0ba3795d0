package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CattleRecord is the off-chain record of one animal
type CattleRecord struct {
	// ID is assigned by the store on insert and never changes
	ID string `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	// Name is the animal's name or ear tag
	Name      string              `gorm:"column:name;not null;type:text" json:"name"`
	Breed     string              `gorm:"column:breed;type:text" json:"breed"`
	Color     string              `gorm:"column:color;not null;type:text" json:"color"`
	BirthDate *datatypes.Date     `gorm:"column:birth_date;type:date" json:"birth_date,omitempty"`
	Sire      string              `gorm:"column:sire;type:text" json:"sire"`
	Dam       string              `gorm:"column:dam;type:text" json:"dam"`
	Vaccines  string              `gorm:"column:vaccines;not null;type:text" json:"vaccines"`
	Feeding   string              `gorm:"column:feeding;not null;type:text" json:"feeding"`
	PhotoURI  string              `gorm:"column:photo_uri;type:text" json:"photo_uri"`
	Weight    decimal.NullDecimal `gorm:"column:weight;type:numeric(12,3)" json:"weight"`
	// TokenID is set once the record has been minted as an NFT
	TokenID    *string   `gorm:"column:token_id;type:text;uniqueIndex" json:"token_id,omitempty"`
	MintTxHash *string   `gorm:"column:mint_tx_hash;type:text" json:"mint_tx_hash,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;default:now();autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null;default:now();autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the CattleRecord model
func (CattleRecord) TableName() string {
	return "cattle_records"
}

// BeforeCreate assigns the record id
func (r *CattleRecord) BeforeCreate(_ *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
