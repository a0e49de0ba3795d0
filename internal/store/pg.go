package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hoofledger/hoofledger/internal/domain"
	"github.com/hoofledger/hoofledger/internal/logger"
	"github.com/hoofledger/hoofledger/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the tables the store needs
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&schema.CattleRecord{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// ConfigureConnectionPool configures the connection pool of the underlying *sql.DB.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings.
//
// Defaults (when zero):
//   - MaxOpenConns: 10
//   - MaxIdleConns: 2
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// MaxIdleConns never exceeds MaxOpenConns.
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 10
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 2
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// validID reports whether id can be looked up in the uuid primary key column
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// CreateCattleRecord inserts a new cattle record
func (s *pgStore) CreateCattleRecord(ctx context.Context, input CreateCattleRecordInput) (*schema.CattleRecord, error) {
	record := schema.CattleRecord{
		Name:      input.Name,
		Breed:     input.Breed,
		Color:     input.Color,
		BirthDate: input.BirthDate,
		Sire:      input.Sire,
		Dam:       input.Dam,
		Vaccines:  input.Vaccines,
		Feeding:   input.Feeding,
		PhotoURI:  input.PhotoURI,
	}
	if input.Weight != nil {
		record.Weight.Decimal = *input.Weight
		record.Weight.Valid = true
	}

	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to create cattle record: %w", err)
	}

	logger.DebugCtx(ctx, "Created cattle record", zap.String("id", record.ID))

	return &record, nil
}

// GetCattleRecord retrieves a cattle record by id
func (s *pgStore) GetCattleRecord(ctx context.Context, id string) (*schema.CattleRecord, error) {
	if !validID(id) {
		return nil, nil
	}

	var record schema.CattleRecord
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cattle record: %w", err)
	}

	return &record, nil
}

// ListCattleRecords retrieves all cattle records
func (s *pgStore) ListCattleRecords(ctx context.Context) ([]schema.CattleRecord, error) {
	records := []schema.CattleRecord{}
	err := s.db.WithContext(ctx).Order("created_at DESC").Order("id").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cattle records: %w", err)
	}

	return records, nil
}

// UpdateCattleRecord applies a partial update to a cattle record
func (s *pgStore) UpdateCattleRecord(ctx context.Context, id string, input UpdateCattleRecordInput) (*schema.CattleRecord, error) {
	return s.updateColumns(ctx, id, input.columns())
}

// SetCattleRecordToken records the NFT minted from a cattle record
func (s *pgStore) SetCattleRecordToken(ctx context.Context, id string, tokenID string, txHash string) (*schema.CattleRecord, error) {
	return s.updateColumns(ctx, id, map[string]interface{}{
		"token_id":     tokenID,
		"mint_tx_hash": txHash,
	})
}

func (s *pgStore) updateColumns(ctx context.Context, id string, cols map[string]interface{}) (*schema.CattleRecord, error) {
	if !validID(id) {
		return nil, domain.ErrRecordNotFound
	}

	var record schema.CattleRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(cols) > 0 {
			result := tx.Model(&schema.CattleRecord{}).Where("id = ?", id).Updates(cols)
			if result.Error != nil {
				return fmt.Errorf("failed to update cattle record: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return domain.ErrRecordNotFound
			}
		}

		if err := tx.Where("id = ?", id).First(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRecordNotFound
			}
			return fmt.Errorf("failed to reload cattle record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// DeleteCattleRecord deletes a cattle record by id
func (s *pgStore) DeleteCattleRecord(ctx context.Context, id string) (int64, error) {
	if !validID(id) {
		return 0, nil
	}

	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&schema.CattleRecord{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete cattle record: %w", result.Error)
	}

	return result.RowsAffected, nil
}
