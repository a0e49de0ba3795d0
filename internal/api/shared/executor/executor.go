package executor

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/hoofledger/hoofledger/internal/adapter"
	"github.com/hoofledger/hoofledger/internal/api/shared/constants"
	"github.com/hoofledger/hoofledger/internal/api/shared/dto"
	apierrors "github.com/hoofledger/hoofledger/internal/api/shared/errors"
	"github.com/hoofledger/hoofledger/internal/domain"
	"github.com/hoofledger/hoofledger/internal/gateway"
	"github.com/hoofledger/hoofledger/internal/logger"
	"github.com/hoofledger/hoofledger/internal/messaging"
	"github.com/hoofledger/hoofledger/internal/store"
)

// Executor is the interface for the API executor.
// Every returned error is an *apierrors.APIError.
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	CreateCattleRecord(ctx context.Context, req dto.CreateCattleRecordRequest) (*dto.CattleRecordResponse, error)
	ListCattleRecords(ctx context.Context) ([]dto.CattleRecordResponse, error)
	// GetCattleRecord returns nil without error when the record does not exist
	GetCattleRecord(ctx context.Context, id string) (*dto.CattleRecordResponse, error)
	UpdateCattleRecord(ctx context.Context, id string, req dto.UpdateCattleRecordRequest) (*dto.CattleRecordResponse, error)
	DeleteCattleRecord(ctx context.Context, id string) (*dto.DeleteCattleRecordResponse, error)

	// MintCattleRecord mints a stored record as an NFT and links the token to the record
	MintCattleRecord(ctx context.Context, id string, req dto.MintCattleRecordRequest) (*dto.MintCattleRecordResponse, error)

	// CreateAuction checks the token exists and creates its auction
	CreateAuction(ctx context.Context, tokenID *big.Int, req dto.CreateAuctionRequest) (*dto.CreateAuctionResponse, error)
	GetAuction(ctx context.Context, tokenID *big.Int) (*domain.AuctionData, error)
	// GetAuctions reads several auctions concurrently; per-token failures are reported inline
	GetAuctions(ctx context.Context, tokenIDs []*big.Int) (*dto.AuctionListResponse, error)
	GetCattleData(ctx context.Context, tokenID *big.Int) (*domain.CattleData, error)

	Health(ctx context.Context) *dto.HealthResponse

	// Close waits for in-flight batch reads
	Close()
}

// Config holds the executor worker pool settings
type Config struct {
	WorkerPoolSize  int
	WorkerQueueSize int
}

type executor struct {
	store     store.Store
	gateway   gateway.Gateway
	publisher messaging.Publisher
	clock     adapter.Clock
	pool      pond.ResultPool[dto.AuctionListItem]
}

func NewExecutor(cfg Config, st store.Store, gw gateway.Gateway, publisher messaging.Publisher, clock adapter.Clock) Executor {
	poolSize := cfg.WorkerPoolSize
	if poolSize <= 0 {
		poolSize = constants.DEFAULT_WORKER_POOL_SIZE
	}
	queueSize := cfg.WorkerQueueSize
	if queueSize <= 0 {
		queueSize = constants.DEFAULT_WORKER_QUEUE_SIZE
	}

	return &executor{
		store:     st,
		gateway:   gw,
		publisher: publisher,
		clock:     clock,
		pool:      pond.NewResultPool[dto.AuctionListItem](poolSize, pond.WithQueueSize(queueSize)),
	}
}

// chainError maps a gateway failure to an API error. Reverts and other
// chain failures are client errors carrying the reason verbatim.
func chainError(message string, err error) error {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	if errors.Is(err, domain.ErrNotInitialized) {
		return apierrors.NewServiceUnavailableError(message, err.Error())
	}
	return apierrors.NewBadRequestError(message, err.Error())
}

func (e *executor) CreateCattleRecord(ctx context.Context, req dto.CreateCattleRecordRequest) (*dto.CattleRecordResponse, error) {
	input, err := req.ToStoreInput()
	if err != nil {
		return nil, apierrors.NewValidationError(map[string]string{"birth_date": "birth_date must be a date in YYYY-MM-DD format"})
	}

	record, err := e.store.CreateCattleRecord(ctx, input)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create cattle record: %v", err))
	}

	return dto.MapCattleRecordToDTO(record), nil
}

func (e *executor) ListCattleRecords(ctx context.Context) ([]dto.CattleRecordResponse, error) {
	records, err := e.store.ListCattleRecords(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list cattle records: %v", err))
	}

	resp := make([]dto.CattleRecordResponse, len(records))
	for i := range records {
		resp[i] = *dto.MapCattleRecordToDTO(&records[i])
	}
	return resp, nil
}

func (e *executor) GetCattleRecord(ctx context.Context, id string) (*dto.CattleRecordResponse, error) {
	record, err := e.store.GetCattleRecord(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get cattle record: %v", err))
	}
	return dto.MapCattleRecordToDTO(record), nil
}

func (e *executor) UpdateCattleRecord(ctx context.Context, id string, req dto.UpdateCattleRecordRequest) (*dto.CattleRecordResponse, error) {
	input, err := req.ToStoreInput()
	if err != nil {
		return nil, apierrors.NewValidationError(map[string]string{"birth_date": "birth_date must be a date in YYYY-MM-DD format"})
	}

	record, err := e.store.UpdateCattleRecord(ctx, id, input)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, apierrors.NewNotFoundError("Cattle record not found")
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to update cattle record: %v", err))
	}

	return dto.MapCattleRecordToDTO(record), nil
}

func (e *executor) DeleteCattleRecord(ctx context.Context, id string) (*dto.DeleteCattleRecordResponse, error) {
	deleted, err := e.store.DeleteCattleRecord(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to delete cattle record: %v", err))
	}
	return &dto.DeleteCattleRecordResponse{Acknowledged: true, DeletedCount: deleted}, nil
}

func (e *executor) MintCattleRecord(ctx context.Context, id string, req dto.MintCattleRecordRequest) (*dto.MintCattleRecordResponse, error) {
	record, err := e.store.GetCattleRecord(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get cattle record: %v", err))
	}
	if record == nil {
		return nil, apierrors.NewNotFoundError("Cattle record not found")
	}
	if record.TokenID != nil {
		return nil, apierrors.NewConflictError("Cattle record already minted", "token_id "+*record.TokenID)
	}

	recipient := req.Recipient
	if recipient == "" {
		recipient, err = e.gateway.Signer()
		if err != nil {
			return nil, chainError("Failed to mint cattle NFT", err)
		}
	}

	var weight uint64
	if record.Weight.Valid && record.Weight.Decimal.IsPositive() {
		weight = uint64(record.Weight.Decimal.Round(0).IntPart()) //nolint:gosec,G115 // positive
	}

	asset, err := e.gateway.MintCattleNFT(ctx, gateway.MintRequest{
		Recipient: recipient,
		TokenURI:  req.TokenURI,
		Name:      record.Name,
		Breed:     record.Breed,
		Weight:    weight,
		Color:     record.Color,
		Vaccines:  record.Vaccines,
		Feeding:   record.Feeding,
	})
	if err != nil {
		return nil, chainError("Failed to mint cattle NFT", err)
	}

	e.publish(ctx, domain.MarketEventCattleMinted, asset.TokenID, asset.TxHash, asset.Owner)

	linked, err := e.store.SetCattleRecordToken(ctx, id, asset.TokenID, asset.TxHash)
	if err != nil {
		// the token exists on-chain even though the record could not be linked
		logger.ErrorCtx(ctx, fmt.Errorf("failed to link minted token to record: %w", err),
			zap.String("recordID", id),
			zap.String("tokenID", asset.TokenID),
			zap.String("txHash", asset.TxHash))
		return nil, apierrors.NewDatabaseError("Minted token could not be linked to the cattle record",
			"token_id "+asset.TokenID, "tx_hash "+asset.TxHash)
	}

	return &dto.MintCattleRecordResponse{
		TokenID:     asset.TokenID,
		Owner:       asset.Owner,
		MetadataURI: asset.MetadataURI,
		TxHash:      asset.TxHash,
		Record:      dto.MapCattleRecordToDTO(linked),
	}, nil
}

func (e *executor) CreateAuction(ctx context.Context, tokenID *big.Int, req dto.CreateAuctionRequest) (*dto.CreateAuctionResponse, error) {
	if req.DurationInSeconds < uint64(domain.MIN_AUCTION_DURATION/time.Second) {
		return nil, apierrors.NewValidationError(map[string]string{
			"duration_in_seconds": fmt.Sprintf("duration_in_seconds must be at least %d", uint64(domain.MIN_AUCTION_DURATION/time.Second)),
		})
	}

	owner, err := e.gateway.GetCattleOwner(ctx, tokenID)
	if err != nil {
		return nil, chainError("Failed to create auction", err)
	}
	logger.DebugCtx(ctx, "Creating auction", zap.String("tokenID", tokenID.String()), zap.String("owner", owner))

	result, err := e.gateway.CreateCattleAuction(ctx, gateway.AuctionRequest{
		TokenID:         tokenID,
		StartingPrice:   req.StartingPrice,
		ReservePrice:    req.ReservePrice,
		DurationSeconds: req.DurationInSeconds,
	})
	if err != nil {
		return nil, chainError("Failed to create auction", err)
	}

	signer, _ := e.gateway.Signer()
	e.publish(ctx, domain.MarketEventAuctionCreated, result.TokenID, result.TxHash, signer)

	return &dto.CreateAuctionResponse{
		Success:         true,
		Message:         "Auction created successfully",
		TransactionHash: result.TxHash,
		TokenID:         result.TokenID,
		EndTime:         result.EndTime,
	}, nil
}

func (e *executor) GetAuction(ctx context.Context, tokenID *big.Int) (*domain.AuctionData, error) {
	data, err := e.gateway.GetAuctionData(ctx, tokenID)
	if err != nil {
		return nil, chainError("Failed to get auction data", err)
	}
	return data, nil
}

func (e *executor) GetAuctions(ctx context.Context, tokenIDs []*big.Int) (*dto.AuctionListResponse, error) {
	if len(tokenIDs) > constants.MAX_TOKEN_IDS_PER_REQUEST {
		return nil, apierrors.NewValidationError(map[string]string{
			"token_ids": fmt.Sprintf("token_ids accepts at most %d ids", constants.MAX_TOKEN_IDS_PER_REQUEST),
		})
	}

	group := e.pool.NewGroupContext(ctx)
	for _, id := range tokenIDs {
		group.Submit(func() dto.AuctionListItem {
			item := dto.AuctionListItem{TokenID: id.String()}
			data, err := e.gateway.GetAuctionData(ctx, id)
			if err != nil {
				item.Error = err.Error()
				return item
			}
			item.Auction = data
			return item
		})
	}

	items, err := group.Wait()
	if err != nil {
		return nil, apierrors.NewServiceError("Failed to read auctions", err.Error())
	}
	if items == nil {
		items = []dto.AuctionListItem{}
	}

	return &dto.AuctionListResponse{Auctions: items}, nil
}

func (e *executor) GetCattleData(ctx context.Context, tokenID *big.Int) (*domain.CattleData, error) {
	data, err := e.gateway.GetCattleData(ctx, tokenID)
	if err != nil {
		return nil, chainError("Failed to get cattle data", err)
	}
	return data, nil
}

func (e *executor) Health(ctx context.Context) *dto.HealthResponse {
	return &dto.HealthResponse{
		Status:     "ok",
		Service:    constants.SERVICE_NAME,
		Blockchain: e.gateway.CheckConnection(ctx),
		Chain:      e.gateway.Chain(),
	}
}

func (e *executor) Close() {
	e.pool.StopAndWait()
}

// publish emits a market event; failures are logged and never fail the request
func (e *executor) publish(ctx context.Context, eventType domain.MarketEventType, tokenID, txHash, actor string) {
	chain := e.gateway.Chain()
	event := domain.NewMarketEvent(e.clock.Now(), eventType, chain, tokenID, txHash, domain.NewDID(actor, chain))
	if err := e.publisher.PublishMarketEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish market event",
			zap.String("type", string(eventType)),
			zap.String("tokenID", tokenID),
			zap.Error(err))
	}
}
