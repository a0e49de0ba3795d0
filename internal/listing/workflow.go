package listing

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/hoofledger/hoofledger/internal/adapter"
	"github.com/hoofledger/hoofledger/internal/contracts"
	"github.com/hoofledger/hoofledger/internal/domain"
	"github.com/hoofledger/hoofledger/internal/logger"
	"github.com/hoofledger/hoofledger/internal/messaging"
	"github.com/hoofledger/hoofledger/internal/metadata"
	"github.com/hoofledger/hoofledger/internal/wallet"
)

// State is the step a listing workflow is in
type State int

const (
	StateIdle State = iota
	StateUploading
	StateMinting
	StateListing
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateUploading:
		return "uploading"
	case StateMinting:
		return "minting"
	case StateListing:
		return "listing"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// StepError reports the step a listing failed in. TokenID is set when the
// asset was already minted; it is left without an auction and a new
// submission mints another asset.
type StepError struct {
	Step    State
	TokenID *big.Int
	Err     error
}

func (e *StepError) Error() string {
	if e.TokenID != nil {
		return fmt.Sprintf("listing failed while %s token %s: %v", e.Step, e.TokenID, e.Err)
	}
	return fmt.Sprintf("listing failed while %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Result identifies what a completed listing created
type Result struct {
	TokenID       *big.Int
	Owner         string
	MetadataURI   string
	PhotoURI      string
	MintTxHash    string
	ApproveTxHash string
	AuctionTxHash string
	EndTime       *time.Time
}

// BindingSource hands out contract bindings of a ready wallet session
//
//go:generate mockgen -source=workflow.go -destination=../mocks/listing.go -package=mocks -mock_names=BindingSource=MockBindingSource,RecordSink=MockRecordSink
type BindingSource interface {
	Bindings() (*wallet.Bindings, error)
}

// RecordSink persists the off-chain record of a completed listing
type RecordSink interface {
	SaveRecord(ctx context.Context, form *Form, result *Result) error
}

// Config holds listing workflow settings
type Config struct {
	// CompletionDelay is how long a completed listing stays on screen before OnComplete runs
	CompletionDelay time.Duration
}

// Workflow lists one animal at a time: upload metadata, mint, approve and
// create the auction. Each step starts only once the previous transaction is
// confirmed.
type Workflow struct {
	cfg       Config
	session   BindingSource
	uploader  metadata.Uploader
	publisher messaging.Publisher
	sink      RecordSink
	notifier  wallet.Notifier
	clock     adapter.Clock

	onComplete func(*Result)

	busy sync.Mutex

	mu    sync.RWMutex
	state State
}

// New creates an idle workflow. sink may be nil to skip record persistence.
func New(cfg Config, session BindingSource, uploader metadata.Uploader, publisher messaging.Publisher, sink RecordSink, notifier wallet.Notifier, clock adapter.Clock) *Workflow {
	if publisher == nil {
		publisher = messaging.NewNopPublisher()
	}
	if notifier == nil {
		notifier = wallet.NewLogNotifier()
	}
	return &Workflow{
		cfg:       cfg,
		session:   session,
		uploader:  uploader,
		publisher: publisher,
		sink:      sink,
		notifier:  notifier,
		clock:     clock,
	}
}

// OnComplete registers the callback run after the completion delay
func (w *Workflow) OnComplete(fn func(*Result)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onComplete = fn
}

// State returns the current step
func (w *Workflow) State() State {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state
}

func (w *Workflow) setState(ctx context.Context, s State) {
	w.mu.Lock()
	prev := w.state
	w.state = s
	w.mu.Unlock()
	logger.DebugCtx(ctx, "Listing workflow step", zap.String("from", prev.String()), zap.String("to", s.String()))
}

// Submit runs the listing. A second Submit while one is running fails with
// domain.ErrWorkflowBusy. Step failures return a *StepError and leave the
// workflow idle; nothing already confirmed on-chain is undone.
func (w *Workflow) Submit(ctx context.Context, form *Form) (*Result, error) {
	if !w.busy.TryLock() {
		return nil, domain.ErrWorkflowBusy
	}
	defer w.busy.Unlock()

	terms, err := form.Validate()
	if err != nil {
		w.notifyError(ctx, "Missing information", err)
		return nil, err
	}

	b, err := w.session.Bindings()
	if err != nil {
		title := "Wallet not connected"
		if errors.Is(err, domain.ErrWrongChain) {
			title = "Wrong network"
		}
		w.notifyError(ctx, title, err)
		return nil, err
	}

	result := &Result{Owner: b.Account}

	w.setState(ctx, StateUploading)
	if err := w.upload(ctx, form, result); err != nil {
		return nil, w.fail(ctx, StateUploading, nil, err)
	}

	w.setState(ctx, StateMinting)
	if err := w.mint(ctx, b, form, result); err != nil {
		return nil, w.fail(ctx, StateMinting, nil, err)
	}

	w.setState(ctx, StateListing)
	if err := w.list(ctx, b, terms, result); err != nil {
		return nil, w.fail(ctx, StateListing, result.TokenID, err)
	}

	w.setState(ctx, StateComplete)
	w.complete(ctx, b, form, result)
	return result, nil
}

func (w *Workflow) upload(ctx context.Context, form *Form, result *Result) error {
	result.PhotoURI = form.PhotoURI
	if result.PhotoURI == "" && len(form.Photo) > 0 {
		uri, contentType, err := w.uploader.UploadPhoto(ctx, form.Photo)
		if err != nil {
			return err
		}
		logger.InfoCtx(ctx, "Uploaded cattle photo", zap.String("uri", uri), zap.String("contentType", contentType))
		result.PhotoURI = uri
	}

	uri, err := w.uploader.UploadDocument(ctx, metadata.NewDocument(form.cattle(), form.Description, result.PhotoURI))
	if err != nil {
		return err
	}
	result.MetadataURI = uri
	return nil
}

func (w *Workflow) mint(ctx context.Context, b *wallet.Bindings, form *Form, result *Result) error {
	if err := w.checkBindings(b); err != nil {
		return err
	}
	tx, err := b.NFT.MintCattle(ctx, contracts.MintParams{
		Recipient: common.HexToAddress(b.Account),
		TokenURI:  result.MetadataURI,
		Name:      form.Name,
		Breed:     form.Breed,
		Weight:    form.weight(),
		Color:     form.Color,
		Vaccines:  form.Vaccines,
		Feeding:   form.Feeding,
	})
	if err != nil {
		return err
	}

	receipt, err := b.NFT.WaitMined(ctx, tx)
	if err != nil {
		return err
	}

	tokenID, err := b.NFT.MintedTokenID(receipt)
	if err != nil {
		return err
	}

	result.TokenID = tokenID
	result.MintTxHash = tx.Hash().Hex()
	logger.InfoCtx(ctx, "Minted cattle NFT", zap.String("tokenID", tokenID.String()), zap.String("txHash", result.MintTxHash))
	return nil
}

func (w *Workflow) list(ctx context.Context, b *wallet.Bindings, t *terms, result *Result) error {
	if err := w.checkBindings(b); err != nil {
		return fmt.Errorf("failed to approve auction contract: %w", err)
	}
	approveTx, err := b.NFT.Approve(ctx, b.Auction.Address(), result.TokenID)
	if err != nil {
		return fmt.Errorf("failed to approve auction contract: %w", err)
	}
	if _, err := b.NFT.WaitMined(ctx, approveTx); err != nil {
		return fmt.Errorf("failed to approve auction contract: %w", err)
	}
	result.ApproveTxHash = approveTx.Hash().Hex()

	if err := w.checkBindings(b); err != nil {
		return fmt.Errorf("failed to create auction: %w", err)
	}
	auctionTx, err := b.Auction.CreateAuction(ctx, result.TokenID, t.startingPrice, t.reservePrice, t.duration)
	if err != nil {
		return fmt.Errorf("failed to create auction: %w", err)
	}
	receipt, err := b.Auction.WaitMined(ctx, auctionTx)
	if err != nil {
		return fmt.Errorf("failed to create auction: %w", err)
	}
	result.AuctionTxHash = auctionTx.Hash().Hex()

	if event, ok := contracts.FindAuctionCreated(receipt, b.Auction.Address()); ok && event.EndTime != nil && event.EndTime.IsInt64() {
		endTime := w.clock.Unix(event.EndTime.Int64(), 0).UTC()
		result.EndTime = &endTime
	}
	return nil
}

// checkBindings fails unless the session still holds b. Bindings are rebuilt
// on every account or chain change, so any other value means b signs for a
// wallet that moved on.
func (w *Workflow) checkBindings(b *wallet.Bindings) error {
	cur, err := w.session.Bindings()
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrWalletChanged, err)
	}
	if cur != b {
		return domain.ErrWalletChanged
	}
	return nil
}

func (w *Workflow) complete(ctx context.Context, b *wallet.Bindings, form *Form, result *Result) {
	logger.InfoCtx(ctx, "Listing created",
		zap.String("tokenID", result.TokenID.String()),
		zap.String("auctionTxHash", result.AuctionTxHash))

	event := domain.NewMarketEvent(w.clock.Now(), domain.MarketEventListingCompleted, b.Chain,
		result.TokenID.String(), result.AuctionTxHash, domain.NewDID(b.Account, b.Chain))
	if err := w.publisher.PublishMarketEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish market event", zap.Error(err))
	}

	if w.sink != nil {
		if err := w.sink.SaveRecord(ctx, form, result); err != nil {
			// the auction is live; only the off-chain copy is missing
			logger.WarnCtx(ctx, "Failed to save cattle record", zap.Error(err), zap.String("tokenID", result.TokenID.String()))
		}
	}

	w.notifier.Notify(ctx, wallet.Notification{
		Kind:        wallet.NotificationSuccess,
		Title:       "Listing created successfully!",
		Description: fmt.Sprintf("Token %s has been minted and listed for auction", result.TokenID),
	})

	select {
	case <-w.clock.After(w.cfg.CompletionDelay):
		w.mu.RLock()
		onComplete := w.onComplete
		w.mu.RUnlock()
		if onComplete != nil {
			onComplete(result)
		}
	case <-ctx.Done():
	}

	w.setState(ctx, StateIdle)
}

func (w *Workflow) fail(ctx context.Context, step State, tokenID *big.Int, err error) error {
	w.setState(ctx, StateIdle)

	stepErr := &StepError{Step: step, TokenID: tokenID, Err: err}
	fields := []zap.Field{zap.String("step", step.String())}
	if tokenID != nil {
		fields = append(fields, zap.String("orphanTokenID", tokenID.String()))
	}
	logger.ErrorCtx(ctx, stepErr, fields...)
	w.notifyError(ctx, "Error creating listing", stepErr)
	return stepErr
}

func (w *Workflow) notifyError(ctx context.Context, title string, err error) {
	w.notifier.Notify(ctx, wallet.Notification{
		Kind:        wallet.NotificationError,
		Title:       title,
		Description: err.Error(),
		Err:         err,
	})
}
