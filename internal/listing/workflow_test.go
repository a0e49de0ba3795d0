package listing_test

import (
	"context"
	"errors"
	"math/big"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoofledger/hoofledger/internal/contracts"
	"github.com/hoofledger/hoofledger/internal/domain"
	"github.com/hoofledger/hoofledger/internal/listing"
	"github.com/hoofledger/hoofledger/internal/logger"
	"github.com/hoofledger/hoofledger/internal/metadata"
	"github.com/hoofledger/hoofledger/internal/mocks"
	"github.com/hoofledger/hoofledger/internal/units"
	"github.com/hoofledger/hoofledger/internal/wallet"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

var (
	seller         = common.HexToAddress("0x90f8bf6a479f320ead074411a4b0e7944ea8c9c1")
	auctionAddress = common.HexToAddress("0xcf8Bf47C05FeE846a0361610e85858Ad281d47a4")
	nftAddress     = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	fixedNow       = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

type testWorkflowMocks struct {
	ctrl      *gomock.Controller
	session   *mocks.MockBindingSource
	uploader  *mocks.MockUploader
	publisher *mocks.MockPublisher
	sink      *mocks.MockRecordSink
	notifier  *mocks.MockNotifier
	clock     *mocks.MockClock
	nft       *mocks.MockCattleNFT
	auction   *mocks.MockCattleAuction
	bindings  *wallet.Bindings
	workflow  *listing.Workflow
}

func setupTestWorkflow(t *testing.T) *testWorkflowMocks {
	tm := newTestWorkflow(t)
	tm.session.EXPECT().Bindings().Return(tm.bindings, nil).AnyTimes()
	return tm
}

// newTestWorkflow builds the workflow without expectations on the session
func newTestWorkflow(t *testing.T) *testWorkflowMocks {
	ctrl := gomock.NewController(t)
	tm := &testWorkflowMocks{
		ctrl:      ctrl,
		session:   mocks.NewMockBindingSource(ctrl),
		uploader:  mocks.NewMockUploader(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		sink:      mocks.NewMockRecordSink(ctrl),
		notifier:  mocks.NewMockNotifier(ctrl),
		clock:     mocks.NewMockClock(ctrl),
		nft:       mocks.NewMockCattleNFT(ctrl),
		auction:   mocks.NewMockCattleAuction(ctrl),
	}

	tm.bindings = &wallet.Bindings{
		Account: seller.Hex(),
		Chain:   domain.ChainScrollSepolia,
		NFT:     tm.nft,
		Auction: tm.auction,
	}
	tm.auction.EXPECT().Address().Return(auctionAddress).AnyTimes()
	tm.clock.EXPECT().Now().Return(fixedNow).AnyTimes()
	tm.clock.EXPECT().Unix(gomock.Any(), gomock.Any()).DoAndReturn(time.Unix).AnyTimes()

	tm.workflow = listing.New(listing.Config{CompletionDelay: 3 * time.Second},
		tm.session, tm.uploader, tm.publisher, tm.sink, tm.notifier, tm.clock)
	return tm
}

func tearDownTestWorkflow(tm *testWorkflowMocks) {
	tm.ctrl.Finish()
}

func validForm() *listing.Form {
	return &listing.Form{
		Name:          "Mimosa",
		Breed:         "Nelore",
		Color:         "White",
		BirthDate:     "2022-03-14",
		Vaccines:      "Aftosa",
		Feeding:       "Pasture",
		Weight:        decimal.RequireFromString("452.6"),
		StartingPrice: decimal.RequireFromString("1.5"),
		ReservePrice:  decimal.RequireFromString("2"),
		DurationDays:  7,
		Photo:         []byte("\x89PNG\r\n\x1a\n"),
	}
}

func newTx(nonce uint64) *types.Transaction {
	return types.NewTx(&types.LegacyTx{Nonce: nonce, To: &auctionAddress, Gas: 21000, GasPrice: big.NewInt(1)})
}

func auctionCreatedReceipt(t *testing.T, tokenID int64, endTime int64) *types.Receipt {
	t.Helper()
	addressType, err := abi.NewType("address", "", nil)
	require.NoError(t, err)
	uintType, err := abi.NewType("uint256", "", nil)
	require.NoError(t, err)

	data, err := abi.Arguments{{Type: addressType}, {Type: uintType}, {Type: uintType}, {Type: uintType}}.
		Pack(seller, big.NewInt(1), big.NewInt(2), big.NewInt(endTime))
	require.NoError(t, err)

	return &types.Receipt{
		Status: types.ReceiptStatusSuccessful,
		Logs: []*types.Log{{
			Address: auctionAddress,
			Topics:  []common.Hash{contracts.AuctionCreatedEventID, common.BigToHash(big.NewInt(tokenID))},
			Data:    data,
		}},
	}
}

// expectUploadAndMint expects a successful upload and mint of token 7
func (tm *testWorkflowMocks) expectUploadAndMint(t *testing.T) *types.Transaction {
	mintTx := newTx(1)
	mintReceipt := &types.Receipt{Status: types.ReceiptStatusSuccessful}
	gomock.InOrder(
		tm.uploader.EXPECT().UploadPhoto(gomock.Any(), gomock.Any()).Return("ipfs://bafyphoto", "image/png", nil),
		tm.uploader.EXPECT().
			UploadDocument(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, doc *metadata.Document) (string, error) {
				assert.Equal(t, "Mimosa", doc.Name)
				assert.Equal(t, "ipfs://bafyphoto", doc.Image)
				return "ipfs://bafymeta", nil
			}),
		tm.nft.EXPECT().
			MintCattle(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p contracts.MintParams) (*types.Transaction, error) {
				assert.Equal(t, seller, p.Recipient)
				assert.Equal(t, "ipfs://bafymeta", p.TokenURI)
				assert.Equal(t, int64(453), p.Weight.Int64())
				return mintTx, nil
			}),
		tm.nft.EXPECT().WaitMined(gomock.Any(), mintTx).Return(mintReceipt, nil),
		tm.nft.EXPECT().MintedTokenID(mintReceipt).Return(big.NewInt(7), nil),
	)
	return mintTx
}

func TestSubmit_Complete(t *testing.T) {
	tm := setupTestWorkflow(t)
	defer tearDownTestWorkflow(tm)

	mintTx := tm.expectUploadAndMint(t)
	approveTx, auctionTx := newTx(2), newTx(3)
	receipt := auctionCreatedReceipt(t, 7, fixedNow.Add(7*24*time.Hour).Unix())

	starting, _ := units.ToBaseUnits(decimal.RequireFromString("1.5"))
	reserve, _ := units.ToBaseUnits(decimal.RequireFromString("2"))
	gomock.InOrder(
		tm.nft.EXPECT().Approve(gomock.Any(), auctionAddress, big.NewInt(7)).Return(approveTx, nil),
		tm.nft.EXPECT().WaitMined(gomock.Any(), approveTx).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil),
		tm.auction.EXPECT().CreateAuction(gomock.Any(), big.NewInt(7), starting, reserve, big.NewInt(7*86400)).Return(auctionTx, nil),
		tm.auction.EXPECT().WaitMined(gomock.Any(), auctionTx).Return(receipt, nil),
		tm.publisher.EXPECT().
			PublishMarketEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *domain.MarketEvent) error {
				assert.Equal(t, domain.MarketEventListingCompleted, e.Type)
				assert.Equal(t, "7", e.TokenID)
				assert.Equal(t, auctionTx.Hash().Hex(), e.TxHash)
				return nil
			}),
		tm.sink.EXPECT().SaveRecord(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("api down")),
		tm.notifier.EXPECT().
			Notify(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, n wallet.Notification) {
				assert.Equal(t, wallet.NotificationSuccess, n.Kind)
			}),
	)

	delay := make(chan time.Time, 1)
	delay <- fixedNow
	tm.clock.EXPECT().After(3 * time.Second).Return((<-chan time.Time)(delay))

	var completed *listing.Result
	tm.workflow.OnComplete(func(r *listing.Result) { completed = r })

	result, err := tm.workflow.Submit(context.Background(), validForm())
	require.NoError(t, err, "a failed record save does not fail a live listing")

	assert.Equal(t, big.NewInt(7), result.TokenID)
	assert.Equal(t, mintTx.Hash().Hex(), result.MintTxHash)
	assert.Equal(t, approveTx.Hash().Hex(), result.ApproveTxHash)
	assert.Equal(t, auctionTx.Hash().Hex(), result.AuctionTxHash)
	assert.Equal(t, "ipfs://bafymeta", result.MetadataURI)
	require.NotNil(t, result.EndTime)
	assert.Equal(t, fixedNow.Add(7*24*time.Hour), *result.EndTime)
	assert.Same(t, result, completed)
	assert.Equal(t, listing.StateIdle, tm.workflow.State())
}

func TestSubmit_MintFailureNeverCreatesAuction(t *testing.T) {
	tm := setupTestWorkflow(t)
	defer tearDownTestWorkflow(tm)

	revert := &contracts.RevertError{Reason: "Not authorized"}
	tm.uploader.EXPECT().UploadPhoto(gomock.Any(), gomock.Any()).Return("ipfs://bafyphoto", "image/png", nil)
	tm.uploader.EXPECT().UploadDocument(gomock.Any(), gomock.Any()).Return("ipfs://bafymeta", nil)
	mintTx := newTx(1)
	tm.nft.EXPECT().MintCattle(gomock.Any(), gomock.Any()).Return(mintTx, nil)
	tm.nft.EXPECT().WaitMined(gomock.Any(), mintTx).Return(nil, revert)
	tm.nft.EXPECT().Approve(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	tm.auction.EXPECT().CreateAuction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	tm.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

	_, err := tm.workflow.Submit(context.Background(), validForm())

	var stepErr *listing.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, listing.StateMinting, stepErr.Step)
	assert.Nil(t, stepErr.TokenID)
	assert.ErrorIs(t, err, domain.ErrTransactionReverted)
	assert.Contains(t, err.Error(), "Not authorized")
	assert.Equal(t, listing.StateIdle, tm.workflow.State())
}

func TestSubmit_MissingMintEvent(t *testing.T) {
	tm := setupTestWorkflow(t)
	defer tearDownTestWorkflow(tm)

	tm.uploader.EXPECT().UploadPhoto(gomock.Any(), gomock.Any()).Return("ipfs://bafyphoto", "image/png", nil)
	tm.uploader.EXPECT().UploadDocument(gomock.Any(), gomock.Any()).Return("ipfs://bafymeta", nil)
	mintTx := newTx(1)
	tm.nft.EXPECT().MintCattle(gomock.Any(), gomock.Any()).Return(mintTx, nil)
	tm.nft.EXPECT().WaitMined(gomock.Any(), mintTx).Return(&types.Receipt{}, nil)
	tm.nft.EXPECT().MintedTokenID(gomock.Any()).Return(nil, domain.ErrMintEventNotFound)
	tm.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

	_, err := tm.workflow.Submit(context.Background(), validForm())
	assert.ErrorIs(t, err, domain.ErrMintEventNotFound)
	assert.Equal(t, listing.StateIdle, tm.workflow.State())
}

func TestSubmit_AuctionFailureLeavesOrphanToken(t *testing.T) {
	tm := setupTestWorkflow(t)
	defer tearDownTestWorkflow(tm)

	tm.expectUploadAndMint(t)
	approveTx, auctionTx := newTx(2), newTx(3)
	gomock.InOrder(
		tm.nft.EXPECT().Approve(gomock.Any(), auctionAddress, big.NewInt(7)).Return(approveTx, nil),
		tm.nft.EXPECT().WaitMined(gomock.Any(), approveTx).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil),
		tm.auction.EXPECT().CreateAuction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(auctionTx, nil),
		tm.auction.EXPECT().WaitMined(gomock.Any(), auctionTx).Return(nil, &contracts.RevertError{Reason: "Auction already exists"}),
	)
	tm.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())
	tm.publisher.EXPECT().PublishMarketEvent(gomock.Any(), gomock.Any()).Times(0)

	_, err := tm.workflow.Submit(context.Background(), validForm())

	var stepErr *listing.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, listing.StateListing, stepErr.Step)
	require.NotNil(t, stepErr.TokenID)
	assert.Equal(t, int64(7), stepErr.TokenID.Int64())
	assert.Contains(t, err.Error(), "Auction already exists")
	assert.Equal(t, listing.StateIdle, tm.workflow.State())

	// the token the error reports is the one a chain read resolves
	getCattleData := cattleDataMethod(t)
	client := mocks.NewMockEthClient(tm.ctrl)
	client.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
			require.NotNil(t, msg.To)
			assert.Equal(t, nftAddress, *msg.To)
			assert.Equal(t, getCattleData.ID, msg.Data[:4])
			args, err := getCattleData.Inputs.Unpack(msg.Data[4:])
			require.NoError(t, err)
			require.Len(t, args, 1)
			if tokenID := args[0].(*big.Int); tokenID.Cmp(big.NewInt(7)) != 0 {
				return nil, errors.New("execution reverted: ERC721: invalid token ID")
			}
			return getCattleData.Outputs.Pack(contracts.CattleData{Name: "Mimosa", Breed: "Nelore", Weight: big.NewInt(453), Color: "White"})
		})

	data, err := contracts.NewCattleNFT(nftAddress, client, nil).GetCattleData(context.Background(), stepErr.TokenID)
	require.NoError(t, err)
	assert.Equal(t, "Mimosa", data.Name)
	assert.Equal(t, int64(453), data.Weight.Int64())
	assert.False(t, data.IsForSale)
}

// cattleDataMethod is the getCattleData entry of the cattle NFT ABI
func cattleDataMethod(t *testing.T) abi.Method {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(`[{"type":"function","name":"getCattleData","stateMutability":"view",
		"inputs":[{"name":"tokenId","type":"uint256"}],
		"outputs":[{"name":"","type":"tuple","components":[
			{"name":"name","type":"string"},{"name":"breed","type":"string"},{"name":"weight","type":"uint256"},
			{"name":"color","type":"string"},{"name":"vaccines","type":"string"},{"name":"feeding","type":"string"},
			{"name":"isForSale","type":"bool"}]}]}]`))
	require.NoError(t, err)
	return parsed.Methods["getCattleData"]
}

func TestSubmit_WalletChangedMidListing(t *testing.T) {
	tests := []struct {
		name string
		// healthy is how many Bindings reads return the bindings the listing started with
		healthy int
		changed func(tm *testWorkflowMocks) *gomock.Call
		expect  func(t *testing.T, tm *testWorkflowMocks)
		step    listing.State
		tokenID *big.Int
		cause   error
	}{
		{
			name:    "network switched before approve",
			healthy: 2,
			changed: func(tm *testWorkflowMocks) *gomock.Call {
				return tm.session.EXPECT().Bindings().Return(nil, domain.ErrWrongChain)
			},
			expect: func(t *testing.T, tm *testWorkflowMocks) {
				tm.expectUploadAndMint(t)
				tm.nft.EXPECT().Approve(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				tm.auction.EXPECT().CreateAuction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			step:    listing.StateListing,
			tokenID: big.NewInt(7),
			cause:   domain.ErrWrongChain,
		},
		{
			name:    "account switched before create auction",
			healthy: 3,
			changed: func(tm *testWorkflowMocks) *gomock.Call {
				rebound := *tm.bindings
				rebound.Account = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC").Hex()
				return tm.session.EXPECT().Bindings().Return(&rebound, nil)
			},
			expect: func(t *testing.T, tm *testWorkflowMocks) {
				tm.expectUploadAndMint(t)
				approveTx := newTx(2)
				tm.nft.EXPECT().Approve(gomock.Any(), auctionAddress, big.NewInt(7)).Return(approveTx, nil)
				tm.nft.EXPECT().WaitMined(gomock.Any(), approveTx).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
				tm.auction.EXPECT().CreateAuction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			step:    listing.StateListing,
			tokenID: big.NewInt(7),
		},
		{
			name:    "wallet disconnected before mint",
			healthy: 1,
			changed: func(tm *testWorkflowMocks) *gomock.Call {
				return tm.session.EXPECT().Bindings().Return(nil, domain.ErrNotConnected)
			},
			expect: func(t *testing.T, tm *testWorkflowMocks) {
				tm.uploader.EXPECT().UploadPhoto(gomock.Any(), gomock.Any()).Return("ipfs://bafyphoto", "image/png", nil)
				tm.uploader.EXPECT().UploadDocument(gomock.Any(), gomock.Any()).Return("ipfs://bafymeta", nil)
				tm.nft.EXPECT().MintCattle(gomock.Any(), gomock.Any()).Times(0)
			},
			step:  listing.StateMinting,
			cause: domain.ErrNotConnected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := newTestWorkflow(t)
			defer tearDownTestWorkflow(tm)

			gomock.InOrder(
				tm.session.EXPECT().Bindings().Return(tm.bindings, nil).Times(tt.healthy),
				tt.changed(tm),
			)
			tt.expect(t, tm)
			tm.publisher.EXPECT().PublishMarketEvent(gomock.Any(), gomock.Any()).Times(0)
			tm.notifier.EXPECT().
				Notify(gomock.Any(), gomock.Any()).
				Do(func(_ context.Context, n wallet.Notification) {
					assert.Equal(t, wallet.NotificationError, n.Kind)
				})

			_, err := tm.workflow.Submit(context.Background(), validForm())

			var stepErr *listing.StepError
			require.ErrorAs(t, err, &stepErr)
			assert.Equal(t, tt.step, stepErr.Step)
			assert.Equal(t, tt.tokenID, stepErr.TokenID)
			assert.ErrorIs(t, err, domain.ErrWalletChanged)
			if tt.cause != nil {
				assert.ErrorIs(t, err, tt.cause)
			}
			assert.Equal(t, listing.StateIdle, tm.workflow.State())
		})
	}
}

func TestSubmit_UploadFailure(t *testing.T) {
	tm := setupTestWorkflow(t)
	defer tearDownTestWorkflow(tm)

	form := validForm()
	form.Photo = nil
	form.PhotoURI = "ipfs://bafyexisting"

	tm.uploader.EXPECT().
		UploadDocument(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, doc *metadata.Document) (string, error) {
			assert.Equal(t, "ipfs://bafyexisting", doc.Image)
			return "", errors.New("ipfs: connection refused")
		})
	tm.nft.EXPECT().MintCattle(gomock.Any(), gomock.Any()).Times(0)
	tm.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

	_, err := tm.workflow.Submit(context.Background(), form)

	var stepErr *listing.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, listing.StateUploading, stepErr.Step)
	assert.EqualError(t, stepErr.Err, "ipfs: connection refused")
}

func TestSubmit_InvalidFormSendsNothing(t *testing.T) {
	tm := setupTestWorkflow(t)
	defer tearDownTestWorkflow(tm)

	form := validForm()
	form.Name = ""
	form.StartingPrice = decimal.RequireFromString("0.0000000000000000001")
	tm.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

	_, err := tm.workflow.Submit(context.Background(), form)

	var formErr *listing.FormError
	require.ErrorAs(t, err, &formErr)
	assert.Equal(t, "name must not be empty", formErr.Fields["name"])
	assert.Contains(t, formErr.Fields, "starting_price")
	assert.Equal(t, listing.StateIdle, tm.workflow.State())
}

func TestSubmit_WalletNotReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := mocks.NewMockBindingSource(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	session.EXPECT().Bindings().Return(nil, domain.ErrWrongChain)
	notifier.EXPECT().
		Notify(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, n wallet.Notification) {
			assert.Equal(t, "Wrong network", n.Title)
		})

	w := listing.New(listing.Config{}, session, mocks.NewMockUploader(ctrl), nil, nil, notifier, mocks.NewMockClock(ctrl))
	_, err := w.Submit(context.Background(), validForm())
	assert.ErrorIs(t, err, domain.ErrWrongChain)
}

func TestSubmit_Busy(t *testing.T) {
	tm := setupTestWorkflow(t)
	defer tearDownTestWorkflow(tm)

	started := make(chan struct{})
	release := make(chan struct{})
	tm.uploader.EXPECT().
		UploadPhoto(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, []byte) (string, string, error) {
			close(started)
			<-release
			return "", "", errors.New("stop")
		})
	tm.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = tm.workflow.Submit(context.Background(), validForm())
	}()

	<-started
	assert.Equal(t, listing.StateUploading, tm.workflow.State())
	_, err := tm.workflow.Submit(context.Background(), validForm())
	assert.ErrorIs(t, err, domain.ErrWorkflowBusy)

	close(release)
	wg.Wait()
	assert.Equal(t, listing.StateIdle, tm.workflow.State())
}
