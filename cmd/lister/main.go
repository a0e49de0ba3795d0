package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hoofledger/hoofledger/internal/adapter"
	"github.com/hoofledger/hoofledger/internal/config"
	"github.com/hoofledger/hoofledger/internal/domain"
	"github.com/hoofledger/hoofledger/internal/listing"
	"github.com/hoofledger/hoofledger/internal/logger"
	"github.com/hoofledger/hoofledger/internal/messaging"
	"github.com/hoofledger/hoofledger/internal/metadata"
	"github.com/hoofledger/hoofledger/internal/providers/jetstream"
	"github.com/hoofledger/hoofledger/internal/wallet"
	"github.com/hoofledger/hoofledger/internal/wallet/local"
)

var (
	configFile  = flag.String("config", "", "Path to configuration file")
	envPath     = flag.String("env", "config/", "Path to environment files")
	listingFile = flag.String("listing", "", "Path to the listing JSON file")
	photoFile   = flag.String("photo", "", "Path to the cattle photo (optional)")
)

func main() {
	flag.Parse()

	if *listingFile == "" {
		fmt.Fprintln(os.Stderr, "usage: lister -listing listing.json [-photo photo.jpg]")
		os.Exit(2)
	}

	config.ChdirRepoRoot()
	cfg, err := config.LoadListerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "lister",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, *listingFile, *photoFile)
	stop()
	if err != nil {
		logger.ErrorCtx(ctx, err)
	}

	// run has released the wallet, session and publisher by now
	logger.Flush(2 * time.Second)
	if err != nil {
		os.Exit(1)
	}
}

// run lists one animal. Everything it opens is closed before it returns.
func run(ctx context.Context, cfg *config.ListerConfig, listingPath, photoPath string) error {
	if err := cfg.Chain.Validate(); err != nil {
		return fmt.Errorf("invalid chain configuration: %w", err)
	}

	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()

	form, err := listing.LoadForm(adapter.NewFileSystem(), jsonAdapter, listingPath, photoPath)
	if err != nil {
		return err
	}

	// Wallet
	start, ok := networkParams(cfg.Wallet.Networks, cfg.Wallet.ChainID)
	if !ok {
		return fmt.Errorf("%w: wallet start network %s has no rpc url", domain.ErrMissingConfig, cfg.Wallet.ChainID)
	}
	provider, err := local.New(ctx, adapter.NewEthClientDialer(), cfg.Wallet.PrivateKey, start, false)
	if err != nil {
		return fmt.Errorf("failed to open wallet: %w", err)
	}
	defer provider.Close()

	target, ok := networkParams(cfg.Wallet.Networks, cfg.Chain.ChainID)
	if !ok {
		target = wallet.ChainParams{ChainID: cfg.Chain.ChainID, Name: string(cfg.Chain.ChainID), RPCURLs: []string{cfg.Chain.RPCURL}}
	}
	session := wallet.NewSession(wallet.Config{
		Target:         target,
		NFTAddress:     common.HexToAddress(cfg.Chain.NFTAddress),
		AuctionAddress: common.HexToAddress(cfg.Chain.AuctionAddress),
	}, provider, wallet.NewLogNotifier(), nil)
	defer session.Close()

	if err := session.Start(ctx); err != nil {
		return fmt.Errorf("failed to start wallet session: %w", err)
	}
	if err := session.Connect(ctx); err != nil {
		return err
	}
	if err := session.SwitchNetwork(ctx); err != nil {
		return err
	}

	// Market events
	var publisher messaging.Publisher = messaging.NewNopPublisher()
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to connect to NATS, market events will not be published", zap.Error(err))
			publisher = messaging.NewNopPublisher()
		}
	}
	defer publisher.Close()

	var sink listing.RecordSink
	if cfg.RecordAPI.BaseURL != "" {
		sink = listing.NewRecordAPIClient(cfg.RecordAPI.BaseURL, adapter.NewHTTPClient(cfg.RecordAPI.Timeout), jsonAdapter)
	}

	uploader := metadata.NewIPFSUploader(cfg.IPFS.APIURL, adapter.NewHTTPClient(cfg.IPFS.Timeout), jsonAdapter)

	workflow := listing.New(listing.Config{CompletionDelay: cfg.Listing.CompletionDelay},
		session, uploader, publisher, sink, wallet.NewLogNotifier(), clock)
	workflow.OnComplete(func(r *listing.Result) {
		logger.InfoCtx(ctx, "Listing finished", zap.String("tokenID", r.TokenID.String()))
	})

	result, err := workflow.Submit(ctx, form)
	if err != nil {
		return err
	}

	fields := []zap.Field{
		zap.String("tokenID", result.TokenID.String()),
		zap.String("owner", result.Owner),
		zap.String("metadataURI", result.MetadataURI),
		zap.String("mintTxHash", result.MintTxHash),
		zap.String("auctionTxHash", result.AuctionTxHash),
	}
	if result.EndTime != nil {
		fields = append(fields, zap.Time("endTime", *result.EndTime))
	}
	logger.InfoCtx(ctx, "Cattle listed for auction", fields...)
	return nil
}

// networkParams collects the configured RPC endpoints of chain
func networkParams(networks []config.NetworkConfig, chain domain.Chain) (wallet.ChainParams, bool) {
	params := wallet.ChainParams{ChainID: chain}
	for _, n := range networks {
		if !n.ChainID.Equal(chain) {
			continue
		}
		if params.Name == "" {
			params.Name = n.Name
		}
		params.RPCURLs = append(params.RPCURLs, n.RPCURL)
	}
	return params, len(params.RPCURLs) > 0
}
