package domain

import "errors"

var (
	// ErrMissingConfig is returned when a required configuration value is absent
	ErrMissingConfig = errors.New("missing configuration")

	// ErrNotInitialized is returned by the chain gateway before a successful init
	ErrNotInitialized = errors.New("blockchain service not initialized")

	// ErrTransactionReverted is returned when a confirmed transaction has failed status
	ErrTransactionReverted = errors.New("transaction reverted")

	// ErrMintEventNotFound is returned when a mint receipt carries no mint event
	ErrMintEventNotFound = errors.New("mint event not found in transaction logs")

	// ErrUnknownAuctionStatus is returned for a status code outside the known enum
	ErrUnknownAuctionStatus = errors.New("unknown auction status")

	// ErrInvalidAmount is returned for negative or over-precise currency amounts
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrRecordNotFound is returned when a cattle record does not exist
	ErrRecordNotFound = errors.New("cattle record not found")

	// ErrWalletNotFound is returned when no wallet provider is available
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrNotConnected is returned for operations that need a connected account
	ErrNotConnected = errors.New("wallet not connected")

	// ErrWrongChain is returned when the wallet is on a chain other than the target
	ErrWrongChain = errors.New("wallet connected to the wrong network")

	// ErrChainNotAdded is returned by a wallet asked to switch to an unregistered chain
	ErrChainNotAdded = errors.New("chain not added to wallet")

	// ErrUserRejected is returned when the wallet user declines a request
	ErrUserRejected = errors.New("user rejected the request")

	// ErrWorkflowBusy is returned when a listing is submitted while another runs
	ErrWorkflowBusy = errors.New("listing workflow already running")

	// ErrWalletChanged is returned when the wallet account or chain changes under a running listing
	ErrWalletChanged = errors.New("wallet changed during listing")
)
