package domain

import "time"

const (
	// DEFAULT_IPFS_GATEWAY is used to render ipfs:// URIs for humans
	DEFAULT_IPFS_GATEWAY = "https://ipfs.io"

	// ETHEREUM_ZERO_ADDRESS is the from address of ERC-721 mint transfers
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"

	// BASE_UNIT_DECIMALS is the number of decimals of the chain's native currency
	BASE_UNIT_DECIMALS = 18

	// MIN_AUCTION_DURATION is the shortest auction the REST facade accepts
	MIN_AUCTION_DURATION = time.Hour
)
