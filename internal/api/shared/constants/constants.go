package constants

const (
	// MAX_TOKEN_IDS_PER_REQUEST bounds the batch auction read
	MAX_TOKEN_IDS_PER_REQUEST = 50

	DEFAULT_WORKER_POOL_SIZE  = 8
	DEFAULT_WORKER_QUEUE_SIZE = 64

	SERVICE_NAME = "hoofledger-api"
)
