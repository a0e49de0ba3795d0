package ratelimit

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/hoofledger/hoofledger/internal/adapter"
)

type ethClientDialer struct {
	dialer  adapter.EthClientDialer
	limiter Limiter
}

// NewEthClientDialer wraps dialer so every RPC call of the dialed clients
// first waits for a token from limiter
func NewEthClientDialer(dialer adapter.EthClientDialer, limiter Limiter) adapter.EthClientDialer {
	return &ethClientDialer{dialer: dialer, limiter: limiter}
}

func (d *ethClientDialer) Dial(ctx context.Context, rawurl string) (adapter.EthClient, error) {
	client, err := d.dialer.Dial(ctx, rawurl)
	if err != nil {
		return nil, err
	}
	return &ethClient{client: client, limiter: d.limiter}, nil
}

type ethClient struct {
	client  adapter.EthClient
	limiter Limiter
}

func (c *ethClient) ChainID(ctx context.Context) (*big.Int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return c.client.ChainID(ctx)
}

func (c *ethClient) BlockNumber(ctx context.Context) (uint64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, err
	}
	return c.client.BlockNumber(ctx)
}

func (c *ethClient) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return c.client.HeaderByNumber(ctx, number)
}

func (c *ethClient) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return c.client.CallContract(ctx, msg, blockNumber)
}

func (c *ethClient) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return c.client.CodeAt(ctx, account, blockNumber)
}

func (c *ethClient) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return c.client.PendingCodeAt(ctx, account)
}

func (c *ethClient) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, err
	}
	return c.client.PendingNonceAt(ctx, account)
}

func (c *ethClient) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return c.client.SuggestGasPrice(ctx)
}

func (c *ethClient) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return c.client.SuggestGasTipCap(ctx)
}

func (c *ethClient) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, err
	}
	return c.client.EstimateGas(ctx, msg)
}

func (c *ethClient) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	return c.client.SendTransaction(ctx, tx)
}

func (c *ethClient) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return c.client.FilterLogs(ctx, q)
}

// SubscribeFilterLogs waits once for the subscription request
func (c *ethClient) SubscribeFilterLogs(ctx context.Context, q ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return c.client.SubscribeFilterLogs(ctx, q, ch)
}

func (c *ethClient) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return c.client.TransactionReceipt(ctx, txHash)
}

func (c *ethClient) Close() {
	c.client.Close()
}
