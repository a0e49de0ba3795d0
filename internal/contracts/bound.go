package contracts

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/hoofledger/hoofledger/internal/adapter"
)

// boundContract is one ABI at one address, signed by opts when it is set
type boundContract struct {
	address  common.Address
	contract *bind.BoundContract
	client   adapter.EthClient
	opts     *bind.TransactOpts
}

func newBoundContract(address common.Address, parsed abi.ABI, client adapter.EthClient, opts *bind.TransactOpts) boundContract {
	return boundContract{
		address:  address,
		contract: bind.NewBoundContract(address, parsed, client, client, client),
		client:   client,
		opts:     opts,
	}
}

// call executes a read-only method at the latest block
func (c *boundContract) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	callOpts := &bind.CallOpts{Context: ctx}
	if c.opts != nil {
		callOpts.From = c.opts.From
	}

	var out []interface{}
	if err := c.contract.Call(callOpts, &out, method, args...); err != nil {
		if revert, ok := revertFromError(err); ok {
			return nil, revert
		}
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty result from %s", method)
	}

	return out, nil
}

// transact signs and submits a state-changing method
func (c *boundContract) transact(ctx context.Context, method string, args ...interface{}) (*types.Transaction, error) {
	if c.opts == nil {
		return nil, fmt.Errorf("no transactor bound for %s", method)
	}

	opts := *c.opts
	opts.Context = ctx

	tx, err := c.contract.Transact(&opts, method, args...)
	if err != nil {
		if revert, ok := revertFromError(err); ok {
			return nil, revert
		}
		return nil, fmt.Errorf("failed to send %s: %w", method, err)
	}
	return tx, nil
}

func (c *boundContract) waitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	return WaitMined(ctx, c.client, tx)
}
