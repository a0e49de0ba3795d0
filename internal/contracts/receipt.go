package contracts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"

	"github.com/hoofledger/hoofledger/internal/adapter"
	"github.com/hoofledger/hoofledger/internal/domain"
	"github.com/hoofledger/hoofledger/internal/logger"
)

const executionRevertedPrefix = "execution reverted"

// RevertError is returned when a transaction reverts on-chain
type RevertError struct {
	TxHash common.Hash
	Reason string
}

func (e *RevertError) Error() string {
	if e.Reason == "" {
		return executionRevertedPrefix
	}
	return executionRevertedPrefix + ": " + e.Reason
}

func (e *RevertError) Unwrap() error {
	return domain.ErrTransactionReverted
}

// WaitMined blocks until the transaction has a receipt. A failed receipt is
// replayed at its block to recover the revert reason.
func WaitMined(ctx context.Context, client adapter.EthClient, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, client, tx)
	if err != nil {
		return nil, fmt.Errorf("stopped waiting for transaction %s: %w", tx.Hash().Hex(), err)
	}

	if receipt.Status == types.ReceiptStatusSuccessful {
		return receipt, nil
	}

	logger.WarnCtx(ctx, "Transaction reverted", zap.String("txHash", tx.Hash().Hex()))
	revert := &RevertError{TxHash: tx.Hash(), Reason: replayRevertReason(ctx, client, tx, receipt)}
	return receipt, revert
}

// replayRevertReason re-executes a failed transaction as a call at its block
func replayRevertReason(ctx context.Context, client adapter.EthClient, tx *types.Transaction, receipt *types.Receipt) string {
	from, err := types.Sender(types.LatestSignerForChainID(tx.ChainId()), tx)
	if err != nil {
		return ""
	}

	_, err = client.CallContract(ctx, ethereum.CallMsg{
		From:  from,
		To:    tx.To(),
		Gas:   tx.Gas(),
		Value: tx.Value(),
		Data:  tx.Data(),
	}, receipt.BlockNumber)
	if err == nil {
		return ""
	}

	if revert, ok := revertFromError(err); ok {
		return revert.Reason
	}
	return err.Error()
}

// revertFromError extracts a revert reason from an RPC execution error
func revertFromError(err error) (*RevertError, bool) {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if hexData, ok := dataErr.ErrorData().(string); ok {
			if raw, decodeErr := hexutil.Decode(hexData); decodeErr == nil {
				if reason, unpackErr := abi.UnpackRevert(raw); unpackErr == nil {
					return &RevertError{Reason: reason}, true
				}
			}
		}
	}

	msg := err.Error()
	if !strings.HasPrefix(msg, executionRevertedPrefix) {
		return nil, false
	}
	reason := strings.TrimPrefix(strings.TrimPrefix(msg, executionRevertedPrefix), ":")
	return &RevertError{Reason: strings.TrimSpace(reason)}, true
}
