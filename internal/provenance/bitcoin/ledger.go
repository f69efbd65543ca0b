package bitcoin

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/provenance/model"
	"github.com/goodnatureofminers/blockinsight7000-provenance/pkg/safe"
)

// Ledger reads transactions from a node and confirmation data from the wallet that tracked them.
type Ledger struct {
	node   RPCClient
	wallet RPCClient
}

// NewLedger creates a Ledger over node-scoped and wallet-scoped RPC clients.
func NewLedger(node, wallet RPCClient) *Ledger {
	return &Ledger{
		node:   node,
		wallet: wallet,
	}
}

// FetchTransaction returns a settled transaction by id.
func (l *Ledger) FetchTransaction(ctx context.Context, txid chainhash.Hash) (*model.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := l.node.GetRawTransactionVerbose(&txid)
	if err != nil {
		return nil, fmt.Errorf("get raw transaction %s: %w", txid, err)
	}
	return ConvertRaw(*raw)
}

// FetchTrackedTransaction returns a wallet transaction together with its confirmation status.
func (l *Ledger) FetchTrackedTransaction(ctx context.Context, txid chainhash.Hash) (*model.TrackedTransaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res, err := l.wallet.GetTransaction(&txid)
	if err != nil {
		return nil, fmt.Errorf("get wallet transaction %s: %w", txid, err)
	}

	msg, err := DecodeMsgTx(res.Hex)
	if err != nil {
		return nil, fmt.Errorf("wallet transaction %s: %w", txid, err)
	}
	tx := ConvertMsgTx(msg)
	if tx.TxID != txid {
		return nil, fmt.Errorf("wallet returned tx %s for %s", tx.TxID, txid)
	}

	status, err := l.confirmationStatus(*res)
	if err != nil {
		return nil, fmt.Errorf("wallet transaction %s: %w", txid, err)
	}
	return &model.TrackedTransaction{Transaction: tx, Status: status}, nil
}

func (l *Ledger) confirmationStatus(res btcjson.GetTransactionResult) (model.ConfirmationStatus, error) {
	if res.BlockHash == "" {
		if res.Confirmations > 0 {
			return nil, fmt.Errorf("%d confirmations without block hash", res.Confirmations)
		}
		return model.Unconfirmed{}, nil
	}

	blockHash, err := chainhash.NewHashFromStr(res.BlockHash)
	if err != nil {
		return nil, fmt.Errorf("parse block hash %q: %w", res.BlockHash, err)
	}
	header, err := l.node.GetBlockHeaderVerbose(blockHash)
	if err != nil {
		return nil, fmt.Errorf("get block header %s: %w", blockHash, err)
	}
	height, err := safe.Uint64(header.Height)
	if err != nil {
		return nil, fmt.Errorf("block %s height: %w", blockHash, err)
	}
	fee, err := btcutil.NewAmount(res.Fee)
	if err != nil {
		return nil, fmt.Errorf("fee: %w", err)
	}

	return model.Confirmed{
		Height:    height,
		BlockHash: *blockHash,
		Fee:       fee,
	}, nil
}
