// Package ledger provides an in-memory ledger for running the report pipeline without a node.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/provenance/model"
)

// ErrTransactionNotFound is returned for ids the ledger does not hold.
var ErrTransactionNotFound = errors.New("transaction not found")

// Memory holds settled transactions and the wallet view of tracked ones.
type Memory struct {
	mu      sync.RWMutex
	txs     map[chainhash.Hash]model.Transaction
	status  map[chainhash.Hash]model.ConfirmationStatus
	lookups int
}

// NewMemory creates a ledger preloaded with txs.
func NewMemory(txs ...model.Transaction) *Memory {
	m := &Memory{
		txs:    make(map[chainhash.Hash]model.Transaction, len(txs)),
		status: make(map[chainhash.Hash]model.ConfirmationStatus),
	}
	for _, tx := range txs {
		m.txs[tx.TxID] = tx
	}
	return m
}

// Put stores a settled transaction.
func (m *Memory) Put(tx model.Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.txs[tx.TxID] = tx
}

// Track stores a transaction together with the wallet's confirmation status for it.
func (m *Memory) Track(tx model.Transaction, status model.ConfirmationStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.txs[tx.TxID] = tx
	m.status[tx.TxID] = status
}

// FetchTransaction returns a copy of the stored transaction.
func (m *Memory) FetchTransaction(ctx context.Context, txid chainhash.Hash) (*model.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups++

	tx, ok := m.txs[txid]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTransactionNotFound, txid)
	}
	return cloneTransaction(tx), nil
}

// FetchTrackedTransaction returns a tracked transaction. Transactions stored with Put are unconfirmed.
func (m *Memory) FetchTrackedTransaction(ctx context.Context, txid chainhash.Hash) (*model.TrackedTransaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	tx, ok := m.txs[txid]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTransactionNotFound, txid)
	}
	status, ok := m.status[txid]
	if !ok {
		status = model.Unconfirmed{}
	}
	return &model.TrackedTransaction{Transaction: *cloneTransaction(tx), Status: status}, nil
}

// Lookups reports how many times FetchTransaction was called.
func (m *Memory) Lookups() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lookups
}

func cloneTransaction(tx model.Transaction) *model.Transaction {
	out := model.Transaction{
		TxID:    tx.TxID,
		Inputs:  append([]model.Input(nil), tx.Inputs...),
		Outputs: make([]model.Output, len(tx.Outputs)),
	}
	for i, o := range tx.Outputs {
		out.Outputs[i] = model.Output{Value: o.Value, PkScript: append([]byte(nil), o.PkScript...)}
	}
	return &out
}
