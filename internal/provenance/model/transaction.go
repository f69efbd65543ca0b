package model

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Transaction is a read-only view of a transaction already committed to the ledger.
type Transaction struct {
	TxID    chainhash.Hash
	Inputs  []Input
	Outputs []Output
}

// Input references a previously created output being spent.
type Input struct {
	PrevTxID chainhash.Hash
	PrevVout uint32
	Coinbase bool
}

// Output is a value-bearing slot created by a transaction.
type Output struct {
	Value    btcutil.Amount
	PkScript []byte
}

// TrackedTransaction is a transaction as seen by the wallet that tracked it.
type TrackedTransaction struct {
	Transaction
	Status ConfirmationStatus
}

// ResolvedInput is the prior output an input spends, with its decoded address.
type ResolvedInput struct {
	PrevTxID chainhash.Hash
	PrevVout uint32
	Address  string
	Amount   btcutil.Amount
}
