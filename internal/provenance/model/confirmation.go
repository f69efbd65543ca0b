package model

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ConfirmationStatus is either Unconfirmed or Confirmed.
type ConfirmationStatus interface {
	confirmationStatus()
}

// Unconfirmed marks a transaction that is not yet included in a block.
type Unconfirmed struct{}

// Confirmed carries the confirming block and the fee the wallet computed.
// Fee keeps the wallet's sign convention, negative for funds leaving the wallet.
type Confirmed struct {
	Height    uint64
	BlockHash chainhash.Hash
	Fee       btcutil.Amount
}

func (Unconfirmed) confirmationStatus() {}
func (Confirmed) confirmationStatus()   {}

// FeeMetadata is the fee and confirming block extracted from a confirmed transaction.
type FeeMetadata struct {
	Fee         btcutil.Amount
	BlockHeight uint64
	BlockHash   chainhash.Hash
}
