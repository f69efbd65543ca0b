package model

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ProvenanceReport is the final artifact written for a confirmed transaction.
type ProvenanceReport struct {
	TxID             chainhash.Hash
	InputAddress     string
	InputAmount      btcutil.Amount
	RecipientAddress string
	RecipientAmount  btcutil.Amount
	ChangeAddress    string
	ChangeAmount     btcutil.Amount
	Fee              btcutil.Amount
	BlockHeight      uint64
	BlockHash        chainhash.Hash
}
