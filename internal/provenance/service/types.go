package service

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/provenance/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	TransactionFetcher interface {
		FetchTransaction(ctx context.Context, txid chainhash.Hash) (*model.Transaction, error)
	}
	Ledger interface {
		FetchTransaction(ctx context.Context, txid chainhash.Hash) (*model.Transaction, error)
		FetchTrackedTransaction(ctx context.Context, txid chainhash.Hash) (*model.TrackedTransaction, error)
	}
	AddressDecoder interface {
		Decode(pkScript []byte) (btcutil.Address, error)
	}
	ReportWriter interface {
		Write(report model.ProvenanceReport) error
	}
	Metrics interface {
		ObserveStep(step string, err error, started time.Time)
		ObserveRecipientMatch(kind string)
	}
)
