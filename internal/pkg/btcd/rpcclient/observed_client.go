// Package rpcclient decorates btcd RPC clients with metrics and client-side rate limiting.
package rpcclient

import (
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/ratelimit"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Client interface {
		GetRawTransactionVerbose(txHash *chainhash.Hash) (*btcjson.TxRawResult, error)
		GetTransaction(txHash *chainhash.Hash) (*btcjson.GetTransactionResult, error)
		GetBlockHeaderVerbose(blockHash *chainhash.Hash) (*btcjson.GetBlockHeaderVerboseResult, error)
	}
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// ObservedClient records every call and waits on a limiter before issuing it.
type ObservedClient struct {
	client     Client
	rpcMetrics RPCMetrics
	limiter    ratelimit.Limiter
}

// NewObservedClient wraps client. A nil limiter leaves calls unlimited.
func NewObservedClient(client Client, rpcMetrics RPCMetrics, limiter ratelimit.Limiter) *ObservedClient {
	if limiter == nil {
		limiter = ratelimit.NewUnlimited()
	}
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
		limiter:    limiter,
	}
}

func (r *ObservedClient) GetRawTransactionVerbose(txHash *chainhash.Hash) (res *btcjson.TxRawResult, err error) {
	r.limiter.Take()
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_raw_transaction_verbose", err, started)
	}()
	return r.client.GetRawTransactionVerbose(txHash)
}

func (r *ObservedClient) GetTransaction(txHash *chainhash.Hash) (res *btcjson.GetTransactionResult, err error) {
	r.limiter.Take()
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_transaction", err, started)
	}()
	return r.client.GetTransaction(txHash)
}

func (r *ObservedClient) GetBlockHeaderVerbose(blockHash *chainhash.Hash) (res *btcjson.GetBlockHeaderVerboseResult, err error) {
	r.limiter.Take()
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_header_verbose", err, started)
	}()
	return r.client.GetBlockHeaderVerbose(blockHash)
}
