package service

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/provenance/model"
)

// inputResolver follows the first input of a transaction one hop back to the output it spends.
type inputResolver struct {
	fetcher TransactionFetcher
	decoder AddressDecoder
}

func (r *inputResolver) Resolve(ctx context.Context, tx model.Transaction) (model.ResolvedInput, error) {
	if len(tx.Inputs) == 0 {
		return model.ResolvedInput{}, fmt.Errorf("%w: tx %s has no inputs", model.ErrPreconditionViolation, tx.TxID)
	}
	in := tx.Inputs[0]
	if in.Coinbase {
		return model.ResolvedInput{}, fmt.Errorf("%w: tx %s spends a coinbase input", model.ErrLookupFailure, tx.TxID)
	}

	prev, err := r.fetcher.FetchTransaction(ctx, in.PrevTxID)
	if err != nil {
		return model.ResolvedInput{}, fmt.Errorf("%w: fetch tx %s: %w", model.ErrLookupFailure, in.PrevTxID, err)
	}
	if prev == nil {
		return model.ResolvedInput{}, fmt.Errorf("%w: tx %s not found", model.ErrLookupFailure, in.PrevTxID)
	}
	if uint64(in.PrevVout) >= uint64(len(prev.Outputs)) {
		return model.ResolvedInput{}, fmt.Errorf("%w: input references vout %d of tx %s with %d outputs",
			model.ErrIndexOutOfRange, in.PrevVout, in.PrevTxID, len(prev.Outputs))
	}

	out := prev.Outputs[in.PrevVout]
	addr, err := r.decoder.Decode(out.PkScript)
	if err != nil {
		return model.ResolvedInput{}, fmt.Errorf("prior output %s:%d: %w", in.PrevTxID, in.PrevVout, withKind(err, model.ErrAddressDecodeFailure))
	}

	return model.ResolvedInput{
		PrevTxID: in.PrevTxID,
		PrevVout: in.PrevVout,
		Address:  addr.EncodeAddress(),
		Amount:   out.Value,
	}, nil
}
