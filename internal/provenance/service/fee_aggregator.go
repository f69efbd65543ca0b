package service

import (
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/provenance/model"
)

// Aggregate returns the absolute fee and confirming block of a confirmed transaction.
func Aggregate(status model.ConfirmationStatus) (model.FeeMetadata, error) {
	confirmed, ok := status.(model.Confirmed)
	if !ok {
		return model.FeeMetadata{}, fmt.Errorf("%w: transaction is not confirmed", model.ErrPreconditionViolation)
	}

	fee := confirmed.Fee
	if fee < 0 {
		fee = -fee
	}
	return model.FeeMetadata{
		Fee:         fee,
		BlockHeight: confirmed.Height,
		BlockHash:   confirmed.BlockHash,
	}, nil
}
