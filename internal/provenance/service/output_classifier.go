package service

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/provenance/model"
	"github.com/goodnatureofminers/blockinsight7000-provenance/pkg/safe"
)

// outputClassifier splits outputs into those paying the recipient and change.
type outputClassifier struct {
	decoder AddressDecoder
}

func (c *outputClassifier) Classify(outputs []model.Output, recipient btcutil.Address) (model.Classification, error) {
	if recipient == nil {
		return model.Classification{}, fmt.Errorf("%w: recipient address is required", model.ErrPreconditionViolation)
	}
	target := recipient.EncodeAddress()

	var matches []model.ClassifiedOutput
	change := make([]model.ClassifiedOutput, 0, len(outputs))
	for idx, out := range outputs {
		index, err := safe.Uint32(idx)
		if err != nil {
			return model.Classification{}, fmt.Errorf("output index: %w", err)
		}
		addr, err := c.decoder.Decode(out.PkScript)
		if err != nil {
			return model.Classification{}, fmt.Errorf("output %d: %w", idx, withKind(err, model.ErrAddressDecodeFailure))
		}

		classified := model.ClassifiedOutput{
			Index:   index,
			Address: addr.EncodeAddress(),
			Amount:  out.Value,
		}
		if classified.Address == target {
			matches = append(matches, classified)
		} else {
			change = append(change, classified)
		}
	}

	return model.Classification{
		Recipient: newRecipientMatch(matches),
		Change:    change,
	}, nil
}

func newRecipientMatch(matches []model.ClassifiedOutput) model.RecipientMatch {
	switch len(matches) {
	case 0:
		return model.NoMatch{}
	case 1:
		return model.SingleMatch{Output: matches[0]}
	default:
		return model.MultipleMatches{Outputs: matches}
	}
}

// recipientSlot picks the output reported as the payment. With several matches the last one wins.
func recipientSlot(match model.RecipientMatch) model.ClassifiedOutput {
	switch m := match.(type) {
	case model.SingleMatch:
		return m.Output
	case model.MultipleMatches:
		return m.Outputs[len(m.Outputs)-1]
	default:
		return model.ClassifiedOutput{}
	}
}

// changeSlot picks the output reported as change, the last non-recipient output.
func changeSlot(change []model.ClassifiedOutput) model.ClassifiedOutput {
	if len(change) == 0 {
		return model.ClassifiedOutput{}
	}
	return change[len(change)-1]
}
