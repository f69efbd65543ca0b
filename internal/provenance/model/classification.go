package model

import "github.com/btcsuite/btcd/btcutil"

// ClassifiedOutput is a transaction output with its decoded address.
type ClassifiedOutput struct {
	Index   uint32
	Address string
	Amount  btcutil.Amount
}

// RecipientMatch is one of NoMatch, SingleMatch or MultipleMatches.
type RecipientMatch interface {
	recipientMatch()
	// Kind is a short label used in logs and metrics.
	Kind() string
}

// NoMatch means no output pays the recipient address.
type NoMatch struct{}

// SingleMatch means exactly one output pays the recipient address.
type SingleMatch struct {
	Output ClassifiedOutput
}

// MultipleMatches lists every output paying the recipient address, in output order.
type MultipleMatches struct {
	Outputs []ClassifiedOutput
}

func (NoMatch) recipientMatch()         {}
func (SingleMatch) recipientMatch()     {}
func (MultipleMatches) recipientMatch() {}

func (NoMatch) Kind() string         { return "none" }
func (SingleMatch) Kind() string     { return "single" }
func (MultipleMatches) Kind() string { return "multiple" }

// Classification partitions outputs into the recipient match and change.
type Classification struct {
	Recipient RecipientMatch
	Change    []ClassifiedOutput
}
