// Package service turns a confirmed transaction into a provenance report.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/provenance/model"
	"go.uber.org/zap"
)

const (
	stepResolveInput    = "resolve_input"
	stepClassifyOutputs = "classify_outputs"
	stepAggregateFee    = "aggregate_fee"
	stepWriteReport     = "write_report"
)

// Provenance runs the report pipeline: resolve input, classify outputs, aggregate fee, write report.
type Provenance struct {
	ledger     Ledger
	resolver   *inputResolver
	classifier *outputClassifier
	writer     ReportWriter
	metrics    Metrics
	logger     *zap.Logger
}

// NewProvenance wires the pipeline over a ledger, a script decoder and a report writer.
func NewProvenance(ledger Ledger, decoder AddressDecoder, writer ReportWriter, metrics Metrics, logger *zap.Logger) (*Provenance, error) {
	if ledger == nil {
		return nil, errors.New("ledger is required")
	}
	if decoder == nil {
		return nil, errors.New("address decoder is required")
	}
	if writer == nil {
		return nil, errors.New("report writer is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Provenance{
		ledger:     ledger,
		resolver:   &inputResolver{fetcher: ledger, decoder: decoder},
		classifier: &outputClassifier{decoder: decoder},
		writer:     writer,
		metrics:    metrics,
		logger:     logger,
	}, nil
}

// Run loads the wallet view of txid and generates its report.
func (p *Provenance) Run(ctx context.Context, txid chainhash.Hash, recipient btcutil.Address) (model.ProvenanceReport, error) {
	tracked, err := p.ledger.FetchTrackedTransaction(ctx, txid)
	if err != nil {
		return model.ProvenanceReport{}, fmt.Errorf("load transaction: %w", withKind(err, model.ErrLookupFailure))
	}
	if tracked == nil {
		return model.ProvenanceReport{}, fmt.Errorf("load transaction: %w: tx %s not found", model.ErrLookupFailure, txid)
	}
	return p.Generate(ctx, *tracked, recipient)
}

// Generate builds the report for tx and writes it. Nothing is written when any step fails.
func (p *Provenance) Generate(ctx context.Context, tx model.TrackedTransaction, recipient btcutil.Address) (model.ProvenanceReport, error) {
	report, err := p.Build(ctx, tx, recipient)
	if err != nil {
		return model.ProvenanceReport{}, err
	}

	started := time.Now()
	err = p.writer.Write(report)
	p.observeStep(stepWriteReport, err, started)
	if err != nil {
		return model.ProvenanceReport{}, fmt.Errorf("write report: %w", withKind(err, model.ErrReportWriteFailure))
	}

	p.logger.Info("provenance report written",
		zap.Stringer("txid", report.TxID),
		zap.String("input_address", report.InputAddress),
		zap.Stringer("fee", report.Fee),
		zap.Uint64("block_height", report.BlockHeight),
	)
	return report, nil
}

// Build runs every step except writing and returns the assembled report.
func (p *Provenance) Build(ctx context.Context, tx model.TrackedTransaction, recipient btcutil.Address) (model.ProvenanceReport, error) {
	started := time.Now()
	input, err := p.resolver.Resolve(ctx, tx.Transaction)
	p.observeStep(stepResolveInput, err, started)
	if err != nil {
		return model.ProvenanceReport{}, fmt.Errorf("resolve input: %w", err)
	}
	p.logger.Debug("input resolved",
		zap.Stringer("prev_txid", input.PrevTxID),
		zap.Uint32("prev_vout", input.PrevVout),
		zap.String("address", input.Address),
	)

	started = time.Now()
	classification, err := p.classifier.Classify(tx.Outputs, recipient)
	p.observeStep(stepClassifyOutputs, err, started)
	if err != nil {
		return model.ProvenanceReport{}, fmt.Errorf("classify outputs: %w", err)
	}
	p.observeRecipientMatch(classification.Recipient)
	if m, ok := classification.Recipient.(model.MultipleMatches); ok {
		p.logger.Warn("several outputs pay the recipient, reporting the last one",
			zap.Stringer("txid", tx.TxID),
			zap.Int("matches", len(m.Outputs)),
		)
	}

	started = time.Now()
	meta, err := Aggregate(tx.Status)
	p.observeStep(stepAggregateFee, err, started)
	if err != nil {
		return model.ProvenanceReport{}, fmt.Errorf("aggregate fee: %w", err)
	}

	paid := recipientSlot(classification.Recipient)
	change := changeSlot(classification.Change)

	return model.ProvenanceReport{
		TxID:             tx.TxID,
		InputAddress:     input.Address,
		InputAmount:      input.Amount,
		RecipientAddress: paid.Address,
		RecipientAmount:  paid.Amount,
		ChangeAddress:    change.Address,
		ChangeAmount:     change.Amount,
		Fee:              meta.Fee,
		BlockHeight:      meta.BlockHeight,
		BlockHash:        meta.BlockHash,
	}, nil
}

func (p *Provenance) observeStep(step string, err error, started time.Time) {
	if p.metrics == nil {
		return
	}
	p.metrics.ObserveStep(step, err, started)
}

func (p *Provenance) observeRecipientMatch(match model.RecipientMatch) {
	if p.metrics == nil || match == nil {
		return
	}
	p.metrics.ObserveRecipientMatch(match.Kind())
}
