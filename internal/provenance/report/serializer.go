// Package report renders provenance reports as line-delimited text files.
package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/provenance/model"
)

// Lines returns the report fields in file order.
func Lines(r model.ProvenanceReport) []string {
	return []string{
		r.TxID.String(),
		r.InputAddress,
		FormatAmount(r.InputAmount),
		r.RecipientAddress,
		FormatAmount(r.RecipientAmount),
		r.ChangeAddress,
		FormatAmount(r.ChangeAmount),
		FormatAmount(r.Fee),
		strconv.FormatUint(r.BlockHeight, 10),
		r.BlockHash.String(),
	}
}

// Encode writes one field per line, each newline-terminated.
func Encode(w io.Writer, r model.ProvenanceReport) error {
	for _, line := range Lines(r) {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// FormatAmount renders a satoshi amount in BTC with exactly eight decimals.
func FormatAmount(a btcutil.Amount) string {
	sign := ""
	if a < 0 {
		sign = "-"
		a = -a
	}
	return fmt.Sprintf("%s%d.%08d", sign, int64(a)/btcutil.SatoshiPerBitcoin, int64(a)%btcutil.SatoshiPerBitcoin)
}

// FileWriter writes reports to a fixed path, replacing any previous content.
type FileWriter struct {
	path string
}

// NewFileWriter creates a writer for path.
func NewFileWriter(path string) *FileWriter {
	return &FileWriter{path: path}
}

// Path returns the destination file.
func (w *FileWriter) Path() string {
	return w.path
}

// Write renders r and stores it at the writer's path.
func (w *FileWriter) Write(r model.ProvenanceReport) error {
	var buf bytes.Buffer
	if err := Encode(&buf, r); err != nil {
		return fmt.Errorf("%w: encode: %w", model.ErrReportWriteFailure, err)
	}
	if err := os.WriteFile(w.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %w", model.ErrReportWriteFailure, err)
	}
	return nil
}
