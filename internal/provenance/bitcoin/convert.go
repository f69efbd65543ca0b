// Package bitcoin adapts Bitcoin node and wallet RPC results to provenance models.
package bitcoin

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/provenance/model"
)

// AmountFromBTC converts a BTC float into satoshis, rejecting negative values.
func AmountFromBTC(value float64) (btcutil.Amount, error) {
	amt, err := btcutil.NewAmount(value)
	if err != nil {
		return 0, err
	}
	if amt < 0 {
		return 0, fmt.Errorf("negative amount: %d", amt)
	}
	return amt, nil
}

// ConvertRaw maps a verbose getrawtransaction result into a model.Transaction.
func ConvertRaw(src btcjson.TxRawResult) (*model.Transaction, error) {
	txid, err := chainhash.NewHashFromStr(src.Txid)
	if err != nil {
		return nil, fmt.Errorf("parse txid %q: %w", src.Txid, err)
	}

	inputs := make([]model.Input, 0, len(src.Vin))
	for idx, vin := range src.Vin {
		if vin.IsCoinBase() {
			inputs = append(inputs, model.Input{Coinbase: true})
			continue
		}
		prev, err := chainhash.NewHashFromStr(vin.Txid)
		if err != nil {
			return nil, fmt.Errorf("tx %s input %d prev txid: %w", src.Txid, idx, err)
		}
		inputs = append(inputs, model.Input{PrevTxID: *prev, PrevVout: vin.Vout})
	}

	outputs := make([]model.Output, 0, len(src.Vout))
	for idx, vout := range src.Vout {
		value, err := AmountFromBTC(vout.Value)
		if err != nil {
			return nil, fmt.Errorf("tx %s output %d value: %w", src.Txid, idx, err)
		}
		script, err := hex.DecodeString(vout.ScriptPubKey.Hex)
		if err != nil {
			return nil, fmt.Errorf("tx %s output %d script hex: %w", src.Txid, idx, err)
		}
		outputs = append(outputs, model.Output{Value: value, PkScript: script})
	}

	return &model.Transaction{
		TxID:    *txid,
		Inputs:  inputs,
		Outputs: outputs,
	}, nil
}

// DecodeMsgTx deserializes a hex encoded raw transaction.
func DecodeMsgTx(rawHex string) (*wire.MsgTx, error) {
	raw, err := hex.DecodeString(rawHex)
	if err != nil {
		return nil, fmt.Errorf("decode tx hex: %w", err)
	}
	msg := wire.NewMsgTx(wire.TxVersion)
	if err := msg.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("deserialize tx: %w", err)
	}
	return msg, nil
}

// ConvertMsgTx maps a wire transaction into a model.Transaction.
func ConvertMsgTx(msg *wire.MsgTx) model.Transaction {
	coinbase := blockchain.IsCoinBaseTx(msg)

	inputs := make([]model.Input, 0, len(msg.TxIn))
	for _, in := range msg.TxIn {
		if coinbase {
			inputs = append(inputs, model.Input{Coinbase: true})
			continue
		}
		inputs = append(inputs, model.Input{
			PrevTxID: in.PreviousOutPoint.Hash,
			PrevVout: in.PreviousOutPoint.Index,
		})
	}

	outputs := make([]model.Output, 0, len(msg.TxOut))
	for _, out := range msg.TxOut {
		outputs = append(outputs, model.Output{
			Value:    btcutil.Amount(out.Value),
			PkScript: append([]byte(nil), out.PkScript...),
		})
	}

	return model.Transaction{
		TxID:    msg.TxHash(),
		Inputs:  inputs,
		Outputs: outputs,
	}
}
