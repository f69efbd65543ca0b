package bitcoin

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/provenance/model"
)

// ScriptDecoder turns locking scripts into addresses using params of one network.
type ScriptDecoder struct {
	params *chaincfg.Params
}

// NewScriptDecoder initializes a decoder for the provided network.
func NewScriptDecoder(network model.Network) (*ScriptDecoder, error) {
	params, err := chainParamsForNetwork(network)
	if err != nil {
		return nil, err
	}
	return &ScriptDecoder{params: params}, nil
}

// Decode returns the single address a standard locking script pays to.
func (d *ScriptDecoder) Decode(pkScript []byte) (btcutil.Address, error) {
	class, addrs, _, err := txscript.ExtractPkScriptAddrs(pkScript, d.params)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrAddressDecodeFailure, err)
	}
	if class == txscript.NonStandardTy || len(addrs) != 1 {
		return nil, fmt.Errorf("%w: %s script with %d addresses", model.ErrAddressDecodeFailure, class, len(addrs))
	}
	return addrs[0], nil
}

// ParseAddress decodes a human-readable address and checks it belongs to the decoder's network.
func (d *ScriptDecoder) ParseAddress(address string) (btcutil.Address, error) {
	addr, err := btcutil.DecodeAddress(address, d.params)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %q: %w", model.ErrAddressDecodeFailure, address, err)
	}
	if !addr.IsForNet(d.params) {
		return nil, fmt.Errorf("%w: %q is not a %s address", model.ErrAddressDecodeFailure, address, d.params.Name)
	}
	return addr, nil
}

func chainParamsForNetwork(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest", "":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}
