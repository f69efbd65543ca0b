// Package model defines domain models for transaction provenance reports.
package model

// Network names the chain whose address encoding is used to decode locking scripts.
type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
	Signet  Network = "signet"
)
