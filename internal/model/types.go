// Package model defines domain models for shielded transaction scanning.
package model

// Network selects the Zcash chain parameters used for key decoding.
type Network string

// Pool identifies a shielded value pool.
type Pool string

// Direction describes a transaction relative to the viewing key.
type Direction string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

var (
	Sapling Pool = "sapling"
	Orchard Pool = "orchard"
)

var (
	In  Direction = "in"
	Out Direction = "out"
)
