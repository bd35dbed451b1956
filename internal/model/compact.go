package model

// CompactBlock is a pruned block as served by a lightwalletd-style
// indexer, with byte fields hex-encoded for the JSON boundary.
type CompactBlock struct {
	ProtoVersion uint32         `json:"protoVersion"`
	Height       uint64         `json:"height"`
	Hash         string         `json:"hash"`
	PrevHash     string         `json:"prevHash"`
	Time         uint32         `json:"time"`
	Vtx          []CompactTx    `json:"vtx"`
	ChainMetadata *ChainMetadata `json:"chainMetadata,omitempty"`
}

// CompactTx carries the shielded components of one transaction.
type CompactTx struct {
	Index   uint64                 `json:"index"`
	TxID    string                 `json:"txid"`
	Fee     *uint32                `json:"fee,omitempty"`
	Spends  []CompactSaplingSpend  `json:"spends"`
	Outputs []CompactSaplingOutput `json:"outputs"`
	Actions []CompactOrchardAction `json:"actions"`
}

// CompactSaplingSpend carries only the published nullifier.
type CompactSaplingSpend struct {
	Nf string `json:"nf"`
}

// CompactSaplingOutput is the detection-relevant part of a Sapling output.
type CompactSaplingOutput struct {
	Cmu          string `json:"cmu"`
	EphemeralKey string `json:"ephemeralKey"`
	Ciphertext   string `json:"ciphertext"`
}

// CompactOrchardAction unifies a spend side and an output side.
type CompactOrchardAction struct {
	Nf           string `json:"nf"`
	Cmx          string `json:"cmx"`
	EphemeralKey string `json:"ephemeralKey"`
	Ciphertext   string `json:"ciphertext"`
}

// ChainMetadata holds running note commitment tree sizes at block end.
type ChainMetadata struct {
	SaplingCommitmentTreeSize uint32  `json:"saplingCommitmentTreeSize"`
	OrchardCommitmentTreeSize *uint32 `json:"orchardCommitmentTreeSize,omitempty"`
}
