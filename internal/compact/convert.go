// Package compact maps boundary JSON compact blocks into the
// lightwalletd wire structs consumed by the scanning engine.
package compact

import (
	"encoding/hex"
	"fmt"

	"github.com/zcash/lightwalletd/walletrpc"
	"github.com/zecscope/zecscope-backend/internal/model"
)

const (
	// HashSize is the byte length of block hashes, note commitments
	// and nullifiers.
	HashSize = 32
)

// EncodingError reports a malformed byte field in a compact block.
type EncodingError struct {
	Field string
	Err   error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid encoding in %s: %v", e.Field, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// BlockFromModel converts a boundary compact block into its wire form,
// hex-decoding every byte field.
func BlockFromModel(b model.CompactBlock) (*walletrpc.CompactBlock, error) {
	hash, err := decodeField(b.Hash, "block hash", HashSize)
	if err != nil {
		return nil, err
	}
	prevHash, err := decodeField(b.PrevHash, "block prevHash", HashSize)
	if err != nil {
		return nil, err
	}

	vtx := make([]*walletrpc.CompactTx, 0, len(b.Vtx))
	for _, tx := range b.Vtx {
		wire, err := TxFromModel(tx)
		if err != nil {
			return nil, err
		}
		vtx = append(vtx, wire)
	}

	var meta *walletrpc.ChainMetadata
	if b.ChainMetadata != nil {
		meta = &walletrpc.ChainMetadata{
			SaplingCommitmentTreeSize: b.ChainMetadata.SaplingCommitmentTreeSize,
		}
		if b.ChainMetadata.OrchardCommitmentTreeSize != nil {
			meta.OrchardCommitmentTreeSize = *b.ChainMetadata.OrchardCommitmentTreeSize
		}
	}

	return &walletrpc.CompactBlock{
		ProtoVersion:  b.ProtoVersion,
		Height:        b.Height,
		Hash:          hash,
		PrevHash:      prevHash,
		Time:          b.Time,
		Vtx:           vtx,
		ChainMetadata: meta,
	}, nil
}

// TxFromModel converts one boundary compact transaction.
func TxFromModel(tx model.CompactTx) (*walletrpc.CompactTx, error) {
	hash, err := decodeField(tx.TxID, "txid", HashSize)
	if err != nil {
		return nil, err
	}

	spends := make([]*walletrpc.CompactSaplingSpend, 0, len(tx.Spends))
	for _, s := range tx.Spends {
		nf, err := decodeField(s.Nf, "sapling spend nf", HashSize)
		if err != nil {
			return nil, err
		}
		spends = append(spends, &walletrpc.CompactSaplingSpend{Nf: nf})
	}

	outputs := make([]*walletrpc.CompactSaplingOutput, 0, len(tx.Outputs))
	for _, o := range tx.Outputs {
		cmu, err := decodeField(o.Cmu, "sapling output cmu", HashSize)
		if err != nil {
			return nil, err
		}
		epk, err := decodeField(o.EphemeralKey, "sapling output ephemeralKey", HashSize)
		if err != nil {
			return nil, err
		}
		ciphertext, err := decodeField(o.Ciphertext, "sapling output ciphertext", 0)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, &walletrpc.CompactSaplingOutput{
			Cmu:          cmu,
			EphemeralKey: epk,
			Ciphertext:   ciphertext,
		})
	}

	actions := make([]*walletrpc.CompactOrchardAction, 0, len(tx.Actions))
	for _, a := range tx.Actions {
		nf, err := decodeField(a.Nf, "orchard action nf", HashSize)
		if err != nil {
			return nil, err
		}
		cmx, err := decodeField(a.Cmx, "orchard action cmx", HashSize)
		if err != nil {
			return nil, err
		}
		epk, err := decodeField(a.EphemeralKey, "orchard action ephemeralKey", HashSize)
		if err != nil {
			return nil, err
		}
		ciphertext, err := decodeField(a.Ciphertext, "orchard action ciphertext", 0)
		if err != nil {
			return nil, err
		}
		actions = append(actions, &walletrpc.CompactOrchardAction{
			Nullifier:    nf,
			Cmx:          cmx,
			EphemeralKey: epk,
			Ciphertext:   ciphertext,
		})
	}

	var fee uint32
	if tx.Fee != nil {
		fee = *tx.Fee
	}

	return &walletrpc.CompactTx{
		Index:   tx.Index,
		Hash:    hash,
		Fee:     fee,
		Spends:  spends,
		Outputs: outputs,
		Actions: actions,
	}, nil
}

// decodeField hex-decodes a byte field, enforcing an exact length when
// wantLen is non-zero.
func decodeField(s, field string, wantLen int) ([]byte, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, &EncodingError{Field: field, Err: err}
	}
	if wantLen != 0 && len(raw) != wantLen {
		return nil, &EncodingError{
			Field: field,
			Err:   fmt.Errorf("got %d bytes, want %d", len(raw), wantLen),
		}
	}
	return raw, nil
}
