package scan

import (
	"bytes"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/zcash/lightwalletd/walletrpc"
)

// ContinuityState is the chain position carried between blocks: the
// previous block's height and hash plus the running note commitment
// tree sizes per pool. Callers may persist it and re-supply it on a
// later call to resume a chunked scan.
type ContinuityState struct {
	Height          uint64
	Hash            chainhash.Hash
	SaplingTreeSize uint64
	OrchardTreeSize uint64
}

// continuityTracker validates that each presented block is the direct,
// gapless successor of the previous one. Uninitialized until the first
// block, which is accepted unconditionally.
type continuityTracker struct {
	state *ContinuityState
}

// advance checks the block against the tracked tip and returns the
// note positions at which the block's outputs begin.
func (t *continuityTracker) advance(block *walletrpc.CompactBlock) (saplingStart, orchardStart uint64, err error) {
	if t.state == nil {
		return 0, 0, nil
	}
	if want := t.state.Height + 1; block.Height != want {
		return 0, 0, &DiscontinuityError{
			Height:         block.Height,
			ExpectedHeight: want,
			ExpectedHash:   t.state.Hash,
		}
	}
	if !bytes.Equal(block.PrevHash, t.state.Hash[:]) {
		var actual chainhash.Hash
		copy(actual[:], block.PrevHash)
		return 0, 0, &DiscontinuityError{
			Height:         block.Height,
			ExpectedHeight: block.Height,
			ExpectedHash:   t.state.Hash,
			ActualPrevHash: actual,
		}
	}
	return t.state.SaplingTreeSize, t.state.OrchardTreeSize, nil
}

// commit records the block as the new tip. The counted end positions
// are kept as the running tree sizes unless the block carries explicit
// chain metadata, which takes precedence.
func (t *continuityTracker) commit(block *walletrpc.CompactBlock, saplingEnd, orchardEnd uint64) {
	next := &ContinuityState{
		Height:          block.Height,
		SaplingTreeSize: saplingEnd,
		OrchardTreeSize: orchardEnd,
	}
	copy(next.Hash[:], block.Hash)
	if meta := block.ChainMetadata; meta != nil {
		if meta.SaplingCommitmentTreeSize != 0 {
			next.SaplingTreeSize = uint64(meta.SaplingCommitmentTreeSize)
		}
		if meta.OrchardCommitmentTreeSize != 0 {
			next.OrchardTreeSize = uint64(meta.OrchardCommitmentTreeSize)
		}
	}
	t.state = next
}
