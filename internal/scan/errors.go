package scan

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/zecscope/zecscope-backend/internal/model"
)

// DiscontinuityError reports a block that is not the direct successor
// of the previously scanned block. The supplied range is inconsistent
// or reorged; the caller must re-fetch a corrected range.
type DiscontinuityError struct {
	Height         uint64
	ExpectedHeight uint64
	ExpectedHash   chainhash.Hash
	ActualPrevHash chainhash.Hash
}

func (e *DiscontinuityError) Error() string {
	if e.Height != e.ExpectedHeight {
		return fmt.Sprintf("chain discontinuity: got height %d, want %d", e.Height, e.ExpectedHeight)
	}
	return fmt.Sprintf(
		"chain discontinuity at height %d: prev hash %s does not match tip %s",
		e.Height, e.ActualPrevHash, e.ExpectedHash,
	)
}

// DecryptError reports an internal fault in the primitive layer. A
// normal "not for us" outcome is not an error; this is fatal.
type DecryptError struct {
	Height uint64
	Pool   model.Pool
	Err    error
}

func (e *DecryptError) Error() string {
	return fmt.Sprintf("decryption failure at height %d (%s pool): %v", e.Height, e.Pool, e.Err)
}

func (e *DecryptError) Unwrap() error { return e.Err }
