package scan

import (
	"context"
	"encoding/hex"

	"github.com/zcash/lightwalletd/walletrpc"
	"github.com/zecscope/zecscope-backend/internal/keys"
	"github.com/zecscope/zecscope-backend/internal/model"
	"github.com/zecscope/zecscope-backend/internal/notecrypt"
	"github.com/zecscope/zecscope-backend/pkg/workerpool"
)

// event is one qualifying receive or spend discovered in a block. The
// slice order produced by mergeBlock is the emission order.
type event struct {
	txIndex   int
	txid      string
	pool      model.Pool
	direction model.Direction
	account   keys.AccountID
	value     uint64
	memo      []byte
}

// decryptedOut is one successfully trial-decrypted output together
// with its eagerly derived nullifier.
type decryptedOut struct {
	index     int
	account   keys.AccountID
	note      *notecrypt.Note
	nullifier notecrypt.Nullifier
}

// txDecrypts holds the decryption results for one transaction, ordered
// by output/action index and then by account.
type txDecrypts struct {
	sapling []decryptedOut
	orchard []decryptedOut
}

// decryptBlock fans trial decryption out over the block's transactions.
// Each worker only reads the block and key snapshots and writes its own
// result slot, so completion order cannot influence the output.
func (s *Scanner) decryptBlock(
	ctx context.Context,
	block *walletrpc.CompactBlock,
	sk *keys.ScanningKeys,
	saplingStart, orchardStart uint64,
) ([]txDecrypts, error) {
	saplingPos := make([]uint64, len(block.Vtx))
	orchardPos := make([]uint64, len(block.Vtx))
	sp, op := saplingStart, orchardStart
	for i, tx := range block.Vtx {
		saplingPos[i], orchardPos[i] = sp, op
		sp += uint64(len(tx.Outputs))
		op += uint64(len(tx.Actions))
	}

	accounts := sk.Accounts()
	results := make([]txDecrypts, len(block.Vtx))
	indices := make([]int, len(block.Vtx))
	for i := range indices {
		indices[i] = i
	}

	err := workerpool.Process(ctx, s.workerCount, indices, func(_ context.Context, i int) error {
		tx := block.Vtx[i]

		for outIdx, out := range tx.Outputs {
			for _, id := range accounts {
				ak, _ := sk.Account(id)
				if ak.Sapling == nil {
					continue
				}
				note, err := s.engine.TrialDecryptSapling(*ak.Sapling, out.Cmu, out.EphemeralKey, out.Ciphertext)
				if err != nil {
					return &DecryptError{Height: block.Height, Pool: model.Sapling, Err: err}
				}
				if note == nil {
					continue
				}
				results[i].sapling = append(results[i].sapling, decryptedOut{
					index:     outIdx,
					account:   id,
					note:      note,
					nullifier: s.engine.SaplingNullifier(*ak.Sapling, note, saplingPos[i]+uint64(outIdx)),
				})
			}
		}

		for actIdx, action := range tx.Actions {
			for _, id := range accounts {
				ak, _ := sk.Account(id)
				if ak.Orchard == nil {
					continue
				}
				note, err := s.engine.TrialDecryptOrchard(*ak.Orchard, action.Cmx, action.EphemeralKey, action.Ciphertext)
				if err != nil {
					return &DecryptError{Height: block.Height, Pool: model.Orchard, Err: err}
				}
				if note == nil {
					continue
				}
				results[i].orchard = append(results[i].orchard, decryptedOut{
					index:     actIdx,
					account:   id,
					note:      note,
					nullifier: s.engine.OrchardNullifier(*ak.Orchard, note, orchardPos[i]+uint64(actIdx)),
				})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// mergeBlock is the single-writer pass over a block's collected
// decryption results. Transactions are walked in index order; within a
// transaction, Sapling spends are matched before Sapling receives, and
// each Orchard action evaluates its spend side before its output side
// so one action can report both directions. Change and zero-value
// notes never produce events. Nullifiers of every decrypted note are
// added after the owning transaction so later transactions in the same
// block, and later blocks, can detect the spend.
func mergeBlock(block *walletrpc.CompactBlock, results []txDecrypts, nfs *NullifierSet) []event {
	var events []event
	for i, tx := range block.Vtx {
		txid := hex.EncodeToString(tx.Hash)

		for _, spend := range tx.Spends {
			var nf notecrypt.Nullifier
			copy(nf[:], spend.Nf)
			origin, ok := nfs.lookup(nf)
			if !ok || origin.Pool != model.Sapling {
				continue
			}
			events = append(events, event{
				txIndex:   i,
				txid:      txid,
				pool:      model.Sapling,
				direction: model.Out,
				account:   origin.Account,
				value:     origin.Value,
			})
		}

		for _, d := range results[i].sapling {
			if d.note.Change || d.note.Value == 0 {
				continue
			}
			events = append(events, event{
				txIndex:   i,
				txid:      txid,
				pool:      model.Sapling,
				direction: model.In,
				account:   d.account,
				value:     d.note.Value,
				memo:      d.note.Memo,
			})
		}

		next := 0
		for actIdx, action := range tx.Actions {
			var nf notecrypt.Nullifier
			copy(nf[:], action.Nullifier)
			if origin, ok := nfs.lookup(nf); ok && origin.Pool == model.Orchard {
				events = append(events, event{
					txIndex:   i,
					txid:      txid,
					pool:      model.Orchard,
					direction: model.Out,
					account:   origin.Account,
					value:     origin.Value,
				})
			}
			for next < len(results[i].orchard) && results[i].orchard[next].index == actIdx {
				d := results[i].orchard[next]
				next++
				if d.note.Change || d.note.Value == 0 {
					continue
				}
				events = append(events, event{
					txIndex:   i,
					txid:      txid,
					pool:      model.Orchard,
					direction: model.In,
					account:   d.account,
					value:     d.note.Value,
					memo:      d.note.Memo,
				})
			}
		}

		for _, d := range results[i].sapling {
			nfs.add(d.nullifier, noteOrigin{Account: d.account, Value: d.note.Value, Pool: model.Sapling})
		}
		for _, d := range results[i].orchard {
			nfs.add(d.nullifier, noteOrigin{Account: d.account, Value: d.note.Value, Pool: model.Orchard})
		}
	}
	return events
}
