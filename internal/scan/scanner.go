// Package scan implements the incremental shielded-pool scanning
// engine: it walks compact blocks in height order, validates chain
// continuity, trial-decrypts every Sapling output and Orchard action
// against the keys derived from a viewing key, matches spend
// nullifiers, and folds the survivors into normalized transaction
// records. Processing is a pure function of (blocks, keys, nullifier
// set); repeated scans of identical input produce identical output.
package scan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zcash/lightwalletd/walletrpc"
	"github.com/zecscope/zecscope-backend/internal/compact"
	"github.com/zecscope/zecscope-backend/internal/keys"
	"github.com/zecscope/zecscope-backend/internal/model"
	"github.com/zecscope/zecscope-backend/internal/notecrypt"
	"go.uber.org/zap"
)

const defaultWorkerCount = 4

// scanAccount is the single account derived per request. The key and
// nullifier plumbing is account-keyed so more can be added without
// reshaping the data model.
const scanAccount keys.AccountID = 0

// Scanner orchestrates scans over ordered compact block ranges.
type Scanner struct {
	logger      *zap.Logger
	engine      notecrypt.Engine
	deriver     KeyDeriver
	metrics     Metrics
	workerCount int
}

// NewScanner builds a Scanner for one network.
func NewScanner(
	network model.Network,
	engine notecrypt.Engine,
	metrics Metrics,
	workerCount int,
	logger *zap.Logger,
) (*Scanner, error) {
	if engine == nil {
		return nil, errors.New("note decryption engine is required")
	}
	if metrics == nil {
		return nil, errors.New("scan metrics is required")
	}
	if workerCount <= 0 {
		workerCount = defaultWorkerCount
	}
	return &Scanner{
		logger:      logger.With(zap.String("network", string(network))),
		engine:      engine,
		deriver:     keys.NewProvider(network),
		metrics:     metrics,
		workerCount: workerCount,
	}, nil
}

// State carries continuity and nullifier knowledge across chunked
// scans of a long range. A fresh State starts a scan from nothing.
type State struct {
	Continuity *ContinuityState
	Nullifiers *NullifierSet
}

// NewState returns an empty scan state.
func NewState() *State {
	return &State{Nullifiers: NewNullifierSet()}
}

// Scan discovers every transaction visible to the request's viewing
// key in the supplied blocks. The result is complete or the call fails
// on the first unrecoverable error; there is no partial return.
func (s *Scanner) Scan(ctx context.Context, req *model.ScanRequest) ([]model.ZecTransaction, error) {
	return s.ScanWithState(ctx, req, NewState())
}

// ScanWithState is Scan with caller-supplied continuity and nullifier
// state, updated in place so it can be persisted and re-supplied for
// the next chunk.
func (s *Scanner) ScanWithState(ctx context.Context, req *model.ScanRequest, state *State) ([]model.ZecTransaction, error) {
	started := time.Now()
	txs, err := s.scan(ctx, req, state)
	s.metrics.ObserveScan(err, len(req.CompactBlocks), started)
	return txs, err
}

// ScanSummary wraps Scan with range statistics.
func (s *Scanner) ScanSummary(ctx context.Context, req *model.ScanRequest) (*model.ScanSummary, error) {
	txs, err := s.Scan(ctx, req)
	if err != nil {
		return nil, err
	}
	n := len(req.CompactBlocks)
	if n == 0 {
		return &model.ScanSummary{Transactions: txs}, nil
	}
	summary := model.NewScanSummary(txs, req.CompactBlocks[0].Height, req.CompactBlocks[n-1].Height)
	return &summary, nil
}

func (s *Scanner) scan(ctx context.Context, req *model.ScanRequest, state *State) ([]model.ZecTransaction, error) {
	sk, err := s.deriver.DeriveKeys(req.ViewingKey, scanAccount)
	if err != nil {
		return nil, fmt.Errorf("derive scanning keys: %w", err)
	}

	tracker := &continuityTracker{state: state.Continuity}
	nfs := state.Nullifiers
	if nfs == nil {
		nfs = NewNullifierSet()
		state.Nullifiers = nfs
	}

	records := make([]model.ZecTransaction, 0)
	for i := range req.CompactBlocks {
		// Cancellation is honored between blocks only.
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		blockStarted := time.Now()
		block, err := compact.BlockFromModel(req.CompactBlocks[i])
		if err == nil {
			var blockRecords []model.ZecTransaction
			blockRecords, err = s.scanBlock(ctx, block, sk, tracker, nfs, req.KeyID)
			records = append(records, blockRecords...)
		}
		s.metrics.ObserveBlock(err, req.CompactBlocks[i].Height, blockStarted)
		if err != nil {
			return nil, err
		}
	}

	state.Continuity = tracker.state
	s.logger.Debug("scan complete",
		zap.Int("blocks", len(req.CompactBlocks)),
		zap.Int("transactions", len(records)),
		zap.Int("nullifiers", nfs.Len()),
	)
	return records, nil
}

func (s *Scanner) scanBlock(
	ctx context.Context,
	block *walletrpc.CompactBlock,
	sk *keys.ScanningKeys,
	tracker *continuityTracker,
	nfs *NullifierSet,
	keyID string,
) ([]model.ZecTransaction, error) {
	saplingStart, orchardStart, err := tracker.advance(block)
	if err != nil {
		return nil, err
	}

	results, err := s.decryptBlock(ctx, block, sk, saplingStart, orchardStart)
	if err != nil {
		return nil, err
	}
	events := mergeBlock(block, results, nfs)
	s.observeNotes(events)

	saplingEnd, orchardEnd := saplingStart, orchardStart
	for _, tx := range block.Vtx {
		saplingEnd += uint64(len(tx.Outputs))
		orchardEnd += uint64(len(tx.Actions))
	}
	tracker.commit(block, saplingEnd, orchardEnd)

	return recordsFromEvents(events, block.Height, block.Time, keyID), nil
}

func (s *Scanner) observeNotes(events []event) {
	counts := map[model.Pool]map[model.Direction]int{
		model.Sapling: {},
		model.Orchard: {},
	}
	for _, ev := range events {
		counts[ev.pool][ev.direction]++
	}
	for _, pool := range []model.Pool{model.Sapling, model.Orchard} {
		for _, direction := range []model.Direction{model.In, model.Out} {
			if n := counts[pool][direction]; n > 0 {
				s.metrics.ObserveNotes(pool, direction, n)
			}
		}
	}
}
