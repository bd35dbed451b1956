package scan

import (
	"bytes"
	"sort"

	"github.com/zecscope/zecscope-backend/internal/keys"
	"github.com/zecscope/zecscope-backend/internal/model"
	"github.com/zecscope/zecscope-backend/internal/notecrypt"
)

// noteOrigin records what was known when a note was first received.
// Compact spends carry only the nullifier, so the originally received
// value must be retained to price a later spend.
type noteOrigin struct {
	Account keys.AccountID
	Value   uint64
	Pool    model.Pool
}

// NullifierSet maps nullifiers of notes received by the scanned
// accounts to their origins. It grows monotonically within a scan and
// never shrinks.
type NullifierSet struct {
	entries map[notecrypt.Nullifier]noteOrigin
}

// NewNullifierSet returns an empty set.
func NewNullifierSet() *NullifierSet {
	return &NullifierSet{entries: make(map[notecrypt.Nullifier]noteOrigin)}
}

func (s *NullifierSet) add(nf notecrypt.Nullifier, origin noteOrigin) {
	if _, ok := s.entries[nf]; ok {
		return
	}
	s.entries[nf] = origin
}

func (s *NullifierSet) lookup(nf notecrypt.Nullifier) (noteOrigin, bool) {
	origin, ok := s.entries[nf]
	return origin, ok
}

// Len reports the number of tracked nullifiers.
func (s *NullifierSet) Len() int { return len(s.entries) }

// NullifierEntry is the exportable form of one tracked nullifier.
type NullifierEntry struct {
	Nullifier notecrypt.Nullifier `json:"nullifier"`
	Account   keys.AccountID      `json:"account"`
	Value     uint64              `json:"value"`
	Pool      model.Pool          `json:"pool"`
}

// Entries returns the set contents in nullifier order, suitable for
// persisting between chunked scans.
func (s *NullifierSet) Entries() []NullifierEntry {
	out := make([]NullifierEntry, 0, len(s.entries))
	for nf, origin := range s.entries {
		out = append(out, NullifierEntry{
			Nullifier: nf,
			Account:   origin.Account,
			Value:     origin.Value,
			Pool:      origin.Pool,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i].Nullifier[:], out[j].Nullifier[:]) < 0
	})
	return out
}

// NullifierSetFromEntries rebuilds a set previously exported with
// Entries.
func NullifierSetFromEntries(entries []NullifierEntry) *NullifierSet {
	s := NewNullifierSet()
	for _, e := range entries {
		s.add(e.Nullifier, noteOrigin{Account: e.Account, Value: e.Value, Pool: e.Pool})
	}
	return s
}
