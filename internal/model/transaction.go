package model

import (
	"strconv"

	"github.com/zecscope/zecscope-backend/pkg/safe"
)

const zatoshisPerZec = 100_000_000

// ScanRequest asks for all transactions visible to one viewing key
// within an ordered range of compact blocks.
type ScanRequest struct {
	ViewingKey    string         `json:"viewing_key"`
	KeyID         string         `json:"key_id"`
	CompactBlocks []CompactBlock `json:"compact_blocks"`
}

// ZecTransaction is one discovered shielded transfer. Amounts are
// carried as exact zatoshi decimal strings; the ZEC conversion exists
// for display only.
type ZecTransaction struct {
	TxID      string    `json:"txid"`
	Height    uint64    `json:"height"`
	Time      int64     `json:"time"`
	AmountZat string    `json:"amountZat"`
	Direction Direction `json:"direction"`
	Memo      *string   `json:"memo"`
	KeyID     string    `json:"keyId"`
	Pool      Pool      `json:"pool"`
}

// AmountZatoshis parses the zatoshi amount, defaulting to 0 when the
// string is malformed.
func (t ZecTransaction) AmountZatoshis() int64 {
	v, err := strconv.ParseInt(t.AmountZat, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// AmountZec returns the display value in ZEC. Not for accounting.
func (t ZecTransaction) AmountZec() float64 {
	return float64(t.AmountZatoshis()) / zatoshisPerZec
}

// ScanSummary wraps a scan result with range statistics.
type ScanSummary struct {
	Transactions  []ZecTransaction `json:"transactions"`
	BlocksScanned int              `json:"blocksScanned"`
	StartHeight   uint64           `json:"startHeight"`
	EndHeight     uint64           `json:"endHeight"`
	SaplingCount  int              `json:"saplingCount"`
	OrchardCount  int              `json:"orchardCount"`
}

// NewScanSummary computes pool counts over the discovered transactions.
func NewScanSummary(txs []ZecTransaction, startHeight, endHeight uint64) ScanSummary {
	s := ScanSummary{
		Transactions: txs,
		StartHeight:  startHeight,
		EndHeight:    endHeight,
	}
	if endHeight >= startHeight {
		if n, err := safe.Int(endHeight - startHeight + 1); err == nil {
			s.BlocksScanned = n
		}
	}
	for _, tx := range txs {
		switch tx.Pool {
		case Sapling:
			s.SaplingCount++
		case Orchard:
			s.OrchardCount++
		}
	}
	return s
}
