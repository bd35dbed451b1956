package scan

import (
	"bytes"
	"strconv"
	"unicode/utf8"

	"github.com/zecscope/zecscope-backend/internal/model"
)

// recordsFromEvents normalizes a block's events into output records.
// Each qualifying output or spend becomes its own record; events of
// the same direction within one transaction are not collapsed.
func recordsFromEvents(events []event, height uint64, blockTime uint32, keyID string) []model.ZecTransaction {
	records := make([]model.ZecTransaction, 0, len(events))
	for _, ev := range events {
		records = append(records, model.ZecTransaction{
			TxID:      ev.txid,
			Height:    height,
			Time:      int64(blockTime),
			AmountZat: strconv.FormatUint(ev.value, 10),
			Direction: ev.direction,
			Memo:      decodeMemo(ev.memo),
			KeyID:     keyID,
			Pool:      ev.pool,
		})
	}
	return records
}

// decodeMemo returns the memo as text when it carries valid UTF-8
// after stripping zero padding, nil otherwise.
func decodeMemo(memo []byte) *string {
	trimmed := bytes.TrimRight(memo, "\x00")
	if len(trimmed) == 0 || !utf8.Valid(trimmed) {
		return nil
	}
	s := string(trimmed)
	return &s
}
