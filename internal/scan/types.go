package scan

import (
	"time"

	"github.com/zecscope/zecscope-backend/internal/keys"
	"github.com/zecscope/zecscope-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// KeyDeriver decodes a viewing-key string into per-pool scanning
	// keys for one account.
	KeyDeriver interface {
		DeriveKeys(viewingKey string, account keys.AccountID) (*keys.ScanningKeys, error)
	}

	// Metrics receives scan observations.
	Metrics interface {
		ObserveScan(err error, blocks int, started time.Time)
		ObserveBlock(err error, height uint64, started time.Time)
		ObserveNotes(pool model.Pool, direction model.Direction, count int)
	}
)
