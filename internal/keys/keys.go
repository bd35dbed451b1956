// Package keys decodes viewing-key strings into per-account, per-pool
// scanning key material.
//
// The string form is a bech32/bech32m container whose human-readable
// part selects the network and whose payload carries typed per-pool
// segments: each segment is a typecode byte, a length byte, and the
// incoming viewing key followed by the nullifier-deriving key. Unknown
// typecodes are skipped so future pools do not break decoding.
package keys

import (
	"fmt"
	"sort"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/zecscope/zecscope-backend/internal/model"
	"github.com/zecscope/zecscope-backend/internal/notecrypt"
)

// AccountID identifies one account within a scan call.
type AccountID uint32

// Pool segment typecodes inside the viewing-key container.
const (
	typecodeSapling = 0x02
	typecodeOrchard = 0x03

	poolSegmentLen = 2 * notecrypt.KeySize
)

// HRPs distinguishing key encodings per network.
const (
	hrpMainnet = "uview"
	hrpTestnet = "uviewtest"
)

// InvalidViewingKeyError reports an undecodable or wrong-network
// viewing key string. Non-retryable; the caller must fix the input.
type InvalidViewingKeyError struct {
	Reason string
}

func (e *InvalidViewingKeyError) Error() string {
	return "invalid viewing key: " + e.Reason
}

// AccountKeys holds the scanning keys one account derives from its
// viewing key. A nil pool key means the key does not enable that pool;
// such pools simply never match during scanning.
type AccountKeys struct {
	Sapling *notecrypt.ScanKey
	Orchard *notecrypt.ScanKey
}

// ScanningKeys maps accounts to their derived sub-keys. The base
// design derives exactly one account per request; the shape admits
// more without change.
type ScanningKeys struct {
	accounts map[AccountID]AccountKeys
}

// Accounts returns the account identifiers in ascending order.
func (k *ScanningKeys) Accounts() []AccountID {
	ids := make([]AccountID, 0, len(k.accounts))
	for id := range k.accounts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Account returns the derived keys for one account.
func (k *ScanningKeys) Account(id AccountID) (AccountKeys, bool) {
	ak, ok := k.accounts[id]
	return ak, ok
}

// Normalize trims surrounding whitespace and truncates at the first
// '|' separator; some tools append an auxiliary incoming-viewing-key
// segment after a pipe, and only the primary key is used.
func Normalize(viewingKey string) string {
	primary, _, _ := strings.Cut(strings.TrimSpace(viewingKey), "|")
	return primary
}

// Provider decodes viewing keys for one network.
type Provider struct {
	network model.Network
}

// NewProvider returns a Provider bound to the given network.
func NewProvider(network model.Network) *Provider {
	return &Provider{network: network}
}

// DeriveKeys normalizes and decodes a viewing-key string into the
// scanning keys for the given account.
func (p *Provider) DeriveKeys(viewingKey string, account AccountID) (*ScanningKeys, error) {
	normalized := Normalize(viewingKey)
	if normalized == "" {
		return nil, &InvalidViewingKeyError{Reason: "empty key string"}
	}

	hrp, data, err := bech32.DecodeNoLimit(normalized)
	if err != nil {
		return nil, &InvalidViewingKeyError{Reason: err.Error()}
	}
	if want := networkHRP(p.network); hrp != want {
		return nil, &InvalidViewingKeyError{
			Reason: fmt.Sprintf("prefix %q does not match network %s", hrp, p.network),
		}
	}

	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, &InvalidViewingKeyError{Reason: err.Error()}
	}

	ak, err := parseContainer(payload)
	if err != nil {
		return nil, err
	}
	return &ScanningKeys{accounts: map[AccountID]AccountKeys{account: ak}}, nil
}

func networkHRP(network model.Network) string {
	if network == model.Testnet {
		return hrpTestnet
	}
	return hrpMainnet
}

func parseContainer(payload []byte) (AccountKeys, error) {
	var ak AccountKeys
	for len(payload) > 0 {
		if len(payload) < 2 {
			return AccountKeys{}, &InvalidViewingKeyError{Reason: "truncated pool segment header"}
		}
		typecode, segLen := payload[0], int(payload[1])
		payload = payload[2:]
		if len(payload) < segLen {
			return AccountKeys{}, &InvalidViewingKeyError{
				Reason: fmt.Sprintf("pool segment 0x%02x truncated", typecode),
			}
		}
		segment := payload[:segLen]
		payload = payload[segLen:]

		switch typecode {
		case typecodeSapling, typecodeOrchard:
			if segLen != poolSegmentLen {
				return AccountKeys{}, &InvalidViewingKeyError{
					Reason: fmt.Sprintf("pool segment 0x%02x has %d bytes, want %d", typecode, segLen, poolSegmentLen),
				}
			}
			var key notecrypt.ScanKey
			copy(key.IVK[:], segment[:notecrypt.KeySize])
			copy(key.NK[:], segment[notecrypt.KeySize:])
			if typecode == typecodeSapling {
				ak.Sapling = &key
			} else {
				ak.Orchard = &key
			}
		default:
			// Unknown pool: skip for forward compatibility.
		}
	}

	if ak.Sapling == nil && ak.Orchard == nil {
		return AccountKeys{}, &InvalidViewingKeyError{Reason: "no supported pool segments"}
	}
	return ak, nil
}

// Encode builds the string form of a viewing key from per-pool
// scanning keys. It is the inverse of DeriveKeys and serves key
// tooling and test fixtures.
func Encode(network model.Network, ak AccountKeys) (string, error) {
	var payload []byte
	appendSegment := func(typecode byte, key *notecrypt.ScanKey) {
		if key == nil {
			return
		}
		payload = append(payload, typecode, poolSegmentLen)
		payload = append(payload, key.IVK[:]...)
		payload = append(payload, key.NK[:]...)
	}
	appendSegment(typecodeSapling, ak.Sapling)
	appendSegment(typecodeOrchard, ak.Orchard)
	if len(payload) == 0 {
		return "", &InvalidViewingKeyError{Reason: "no pool keys to encode"}
	}

	data, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("convert bits: %w", err)
	}
	encoded, err := bech32.EncodeM(networkHRP(network), data)
	if err != nil {
		return "", fmt.Errorf("bech32 encode: %w", err)
	}
	return encoded, nil
}
