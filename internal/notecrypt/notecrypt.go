// Package notecrypt is the boundary to the shielded-note primitives:
// trial decryption of compact outputs and nullifier derivation.
//
// The Engine interface is what the scanning engine programs against.
// The built-in engine implements the note-encryption shape of the
// protocol (BLAKE2b key derivation, ChaCha20-Poly1305 authenticated
// decryption, commitment recomputation) and doubles as the fixture
// generator for tests; a binding to an external conformant primitive
// library can be substituted without touching the scanner.
package notecrypt

// KeySize is the byte length of incoming viewing keys and
// nullifier-deriving keys.
const KeySize = 32

// Nullifier is the one-way value published when a note is spent.
type Nullifier [32]byte

// ScanKey holds the per-pool key material needed to detect notes: the
// incoming viewing key and the nullifier-deriving key.
type ScanKey struct {
	IVK [KeySize]byte
	NK  [KeySize]byte
}

// Note is a successfully decrypted shielded note. It exists only
// during per-output processing.
type Note struct {
	// Value in zatoshis.
	Value uint64
	// Rho seeds nullifier derivation for this note.
	Rho [32]byte
	// Recipient is the diversified address material the note was sent to.
	Recipient [RecipientSize]byte
	// Memo is the decrypted leading portion of the memo field.
	Memo []byte
	// Change marks a note recognized as value returned to the sending
	// account.
	Change bool
}

// Engine exposes the primitive capabilities the scanner needs. All
// methods are side-effect-free and deterministic.
//
// Trial decryption returns (nil, nil) when the candidate does not
// belong to the key; a non-nil error signals an internal primitive
// fault and is fatal to the surrounding scan.
type Engine interface {
	TrialDecryptSapling(key ScanKey, cmu, ephemeralKey, ciphertext []byte) (*Note, error)
	TrialDecryptOrchard(key ScanKey, cmx, ephemeralKey, ciphertext []byte) (*Note, error)
	SaplingNullifier(key ScanKey, note *Note, position uint64) Nullifier
	OrchardNullifier(key ScanKey, note *Note, position uint64) Nullifier
}
