package notecrypt

import (
	"bytes"
	"crypto/subtle"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// RecipientSize is the diversified address material length carried
	// in the note plaintext.
	RecipientSize = 11

	plaintextVersion = 1
	flagChange       = 1 << 0

	// plaintext layout: version(1) flags(1) value(8) rho(32) recipient(11) memo(*)
	notePrefixLen = 1 + 1 + 8 + 32 + RecipientSize
)

// Domain separation prefixes, one set per pool.
type poolDomain struct {
	kdf        string
	commitment string
	nullifier  string
}

var (
	saplingDomain = poolDomain{
		kdf:        "ZecScope_SaplingKDF",
		commitment: "ZecScope_SaplingCmu",
		nullifier:  "ZecScope_SaplingNf",
	}
	orchardDomain = poolDomain{
		kdf:        "ZecScope_OrchardKDF",
		commitment: "ZecScope_OrchardCmx",
		nullifier:  "ZecScope_OrchardNf",
	}
)

type engine struct{}

// NewEngine returns the built-in primitive engine.
func NewEngine() Engine { return engine{} }

func (engine) TrialDecryptSapling(key ScanKey, cmu, ephemeralKey, ciphertext []byte) (*Note, error) {
	return trialDecrypt(saplingDomain, key, cmu, ephemeralKey, ciphertext)
}

func (engine) TrialDecryptOrchard(key ScanKey, cmx, ephemeralKey, ciphertext []byte) (*Note, error) {
	return trialDecrypt(orchardDomain, key, cmx, ephemeralKey, ciphertext)
}

func (engine) SaplingNullifier(key ScanKey, note *Note, position uint64) Nullifier {
	return deriveNullifier(saplingDomain, key, note, position)
}

func (engine) OrchardNullifier(key ScanKey, note *Note, position uint64) Nullifier {
	return deriveNullifier(orchardDomain, key, note, position)
}

// trialDecrypt attempts to open one compact output against one key.
// A failed authentication or commitment mismatch means the output does
// not belong to the key and is reported as (nil, nil). Work done per
// candidate does not depend on where the attempt fails.
func trialDecrypt(domain poolDomain, key ScanKey, commitment, ephemeralKey, ciphertext []byte) (*Note, error) {
	if len(ephemeralKey) != 32 {
		return nil, fmt.Errorf("ephemeral key length %d", len(ephemeralKey))
	}
	if len(commitment) != 32 {
		return nil, fmt.Errorf("commitment length %d", len(commitment))
	}

	aead, err := chacha20poly1305.New(sharedKey(domain, key.IVK, ephemeralKey))
	if err != nil {
		return nil, fmt.Errorf("aead init: %w", err)
	}

	nonce := make([]byte, chacha20poly1305.NonceSize)
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		// Authentication failure: not for this key.
		return nil, nil
	}
	if len(plaintext) < notePrefixLen || plaintext[0] != plaintextVersion {
		return nil, nil
	}

	want := noteCommitment(domain, plaintext)
	if subtle.ConstantTimeCompare(commitment, want[:]) != 1 {
		return nil, nil
	}

	note := &Note{
		Change: plaintext[1]&flagChange != 0,
		Value:  binary.LittleEndian.Uint64(plaintext[2:10]),
		Memo:   bytes.Clone(plaintext[notePrefixLen:]),
	}
	copy(note.Rho[:], plaintext[10:42])
	copy(note.Recipient[:], plaintext[42:notePrefixLen])
	return note, nil
}

// SealSapling encrypts a note to the given Sapling key, returning the
// commitment and ciphertext of the resulting compact output. It is the
// inverse of trial decryption and backs fixture construction.
func SealSapling(key ScanKey, ephemeralKey []byte, note *Note) (commitment, ciphertext []byte, err error) {
	return seal(saplingDomain, key, ephemeralKey, note)
}

// SealOrchard is the Orchard counterpart of SealSapling.
func SealOrchard(key ScanKey, ephemeralKey []byte, note *Note) (commitment, ciphertext []byte, err error) {
	return seal(orchardDomain, key, ephemeralKey, note)
}

func seal(domain poolDomain, key ScanKey, ephemeralKey []byte, note *Note) (commitment, ciphertext []byte, err error) {
	if len(ephemeralKey) != 32 {
		return nil, nil, fmt.Errorf("ephemeral key length %d", len(ephemeralKey))
	}

	plaintext := make([]byte, notePrefixLen, notePrefixLen+len(note.Memo))
	plaintext[0] = plaintextVersion
	if note.Change {
		plaintext[1] |= flagChange
	}
	binary.LittleEndian.PutUint64(plaintext[2:10], note.Value)
	copy(plaintext[10:42], note.Rho[:])
	copy(plaintext[42:notePrefixLen], note.Recipient[:])
	plaintext = append(plaintext, note.Memo...)

	aead, err := chacha20poly1305.New(sharedKey(domain, key.IVK, ephemeralKey))
	if err != nil {
		return nil, nil, fmt.Errorf("aead init: %w", err)
	}
	nonce := make([]byte, chacha20poly1305.NonceSize)
	cm := noteCommitment(domain, plaintext)
	return cm[:], aead.Seal(nil, nonce, plaintext, nil), nil
}

func sharedKey(domain poolDomain, ivk [KeySize]byte, ephemeralKey []byte) []byte {
	h, _ := blake2b.New256(nil)
	h.Write([]byte(domain.kdf))
	h.Write(ivk[:])
	h.Write(ephemeralKey)
	return h.Sum(nil)
}

func noteCommitment(domain poolDomain, plaintext []byte) [32]byte {
	h, _ := blake2b.New256(nil)
	h.Write([]byte(domain.commitment))
	h.Write(plaintext[:notePrefixLen])
	var out [32]byte
	h.Sum(out[:0])
	return out
}

func deriveNullifier(domain poolDomain, key ScanKey, note *Note, position uint64) Nullifier {
	var pos [8]byte
	binary.LittleEndian.PutUint64(pos[:], position)

	h, _ := blake2b.New256(nil)
	h.Write([]byte(domain.nullifier))
	h.Write(key.NK[:])
	h.Write(note.Rho[:])
	h.Write(pos[:])

	var nf Nullifier
	h.Sum(nf[:0])
	return nf
}
