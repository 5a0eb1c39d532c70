// Package encoding serializes render state for hand-off to the front end.
//
// A state snapshot maps builder ids to their property and config bags. It is
// packed with msgpack and then either signed, so the page can read it but
// not alter it, or sealed with AES-GCM when it must stay opaque. Posting the
// string back lets the server check that the store it seeded is unchanged.
package encoding

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Sentinel errors returned by Decode.
var (
	ErrInvalidFormat    = errors.New("encoding: invalid format")
	ErrSignatureInvalid = errors.New("encoding: signature verification failed")
	ErrDecryptFailed    = errors.New("encoding: decryption failed")
)

const (
	// tagSize is the length of the truncated HMAC-SHA256 tag of signed state.
	tagSize = 16
	// separator splits signed state into snapshot and tag.
	separator = "."
)

// sealContext is authenticated with every sealed snapshot, so a ciphertext
// made for another purpose under the same key does not open as state.
var sealContext = []byte("pinview render state")

var b64 = base64.RawURLEncoding

// Encoder packs render state snapshots. Signing and sealing use separate
// keys derived from the secret passed to NewEncoder.
type Encoder struct {
	signKey []byte
	aead    cipher.AEAD
}

// NewEncoder creates an encoder for secret, which may have any length.
func NewEncoder(secret []byte) (*Encoder, error) {
	master := sha256.Sum256(secret)
	block, err := aes.NewCipher(derive(master[:], "seal"))
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Encoder{signKey: derive(master[:], "sign"), aead: aead}, nil
}

// derive returns the 32 byte subkey of master for purpose.
func derive(master []byte, purpose string) []byte {
	mac := hmac.New(sha256.New, master)
	mac.Write([]byte("pinview/state/" + purpose))
	return mac.Sum(nil)
}

// Encodable is implemented by types that expose their state as a map.
type Encodable interface {
	StateEncode() map[string]any
}

// Encode packs v, an Encodable or a map[string]any. Sensitive state is
// sealed; other state is signed.
func (e *Encoder) Encode(v any, sensitive bool) (string, error) {
	state, err := snapshot(v)
	if err != nil {
		return "", err
	}
	packed, err := msgpack.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("encoding: pack state: %w", err)
	}
	if sensitive {
		return e.seal(packed)
	}
	return e.sign(packed), nil
}

// Decode unpacks a string made by Encode with the same sensitive flag.
func (e *Encoder) Decode(encoded string, sensitive bool) (map[string]any, error) {
	open := e.verify
	if sensitive {
		open = e.open
	}
	packed, err := open(encoded)
	if err != nil {
		return nil, err
	}

	var state map[string]any
	if err := msgpack.Unmarshal(packed, &state); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return state, nil
}

func snapshot(v any) (map[string]any, error) {
	switch s := v.(type) {
	case Encodable:
		return s.StateEncode(), nil
	case map[string]any:
		return s, nil
	}
	return nil, fmt.Errorf("encoding: %T does not implement Encodable", v)
}

// sign returns "snapshot.tag", both base64url without padding.
func (e *Encoder) sign(packed []byte) string {
	return b64.EncodeToString(packed) + separator + b64.EncodeToString(e.tag(packed))
}

func (e *Encoder) tag(packed []byte) []byte {
	mac := hmac.New(sha256.New, e.signKey)
	mac.Write(packed)
	return mac.Sum(nil)[:tagSize]
}

func (e *Encoder) verify(encoded string) ([]byte, error) {
	body, sig, ok := strings.Cut(encoded, separator)
	if !ok {
		return nil, fmt.Errorf("%w: missing signature", ErrInvalidFormat)
	}
	packed, err := segment(body)
	if err != nil {
		return nil, err
	}
	tag, err := segment(sig)
	if err != nil {
		return nil, err
	}
	if !hmac.Equal(tag, e.tag(packed)) {
		return nil, ErrSignatureInvalid
	}
	return packed, nil
}

// seal returns base64url(nonce || ciphertext).
func (e *Encoder) seal(packed []byte) (string, error) {
	nonce := make([]byte, e.aead.NonceSize(), e.aead.NonceSize()+len(packed)+e.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("encoding: nonce: %w", err)
	}
	return b64.EncodeToString(e.aead.Seal(nonce, nonce, packed, sealContext)), nil
}

func (e *Encoder) open(encoded string) ([]byte, error) {
	sealed, err := segment(encoded)
	if err != nil {
		return nil, err
	}
	n := e.aead.NonceSize()
	if len(sealed) < n {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrDecryptFailed)
	}
	packed, err := e.aead.Open(nil, sealed[:n], sealed[n:], sealContext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptFailed, err)
	}
	return packed, nil
}

func segment(s string) ([]byte, error) {
	data, err := b64.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return data, nil
}
