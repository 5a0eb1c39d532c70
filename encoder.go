package pinview

import (
	"errors"

	"github.com/pthm/pinview/lib/encoding"
)

// Encoder is an alias for encoding.Encoder for convenience.
type Encoder = encoding.Encoder

// NewEncoder creates a new state encoder with the given key.
func NewEncoder(key []byte) (*Encoder, error) {
	return encoding.NewEncoder(key)
}

// EncodeState serializes the session state (see Session.State), signed or,
// when sensitive, encrypted.
func EncodeState(enc *Encoder, s *Session, sensitive bool) (string, error) {
	return enc.Encode(s, sensitive)
}

// DecodeState reverses EncodeState. Errors are mapped to the pinview
// sentinel errors.
func DecodeState(enc *Encoder, encoded string, sensitive bool) (map[string]any, error) {
	state, err := enc.Decode(encoded, sensitive)
	return state, wrapEncodingError(err)
}

// wrapEncodingError wraps encoding package errors with pinview sentinel errors.
func wrapEncodingError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, encoding.ErrInvalidFormat) {
		return ErrInvalidFormat
	}
	if errors.Is(err, encoding.ErrSignatureInvalid) {
		return ErrSignatureInvalid
	}
	if errors.Is(err, encoding.ErrDecryptFailed) {
		return ErrDecryptFailed
	}
	return err
}
