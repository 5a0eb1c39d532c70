package pinview

import "errors"

// Sentinel errors for builder operations.
var (
	ErrInvalidDeclaration = errors.New("pinview: invalid declaration")
	ErrSignatureInvalid   = errors.New("pinview: signature verification failed")
	ErrDecryptFailed      = errors.New("pinview: state decryption failed")
	ErrInvalidFormat      = errors.New("pinview: invalid state format")
)

// IsInvalidDeclaration checks if err is (or wraps) a malformed style declaration.
func IsInvalidDeclaration(err error) bool {
	return errors.Is(err, ErrInvalidDeclaration)
}

// IsDecryptionError checks if err is a decryption or signature error.
func IsDecryptionError(err error) bool {
	return errors.Is(err, ErrDecryptFailed) || errors.Is(err, ErrSignatureInvalid)
}
