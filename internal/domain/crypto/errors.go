package crypto

import "errors"

// Decryption failure taxonomy. Every failure is terminal to the call and
// recoverable by the caller; nothing is retried internally and none of these
// conditions may panic. Implementations wrap these sentinels with field and
// length context, so callers match them with errors.Is.
var (
	// ErrEmptyInput indicates a missing key string, IV string or ciphertext buffer.
	ErrEmptyInput = errors.New("empty input")

	// ErrUnalignedCiphertext indicates a ciphertext whose length is not a
	// multiple of the AES block size. CBC cannot decrypt such a buffer.
	ErrUnalignedCiphertext = errors.New("ciphertext length is not a multiple of the AES block size")

	// ErrBase64Decode indicates a malformed base64 key or IV string.
	ErrBase64Decode = errors.New("base64 decode failed")

	// ErrKeyLength indicates a key that decoded successfully but is not exactly 32 bytes.
	ErrKeyLength = errors.New("key length mismatch")

	// ErrIVLength indicates an IV that decoded successfully but is not exactly 16 bytes.
	ErrIVLength = errors.New("iv length mismatch")

	// ErrCipherInit indicates the AES cipher could not be initialized.
	ErrCipherInit = errors.New("cipher initialization failed")

	// ErrPaddingValidation indicates the decrypted buffer does not end in
	// valid PKCS7 padding. A wrong key, a wrong IV, corrupted ciphertext and
	// tampered ciphertext all surface here and are indistinguishable: CBC
	// carries no authentication tag.
	ErrPaddingValidation = errors.New("invalid PKCS7 padding")

	// ErrEmptyPlaintext indicates the ciphertext contained nothing but padding.
	ErrEmptyPlaintext = errors.New("plaintext is empty after removing padding")
)
