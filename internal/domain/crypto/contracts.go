package crypto

// ImageDecryptor handles AES-256-CBC decryption of encrypted image buffers.
// The key and IV arrive base64 encoded (RFC 4648, with padding) and must
// decode to exactly 32 and 16 bytes. Implementations never mutate the
// caller's ciphertext buffer and never retain or log key or IV material.
type ImageDecryptor interface {
	// Decrypt validates the inputs, decodes the key and IV, runs CBC
	// decryption and strips PKCS7 padding. Returns the exact plaintext or
	// one of the sentinel errors defined in this package.
	Decrypt(ciphertext []byte, keyBase64, ivBase64 string) ([]byte, error)

	// DecryptWithProgress performs the same single-shot decryption as
	// Decrypt. CBC decryption needs the full ciphertext present, so there is
	// no real incremental progress to report; the callback, if non-nil, is
	// invoked once with 100 after the pipeline completes.
	DecryptWithProgress(ciphertext []byte, keyBase64, ivBase64 string, onProgress func(percent float64)) ([]byte, error)

	// Info reports static capability facts about the decryptor. It has no
	// side effects and no bearing on correctness.
	Info() DecryptorInfo
}
