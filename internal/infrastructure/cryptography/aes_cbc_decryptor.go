package cryptography

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"
	"os"
	"runtime"

	cryptoDomain "github.com/tankan/image-aes-service/internal/domain/crypto"
	"github.com/tankan/image-aes-service/internal/pkg/logger"
)

// aesCBCDecryptor struct that implements the ImageDecryptor interface
type aesCBCDecryptor struct {
	logger logger.Logger
}

// NewAESCBCDecryptor creates and returns a new instance of aesCBCDecryptor
func NewAESCBCDecryptor(logger logger.Logger) (cryptoDomain.ImageDecryptor, error) {
	return &aesCBCDecryptor{
		logger: logger,
	}, nil
}

// Decrypt validates the inputs, decodes the base64 key and IV, runs CBC
// decryption and strips PKCS7 padding. The caller's ciphertext buffer is
// never mutated; decryption happens on an owned copy.
func (d *aesCBCDecryptor) Decrypt(ciphertext []byte, keyBase64, ivBase64 string) ([]byte, error) {
	if err := validateInputs(ciphertext, keyBase64, ivBase64); err != nil {
		return nil, err
	}

	key, iv, err := decodeKeyAndIV(keyBase64, ivBase64)
	if err != nil {
		return nil, err
	}

	decrypted, err := decryptBlocks(ciphertext, key, iv)
	if err != nil {
		return nil, err
	}

	plaintext, err := removePadding(decrypted)
	if err != nil {
		return nil, err
	}

	d.logger.Info("AES-256-CBC decryption succeeded, plaintext size ", len(plaintext))
	return plaintext, nil
}

// DecryptWithProgress performs the same single-shot decryption as Decrypt.
// CBC needs the full ciphertext before any block can be verified, so the
// callback fires exactly once, after completion.
func (d *aesCBCDecryptor) DecryptWithProgress(ciphertext []byte, keyBase64, ivBase64 string, onProgress func(percent float64)) ([]byte, error) {
	plaintext, err := d.Decrypt(ciphertext, keyBase64, ivBase64)
	if err != nil {
		return nil, err
	}

	if onProgress != nil {
		onProgress(100)
	}

	return plaintext, nil
}

// Info reports static capability facts about the decryptor.
func (d *aesCBCDecryptor) Info() cryptoDomain.DecryptorInfo {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return cryptoDomain.DecryptorInfo{
		Algorithm:   cryptoDomain.AlgorithmName,
		Version:     cryptoDomain.Version,
		MemoryPages: memStats.Sys / uint64(os.Getpagesize()),
	}
}

// validateInputs rejects malformed inputs before any decoding or cipher work.
// The check order is fixed: key, IV, empty ciphertext, alignment.
func validateInputs(ciphertext []byte, keyBase64, ivBase64 string) error {
	if keyBase64 == "" {
		return fmt.Errorf("%w: key", cryptoDomain.ErrEmptyInput)
	}
	if ivBase64 == "" {
		return fmt.Errorf("%w: iv", cryptoDomain.ErrEmptyInput)
	}
	if len(ciphertext) == 0 {
		return fmt.Errorf("%w: ciphertext", cryptoDomain.ErrEmptyInput)
	}
	if len(ciphertext)%cryptoDomain.BlockSize != 0 {
		return fmt.Errorf("%w: got %d bytes", cryptoDomain.ErrUnalignedCiphertext, len(ciphertext))
	}
	return nil
}

// decodeKeyAndIV decodes the two base64 strings independently and re-validates
// the exact decoded lengths. A decoded-but-wrong-length key or IV is a
// distinct failure from a decode failure.
func decodeKeyAndIV(keyBase64, ivBase64 string) ([]byte, []byte, error) {
	key, err := base64.StdEncoding.DecodeString(keyBase64)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: key: %v", cryptoDomain.ErrBase64Decode, err)
	}

	iv, err := base64.StdEncoding.DecodeString(ivBase64)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: iv: %v", cryptoDomain.ErrBase64Decode, err)
	}

	if len(key) != cryptoDomain.KeySize {
		return nil, nil, fmt.Errorf("%w: expected %d bytes, got %d", cryptoDomain.ErrKeyLength, cryptoDomain.KeySize, len(key))
	}
	if len(iv) != cryptoDomain.IVSize {
		return nil, nil, fmt.Errorf("%w: expected %d bytes, got %d", cryptoDomain.ErrIVLength, cryptoDomain.IVSize, len(iv))
	}

	return key, iv, nil
}

// decryptBlocks runs AES-256-CBC over the ciphertext into a fresh buffer of
// the same length, padding still attached. Blocks are processed strictly in
// order; each one depends on the previous ciphertext block.
func decryptBlocks(ciphertext, key, iv []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrCipherInit, err)
	}

	// Re-validated here so the taxonomy stays meaningful if called directly
	if len(iv) != block.BlockSize() {
		return nil, fmt.Errorf("%w: iv must be %d bytes, got %d", cryptoDomain.ErrCipherInit, block.BlockSize(), len(iv))
	}
	if len(ciphertext)%block.BlockSize() != 0 {
		return nil, fmt.Errorf("%w: got %d bytes", cryptoDomain.ErrUnalignedCiphertext, len(ciphertext))
	}

	decrypted := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(decrypted, ciphertext)

	return decrypted, nil
}

// removePadding validates and strips PKCS7 padding from the decrypted buffer.
// A padding failure is the principal signal that the key or IV was wrong or
// the ciphertext was corrupted; the causes cannot be told apart.
func removePadding(decrypted []byte) ([]byte, error) {
	if len(decrypted) == 0 {
		return nil, fmt.Errorf("%w: decrypted buffer is empty", cryptoDomain.ErrPaddingValidation)
	}

	padLen := int(decrypted[len(decrypted)-1])
	if padLen < 1 || padLen > cryptoDomain.BlockSize {
		return nil, fmt.Errorf("%w: padding length %d out of range", cryptoDomain.ErrPaddingValidation, padLen)
	}
	if padLen > len(decrypted) {
		return nil, fmt.Errorf("%w: padding length %d exceeds buffer size %d", cryptoDomain.ErrPaddingValidation, padLen, len(decrypted))
	}

	for _, b := range decrypted[len(decrypted)-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("%w: inconsistent padding bytes", cryptoDomain.ErrPaddingValidation)
		}
	}

	plaintext := decrypted[:len(decrypted)-padLen]
	if len(plaintext) == 0 {
		return nil, cryptoDomain.ErrEmptyPlaintext
	}

	return plaintext, nil
}
