//go:build unit
// +build unit

package cryptography

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	mathrand "math/rand"
	"testing"

	cryptoDomain "github.com/tankan/image-aes-service/internal/domain/crypto"
	pkgTesting "github.com/tankan/image-aes-service/internal/pkg/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDecryptor(t *testing.T) cryptoDomain.ImageDecryptor {
	t.Helper()
	logger := pkgTesting.SetupTestLogger(t)
	decryptor, err := NewAESCBCDecryptor(logger)
	require.NoError(t, err)
	return decryptor
}

// randomBytes returns n cryptographically random bytes.
func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	buf := make([]byte, n)
	_, err := rand.Read(buf)
	require.NoError(t, err)
	return buf
}

// encryptAESCBC is the test-side inverse of the decryptor: PKCS7 padding
// followed by AES-CBC encryption with the given raw key and IV.
func encryptAESCBC(t *testing.T, plaintext, key, iv []byte) []byte {
	t.Helper()

	block, err := aes.NewCipher(key)
	require.NoError(t, err)

	padLen := aes.BlockSize - len(plaintext)%aes.BlockSize
	padded := make([]byte, len(plaintext)+padLen)
	copy(padded, plaintext)
	for i := len(plaintext); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}

	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)
	return ciphertext
}

func b64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

func TestAESCBCDecryptor_RoundTrip(t *testing.T) {
	decryptor := setupDecryptor(t)

	key := randomBytes(t, 32)
	iv := randomBytes(t, 16)

	plaintexts := [][]byte{
		[]byte("a"),
		[]byte("fifteen bytes.."),
		[]byte("exactly sixteen!"),
		[]byte("seventeen bytes.."),
		randomBytes(t, 4096),
	}

	for _, plaintext := range plaintexts {
		ciphertext := encryptAESCBC(t, plaintext, key, iv)

		decrypted, err := decryptor.Decrypt(ciphertext, b64(key), b64(iv))
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	}
}

func TestAESCBCDecryptor_DoesNotMutateCiphertext(t *testing.T) {
	decryptor := setupDecryptor(t)

	key := randomBytes(t, 32)
	iv := randomBytes(t, 16)
	ciphertext := encryptAESCBC(t, []byte("immutability check"), key, iv)

	original := bytes.Clone(ciphertext)
	_, err := decryptor.Decrypt(ciphertext, b64(key), b64(iv))
	require.NoError(t, err)
	assert.Equal(t, original, ciphertext)
}

func TestAESCBCDecryptor_InputValidation(t *testing.T) {
	decryptor := setupDecryptor(t)

	key := b64(randomBytes(t, 32))
	iv := b64(randomBytes(t, 16))
	ciphertext := randomBytes(t, 32)

	t.Run("EmptyKey", func(t *testing.T) {
		_, err := decryptor.Decrypt(ciphertext, "", iv)
		assert.ErrorIs(t, err, cryptoDomain.ErrEmptyInput)
	})

	t.Run("EmptyIV", func(t *testing.T) {
		_, err := decryptor.Decrypt(ciphertext, key, "")
		assert.ErrorIs(t, err, cryptoDomain.ErrEmptyInput)
	})

	t.Run("EmptyCiphertext", func(t *testing.T) {
		_, err := decryptor.Decrypt(nil, key, iv)
		assert.ErrorIs(t, err, cryptoDomain.ErrEmptyInput)
	})

	t.Run("UnalignedCiphertext", func(t *testing.T) {
		for _, size := range []int{1, 15, 17, 31} {
			_, err := decryptor.Decrypt(randomBytes(t, size), key, iv)
			assert.ErrorIs(t, err, cryptoDomain.ErrUnalignedCiphertext, "size %d", size)
		}
	})
}

func TestAESCBCDecryptor_KeyAndIVDecoding(t *testing.T) {
	decryptor := setupDecryptor(t)

	validKey := b64(randomBytes(t, 32))
	validIV := b64(randomBytes(t, 16))
	ciphertext := randomBytes(t, 32)

	t.Run("MalformedBase64Key", func(t *testing.T) {
		_, err := decryptor.Decrypt(ciphertext, "not-base64!!", validIV)
		assert.ErrorIs(t, err, cryptoDomain.ErrBase64Decode)
		assert.Contains(t, err.Error(), "key")
	})

	t.Run("MalformedBase64IV", func(t *testing.T) {
		_, err := decryptor.Decrypt(ciphertext, validKey, "not-base64!!")
		assert.ErrorIs(t, err, cryptoDomain.ErrBase64Decode)
		assert.Contains(t, err.Error(), "iv")
	})

	t.Run("KeyLengthMismatch", func(t *testing.T) {
		for _, size := range []int{31, 33} {
			_, err := decryptor.Decrypt(ciphertext, b64(randomBytes(t, size)), validIV)
			assert.ErrorIs(t, err, cryptoDomain.ErrKeyLength, "key size %d", size)
		}
	})

	t.Run("IVLengthMismatch", func(t *testing.T) {
		for _, size := range []int{15, 17} {
			_, err := decryptor.Decrypt(ciphertext, validKey, b64(randomBytes(t, size)))
			assert.ErrorIs(t, err, cryptoDomain.ErrIVLength, "iv size %d", size)
		}
	})
}

func TestAESCBCDecryptor_TamperedFinalBlock(t *testing.T) {
	decryptor := setupDecryptor(t)

	key := randomBytes(t, 32)
	iv := randomBytes(t, 16)

	// A wrong key turns the final block into effectively random bytes, which
	// almost never form valid PKCS7 padding. The outcome is probabilistic, so
	// count failures over repeated trials instead of asserting each one.
	const trials = 200
	failures := 0
	for i := 0; i < trials; i++ {
		ciphertext := encryptAESCBC(t, randomBytes(t, 100), key, iv)

		lastBlock := len(ciphertext) - aes.BlockSize
		pos := lastBlock + mathrand.Intn(aes.BlockSize)
		ciphertext[pos] ^= byte(1 + mathrand.Intn(255))

		_, err := decryptor.Decrypt(ciphertext, b64(key), b64(iv))
		if err != nil {
			assert.ErrorIs(t, err, cryptoDomain.ErrPaddingValidation)
			failures++
		}
	}

	assert.GreaterOrEqual(t, failures, trials*9/10, "tampering the final block should almost always break padding")
}

func TestAESCBCDecryptor_WrongKey(t *testing.T) {
	decryptor := setupDecryptor(t)

	key := randomBytes(t, 32)
	iv := randomBytes(t, 16)
	plaintext := []byte("decrypting this with another key must not succeed silently")
	ciphertext := encryptAESCBC(t, plaintext, key, iv)

	wrongKey := randomBytes(t, 32)
	decrypted, err := decryptor.Decrypt(ciphertext, b64(wrongKey), b64(iv))

	if err == nil {
		assert.NotEqual(t, plaintext, decrypted, "decryption with wrong key should not return original message")
	} else {
		assert.ErrorIs(t, err, cryptoDomain.ErrPaddingValidation)
	}
}

func TestAESCBCDecryptor_EmptyPlaintextAfterUnpad(t *testing.T) {
	decryptor := setupDecryptor(t)

	key := randomBytes(t, 32)
	iv := randomBytes(t, 16)

	// Encrypting an empty payload yields one block of pure padding
	ciphertext := encryptAESCBC(t, nil, key, iv)

	_, err := decryptor.Decrypt(ciphertext, b64(key), b64(iv))
	assert.ErrorIs(t, err, cryptoDomain.ErrEmptyPlaintext)
}

func TestAESCBCDecryptor_DecryptWithProgress(t *testing.T) {
	decryptor := setupDecryptor(t)

	key := randomBytes(t, 32)
	iv := randomBytes(t, 16)
	plaintext := []byte("progress is reported once, after completion")
	ciphertext := encryptAESCBC(t, plaintext, key, iv)

	t.Run("CallbackInvokedOnceWith100", func(t *testing.T) {
		var reported []float64
		decrypted, err := decryptor.DecryptWithProgress(ciphertext, b64(key), b64(iv), func(percent float64) {
			reported = append(reported, percent)
		})
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
		assert.Equal(t, []float64{100}, reported)
	})

	t.Run("NilCallback", func(t *testing.T) {
		decrypted, err := decryptor.DecryptWithProgress(ciphertext, b64(key), b64(iv), nil)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	})

	t.Run("NoCallbackOnFailure", func(t *testing.T) {
		called := false
		_, err := decryptor.DecryptWithProgress(ciphertext, "", b64(iv), func(float64) {
			called = true
		})
		assert.Error(t, err)
		assert.False(t, called)
	})
}

func TestAESCBCDecryptor_Info(t *testing.T) {
	decryptor := setupDecryptor(t)

	info := decryptor.Info()
	assert.Equal(t, "AES-256-CBC", info.Algorithm)
	assert.Equal(t, "1.0.0", info.Version)
	assert.Greater(t, info.MemoryPages, uint64(0))
	assert.NoError(t, info.Validate())
}
