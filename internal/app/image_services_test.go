//go:build unit
// +build unit

package app

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"testing"

	cryptoDomain "github.com/tankan/image-aes-service/internal/domain/crypto"
	"github.com/tankan/image-aes-service/internal/domain/images"
	"github.com/tankan/image-aes-service/internal/infrastructure/cryptography"
	"github.com/tankan/image-aes-service/internal/infrastructure/imaging"
	pkgTesting "github.com/tankan/image-aes-service/internal/pkg/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) images.ImageDecryptionService {
	t.Helper()

	logger := pkgTesting.SetupTestLogger(t)

	decryptor, err := cryptography.NewAESCBCDecryptor(logger)
	require.NoError(t, err)

	sniffer, err := imaging.NewFormatSniffer(logger)
	require.NoError(t, err)

	service, err := NewImageDecryptionService(decryptor, sniffer, logger)
	require.NoError(t, err)

	return service
}

// encryptFixture encrypts plaintext with AES-256-CBC and PKCS7 padding and
// returns the ciphertext plus the base64 key and IV.
func encryptFixture(t *testing.T, plaintext []byte) ([]byte, string, string) {
	t.Helper()

	key := make([]byte, 32)
	iv := make([]byte, 16)
	_, err := rand.Read(key)
	require.NoError(t, err)
	_, err = rand.Read(iv)
	require.NoError(t, err)

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

	return ciphertext, base64.StdEncoding.EncodeToString(key), base64.StdEncoding.EncodeToString(iv)
}

func TestImageDecryptionService_Decrypt(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	t.Run("DecryptsAndClassifiesJPEG", func(t *testing.T) {
		plaintext := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46, 0x49, 0x46}
		ciphertext, key, iv := encryptFixture(t, plaintext)

		decrypted, result, err := service.Decrypt(ctx, ciphertext, key, iv)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
		assert.Equal(t, images.ImageTypeJPEG, result.Type)
		assert.True(t, result.IsValid)
		assert.Equal(t, uint64(len(plaintext)), result.SizeBytes)
	})

	t.Run("DecryptsUnknownPayload", func(t *testing.T) {
		plaintext := []byte("not an image at all, still decryptable")
		ciphertext, key, iv := encryptFixture(t, plaintext)

		decrypted, result, err := service.Decrypt(ctx, ciphertext, key, iv)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
		assert.Equal(t, images.ImageTypeUnknown, result.Type)
		assert.False(t, result.IsValid)
	})

	t.Run("PropagatesDecryptionErrors", func(t *testing.T) {
		ciphertext, _, iv := encryptFixture(t, []byte("payload"))

		_, _, err := service.Decrypt(ctx, ciphertext, "", iv)
		assert.ErrorIs(t, err, cryptoDomain.ErrEmptyInput)
	})
}

func TestImageDecryptionService_DecryptWithProgress(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	plaintext := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x01}
	ciphertext, key, iv := encryptFixture(t, plaintext)

	var reported []float64
	decrypted, result, err := service.DecryptWithProgress(ctx, ciphertext, key, iv, func(percent float64) {
		reported = append(reported, percent)
	})
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
	assert.Equal(t, images.ImageTypePNG, result.Type)
	assert.Equal(t, []float64{100}, reported)
}

func TestImageDecryptionService_Classify(t *testing.T) {
	service := setupService(t)

	result := service.Classify(context.Background(), []byte("BM......bitmap"))
	assert.Equal(t, images.ImageTypeBMP, result.Type)
	assert.True(t, result.IsValid)
}

func TestImageDecryptionService_Info(t *testing.T) {
	service := setupService(t)

	info := service.Info(context.Background())
	assert.Equal(t, cryptoDomain.AlgorithmName, info.Algorithm)
	assert.Equal(t, cryptoDomain.Version, info.Version)
}
