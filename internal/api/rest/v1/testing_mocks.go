package v1

import (
	"context"

	"github.com/tankan/image-aes-service/internal/domain/crypto"
	"github.com/tankan/image-aes-service/internal/domain/images"

	"github.com/stretchr/testify/mock"
)

// MockImageDecryptionService is a mock implementation of the ImageDecryptionService interface
type MockImageDecryptionService struct {
	mock.Mock
}

// Decrypt mocks the Decrypt method
func (m *MockImageDecryptionService) Decrypt(ctx context.Context, ciphertext []byte, keyBase64, ivBase64 string) ([]byte, images.ClassifyResult, error) {
	args := m.Called(ctx, ciphertext, keyBase64, ivBase64)

	var plaintext []byte
	if args.Get(0) != nil {
		plaintext = args.Get(0).([]byte)
	}

	var result images.ClassifyResult
	if args.Get(1) != nil {
		result = args.Get(1).(images.ClassifyResult)
	}

	return plaintext, result, args.Error(2)
}

// DecryptWithProgress mocks the DecryptWithProgress method
func (m *MockImageDecryptionService) DecryptWithProgress(ctx context.Context, ciphertext []byte, keyBase64, ivBase64 string, onProgress func(percent float64)) ([]byte, images.ClassifyResult, error) {
	args := m.Called(ctx, ciphertext, keyBase64, ivBase64, onProgress)

	var plaintext []byte
	if args.Get(0) != nil {
		plaintext = args.Get(0).([]byte)
	}

	var result images.ClassifyResult
	if args.Get(1) != nil {
		result = args.Get(1).(images.ClassifyResult)
	}

	return plaintext, result, args.Error(2)
}

// Classify mocks the Classify method
func (m *MockImageDecryptionService) Classify(ctx context.Context, data []byte) images.ClassifyResult {
	args := m.Called(ctx, data)

	var result images.ClassifyResult
	if args.Get(0) != nil {
		result = args.Get(0).(images.ClassifyResult)
	}

	return result
}

// Info mocks the Info method
func (m *MockImageDecryptionService) Info(ctx context.Context) crypto.DecryptorInfo {
	args := m.Called(ctx)

	var info crypto.DecryptorInfo
	if args.Get(0) != nil {
		info = args.Get(0).(crypto.DecryptorInfo)
	}

	return info
}
