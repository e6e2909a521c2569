// Package app wires the decryption pipeline and the format sniffer into the
// application services consumed by the CLI and the REST API.
package app

import (
	"context"

	"github.com/tankan/image-aes-service/internal/domain/crypto"
	"github.com/tankan/image-aes-service/internal/domain/images"
	"github.com/tankan/image-aes-service/internal/pkg/logger"
)

// imageDecryptionService implements the ImageDecryptionService interface
type imageDecryptionService struct {
	decryptor crypto.ImageDecryptor
	sniffer   images.FormatSniffer
	logger    logger.Logger
}

// NewImageDecryptionService creates a new imageDecryptionService instance
func NewImageDecryptionService(
	decryptor crypto.ImageDecryptor,
	sniffer images.FormatSniffer,
	logger logger.Logger,
) (images.ImageDecryptionService, error) {
	return &imageDecryptionService{
		decryptor: decryptor,
		sniffer:   sniffer,
		logger:    logger,
	}, nil
}

// Decrypt runs the full decrypt-unpad-classify pipeline on the ciphertext.
// The pipeline is synchronous and runs to completion or fails immediately;
// key, IV and buffers are owned by the call and not retained afterwards.
func (s *imageDecryptionService) Decrypt(_ context.Context, ciphertext []byte, keyBase64, ivBase64 string) ([]byte, images.ClassifyResult, error) {
	plaintext, err := s.decryptor.Decrypt(ciphertext, keyBase64, ivBase64)
	if err != nil {
		return nil, images.ClassifyResult{}, err
	}

	return plaintext, s.sniffer.Classify(plaintext), nil
}

// DecryptWithProgress behaves exactly like Decrypt and reports 100 once done.
func (s *imageDecryptionService) DecryptWithProgress(_ context.Context, ciphertext []byte, keyBase64, ivBase64 string, onProgress func(percent float64)) ([]byte, images.ClassifyResult, error) {
	plaintext, err := s.decryptor.DecryptWithProgress(ciphertext, keyBase64, ivBase64, onProgress)
	if err != nil {
		return nil, images.ClassifyResult{}, err
	}

	return plaintext, s.sniffer.Classify(plaintext), nil
}

// Classify sniffs the format of an already decrypted buffer.
func (s *imageDecryptionService) Classify(_ context.Context, data []byte) images.ClassifyResult {
	return s.sniffer.Classify(data)
}

// Info reports static capability facts about the decryption module.
func (s *imageDecryptionService) Info(_ context.Context) crypto.DecryptorInfo {
	return s.decryptor.Info()
}
