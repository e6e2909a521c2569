package images

import (
	"context"

	"github.com/tankan/image-aes-service/internal/domain/crypto"
)

// FormatSniffer classifies a byte buffer by its leading magic bytes.
// Classification never fails and never mutates or consumes the buffer.
type FormatSniffer interface {
	// Classify inspects the first bytes of data against the known image
	// signatures, first match wins. Buffers shorter than 8 bytes or matching
	// no signature classify as ImageTypeUnknown.
	Classify(data []byte) ClassifyResult
}

// ImageDecryptionService joins the decryption pipeline and the format sniffer
// into the operations exposed to the CLI and the REST API.
type ImageDecryptionService interface {
	// Decrypt runs the full decrypt-unpad-classify pipeline on the ciphertext.
	// It returns the plaintext together with its classification, or one of the
	// sentinel errors from the crypto domain package.
	Decrypt(ctx context.Context, ciphertext []byte, keyBase64, ivBase64 string) ([]byte, ClassifyResult, error)

	// DecryptWithProgress behaves exactly like Decrypt; the optional callback
	// is invoked once with 100 after the pipeline completes.
	DecryptWithProgress(ctx context.Context, ciphertext []byte, keyBase64, ivBase64 string, onProgress func(percent float64)) ([]byte, ClassifyResult, error)

	// Classify sniffs the format of an already decrypted buffer.
	Classify(ctx context.Context, data []byte) ClassifyResult

	// Info reports static capability facts about the decryption module.
	Info(ctx context.Context) crypto.DecryptorInfo
}
