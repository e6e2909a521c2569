package imaging

import (
	"bytes"

	"github.com/tankan/image-aes-service/internal/domain/images"
	"github.com/tankan/image-aes-service/internal/pkg/logger"
)

// Magic-byte signatures for the recognized image container formats
var (
	jpegSignature  = []byte{0xFF, 0xD8, 0xFF}
	pngSignature   = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	gif87Signature = []byte("GIF87a")
	gif89Signature = []byte("GIF89a")
	riffSignature  = []byte("RIFF")
	webpSignature  = []byte("WEBP")
	bmpSignature   = []byte("BM")
)

// sniffMinSize is the minimum buffer length worth inspecting; shorter buffers
// cannot hold any of the recognized signatures completely.
const sniffMinSize = 8

// formatSniffer struct that implements the FormatSniffer interface
type formatSniffer struct {
	logger logger.Logger
}

// NewFormatSniffer creates and returns a new instance of formatSniffer
func NewFormatSniffer(logger logger.Logger) (images.FormatSniffer, error) {
	return &formatSniffer{
		logger: logger,
	}, nil
}

// Classify inspects the leading bytes of data against the known image
// signatures, first match wins. The buffer is never mutated and absence of a
// match is a normal result, not an error.
func (s *formatSniffer) Classify(data []byte) images.ClassifyResult {
	result := images.NewClassifyResult(detectImageType(data), uint64(len(data)))
	s.logger.Info("Classified buffer of ", result.SizeBytes, " bytes as ", result.Type)
	return result
}

func detectImageType(data []byte) images.ImageType {
	if len(data) < sniffMinSize {
		return images.ImageTypeUnknown
	}

	switch {
	case bytes.HasPrefix(data, jpegSignature):
		return images.ImageTypeJPEG
	case bytes.HasPrefix(data, pngSignature):
		return images.ImageTypePNG
	case bytes.HasPrefix(data, gif87Signature), bytes.HasPrefix(data, gif89Signature):
		return images.ImageTypeGIF
	case len(data) >= 12 && bytes.HasPrefix(data, riffSignature) && bytes.Equal(data[8:12], webpSignature):
		return images.ImageTypeWebP
	case bytes.HasPrefix(data, bmpSignature):
		return images.ImageTypeBMP
	default:
		return images.ImageTypeUnknown
	}
}
