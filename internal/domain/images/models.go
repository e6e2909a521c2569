package images

// ClassifyResult reports the detected format of a plaintext buffer.
// An unknown format is a normal, valid outcome, not an error.
type ClassifyResult struct {
	Type      ImageType `json:"image_type"`
	IsValid   bool      `json:"is_valid"`
	SizeBytes uint64    `json:"size_bytes"`
}

// NewClassifyResult builds a ClassifyResult for the given type and buffer length,
// deriving the validity flag from the type.
func NewClassifyResult(imageType ImageType, sizeBytes uint64) ClassifyResult {
	return ClassifyResult{
		Type:      imageType,
		IsValid:   imageType != ImageTypeUnknown,
		SizeBytes: sizeBytes,
	}
}
