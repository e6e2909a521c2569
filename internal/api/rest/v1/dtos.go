package v1

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DecryptImageRequest is the request body for the decrypt endpoint. The
// ciphertext travels base64 encoded as a transport concern; the key and IV
// are base64 by contract and are validated by the decryption pipeline.
type DecryptImageRequest struct {
	Ciphertext string `json:"ciphertext" validate:"required"`
	Key        string `json:"key" validate:"required"`
	IV         string `json:"iv" validate:"required"`
}

// Validate for validating DecryptImageRequest struct
func (r *DecryptImageRequest) Validate() error {
	validate := validator.New()

	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for DecryptImageRequest: %w", err)
	}

	return nil
}

// ClassifyImageRequest is the request body for the classify endpoint
type ClassifyImageRequest struct {
	Data string `json:"data" validate:"required"`
}

// Validate for validating ClassifyImageRequest struct
func (r *ClassifyImageRequest) Validate() error {
	validate := validator.New()

	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for ClassifyImageRequest: %w", err)
	}

	return nil
}

// DecryptImageResponse carries the decrypted plaintext and its classification
type DecryptImageResponse struct {
	ID        string `json:"id"`
	Plaintext string `json:"plaintext"`
	ImageType string `json:"image_type"`
	MimeType  string `json:"mime_type,omitempty"`
	IsValid   bool   `json:"is_valid"`
	SizeBytes uint64 `json:"size_bytes"`
}

// ClassifyImageResponse carries the classification of a plaintext buffer
type ClassifyImageResponse struct {
	ImageType string `json:"image_type"`
	MimeType  string `json:"mime_type,omitempty"`
	IsValid   bool   `json:"is_valid"`
	SizeBytes uint64 `json:"size_bytes"`
}

// InfoResponse carries static capability facts about the decryption module
type InfoResponse struct {
	Algorithm   string `json:"algorithm"`
	Version     string `json:"version"`
	MemoryPages uint64 `json:"memory_pages"`
}

// ErrorResponse carries an actionable error message
type ErrorResponse struct {
	Message string `json:"message"`
}
