package crypto

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DecryptorInfo carries static capability facts about the decryption module
type DecryptorInfo struct {
	Algorithm   string `json:"algorithm" validate:"required"`
	Version     string `json:"version" validate:"required"`
	MemoryPages uint64 `json:"memory_pages"`
}

// Validate for validating DecryptorInfo struct
func (i *DecryptorInfo) Validate() error {
	validate := validator.New()

	if err := validate.Struct(i); err != nil {
		return fmt.Errorf("validation failed for DecryptorInfo: %w", err)
	}

	return nil
}
