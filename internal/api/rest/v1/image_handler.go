package v1

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/tankan/image-aes-service/internal/domain/images"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ImageHandler defines the interface for handling image decryption operations
type ImageHandler interface {
	Decrypt(ctx *gin.Context)
	Classify(ctx *gin.Context)
	Info(ctx *gin.Context)
}

// imageHandler struct holds the service
type imageHandler struct {
	imageDecryptionService images.ImageDecryptionService
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(imageDecryptionService images.ImageDecryptionService) ImageHandler {
	return &imageHandler{
		imageDecryptionService: imageDecryptionService,
	}
}

// Decrypt decrypts a base64-transported ciphertext and classifies the result
func (handler *imageHandler) Decrypt(ctx *gin.Context) {
	var request DecryptImageRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	ciphertext, err := base64.StdEncoding.DecodeString(request.Ciphertext)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid ciphertext encoding"})
		return
	}

	plaintext, result, err := handler.imageDecryptionService.Decrypt(ctx, ciphertext, request.Key, request.IV)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error decrypting image: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, DecryptImageResponse{
		ID:        uuid.New().String(),
		Plaintext: base64.StdEncoding.EncodeToString(plaintext),
		ImageType: string(result.Type),
		MimeType:  result.Type.MimeType(),
		IsValid:   result.IsValid,
		SizeBytes: result.SizeBytes,
	})
}

// Classify sniffs the image format of a base64-transported buffer
func (handler *imageHandler) Classify(ctx *gin.Context) {
	var request ClassifyImageRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	data, err := base64.StdEncoding.DecodeString(request.Data)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid data encoding"})
		return
	}

	result := handler.imageDecryptionService.Classify(ctx, data)

	ctx.JSON(http.StatusOK, ClassifyImageResponse{
		ImageType: string(result.Type),
		MimeType:  result.Type.MimeType(),
		IsValid:   result.IsValid,
		SizeBytes: result.SizeBytes,
	})
}

// Info reports static capability facts about the decryption module
func (handler *imageHandler) Info(ctx *gin.Context) {
	info := handler.imageDecryptionService.Info(ctx)

	ctx.JSON(http.StatusOK, InfoResponse{
		Algorithm:   info.Algorithm,
		Version:     info.Version,
		MemoryPages: info.MemoryPages,
	})
}
