package v1

import (
	"github.com/tankan/image-aes-service/internal/domain/images"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, imageDecryptionService images.ImageDecryptionService) {
	v1 := r.Group(BasePath) // lookup in version file

	imageHandler := NewImageHandler(imageDecryptionService)
	v1.POST("/images/decrypt", imageHandler.Decrypt)
	v1.POST("/images/classify", imageHandler.Classify)
	v1.GET("/info", imageHandler.Info)
}
