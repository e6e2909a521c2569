package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tankan/image-aes-service/internal/app"
	"github.com/tankan/image-aes-service/internal/domain/images"
	"github.com/tankan/image-aes-service/internal/infrastructure/cryptography"
	"github.com/tankan/image-aes-service/internal/infrastructure/imaging"
	"github.com/tankan/image-aes-service/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// ImageCommandHandler encapsulates logic for handling image decryption operations via CLI.
type ImageCommandHandler struct {
	imageDecryptionService images.ImageDecryptionService
	logger                 logger.Logger
}

// NewImageCommandHandler initializes and returns an ImageCommandHandler instance with
// configured logger, decryptor and format sniffer.
func NewImageCommandHandler() (*ImageCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	decryptor, err := cryptography.NewAESCBCDecryptor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES-CBC decryptor: %w", err)
	}

	sniffer, err := imaging.NewFormatSniffer(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create format sniffer: %w", err)
	}

	service, err := app.NewImageDecryptionService(decryptor, sniffer, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create image decryption service: %w", err)
	}

	return &ImageCommandHandler{
		imageDecryptionService: service,
		logger:                 loggerInstance,
	}, nil
}

// DecryptImageCmd decrypts an encrypted image file and writes the plaintext to disk
func (commandHandler *ImageCommandHandler) DecryptImageCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag ", err)
		return
	}
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag ", err)
		return
	}
	keyBase64, err := cmd.Flags().GetString("key")
	if err != nil {
		commandHandler.logger.Error("invalid key flag ", err)
		return
	}
	ivBase64, err := cmd.Flags().GetString("iv")
	if err != nil {
		commandHandler.logger.Error("invalid iv flag ", err)
		return
	}

	ciphertext, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	plaintext, result, err := commandHandler.imageDecryptionService.Decrypt(context.Background(), ciphertext, keyBase64, ivBase64)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if outputFilePath == "" {
		outputFilePath = fmt.Sprintf("%s-decrypted.%s", uuid.New(), outputExtension(result.Type))
	}

	err = os.WriteFile(outputFilePath, plaintext, 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Decrypted image saved to ", outputFilePath, ", detected type ", result.Type)
}

// ClassifyImageCmd classifies a decrypted image file by its magic numbers
func (commandHandler *ImageCommandHandler) ClassifyImageCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag ", err)
		return
	}

	data, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	result := commandHandler.imageDecryptionService.Classify(context.Background(), data)

	commandHandler.logger.Info("Image type: ", result.Type, ", valid: ", result.IsValid, ", size: ", result.SizeBytes, " bytes")
}

// ModuleInfoCmd prints static capability facts about the decryption module
func (commandHandler *ImageCommandHandler) ModuleInfoCmd(_ *cobra.Command, _ []string) {
	info := commandHandler.imageDecryptionService.Info(context.Background())

	commandHandler.logger.Info("Algorithm: ", info.Algorithm, ", version: ", info.Version, ", memory pages: ", info.MemoryPages)
}

// outputExtension maps a detected image type to a file extension, falling back
// to "bin" for unrecognized content.
func outputExtension(imageType images.ImageType) string {
	if imageType == images.ImageTypeUnknown {
		return "bin"
	}
	return string(imageType)
}

// InitImageCommands registers image-related commands
func InitImageCommands(rootCmd *cobra.Command) error {
	handler, err := NewImageCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create image command handler %w", err)
	}

	var decryptImageCmd = &cobra.Command{
		Use:   "decrypt-image",
		Short: "Decrypt an AES-256-CBC encrypted image file",
		Run:   handler.DecryptImageCmd,
	}
	decryptImageCmd.Flags().StringP("input-file", "", "", "Path to the encrypted input file")
	decryptImageCmd.Flags().StringP("output-file", "", "", "Path to the decrypted output file (generated when omitted)")
	decryptImageCmd.Flags().StringP("key", "", "", "Base64-encoded 32 byte key")
	decryptImageCmd.Flags().StringP("iv", "", "", "Base64-encoded 16 byte initialization vector")
	rootCmd.AddCommand(decryptImageCmd)

	var classifyImageCmd = &cobra.Command{
		Use:   "classify-image",
		Short: "Classify an image file by its magic numbers",
		Run:   handler.ClassifyImageCmd,
	}
	classifyImageCmd.Flags().StringP("input-file", "", "", "Path to the image file to classify")
	rootCmd.AddCommand(classifyImageCmd)

	var moduleInfoCmd = &cobra.Command{
		Use:   "module-info",
		Short: "Print module capability information",
		Run:   handler.ModuleInfoCmd,
	}
	rootCmd.AddCommand(moduleInfoCmd)

	return nil
}
