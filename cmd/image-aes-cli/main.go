// Package main is the entry point for the image-aes-cli application.
// It initializes the root command, registers the image decryption and
// classification sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/tankan/image-aes-service/cmd/image-aes-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "image-aes-cli",
		Short: "Encrypted image decryption CLI tool",
		Long: `image-aes-cli decrypts images that were encrypted with AES-256-CBC and
PKCS7 padding, classifies the decrypted bytes by their magic numbers
(JPEG, PNG, GIF, WebP, BMP) and reports module capability information.

The key and IV are supplied base64 encoded and must decode to exactly
32 and 16 bytes. Keys and IVs are never logged or persisted.`,
	}

	if err := commands.InitImageCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
