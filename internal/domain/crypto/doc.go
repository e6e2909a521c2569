// Package crypto defines the contracts, constants and failure taxonomy for
// AES-256-CBC image decryption, including base64 key/IV handling and PKCS7
// padding removal.

package crypto
