package crypto

// AlgorithmName identifies the cipher and mode implemented by the decryptor
const AlgorithmName = "AES-256-CBC"

// Version is the module version reported by the diagnostics query
const Version = "1.0.0"

// KeySize is the required AES-256 key size in bytes
const KeySize = 32

// IVSize is the required initialization vector size in bytes
const IVSize = 16

// BlockSize is the AES block size in bytes
const BlockSize = 16
