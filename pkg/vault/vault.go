// Package vault encrypts credentials at rest with AES-256-CBC.
//
// Serialized form is hex(iv) + ":" + hex(ciphertext) with a fresh random
// 16-byte IV per call and PKCS#7 padding. Plaintexts are UTF-8 text; a
// decryption that does not yield valid UTF-8 is treated as a wrong key.
package vault

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const KeySize = 32

var (
	ErrInvalidKey = errors.New("encryption key must be exactly 32 bytes")
	ErrFormat     = errors.New("invalid encrypted secret format")
	ErrDecryption = errors.New("failed to decrypt secret")

	ErrInvalidPlaintext = errors.New("secret must be valid UTF-8 text")
)

type Vault struct {
	block cipher.Block
	rand  io.Reader
}

func New(key []byte) (*Vault, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKey, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	return &Vault{block: block, rand: rand.Reader}, nil
}

// NewFromString takes the key as configured in the environment; its UTF-8
// bytes are the key material.
func NewFromString(key string) (*Vault, error) {
	return New([]byte(key))
}

func (v *Vault) Encrypt(plaintext string) (string, error) {
	if !utf8.ValidString(plaintext) {
		return "", ErrInvalidPlaintext
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(v.rand, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	padded := pad([]byte(plaintext))
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(v.block, iv).CryptBlocks(ciphertext, padded)

	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(ciphertext), nil
}

func (v *Vault) Decrypt(serialized string) (string, error) {
	ivHex, ctHex, found := strings.Cut(serialized, ":")
	if !found || ivHex == "" || ctHex == "" {
		return "", fmt.Errorf("%w: expected iv:ciphertext", ErrFormat)
	}

	iv, err := hex.DecodeString(ivHex)
	if err != nil {
		return "", fmt.Errorf("%w: iv is not hex", ErrFormat)
	}
	if len(iv) != aes.BlockSize {
		return "", fmt.Errorf("%w: iv must be %d bytes", ErrFormat, aes.BlockSize)
	}

	ciphertext, err := hex.DecodeString(ctHex)
	if err != nil {
		return "", fmt.Errorf("%w: ciphertext is not hex", ErrFormat)
	}
	if len(ciphertext)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: ciphertext is not a whole number of blocks", ErrFormat)
	}

	plain := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(v.block, iv).CryptBlocks(plain, ciphertext)

	plain, err = unpad(plain)
	if err != nil {
		return "", err
	}
	// A wrong key occasionally yields valid padding; the result is then
	// random bytes, which are almost never valid UTF-8.
	if !utf8.Valid(plain) {
		return "", ErrDecryption
	}

	return string(plain), nil
}

func pad(b []byte) []byte {
	n := aes.BlockSize - len(b)%aes.BlockSize
	return append(b, bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, ErrDecryption
	}
	n := int(b[len(b)-1])
	if n == 0 || n > aes.BlockSize || n > len(b) {
		return nil, ErrDecryption
	}
	for _, c := range b[len(b)-n:] {
		if int(c) != n {
			return nil, ErrDecryption
		}
	}
	return b[:len(b)-n], nil
}
