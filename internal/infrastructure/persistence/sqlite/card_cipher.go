package sqlite

import (
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/crypto/chacha20poly1305"
)

const cardKeyFilePerm = 0o600

var cardAdditionalData = []byte("miniworld/autofill-card/v1")

// ErrCardKey is returned when the card encryption key is unusable.
var ErrCardKey = errors.New("invalid card encryption key")

// CardCipher seals card numbers with XChaCha20-Poly1305. Each sealed value
// carries its own random nonce as a prefix.
type CardCipher struct {
	aead cipher.AEAD
}

// NewCardCipher creates a cipher from a 32-byte key.
func NewCardCipher(key []byte) (*CardCipher, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrCardKey, chacha20poly1305.KeySize, len(key))
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCardKey, err)
	}
	return &CardCipher{aead: aead}, nil
}

// LoadOrCreateCardCipher reads the key at path, generating and storing a new
// one on first use.
func LoadOrCreateCardCipher(path string) (*CardCipher, error) {
	key, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		key = make([]byte, chacha20poly1305.KeySize)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("generate card key: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("create key directory: %w", err)
		}
		if err := os.WriteFile(path, key, cardKeyFilePerm); err != nil {
			return nil, fmt.Errorf("write card key: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("read card key: %w", err)
	}
	return NewCardCipher(key)
}

// Seal encrypts a card number.
func (c *CardCipher) Seal(number string) ([]byte, error) {
	nonce := make([]byte, c.aead.NonceSize(), c.aead.NonceSize()+len(number)+c.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return c.aead.Seal(nonce, nonce, []byte(number), cardAdditionalData), nil
}

// Open decrypts a value produced by Seal.
func (c *CardCipher) Open(sealed []byte) (string, error) {
	if len(sealed) < c.aead.NonceSize() {
		return "", fmt.Errorf("sealed card number too short")
	}
	nonce, ciphertext := sealed[:c.aead.NonceSize()], sealed[c.aead.NonceSize():]
	plain, err := c.aead.Open(nil, nonce, ciphertext, cardAdditionalData)
	if err != nil {
		return "", fmt.Errorf("open card number: %w", err)
	}
	return string(plain), nil
}
