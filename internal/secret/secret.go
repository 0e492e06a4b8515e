// Package secret encrypts private journal text at rest with fernet tokens.
package secret

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fernet/fernet-go"
)

// Stored values are either a fernet token behind prefix, plain text behind
// plainPrefix, or bare plain text. Plain text that itself starts with one of
// the prefixes is always written behind plainPrefix.
const (
	prefix      = "fernet:"
	plainPrefix = "plain:"
)

var (
	// ErrKeyMissing is returned when an encrypted value is read without a key.
	ErrKeyMissing = errors.New("encrypted value but no journal key configured")
	// ErrDecrypt is returned when a token fails verification.
	ErrDecrypt = errors.New("failed to decrypt journal value")
)

// noExpiry disables the token timestamp check; journal entries never expire.
const noExpiry time.Duration = -1

// Box seals and opens journal text. A Box without keys passes values through.
type Box struct {
	keys []*fernet.Key
}

// NewBox builds a Box from one or more base64 keys separated by commas.
// The first key encrypts, all keys decrypt. An empty string disables encryption.
func NewBox(encodedKeys string) (*Box, error) {
	if strings.TrimSpace(encodedKeys) == "" {
		return &Box{}, nil
	}
	keys, err := fernet.DecodeKeys(strings.Split(encodedKeys, ",")...)
	if err != nil {
		return nil, fmt.Errorf("invalid journal encryption key: %w", err)
	}
	return &Box{keys: keys}, nil
}

// Enabled reports whether values are encrypted on write.
func (b *Box) Enabled() bool {
	return b != nil && len(b.keys) > 0
}

// Seal encrypts value. Empty values are stored as-is. Without a key the value
// is stored in plain text, escaped when it could be mistaken for a token.
func (b *Box) Seal(value string) (string, error) {
	if value == "" {
		return value, nil
	}
	if !b.Enabled() {
		if strings.HasPrefix(value, prefix) || strings.HasPrefix(value, plainPrefix) {
			return plainPrefix + value, nil
		}
		return value, nil
	}
	tok, err := fernet.EncryptAndSign([]byte(value), b.keys[0])
	if err != nil {
		return "", fmt.Errorf("failed to encrypt journal value: %w", err)
	}
	return prefix + string(tok), nil
}

// Open reverses Seal. Values without either prefix are returned unchanged.
func (b *Box) Open(value string) (string, error) {
	if plain, ok := strings.CutPrefix(value, plainPrefix); ok {
		return plain, nil
	}
	tok, ok := strings.CutPrefix(value, prefix)
	if !ok {
		return value, nil
	}
	if !b.Enabled() {
		return "", ErrKeyMissing
	}
	msg := fernet.VerifyAndDecrypt([]byte(tok), noExpiry, b.keys)
	if msg == nil {
		return "", ErrDecrypt
	}
	return string(msg), nil
}

// GenerateKey returns a fresh base64 key suitable for JOURNAL_ENCRYPTION_KEY.
func GenerateKey() (string, error) {
	var k fernet.Key
	if err := k.Generate(); err != nil {
		return "", fmt.Errorf("failed to generate key: %w", err)
	}
	return k.Encode(), nil
}
