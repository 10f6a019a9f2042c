// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/argon2"
)

var (
	ErrDecrypt         = errors.New("draft can not be decrypted")
	ErrEmptyPassphrase = errors.New("empty passphrase")
)

const (
	saltSize = 16
	keySize  = 32 // AES-256

	// derived keys of foreign salts (drafts written by another install)
	// are cached too, the cache is dropped when it grows past this
	maxCachedKeys = 64
)

// draftCipher implements [DraftCipher] with AES-256-GCM under a key derived
// from the passphrase by Argon2id.
//
// Blob layout before base64: salt (16) ‖ nonce (12) ‖ ciphertext+tag.
// The salt travels inside the blob, so a blob stays readable by any instance
// that knows the passphrase.
type draftCipher struct {
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8

	salt []byte

	mu   sync.Mutex
	keys map[string][]byte
}

// NewDraftCipher creates a cipher with a fresh random salt.
//
// Argon2id runs with time=2, memory=19 MiB, threads=1. Drafts are saved on
// every keystroke, so derived keys are cached per (passphrase, salt).
func NewDraftCipher() (DraftCipher, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	return &draftCipher{
		argonTime:    2,
		argonMemory:  19 * 1024,
		argonThreads: 1,
		salt:         salt,
		keys:         make(map[string][]byte),
	}, nil
}

func (c *draftCipher) Encrypt(plaintext, passphrase string) (string, error) {
	if passphrase == "" {
		return "", ErrEmptyPassphrase
	}

	gcm, err := c.aead(passphrase, c.salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+gcm.Overhead())
	blob = append(blob, c.salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(blob), nil
}

func (c *draftCipher) Decrypt(ciphertext, passphrase string) (string, error) {
	if passphrase == "" {
		return "", fmt.Errorf("%w: %w", ErrDecrypt, ErrEmptyPassphrase)
	}

	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrDecrypt, err)
	}

	if len(blob) < saltSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecrypt)
	}

	gcm, err := c.aead(passphrase, blob[:saltSize])
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecrypt, err)
	}

	body := blob[saltSize:]
	if len(body) < gcm.NonceSize()+gcm.Overhead() {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecrypt)
	}

	nonce, sealed := body[:gcm.NonceSize()], body[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecrypt, err)
	}

	return string(plaintext), nil
}

func (c *draftCipher) aead(passphrase string, salt []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.key(passphrase, salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}

func (c *draftCipher) key(passphrase string, salt []byte) []byte {
	id := passphrase + "\x00" + string(salt)

	c.mu.Lock()
	defer c.mu.Unlock()

	if k, ok := c.keys[id]; ok {
		return k
	}

	if len(c.keys) >= maxCachedKeys {
		clear(c.keys)
	}

	k := argon2.IDKey([]byte(passphrase), salt, c.argonTime, c.argonMemory, c.argonThreads, keySize)
	c.keys[id] = k
	return k
}
