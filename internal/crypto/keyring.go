// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
)

var (
	ErrEmptyMasterSecret  = errors.New("master secret is empty")
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	ErrOpenFailed         = errors.New("ciphertext authentication failed")
)

const keyLen = 32

// keyRing is the private implementation of [KeyRing].
type keyRing struct {
	keyID      string
	sealKey    []byte
	inputKey   []byte
	decryptKey []byte

	// Argon2id tuning parameters for deriving the root key.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewKeyRing derives a key ring from masterSecret. Rings derived from the
// same secret and chain id are interchangeable.
func NewKeyRing(masterSecret string, chainID int64) (KeyRing, error) {
	if masterSecret == "" {
		return nil, ErrEmptyMasterSecret
	}

	k := &keyRing{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
	}

	salt := []byte("transcript-keeper/" + strconv.FormatInt(chainID, 10))
	root := argon2.IDKey([]byte(masterSecret), salt, k.argonTime, k.argonMemory, k.argonThreads, keyLen)

	var err error
	if k.sealKey, err = expand(root, "seal"); err != nil {
		return nil, err
	}
	if k.inputKey, err = expand(root, "input-proof"); err != nil {
		return nil, err
	}
	if k.decryptKey, err = expand(root, "decryption-proof"); err != nil {
		return nil, err
	}

	id := sha256.Sum256(k.sealKey)
	k.keyID = hex.EncodeToString(id[:8])

	return k, nil
}

func expand(root []byte, info string) ([]byte, error) {
	key := make([]byte, keyLen)
	if _, err := io.ReadFull(hkdf.New(sha256.New, root, nil, []byte(info)), key); err != nil {
		return nil, fmt.Errorf("derive %s key: %w", info, err)
	}
	return key, nil
}

func (k *keyRing) KeyID() string {
	return k.keyID
}

// Seal encrypts value with AES-256-GCM. The (contract, owner) pair is bound
// as additional data, so a blob cannot be reopened for another pair. The
// blob layout is nonce || ciphertext.
func (k *keyRing) Seal(contract, owner string, value uint64) (Sealed, error) {
	gcm, err := k.gcm()
	if err != nil {
		return Sealed{}, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return Sealed{}, fmt.Errorf("generate nonce: %w", err)
	}

	var plain [8]byte
	binary.BigEndian.PutUint64(plain[:], value)

	blob := append(nonce, gcm.Seal(nil, nonce, plain[:], pairAAD(contract, owner))...)

	sum := sha256.Sum256(blob)
	handle := "0x" + hex.EncodeToString(sum[:])

	return Sealed{
		Handle:     handle,
		Blob:       blob,
		InputProof: k.inputProof(contract, owner, handle),
	}, nil
}

func (k *keyRing) Open(contract, owner string, blob []byte) (uint64, error) {
	gcm, err := k.gcm()
	if err != nil {
		return 0, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return 0, ErrCiphertextTooShort
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plain, err := gcm.Open(nil, nonce, ciphertext, pairAAD(contract, owner))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}
	if len(plain) != 8 {
		return 0, ErrOpenFailed
	}

	return binary.BigEndian.Uint64(plain), nil
}

func (k *keyRing) VerifyInputProof(contract, owner, handle, proof string) bool {
	return equalHex(k.inputProof(contract, owner, handle), proof)
}

func (k *keyRing) DecryptionProof(contract string, handles []string, abiEncoded string) string {
	return tag(k.decryptKey, "decrypt", normalizeAddress(contract), strings.Join(handles, ","), strings.ToLower(abiEncoded))
}

func (k *keyRing) VerifyDecryptionProof(contract string, handles []string, abiEncoded, proof string) bool {
	return equalHex(k.DecryptionProof(contract, handles, abiEncoded), proof)
}

func (k *keyRing) inputProof(contract, owner, handle string) string {
	return tag(k.inputKey, "input", normalizeAddress(contract), normalizeAddress(owner), handle)
}

func (k *keyRing) gcm() (cipher.AEAD, error) {
	block, err := aes.NewCipher(k.sealKey)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

func pairAAD(contract, owner string) []byte {
	return []byte(normalizeAddress(contract) + "|" + normalizeAddress(owner))
}

// tag is an HMAC-SHA256 over the parts separated by NUL bytes.
func tag(key []byte, parts ...string) string {
	mac := hmac.New(sha256.New, key)
	for _, p := range parts {
		mac.Write([]byte(p))
		mac.Write([]byte{0})
	}
	return "0x" + hex.EncodeToString(mac.Sum(nil))
}

func equalHex(want, got string) bool {
	return hmac.Equal([]byte(want), []byte(strings.ToLower(got)))
}

func normalizeAddress(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}
