package utils

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// WalletTokenIssuer is the "iss" claim of every wallet-signed token.
const WalletTokenIssuer = "transcript-wallet"

var (
	// ErrInvalidWalletSeed is returned for a seed that is not 32 hex bytes.
	ErrInvalidWalletSeed = errors.New("invalid wallet seed")
	// ErrWalletAddressMismatch is returned when the token subject does not
	// match the address derived from the embedded public key.
	ErrWalletAddressMismatch = errors.New("wallet address does not match public key")
	// ErrWalletDigestMismatch is returned when the token was signed for a
	// different request body.
	ErrWalletDigestMismatch = errors.New("request body does not match signed digest")
)

// WalletClaims are the claims of a wallet-signed request token. The token is
// self-certifying: the signer's public key travels inside it and the
// subject is the address derived from that key.
type WalletClaims struct {
	jwt.RegisteredClaims

	// PublicKey is the base64url ed25519 public key of the signer.
	PublicKey string `json:"pub"`

	// BodyDigest is the hex SHA-256 of the request body the token authorises.
	BodyDigest string `json:"digest"`
}

// WalletKeyFromSeed decodes a hex ed25519 seed into a private key.
func WalletKeyFromSeed(hexSeed string) (ed25519.PrivateKey, error) {
	seed, err := hex.DecodeString(hexSeed)
	if err != nil || len(seed) != ed25519.SeedSize {
		return nil, ErrInvalidWalletSeed
	}
	return ed25519.NewKeyFromSeed(seed), nil
}

// AddressFromPublicKey derives the 20-byte wallet address of pub, hex encoded
// with a 0x prefix.
func AddressFromPublicKey(pub ed25519.PublicKey) string {
	sum := sha256.Sum256(pub)
	return "0x" + hex.EncodeToString(sum[12:])
}

// BodyDigest returns the hex SHA-256 of body.
func BodyDigest(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// GenerateWalletToken signs an EdDSA JWT that authorises exactly one request
// body on behalf of the wallet owning key.
//
// Example usage:
//
//	token, err := utils.GenerateWalletToken(key, body, time.Minute)
func GenerateWalletToken(key ed25519.PrivateKey, body []byte, duration time.Duration) (string, error) {
	if len(key) != ed25519.PrivateKeySize || duration <= 0 {
		return "", errors.New("invalid params for generating wallet token")
	}

	pub := key.Public().(ed25519.PublicKey)
	now := time.Now()
	claims := &WalletClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    WalletTokenIssuer,
			Subject:   AddressFromPublicKey(pub),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
		PublicKey:  base64.RawURLEncoding.EncodeToString(pub),
		BodyDigest: BodyDigest(body),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing wallet token: %w", err)
	}

	return signed, nil
}

// ValidateWalletToken verifies the token signature with its embedded key,
// checks issuer and expiry, binds the subject to that key and the digest to
// body. It returns the claims on success.
func ValidateWalletToken(tokenString string, body []byte) (*WalletClaims, error) {
	claims := &WalletClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		pub, err := base64.RawURLEncoding.DecodeString(claims.PublicKey)
		if err != nil || len(pub) != ed25519.PublicKeySize {
			return nil, errors.New("invalid embedded public key")
		}
		return ed25519.PublicKey(pub), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithIssuer(WalletTokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("error occurred validating wallet token: %w", err)
	}

	pub, _ := base64.RawURLEncoding.DecodeString(claims.PublicKey)
	if AddressFromPublicKey(pub) != claims.Subject {
		return nil, ErrWalletAddressMismatch
	}
	if claims.BodyDigest != BodyDigest(body) {
		return nil, ErrWalletDigestMismatch
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
