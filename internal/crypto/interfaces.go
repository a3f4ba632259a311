// Package crypto implements the development key ring behind the ledger
// daemon's relayer endpoints. It stands in for a threshold FHE network:
// values are sealed with AES-256-GCM under a key derived from a master
// secret, and proofs are HMAC tags that only the key ring can produce.
//
// Key schedule:
//
//	root       = Argon2id(masterSecret, "transcript-keeper/" + chainID)
//	sealKey    = HKDF-SHA256(root, info="seal")
//	inputKey   = HKDF-SHA256(root, info="input-proof")
//	decryptKey = HKDF-SHA256(root, info="decryption-proof")
package crypto

// KeyRing seals values for a (contract, owner) pair and proves
// decryptions.
type KeyRing interface {
	// KeyID identifies the public parameters of this ring.
	KeyID() string

	// Seal encrypts value for (contract, owner) and returns the content
	// addressed handle, the ciphertext blob and the input proof binding the
	// handle to the pair.
	Seal(contract, owner string, value uint64) (Sealed, error)

	// Open decrypts a blob produced by Seal for the same pair.
	Open(contract, owner string, blob []byte) (uint64, error)

	// VerifyInputProof checks a proof returned by Seal.
	VerifyInputProof(contract, owner, handle, proof string) bool

	// DecryptionProof proves that abiEncoded are the clear values of
	// handles under contract.
	DecryptionProof(contract string, handles []string, abiEncoded string) string

	// VerifyDecryptionProof checks a proof returned by DecryptionProof.
	VerifyDecryptionProof(contract string, handles []string, abiEncoded, proof string) bool
}

// Sealed is the output of [KeyRing.Seal].
type Sealed struct {
	Handle     string
	Blob       []byte
	InputProof string
}
