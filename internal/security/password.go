package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math"
	"strings"

	"golang.org/x/crypto/argon2"
)

// CredentialHasher turns plaintext passwords into storable digests.
// Hash must be usable for direct equality lookups when the scheme is
// deterministic; Compare covers salted schemes where it is not.
type CredentialHasher interface {
	Hash(plaintext string) (string, error)
	Compare(digest, plaintext string) (bool, error)
	// Deterministic reports whether equal plaintexts always produce equal
	// digests, which allows credential checks as a single filtered lookup.
	Deterministic() bool
}

// SHA256Hasher is the compatibility scheme: a single unsalted hash encoded
// to hex. Kept for parity with existing stored digests; new deployments
// should prefer Argon2Hasher (see config AUTH_PASSWORD_SCHEME).
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(plaintext string) (string, error) {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:]), nil
}

func (h SHA256Hasher) Compare(digest, plaintext string) (bool, error) {
	actual, _ := h.Hash(plaintext)
	return subtle.ConstantTimeCompare([]byte(actual), []byte(digest)) == 1, nil
}

func (SHA256Hasher) Deterministic() bool { return true }

const (
	argonTime    uint32 = 3
	argonMemory  uint32 = 64 * 1024
	argonThreads uint8  = 2
	argonKeyLen  uint32 = 32
	argonSaltLen        = 16
)

// Argon2Hasher is the salted, memory-hard scheme. Digests are self-describing
// so parameters can change without invalidating stored credentials.
type Argon2Hasher struct{}

func (Argon2Hasher) Hash(plaintext string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	hash := argon2.IDKey([]byte(plaintext), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash)), nil
}

func (Argon2Hasher) Compare(digest, plaintext string) (bool, error) {
	memory, timeCost, threads, salt, expected, err := decodeArgonHash(digest)
	if err != nil {
		return false, err
	}
	expectedLen := len(expected)
	if uint64(expectedLen) > uint64(math.MaxUint32) {
		return false, fmt.Errorf("invalid hash length")
	}
	// #nosec G115 -- bounded by explicit MaxUint32 check above.
	keyLen := uint32(expectedLen)
	actual := argon2.IDKey([]byte(plaintext), salt, timeCost, memory, threads, keyLen)
	return subtle.ConstantTimeCompare(actual, expected) == 1, nil
}

func (Argon2Hasher) Deterministic() bool { return false }

func decodeArgonHash(encoded string) (memory uint32, timeCost uint32, threads uint8, salt, hash []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" || parts[2] != "v=19" {
		return 0, 0, 0, nil, nil, fmt.Errorf("invalid password hash format")
	}
	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &timeCost, &threads); err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("invalid hash params")
	}
	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("invalid hash salt")
	}
	hash, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("invalid hash payload")
	}
	return memory, timeCost, threads, salt, hash, nil
}

// NewHasher selects a credential scheme by name. Unknown names fall back to
// the compatibility scheme.
func NewHasher(scheme string) CredentialHasher {
	if strings.EqualFold(scheme, "argon2id") {
		return Argon2Hasher{}
	}
	return SHA256Hasher{}
}
