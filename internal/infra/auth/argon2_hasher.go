// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"templateapi/internal/domain/service"
	"templateapi/internal/errors"
)

// argon2Params are the cost parameters baked into every hash. They are also
// encoded into the hash string itself, so verification always replays the
// parameters the hash was created with, not the current defaults.
type argon2Params struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	saltLength  uint32
	keyLength   uint32
}

var defaultArgon2Params = argon2Params{
	memory:      64 * 1024,
	iterations:  3,
	parallelism: 2,
	saltLength:  16,
	keyLength:   32,
}

// argon2Hasher is a concrete implementation of the PasswordHasher interface using argon2id.
type argon2Hasher struct {
	params argon2Params
}

// NewArgon2Hasher is the constructor for argon2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewArgon2Hasher() service.PasswordHasher {
	return &argon2Hasher{params: defaultArgon2Params}
}

// Hash generates a salted argon2id hash in the PHC string format:
//
//	$argon2id$v=19$m=65536,t=3,p=2$<base64-salt>$<base64-digest>
//
// A fresh random salt is drawn per call, so hashing the same password twice
// never yields the same string.
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	digest := argon2.IDKey([]byte(password), salt, h.params.iterations, h.params.memory, h.params.parallelism, h.params.keyLength)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.memory,
		h.params.iterations,
		h.params.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest),
	)

	return encoded, nil
}

// Check compares a plaintext password with an encoded argon2id hash.
// The comparison is constant-time. Malformed hashes fail the check.
func (h *argon2Hasher) Check(password, hash string) bool {
	params, salt, digest, err := decodeArgon2Hash(hash)
	if err != nil {
		return false
	}

	candidate := argon2.IDKey([]byte(password), salt, params.iterations, params.memory, params.parallelism, uint32(len(digest)))

	return subtle.ConstantTimeCompare(digest, candidate) == 1
}

// decodeArgon2Hash parses a PHC-formatted argon2id hash back into its
// parameters, salt, and digest.
func decodeArgon2Hash(hash string) (argon2Params, []byte, []byte, error) {
	var params argon2Params

	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return params, nil, nil, errors.New("malformed argon2id hash")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return params, nil, nil, errors.Wrap(err, "failed to parse hash version")
	}
	if version != argon2.Version {
		return params, nil, nil, errors.Errorf("unsupported argon2 version: %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.iterations, &params.parallelism); err != nil {
		return params, nil, nil, errors.Wrap(err, "failed to parse hash parameters")
	}
	// Zero iterations or parallelism panic inside argon2.IDKey, and a
	// zero-memory setting never comes from Hash. Reject them up front.
	if params.memory == 0 || params.iterations == 0 || params.parallelism == 0 {
		return params, nil, nil, errors.New("invalid argon2id parameters")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return params, nil, nil, errors.Wrap(err, "failed to decode salt")
	}

	digest, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return params, nil, nil, errors.Wrap(err, "failed to decode digest")
	}
	// An empty digest would trivially match the zero-length derivation of
	// any password.
	if len(digest) == 0 {
		return params, nil, nil, errors.New("empty argon2id digest")
	}

	return params, salt, digest, nil
}
