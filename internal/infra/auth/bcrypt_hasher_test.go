package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"templateapi/config"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(bcryptTestCost)

	password := "pw123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

// bcrypt caps input at 72 bytes; MinCost keeps the test fast.
const bcryptTestCost = 4

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasher(bcryptTestCost)

	first, err := hasher.Hash("same-password")
	assert.NoError(t, err)
	second, err := hasher.Hash("same-password")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewPasswordHasher_SelectsAlgorithm(t *testing.T) {
	argonCfg := &config.Config{Auth: &config.AuthConfig{HashAlgorithm: "argon2id"}}
	bcryptCfg := &config.Config{Auth: &config.AuthConfig{HashAlgorithm: "bcrypt", BcryptCost: bcryptTestCost}}

	argonHash, err := NewPasswordHasher(argonCfg).Hash("pw123")
	assert.NoError(t, err)
	assert.Contains(t, argonHash, "$argon2id$")

	bcryptHash, err := NewPasswordHasher(bcryptCfg).Hash("pw123")
	assert.NoError(t, err)
	assert.Contains(t, bcryptHash, "$2a$")

	// Nil auth config falls back to argon2id.
	defaultHash, err := NewPasswordHasher(&config.Config{}).Hash("pw123")
	assert.NoError(t, err)
	assert.Contains(t, defaultHash, "$argon2id$")
}
