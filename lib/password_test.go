package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("espresso-yourself")
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$")

	valid, err := VerifyPassword("espresso-yourself", hash)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = VerifyPassword("wrong-password", hash)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{name: "empty", hash: ""},
		{name: "not a hash", hash: "plaintext"},
		{name: "wrong algorithm", hash: "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{name: "truncated", hash: "$argon2id$v=19$m=65536,t=1,p=4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, err := VerifyPassword("anything", tt.hash)
			assert.Error(t, err)
			assert.False(t, valid)
		})
	}
}

func TestGenerateOrderReference(t *testing.T) {
	for range 20 {
		ref := GenerateOrderReference()
		assert.Regexp(t, `^JJ-[A-Z0-9]{4}$`, ref)
	}
}
