package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashService_HashPassword(t *testing.T) {
	hashService := &HashService{}

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{
			name:     "hashes a normal password",
			password: "fleetboss-secret",
		},
		{
			name:     "rejects an empty password",
			password: "",
			wantErr:  ErrEmptyPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hashService.HashPassword(tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hash)
				return
			}
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(hash, "$2a$"), "expected a bcrypt hash")
			assert.NotContains(t, hash, tt.password)
		})
	}
}

func TestHashService_ComparePassword(t *testing.T) {
	hashService := &HashService{}

	hash, err := hashService.HashPassword("fleetboss-secret")
	require.NoError(t, err)

	tests := []struct {
		name      string
		hash      string
		password  string
		wantMatch bool
	}{
		{
			name:      "round trip matches",
			hash:      hash,
			password:  "fleetboss-secret",
			wantMatch: true,
		},
		{
			name:      "wrong password does not match",
			hash:      hash,
			password:  "wrong-secret",
			wantMatch: false,
		},
		{
			name:      "garbage hash does not match",
			hash:      "not-a-bcrypt-hash",
			password:  "fleetboss-secret",
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMatch, hashService.ComparePassword(tt.hash, tt.password))
		})
	}
}
