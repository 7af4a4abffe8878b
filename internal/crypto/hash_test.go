package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		errMsg   string
		password string
		wantErr  bool
	}{
		{
			name:     "successful hash",
			password: "pw123",
			wantErr:  false,
		},
		{
			name:     "unicode password",
			password: "пароль",
			wantErr:  false,
		},
		{
			name:     "empty password",
			password: "",
			wantErr:  true,
			errMsg:   "password cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Empty(t, hash)
				return
			}

			require.NoError(t, err)
			// SHA256 хеш всегда 64 символа в нижнем регистре
			assert.Regexp(t, "^[a-f0-9]{64}$", hash)
		})
	}
}

func TestHashPassword_KnownVector(t *testing.T) {
	hash, err := HashPassword("test")
	require.NoError(t, err)
	assert.Equal(t, "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08", hash)
}

func TestHashPassword_Deterministic(t *testing.T) {
	hash1, err := HashPassword("rightpw")
	require.NoError(t, err)
	hash2, err := HashPassword("rightpw")
	require.NoError(t, err)

	assert.Equal(t, hash1, hash2)
}

func TestVerifyPassword(t *testing.T) {
	validHash, err := HashPassword("rightpw")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		errMsg   string
		wantErr  bool
	}{
		{name: "match", password: "rightpw", hash: validHash},
		{name: "mismatch", password: "wrongpw", hash: validHash, wantErr: true, errMsg: "invalid password"},
		{name: "empty password", password: "", hash: validHash, wantErr: true, errMsg: "password cannot be empty"},
		{name: "empty hash", password: "rightpw", hash: "", wantErr: true, errMsg: "password hash cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyPassword(tt.password, tt.hash)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
		})
	}
}
