package password_test

import (
	"strings"
	"testing"
	"tourcrm/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Hash of "password" seeded for admin@crm.local by the usuarios migration.
const seededAdminHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

func TestHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "regular password", password: "Agencia2024!"},
		{name: "unicode password", password: "contraseña_ñandú"},
		{name: "exactly 72 bytes", password: strings.Repeat("a", 72)},
		{name: "empty password", password: "", wantErr: password.ErrEmptyPassword},
		{name: "longer than bcrypt allows", password: strings.Repeat("a", 100), wantErr: password.ErrHashingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hash)

				return
			}

			require.NoError(t, err)
			assert.True(t, password.IsHashed(hash))
			assert.NoError(t, password.Verify(tt.password, hash))
		})
	}
}

func TestHash_Salted(t *testing.T) {
	first, err := password.Hash("Agencia2024!")
	require.NoError(t, err)

	second, err := password.Hash("Agencia2024!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  error
	}{
		{name: "seeded admin", password: "password", hash: seededAdminHash},
		{name: "wrong password", password: "Password", hash: seededAdminHash, wantErr: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: seededAdminHash, wantErr: password.ErrInvalidPassword},
		{name: "empty hash", password: "password", hash: "", wantErr: password.ErrInvalidPassword},
		{name: "malformed hash", password: "password", hash: "$2a$10$short", wantErr: password.ErrVerifyingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestIsHashed(t *testing.T) {
	assert.True(t, password.IsHashed(seededAdminHash))
	assert.True(t, password.IsHashed("  $2b$10$abc"))
	assert.False(t, password.IsHashed("secret123"))
	assert.False(t, password.IsHashed(""))
}

func TestVerifyStored(t *testing.T) {
	tests := []struct {
		name           string
		password       string
		stored         string
		allowPlaintext bool
		wantLegacy     bool
		wantErr        error
	}{
		{name: "bcrypt match", password: "password", stored: seededAdminHash},
		{name: "bcrypt mismatch ignores plaintext flag", password: "nope", stored: seededAdminHash, allowPlaintext: true, wantErr: password.ErrInvalidPassword},
		{name: "plaintext match", password: "secret123", stored: " secret123 ", allowPlaintext: true, wantLegacy: true},
		{name: "plaintext mismatch", password: "secret", stored: "secret123", allowPlaintext: true, wantLegacy: true, wantErr: password.ErrInvalidPassword},
		{name: "plaintext disabled", password: "secret123", stored: "secret123", wantLegacy: true, wantErr: password.ErrInvalidPassword},
		{name: "empty stored credential", password: "secret123", stored: "", allowPlaintext: true, wantLegacy: true, wantErr: password.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			legacy, err := password.VerifyStored(tt.password, tt.stored, tt.allowPlaintext)

			assert.Equal(t, tt.wantLegacy, legacy)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}
