package password_test

import (
	"strings"
	"testing"

	"gomoto/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name    string
		plain   string
		wantErr error
	}{
		{name: "ascii", plain: "Rider@2026"},
		{name: "unicode", plain: "пароль123"},
		{name: "at limit", plain: strings.Repeat("a", 72)},
		{name: "empty", plain: "", wantErr: password.ErrEmptyPassword},
		{name: "too long", plain: strings.Repeat("a", 73), wantErr: password.ErrTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashed, err := password.Hash(tt.plain)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hashed)

				return
			}

			require.NoError(t, err)
			assert.NoError(t, password.Verify(tt.plain, hashed))
			assert.False(t, password.NeedsRehash(hashed))
		})
	}
}

func TestHash_Salted(t *testing.T) {
	first, err := password.Hash("same-input")
	require.NoError(t, err)

	second, err := password.Hash("same-input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerify(t *testing.T) {
	hashed, err := password.Hash("correct horse")
	require.NoError(t, err)

	tests := []struct {
		name      string
		plain     string
		hashed    string
		wantErr   error
		malformed bool
	}{
		{name: "match", plain: "correct horse", hashed: hashed},
		{name: "mismatch", plain: "battery staple", hashed: hashed, wantErr: password.ErrInvalidPassword},
		{name: "empty plain", plain: "", hashed: hashed, wantErr: password.ErrInvalidPassword},
		{name: "empty hash", plain: "correct horse", hashed: "", wantErr: password.ErrInvalidPassword},
		{name: "malformed hash", plain: "correct horse", hashed: "not-a-hash", malformed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.plain, tt.hashed)

			switch {
			case tt.malformed:
				require.Error(t, err)
				assert.NotErrorIs(t, err, password.ErrInvalidPassword)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestNeedsRehash(t *testing.T) {
	legacy, err := bcrypt.GenerateFromPassword([]byte("old"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, password.NeedsRehash(string(legacy)))
	assert.True(t, password.NeedsRehash("garbage"))
}
