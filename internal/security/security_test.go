package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banner-rotator/internal/core/port"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func TestNoncesRoundTrip(t *testing.T) {
	n := NewNonces(testKey, time.Hour)

	token, err := n.Issue(ActionBannerClick, "")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, n.Verify(ActionBannerClick, "", token))
}

func TestNoncesRejects(t *testing.T) {
	n := NewNonces(testKey, time.Hour)
	token, err := n.Issue(ActionExportSingle, "admin")
	require.NoError(t, err)

	cases := map[string]struct {
		action, subject, token string
	}{
		"empty":         {ActionExportSingle, "admin", ""},
		"other action":  {ActionBannerClick, "admin", token},
		"other subject": {ActionExportSingle, "editor", token},
		"tampered":      {ActionExportSingle, "admin", token + "x"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := n.Verify(tc.action, tc.subject, tc.token)
			assert.ErrorIs(t, err, port.ErrInvalidNonce)
		})
	}

	other := NewNonces([]byte("fedcba9876543210fedcba9876543210"), time.Hour)
	assert.ErrorIs(t, other.Verify(ActionExportSingle, "admin", token), port.ErrInvalidNonce)
}

func TestTokensRoundTrip(t *testing.T) {
	tokens := NewTokens(testKey)

	raw, err := tokens.Issue("admin", []string{CapManageOptions}, time.Hour)
	require.NoError(t, err)

	claims, err := tokens.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.True(t, claims.Can(CapManageOptions))
	assert.False(t, claims.Can("edit_posts"))
}

func TestTokensExpired(t *testing.T) {
	tokens := NewTokens(testKey)
	tokens.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	raw, err := tokens.Issue("admin", []string{CapManageOptions}, time.Hour)
	require.NoError(t, err)

	tokens.now = time.Now
	_, err = tokens.Parse(raw)
	assert.ErrorIs(t, err, port.ErrUnauthorized)
}

func TestTokensRejectForeignSignature(t *testing.T) {
	raw, err := NewTokens([]byte("another-secret-another-secret-00")).Issue("admin", nil, time.Hour)
	require.NoError(t, err)

	_, err = NewTokens(testKey).Parse(raw)
	assert.ErrorIs(t, err, port.ErrUnauthorized)
}

func TestTokensRejectNoneAlgorithm(t *testing.T) {
	claims := Claims{
		Capabilities:     []string{CapManageOptions},
		RegisteredClaims: jwt.RegisteredClaims{Subject: "admin"},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokens(testKey).Parse(raw)
	assert.ErrorIs(t, err, port.ErrUnauthorized)
}

func TestBearerToken(t *testing.T) {
	tok, err := BearerToken("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", tok)

	_, err = BearerToken("Basic abc")
	assert.Error(t, err)
	_, err = BearerToken("")
	assert.Error(t, err)
}
