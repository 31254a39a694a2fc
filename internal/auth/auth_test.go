// internal/auth/auth_test.go
package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	gate := NewGate("table-secret")

	token, err := gate.CreateToken("client-42", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := gate.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "client-42", subject)
}

func TestExpiredTokenRejected(t *testing.T) {
	gate := NewGate("table-secret")

	token, err := gate.CreateToken("client-42", -time.Minute)
	require.NoError(t, err)

	_, err = gate.Verify(token)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	minter := NewGate("one-secret")
	verifier := NewGate("another-secret")

	token, err := minter.CreateToken("client-42", time.Minute)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestNonHMACAlgorithmRejected(t *testing.T) {
	gate := NewGate("table-secret")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "client-42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = gate.Verify(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	gate := NewGate("table-secret")

	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := gate.Verify(tok)
		assert.Error(t, err, "token %q should be rejected", tok)
	}
}
