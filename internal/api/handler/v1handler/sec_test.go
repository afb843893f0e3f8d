package v1handler_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"dgaintel/internal/api/handler/v1handler"
	"dgaintel/pkg/serrors"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// genRSAKeys returns a private key and its PEM encoded public key.
func genRSAKeys(tb testing.TB) (*rsa.PrivateKey, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err)
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err)

	return priv, string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1}))
}

func newSecHandlerForTest(t *testing.T, pubPEM string) *v1handler.SecHandler {
	t.Helper()
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: pubPEM})
	require.NoError(t, err)

	return sh
}

func signJWTRS256(tb testing.TB, priv *rsa.PrivateKey, sub string, issuedAt time.Time, exp time.Time) string {
	tb.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(exp),
		NotBefore: jwt.NewNumericDate(issuedAt),
	})
	signed, err := token.SignedString(priv)
	require.NoError(tb, err)

	return signed
}

func TestNewSecHandler_InvalidKey(t *testing.T) {
	_, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: "not a pem"})
	require.Error(t, err)
}

func TestHandleBearerAuth_ValidToken(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	now := time.Now()
	ctx, err := sh.HandleBearerAuth(context.Background(), signJWTRS256(t, priv, "analyst-1", now, now.Add(time.Hour)))
	require.NoError(t, err)
	require.Equal(t, "analyst-1", v1handler.GetSubjectFromContext(ctx))
}

func TestHandleBearerAuth_Rejected(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)
	privOther, _ := genRSAKeys(t)
	now := time.Now()

	hs256, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "analyst-1",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := map[string]string{
		"other key":       signJWTRS256(t, privOther, "analyst-1", now, now.Add(time.Hour)),
		"expired":         signJWTRS256(t, priv, "analyst-1", now.Add(-2*time.Hour), now.Add(-time.Hour)),
		"empty subject":   signJWTRS256(t, priv, "", now, now.Add(time.Hour)),
		"wrong algorithm": hs256,
		"garbage":         "not.a.token",
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := sh.HandleBearerAuth(context.Background(), token)
			require.ErrorIs(t, err, serrors.ErrUnauthorized)
		})
	}
}

func TestSecHandler_Middleware(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	var subject string
	h := sh.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject = v1handler.GetSubjectFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/jobs", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"code":"UNAUTHORIZED","message":"missing bearer token"}`, rec.Body.String())

	now := time.Now()
	req := httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)
	req.Header.Set("Authorization", "Bearer "+signJWTRS256(t, priv, "analyst-1", now, now.Add(time.Hour)))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "analyst-1", subject)
}
