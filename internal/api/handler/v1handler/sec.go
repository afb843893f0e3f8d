package v1handler

import (
	"context"
	"crypto/rsa"
	"dgaintel/internal/config"
	"dgaintel/pkg/serrors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// SecHandlerOptions configure bearer authentication.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key verifying RS256 tokens.
	PublicKey string
}

// NewSecHandlerOptions returns the authentication options from cfg, or nil
// when no public key is configured and the API is open.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	if cfg.JWT.PublicKey == "" {
		return nil
	}

	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler verifies bearer tokens and stores their subject in the request
// context.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{publicKey: key}, nil
}

type ctxKey string

// SubjectKey is the context key under which the token subject is stored.
const SubjectKey ctxKey = "subject"

// GetSubjectFromContext returns the authenticated subject, or "" when the API
// runs without authentication.
func GetSubjectFromContext(ctx context.Context) string {
	s, _ := ctx.Value(SubjectKey).(string)

	return s
}

// HandleBearerAuth validates an RS256 token and returns ctx carrying its
// subject.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}
	if claims.Subject == "" {
		return ctx, serrors.With(serrors.ErrUnauthorized, "token has no subject")
	}

	return context.WithValue(ctx, SubjectKey, claims.Subject), nil
}

// Middleware rejects requests without a valid "Authorization: Bearer" header.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	h := &Handler{}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			h.writeError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), token)
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
