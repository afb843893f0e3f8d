package main

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"dgaintel/internal/config"
	"dgaintel/pkg/logger"
	"encoding/pem"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const rsaKeyBits = 2048

// JWTCommand constructs the 'jwt' subcommand that signs an RS256 token for a
// subject, or with --keygen prints a fresh key pair for the JWT config.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates a JWT for the given subject",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			if keygen, _ := cmd.Flags().GetBool("keygen"); keygen {
				priv, pub, err := generateKeyPair()
				if err != nil {
					logger.Fatal(ctx, "could not generate key pair", zap.Error(err))
				}
				fmt.Print(priv, pub) //nolint: forbidigo

				return
			}

			subject, _ := cmd.Flags().GetString("subject")
			if subject == "" {
				logger.Fatal(ctx, "--subject is required")
			}
			ttl, _ := cmd.Flags().GetDuration("ttl")

			signed, err := signToken(cfg.JWT.PrivateKey, subject, time.Now(), ttl)
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "JWT subject owning submitted jobs")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	cmd.Flags().Bool("keygen", false, "Print a new PEM encoded RSA key pair")

	return cmd
}

func signToken(privateKeyPEM, subject string, now time.Time, ttl time.Duration) (string, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return "", fmt.Errorf("could not parse RSA private key: %w", err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	})

	return token.SignedString(key) //nolint: wrapcheck
}

func generateKeyPair() (string, string, error) {
	key, err := rsa.GenerateKey(rand.Reader, rsaKeyBits)
	if err != nil {
		return "", "", fmt.Errorf("could not generate RSA key: %w", err)
	}
	pub, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return "", "", fmt.Errorf("could not marshal public key: %w", err)
	}

	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pub})

	return string(privPEM), string(pubPEM), nil
}
