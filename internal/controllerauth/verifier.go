package controllerauth

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/radio-control/fhsscore/internal/modeswitch"
)

// VerifierConfig selects the signing algorithm and the key material that
// goes with it. Only one of PublicKeyPEM/SecretKey is meaningful,
// depending on Algorithm.
type VerifierConfig struct {
	// RS256 configuration.
	PublicKeyPEM string

	// HS256 configuration: the pre-shared link secret.
	SecretKey string

	// Algorithm selects "RS256" or "HS256".
	Algorithm string
}

// Claims is the authenticated content of a controller command token: who
// sent it, and the enable/mode request it carries.
type Claims struct {
	Subject string
	Enabled bool
	Mode    modeswitch.Mode
}

// CommandByte packs the claims into the §6 wire format the mode switch's
// ApplyControllerCommand expects.
func (c *Claims) CommandByte() byte {
	return modeswitch.EncodeControllerCommand(c.Enabled, c.Mode)
}

// Verifier verifies controller command tokens signed with RS256 (a fixed
// public key, no JWKS fetch) or HS256 (a pre-shared secret).
type Verifier struct {
	config    VerifierConfig
	publicKey *rsa.PublicKey
}

// NewVerifier constructs a Verifier for the configured algorithm.
func NewVerifier(config VerifierConfig) (*Verifier, error) {
	v := &Verifier{config: config}

	switch config.Algorithm {
	case "RS256":
		if config.PublicKeyPEM == "" {
			return nil, fmt.Errorf("RS256 requires a public key")
		}
		if err := v.loadPublicKeyFromPEM(config.PublicKeyPEM); err != nil {
			return nil, fmt.Errorf("failed to load public key from PEM: %w", err)
		}
	case "HS256":
		if config.SecretKey == "" {
			return nil, fmt.Errorf("HS256 requires a secret key")
		}
	default:
		return nil, fmt.Errorf("unsupported algorithm: %s", config.Algorithm)
	}

	return v, nil
}

// VerifyToken verifies a controller command token and returns its claims.
func (v *Verifier) VerifyToken(tokenString string) (*Claims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, fmt.Errorf("token cannot be empty")
	}

	switch v.config.Algorithm {
	case "RS256":
		return v.verifyRS256Token(tokenString)
	case "HS256":
		return v.verifyHS256Token(tokenString)
	default:
		return nil, fmt.Errorf("unsupported algorithm: %s", v.config.Algorithm)
	}
}

func (v *Verifier) verifyRS256Token(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != "RS256" {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		if v.publicKey == nil {
			return nil, fmt.Errorf("no public key available")
		}
		return v.publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return extractClaimsFromMap(claims)
}

func (v *Verifier) verifyHS256Token(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != "HS256" {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(v.config.SecretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return extractClaimsFromMap(claims)
}

// extractClaimsFromMap pulls the subject, enabled flag, and mode name out
// of the token's claim set.
func extractClaimsFromMap(claims *jwt.MapClaims) (*Claims, error) {
	sub, ok := (*claims)["sub"].(string)
	if !ok || sub == "" {
		return nil, fmt.Errorf("missing or invalid 'sub' claim")
	}

	enabled, ok := (*claims)["enabled"].(bool)
	if !ok {
		return nil, fmt.Errorf("missing or invalid 'enabled' claim")
	}

	modeName, ok := (*claims)["mode"].(string)
	if !ok {
		return nil, fmt.Errorf("missing or invalid 'mode' claim")
	}
	mode, err := parseMode(modeName)
	if err != nil {
		return nil, err
	}

	return &Claims{Subject: sub, Enabled: enabled, Mode: mode}, nil
}

func parseMode(name string) (modeswitch.Mode, error) {
	switch name {
	case "AUTO":
		return modeswitch.ModeAuto, nil
	case "LOW":
		return modeswitch.ModeLow, nil
	case "HIGH":
		return modeswitch.ModeHigh, nil
	default:
		return 0, fmt.Errorf("invalid 'mode' claim: %q", name)
	}
}

// loadPublicKeyFromPEM loads an RSA public key from PEM format.
func (v *Verifier) loadPublicKeyFromPEM(pemData string) error {
	block, _ := pem.Decode([]byte(pemData))
	if block == nil {
		return fmt.Errorf("failed to decode PEM block")
	}

	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return fmt.Errorf("not an RSA public key")
	}

	v.publicKey = rsaPub
	return nil
}
