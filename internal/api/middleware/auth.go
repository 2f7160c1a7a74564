package middleware

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/bulbafloor/auction-engine/internal/logger"
)

const (
	// CallerKey is the gin context key holding the authenticated caller
	// address.
	CallerKey = "auth_caller"
	// ClaimsKey is the gin context key holding the verified JWT claims.
	ClaimsKey = "jwt_claims"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	// JWTPublicKey is the RSA public key in PEM format
	JWTPublicKey string
}

// Auth returns a gin middleware validating a Bearer JWT whose subject is the
// caller's wallet address. Settlement authorization (owner, seller) happens
// in the engine, not here.
func Auth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, claims, err := authenticate(c.GetHeader("Authorization"), cfg)
		if err != nil {
			logger.Warn("Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "unauthorized",
				"message": "Authentication failed",
				"details": err.Error(),
			})
			return
		}

		c.Set(CallerKey, caller)
		c.Set(ClaimsKey, claims)

		c.Next()
	}
}

// CallerFromContext returns the authenticated wallet address set by Auth.
func CallerFromContext(c *gin.Context) (common.Address, bool) {
	v, ok := c.Get(CallerKey)
	if !ok {
		return common.Address{}, false
	}

	caller, ok := v.(common.Address)

	return caller, ok
}

func authenticate(authHeader string, cfg AuthConfig) (common.Address, *jwt.RegisteredClaims, error) {
	if authHeader == "" {
		return common.Address{}, nil, errors.New("missing Authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return common.Address{}, nil, errors.New("invalid Authorization header format")
	}

	claims, err := validateJWT(parts[1], cfg.JWTPublicKey)
	if err != nil {
		return common.Address{}, nil, err
	}

	if !common.IsHexAddress(claims.Subject) {
		return common.Address{}, nil, fmt.Errorf("token subject %q is not a wallet address", claims.Subject)
	}

	return common.HexToAddress(claims.Subject), claims, nil
}

// validateJWT validates a JWT token with RSA signature and returns claims
func validateJWT(tokenString string, publicKeyPEM string) (*jwt.RegisteredClaims, error) {
	if publicKeyPEM == "" {
		return nil, errors.New("JWT public key not configured")
	}

	publicKey, err := parseRSAPublicKey(publicKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// parseRSAPublicKey parses an RSA public key from PEM format
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}
